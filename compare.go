package choice

import (
	"github.com/wippyai/choice/engine"
	"github.com/wippyai/choice/errors"
	"github.com/wippyai/choice/schema"
)

// Comparison works across instantiations: the two sides must share the tag
// type but may have been built from independently-declared schemas. Tag
// values pair the variants; every tag declared by both schemas must store
// the identical payload type, checked once per pair of schemas on first
// use. Comparing a moved-from value is fatal, never a silent default.

// compatible aborts when the two schemas disagree on a shared tag's
// payload type. Such a pairing is a definition bug, the runtime analogue
// of a comparison that would not have compiled.
func compatible[T comparable](a, b *schema.Schema[T]) {
	err := schema.Compatible(a, b)
	errors.Check(err == nil, errors.PhaseCompare, errors.KindTypeMismatch, "%v", err)
}

// Equal reports whether both values hold the same tag with equal payloads.
// Distinct tags are unequal regardless of payloads. Equality must be
// available on both schemas (every payload comparable), else the call is
// fatal.
func (c *Choice[T]) Equal(o *Choice[T]) bool {
	slot := c.requireActive(errors.PhaseCompare)
	oslot := o.requireActive(errors.PhaseCompare)
	errors.Check(c.schema.CanEq() && o.schema.CanEq(), errors.PhaseCompare, errors.KindNotComparable,
		"schema without full payload equality")
	compatible(c.schema, o.schema)

	if c.schema.TagAt(slot) != o.schema.TagAt(oslot) {
		return false
	}
	return c.store.Eq(slot, &o.store, oslot)
}

// Compare orders two values: by tag first, by payload only when the tags
// are equal. It requires an ordered pairing; a partially-ordered pair that
// turns out unordered (NaN payloads) is fatal here, use TryCompare to
// observe it.
func (c *Choice[T]) Compare(o *Choice[T]) int {
	r, ok := c.TryCompare(o)
	errors.Check(ok, errors.PhaseCompare, errors.KindNotOrdered,
		"unordered payloads in %s", c.schema.Name())
	return r
}

// TryCompare is Compare reporting unordered pairs instead of aborting.
// Ordering must be available on both schemas; its strength is the weakest
// of the two sides' (see OrderingStrength).
func (c *Choice[T]) TryCompare(o *Choice[T]) (int, bool) {
	slot := c.requireActive(errors.PhaseCompare)
	oslot := o.requireActive(errors.PhaseCompare)
	errors.Check(c.schema.OrderingStrength().Ordered() && o.schema.OrderingStrength().Ordered(),
		errors.PhaseCompare, errors.KindNotOrdered, "schema without ordering")
	compatible(c.schema, o.schema)

	if t := c.schema.CompareTags(c.schema.TagAt(slot), o.schema.TagAt(oslot)); t != 0 {
		return t, true
	}
	return c.store.Compare(slot, &o.store, oslot)
}

// Less reports whether c orders before o.
func (c *Choice[T]) Less(o *Choice[T]) bool {
	return c.Compare(o) < 0
}

// OrderingStrength returns the strength of comparisons between values of
// the two schemas: the weakest strength either side declares.
func OrderingStrength[T comparable](a, b *schema.Schema[T]) engine.Strength {
	return engine.Weakest(a.OrderingStrength(), b.OrderingStrength())
}
