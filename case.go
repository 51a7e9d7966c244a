package choice

import (
	"github.com/wippyai/choice/engine"
	"github.com/wippyai/choice/errors"
	"github.com/wippyai/choice/option"
	"github.com/wippyai/choice/schema"
	"github.com/wippyai/choice/tuple"
)

// A case handle binds one declared variant to its payload shape. Handles
// are created against a schema builder before Build and used for every
// typed construction, access and mutation afterwards. Using a handle
// before its builder was built is fatal.

func mustSchema[T comparable](b *schema.Builder[T]) *schema.Schema[T] {
	s := b.Schema()
	errors.Check(s != nil, errors.PhaseDefine, errors.KindNotBuilt,
		"case handle used before the schema was built")
	return s
}

// Unit is the handle for a variant with no payload; its presence is
// encoded purely by the discriminant.
type Unit[T comparable] struct {
	b    *schema.Builder[T]
	tag  T
	slot int
}

// UnitOf declares a payload-less variant.
func UnitOf[T comparable](b *schema.Builder[T], tag T) Unit[T] {
	return Unit[T]{b: b, tag: tag, slot: b.Add(tag, engine.UnitOps())}
}

// Tag returns the variant's tag.
func (k Unit[T]) Tag() T { return k.tag }

// With constructs a value holding this variant.
func (k Unit[T]) With() Choice[T] {
	c := newChoice(mustSchema(k.b))
	c.store.Construct(k.slot, nil)
	c.disc.activate(k.slot)
	return c
}

// Is reports whether the value's active variant is this one.
func (k Unit[T]) Is(c *Choice[T]) bool {
	return c.requireActive(errors.PhaseAccess) == k.slot
}

// Set retags the value to this variant.
func (k Unit[T]) Set(c *Choice[T]) {
	c.set(mustSchema(k.b), k.slot, nil)
}

// Case is the handle for a variant carrying a single payload value.
type Case[T comparable, P any] struct {
	b    *schema.Builder[T]
	tag  T
	slot int
}

// CaseOf declares a variant with payload type P. Equality and ordering are
// derived from P where possible; engine options supply or replace them.
func CaseOf[P any, T comparable](b *schema.Builder[T], tag T, opts ...engine.Option[P]) Case[T, P] {
	return Case[T, P]{b: b, tag: tag, slot: b.Add(tag, engine.OpsOf[P](opts...))}
}

// Tag returns the variant's tag.
func (k Case[T, P]) Tag() T { return k.tag }

// With constructs a value holding this variant's payload.
func (k Case[T, P]) With(v P) Choice[T] {
	c := newChoice(mustSchema(k.b))
	c.store.Construct(k.slot, v)
	c.disc.activate(k.slot)
	return c
}

// require aborts unless c's active variant is this one.
func (k Case[T, P]) require(c *Choice[T], phase errors.Phase) {
	slot := c.requireActive(phase)
	errors.Check(slot == k.slot, phase, errors.KindWrongTag,
		"active variant is %v, want %v", c.schema.TagAt(slot), k.tag)
}

// Is reports whether the value's active variant is this one.
func (k Case[T, P]) Is(c *Choice[T]) bool {
	return c.requireActive(errors.PhaseAccess) == k.slot
}

// As returns the payload; the active variant must be this one.
func (k Case[T, P]) As(c *Choice[T]) P {
	k.require(c, errors.PhaseAccess)
	return *c.store.Ref(k.slot).(*P)
}

// Mut returns a pointer to the live payload; the active variant must be
// this one.
func (k Case[T, P]) Mut(c *Choice[T]) *P {
	k.require(c, errors.PhaseAccess)
	return c.store.Ref(k.slot).(*P)
}

// Get returns the payload, or None when the active variant is a different,
// valid one. Reading a moved-from value still aborts.
func (k Case[T, P]) Get(c *Choice[T]) option.Option[P] {
	if c.requireActive(errors.PhaseAccess) != k.slot {
		return option.None[P]()
	}
	return option.Some(*c.store.Ref(k.slot).(*P))
}

// GetMut is Get returning a pointer to the live payload.
func (k Case[T, P]) GetMut(c *Choice[T]) option.Option[*P] {
	if c.requireActive(errors.PhaseAccess) != k.slot {
		return option.None[*P]()
	}
	return option.Some(c.store.Ref(k.slot).(*P))
}

// Set retags the value to this variant, assigning in place when the tag is
// unchanged.
func (k Case[T, P]) Set(c *Choice[T], v P) {
	c.set(mustSchema(k.b), k.slot, v)
}

// Take consumes the value, moving the payload out and leaving the value
// moved-from; the active variant must be this one.
func (k Case[T, P]) Take(c *Choice[T]) P {
	k.require(c, errors.PhaseMutate)
	v := c.store.Take(k.slot).(P)
	c.disc.markMoved()
	return v
}

// Case2 is the handle for a variant carrying two payload values, stored
// together as one tuple.Pair aggregate in a single slot.
type Case2[T comparable, A, B any] struct {
	inner Case[T, tuple.Pair[A, B]]
}

// PairOf declares a two-value variant. The aggregate's equality and
// ordering are composed per element: equality requires both elements
// comparable, ordering is lexicographic with the weakest element strength.
// Engine options on the aggregate type override the composed defaults.
func PairOf[A, B any, T comparable](b *schema.Builder[T], tag T, opts ...engine.Option[tuple.Pair[A, B]]) Case2[T, A, B] {
	ea := engine.OpsOf[A]()
	eb := engine.OpsOf[B]()

	var composed []engine.Option[tuple.Pair[A, B]]
	if ea.HasEq() && eb.HasEq() {
		composed = append(composed, engine.WithEq(func(x, y tuple.Pair[A, B]) bool {
			return ea.Eq(&x.First, &y.First) && eb.Eq(&x.Second, &y.Second)
		}))
	}
	if ea.HasOrd() && eb.HasOrd() {
		composed = append(composed, engine.WithPartialCompare(func(x, y tuple.Pair[A, B]) (int, bool) {
			if r, ok := ea.Cmp(&x.First, &y.First); !ok || r != 0 {
				return r, ok
			}
			return eb.Cmp(&x.Second, &y.Second)
		}, engine.Weakest(ea.Strength, eb.Strength)))
	}

	return Case2[T, A, B]{inner: CaseOf[tuple.Pair[A, B]](b, tag, append(composed, opts...)...)}
}

// Tag returns the variant's tag.
func (k Case2[T, A, B]) Tag() T { return k.inner.tag }

// With constructs a value holding this variant's payload values.
func (k Case2[T, A, B]) With(a A, b B) Choice[T] {
	return k.inner.With(tuple.PairOf(a, b))
}

// Is reports whether the value's active variant is this one.
func (k Case2[T, A, B]) Is(c *Choice[T]) bool { return k.inner.Is(c) }

// As returns the payload values; the active variant must be this one.
func (k Case2[T, A, B]) As(c *Choice[T]) (A, B) {
	return k.inner.As(c).Unpack()
}

// Mut returns a pointer to the live payload aggregate.
func (k Case2[T, A, B]) Mut(c *Choice[T]) *tuple.Pair[A, B] {
	return k.inner.Mut(c)
}

// Get returns the payload aggregate, or None on a different valid tag.
func (k Case2[T, A, B]) Get(c *Choice[T]) option.Option[tuple.Pair[A, B]] {
	return k.inner.Get(c)
}

// Set retags the value to this variant.
func (k Case2[T, A, B]) Set(c *Choice[T], a A, b B) {
	k.inner.Set(c, tuple.PairOf(a, b))
}

// Take consumes the value, returning the payload values.
func (k Case2[T, A, B]) Take(c *Choice[T]) (A, B) {
	return k.inner.Take(c).Unpack()
}

// Case3 is the handle for a variant carrying three payload values, stored
// as one tuple.Triple aggregate in a single slot.
type Case3[T comparable, A, B, C any] struct {
	inner Case[T, tuple.Triple[A, B, C]]
}

// TripleOf declares a three-value variant; composition rules match PairOf.
func TripleOf[A, B, C any, T comparable](b *schema.Builder[T], tag T, opts ...engine.Option[tuple.Triple[A, B, C]]) Case3[T, A, B, C] {
	ea := engine.OpsOf[A]()
	eb := engine.OpsOf[B]()
	ec := engine.OpsOf[C]()

	var composed []engine.Option[tuple.Triple[A, B, C]]
	if ea.HasEq() && eb.HasEq() && ec.HasEq() {
		composed = append(composed, engine.WithEq(func(x, y tuple.Triple[A, B, C]) bool {
			return ea.Eq(&x.First, &y.First) &&
				eb.Eq(&x.Second, &y.Second) &&
				ec.Eq(&x.Third, &y.Third)
		}))
	}
	if ea.HasOrd() && eb.HasOrd() && ec.HasOrd() {
		strength := engine.Weakest(engine.Weakest(ea.Strength, eb.Strength), ec.Strength)
		composed = append(composed, engine.WithPartialCompare(func(x, y tuple.Triple[A, B, C]) (int, bool) {
			if r, ok := ea.Cmp(&x.First, &y.First); !ok || r != 0 {
				return r, ok
			}
			if r, ok := eb.Cmp(&x.Second, &y.Second); !ok || r != 0 {
				return r, ok
			}
			return ec.Cmp(&x.Third, &y.Third)
		}, strength))
	}

	return Case3[T, A, B, C]{inner: CaseOf[tuple.Triple[A, B, C]](b, tag, append(composed, opts...)...)}
}

// Tag returns the variant's tag.
func (k Case3[T, A, B, C]) Tag() T { return k.inner.tag }

// With constructs a value holding this variant's payload values.
func (k Case3[T, A, B, C]) With(a A, b B, c C) Choice[T] {
	return k.inner.With(tuple.TripleOf(a, b, c))
}

// Is reports whether the value's active variant is this one.
func (k Case3[T, A, B, C]) Is(c *Choice[T]) bool { return k.inner.Is(c) }

// As returns the payload values; the active variant must be this one.
func (k Case3[T, A, B, C]) As(c *Choice[T]) (A, B, C) {
	return k.inner.As(c).Unpack()
}

// Mut returns a pointer to the live payload aggregate.
func (k Case3[T, A, B, C]) Mut(c *Choice[T]) *tuple.Triple[A, B, C] {
	return k.inner.Mut(c)
}

// Get returns the payload aggregate, or None on a different valid tag.
func (k Case3[T, A, B, C]) Get(c *Choice[T]) option.Option[tuple.Triple[A, B, C]] {
	return k.inner.Get(c)
}

// Set retags the value to this variant.
func (k Case3[T, A, B, C]) Set(c *Choice[T], a A, b B, cc C) {
	k.inner.Set(c, tuple.TripleOf(a, b, cc))
}

// Take consumes the value, returning the payload values.
func (k Case3[T, A, B, C]) Take(c *Choice[T]) (A, B, C) {
	return k.inner.Take(c).Unpack()
}
