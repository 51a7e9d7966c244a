package choice

import (
	"fmt"
	"reflect"

	"github.com/wippyai/choice/engine"
	"github.com/wippyai/choice/errors"
	"github.com/wippyai/choice/schema"
)

// Choice holds exactly one of the variants its schema declares. The zero
// Choice is uninitialized; every value flowing through the API comes from
// a case handle's With, from Make, or from Move/Clone of another value.
//
// A Choice owns its payload exclusively. Move transfers that ownership and
// leaves the donor in a moved-from state where any read aborts; this turns
// use-after-move into a detectable fatal check rather than a stale read.
// Choice is not safe for concurrent use.
type Choice[T comparable] struct {
	schema *schema.Schema[T]
	store  engine.Storage
	disc   discriminant
}

func newChoice[T comparable](s *schema.Schema[T]) Choice[T] {
	return Choice[T]{
		schema: s,
		store:  engine.NewStorage(s.OpsTable()),
		disc:   newDiscriminant(s.Layout()),
	}
}

// requireActive aborts unless the instance holds a live payload, returning
// the active slot. Reads of a moved-from or uninitialized value are
// uniformly fatal, on the strict and non-panicking paths alike.
func (c *Choice[T]) requireActive(phase errors.Phase) int {
	errors.Check(c.schema != nil && !c.disc.isNever(), phase, errors.KindInvalidData,
		"use of uninitialized choice value")
	errors.Check(!c.disc.isMoved(), phase, errors.KindUseAfterMove,
		"use of moved-from %s value", c.schema.Name())
	return c.disc.slot()
}

// Schema returns the schema the value was built from, nil for the zero
// Choice.
func (c *Choice[T]) Schema() *schema.Schema[T] { return c.schema }

// Which returns the tag of the active variant.
func (c *Choice[T]) Which() T {
	slot := c.requireActive(errors.PhaseAccess)
	return c.schema.TagAt(slot)
}

// Value returns a copy of the active payload as any, nil for unit
// variants. It serves dynamic consumers; typed access goes through the
// case handles.
func (c *Choice[T]) Value() any {
	slot := c.requireActive(errors.PhaseAccess)
	return c.store.Value(slot)
}

// Make constructs a value dynamically, for schema sources resolved at
// runtime. An undeclared tag or a payload of the wrong dynamic type is a
// recoverable error on this path, unlike the typed handles where the shape
// is fixed at declaration.
func Make[T comparable](s *schema.Schema[T], tag T, payload any) (Choice[T], error) {
	slot, ok := s.SlotOf(tag)
	if !ok {
		return Choice[T]{}, errors.NotFound(errors.PhaseMutate, "tag", s.TagName(tag))
	}
	want := s.PayloadType(slot)
	if want == nil {
		if payload != nil {
			return Choice[T]{}, errors.TypeMismatch(errors.PhaseMutate,
				[]string{s.Name()}, reflect.TypeOf(payload).String(), "no payload")
		}
	} else if got := reflect.TypeOf(payload); got != want {
		return Choice[T]{}, errors.TypeMismatch(errors.PhaseMutate,
			[]string{s.Name()}, typeString(got), want.String())
	}

	c := newChoice(s)
	c.store.Construct(slot, payload)
	c.disc.activate(slot)
	return c, nil
}

func typeString(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	return t.String()
}

// set is the retag primitive behind every handle's Set: assign in place
// when the active slot is unchanged, otherwise destroy the old payload,
// construct the new one and update the discriminant. A moved-from or
// uninitialized value is a valid retag target.
func (c *Choice[T]) set(s *schema.Schema[T], slot int, v any) {
	if c.schema == nil {
		*c = newChoice(s)
	} else {
		errors.Check(c.schema == s, errors.PhaseMutate, errors.KindTypeMismatch,
			"set across schemas %s and %s", c.schema.Name(), s.Name())
	}
	if c.disc.isActive() {
		if c.disc.slot() == slot {
			c.store.Assign(slot, v)
			return
		}
		c.store.Destroy(c.disc.slot())
	}
	c.store.Construct(slot, v)
	c.disc.activate(slot)
}

// Move transfers the payload into a new value. The donor's discriminant is
// swapped to moved-from before the payload moves; moving from a moved-from
// value is fatal.
func (c *Choice[T]) Move() Choice[T] {
	errors.Check(c.schema != nil, errors.PhaseMutate, errors.KindInvalidData,
		"move from an uninitialized choice value")
	slot := c.disc.takeForMove()
	out := newChoice(c.schema)
	out.store.MoveIn(slot, &c.store)
	out.disc.activate(slot)
	return out
}

// MoveFrom move-assigns src's payload into c and leaves src moved-from.
// When both sides hold the same active slot the payload is assigned in
// place with no destroy/construct cycle; otherwise c's old payload (if
// any) is destroyed and src's payload moves in.
func (c *Choice[T]) MoveFrom(src *Choice[T]) {
	errors.Check(src.schema != nil, errors.PhaseMutate, errors.KindInvalidData,
		"move from an uninitialized choice value")
	if c.schema == nil {
		*c = src.Move()
		return
	}
	errors.Check(c.schema == src.schema, errors.PhaseMutate, errors.KindTypeMismatch,
		"move across schemas %s and %s", c.schema.Name(), src.schema.Name())

	slot := src.disc.takeForMove()
	if c.disc.isActive() && c.disc.slot() == slot {
		c.store.MoveAssign(slot, &src.store)
		return
	}
	if c.disc.isActive() {
		c.store.Destroy(c.disc.slot())
	}
	c.store.MoveIn(slot, &src.store)
	c.disc.activate(slot)
}

// Clone returns an independent copy, using the payload's deep clone when
// its case declares one. Cloning a moved-from value is fatal.
func (c *Choice[T]) Clone() Choice[T] {
	slot := c.requireActive(errors.PhaseMutate)
	out := newChoice(c.schema)
	out.store.CloneIn(slot, &c.store)
	out.disc.activate(slot)
	return out
}

// CopyFrom copy-assigns src's payload into c, leaving src untouched.
// Structurally identical to MoveFrom otherwise: same active slot assigns
// in place, a different slot nets one destroy and one construct.
func (c *Choice[T]) CopyFrom(src *Choice[T]) {
	slot := src.requireActive(errors.PhaseMutate)
	if c.schema == nil {
		out := newChoice(src.schema)
		out.store.CopyIn(slot, &src.store)
		out.disc.activate(slot)
		*c = out
		return
	}
	errors.Check(c.schema == src.schema, errors.PhaseMutate, errors.KindTypeMismatch,
		"copy across schemas %s and %s", c.schema.Name(), src.schema.Name())

	if c.disc.isActive() && c.disc.slot() == slot {
		c.store.CopyAssign(slot, &src.store)
		return
	}
	if c.disc.isActive() {
		c.store.Destroy(c.disc.slot())
	}
	c.store.CopyIn(slot, &src.store)
	c.disc.activate(slot)
}

// Destroy ends the active payload's life, running its destructor. The
// value is afterwards only valid as a destruction or assignment target.
// Destroying a moved-from or uninitialized value is a no-op.
func (c *Choice[T]) Destroy() {
	if c.schema == nil || !c.disc.isActive() {
		return
	}
	c.store.Destroy(c.disc.slot())
	c.disc.markMoved()
}

// String renders the value for diagnostics. Unlike every other read it
// never aborts: moved-from and uninitialized states print as themselves so
// the type can appear in logs and panics safely.
func (c *Choice[T]) String() string {
	switch {
	case c.schema == nil || c.disc.isNever():
		return "Choice(uninitialized)"
	case c.disc.isMoved():
		return fmt.Sprintf("%s(moved-from)", c.schema.Name())
	}
	slot := c.disc.slot()
	tag := c.schema.TagAt(slot)
	if c.schema.PayloadType(slot) == nil {
		return fmt.Sprintf("%v", tag)
	}
	return fmt.Sprintf("%v(%v)", tag, c.store.Value(slot))
}
