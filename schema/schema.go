package schema

import (
	"fmt"
	"reflect"

	"github.com/wippyai/choice/engine"
	"github.com/wippyai/choice/errors"
)

// Schema is a validated tag space: the fixed set of (tag, payload) variants
// a choice value built from it may hold. Each declared variant owns a dense
// slot index in [0, N), assigned in declaration order and independent of
// the tag's own value or ordering. A Schema is immutable once built and
// shared by every instance.
type Schema[T comparable] struct {
	name        string
	tags        []T
	slots       map[T]int
	ops         []*engine.Ops
	layout      Layout
	tagCmp      func(a, b T) int
	tagStrength engine.Strength
	strength    engine.Strength
	canEq       bool
}

// Name returns the schema's diagnostic name.
func (s *Schema[T]) Name() string { return s.name }

// Len returns the declared variant count N.
func (s *Schema[T]) Len() int { return len(s.tags) }

// Layout returns the computed storage layout.
func (s *Schema[T]) Layout() Layout { return s.layout }

// SlotOf translates a tag value to its slot index.
func (s *Schema[T]) SlotOf(tag T) (int, bool) {
	slot, ok := s.slots[tag]
	return slot, ok
}

// TagAt returns the tag declared for a slot.
func (s *Schema[T]) TagAt(slot int) T {
	errors.Check(slot >= 0 && slot < len(s.tags), errors.PhaseAccess, errors.KindNotFound,
		"slot %d not declared in schema %s", slot, s.name)
	return s.tags[slot]
}

// Ops returns the slot's payload operation table.
func (s *Schema[T]) Ops(slot int) *engine.Ops {
	errors.Check(slot >= 0 && slot < len(s.ops), errors.PhaseAccess, errors.KindNotFound,
		"slot %d not declared in schema %s", slot, s.name)
	return s.ops[slot]
}

// OpsTable returns the slot-ordered operation tables for building storage.
func (s *Schema[T]) OpsTable() []*engine.Ops { return s.ops }

// PayloadType returns the slot's payload Go type, nil for unit variants.
func (s *Schema[T]) PayloadType(slot int) reflect.Type {
	return s.Ops(slot).Type
}

// HasTagOrder reports whether the tag type carries an ordering.
func (s *Schema[T]) HasTagOrder() bool { return s.tagCmp != nil }

// CompareTags orders two tag values. Calling it on a schema without a tag
// ordering is an invariant violation; callers gate on HasTagOrder.
func (s *Schema[T]) CompareTags(a, b T) int {
	errors.Check(s.tagCmp != nil, errors.PhaseCompare, errors.KindNotOrdered,
		"schema %s declares no tag ordering", s.name)
	return s.tagCmp(a, b)
}

// CanEq reports whether every declared payload supports equality, which
// gates the equality operator on values of this schema.
func (s *Schema[T]) CanEq() bool { return s.canEq }

// OrderingStrength returns the weakest ordering strength among the tag
// ordering and every declared payload ordering. StrengthNone means values
// of this schema cannot be ordered.
func (s *Schema[T]) OrderingStrength() engine.Strength { return s.strength }

// TagName renders a tag for diagnostics.
func (s *Schema[T]) TagName(tag T) string {
	return fmt.Sprint(tag)
}

// Compatible reports whether values of two schemas sharing a tag type may
// be compared: every tag value declared by both must store the identical
// payload Go type. The pairing is by tag value, not slot index, so the two
// declaration orders are free to differ.
func Compatible[T comparable](a, b *Schema[T]) error {
	if a == b {
		return nil
	}
	for tag, slot := range a.slots {
		other, ok := b.slots[tag]
		if !ok {
			continue
		}
		at := a.ops[slot].Type
		bt := b.ops[other].Type
		if at != bt {
			return errors.New(errors.PhaseCompare, errors.KindTypeMismatch).
				Path(a.name, b.name).
				Tag(a.TagName(tag)).
				GoType(typeName(at)).
				Detail("other schema stores %s", typeName(bt)).
				Build()
		}
	}
	return nil
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "unit"
	}
	return t.String()
}
