package engine

import (
	"reflect"

	"github.com/wippyai/choice/errors"
)

// cell is one link of the slot chain. It owns the live payload when its
// slot is the active one; otherwise live is nil.
type cell struct {
	ops  *Ops
	next *cell
	live any
	id   int
}

// find walks the chain until the cell whose id matches slot.
func (c *cell) find(slot int) *cell {
	if c == nil {
		errors.Violate(errors.PhaseAccess, errors.KindNotFound, "slot %d not declared", slot)
	}
	if c.id == slot {
		return c
	}
	return c.next.find(slot)
}

// Storage holds exactly one live payload across a chain of single-slot
// cells. Which slot is live is tracked by the discriminant layer above;
// Storage trusts its caller to pair every operation with the correct slot.
type Storage struct {
	head *cell
}

// NewStorage builds the cell chain for a schema's slot-ordered operation
// tables. The chain is per instance; the Ops tables are shared.
func NewStorage(ops []*Ops) Storage {
	var head *cell
	for i := len(ops) - 1; i >= 0; i-- {
		head = &cell{id: i, ops: ops[i], next: head}
	}
	return Storage{head: head}
}

// Ops returns the slot's operation table.
func (s *Storage) Ops(slot int) *Ops {
	return s.head.find(slot).ops
}

// Construct brings slot's payload to life from a value.
func (s *Storage) Construct(slot int, v any) {
	c := s.head.find(slot)
	debugf("construct slot %d", slot)
	c.live = c.ops.Construct(v)
}

// Destroy ends the life of slot's payload.
func (s *Storage) Destroy(slot int) {
	c := s.head.find(slot)
	debugf("destroy slot %d", slot)
	c.ops.Destroy(c.live)
	c.live = nil
}

// Ref returns the payload pointer for slot, nil for unit slots.
func (s *Storage) Ref(slot int) any {
	return s.head.find(slot).live
}

// Value returns a copy of slot's payload value, nil for unit slots.
func (s *Storage) Value(slot int) any {
	c := s.head.find(slot)
	if c.live == nil {
		return nil
	}
	return reflect.ValueOf(c.live).Elem().Interface()
}

// Assign overwrites slot's live payload in place. No destroy/construct
// cycle happens; this is the storage-reuse path for same-tag mutation.
func (s *Storage) Assign(slot int, v any) {
	c := s.head.find(slot)
	c.ops.Assign(c.live, v)
}

// Take moves slot's payload value out, leaving the cell empty. The
// destructor does not run; ownership of the payload passes to the caller.
func (s *Storage) Take(slot int) any {
	c := s.head.find(slot)
	v := s.Value(slot)
	c.live = nil
	return v
}

// MoveIn move-constructs slot's payload by stealing the donor's payload
// pointer. The donor cell is left empty without running its destructor.
func (s *Storage) MoveIn(slot int, from *Storage) {
	c := s.head.find(slot)
	d := from.head.find(slot)
	c.live = d.live
	d.live = nil
	if c.ops.hooks.OnConstruct != nil {
		c.ops.hooks.OnConstruct()
	}
}

// MoveAssign move-assigns the donor's payload into slot's live payload in
// place, then empties the donor cell. Both sides must hold the same slot.
func (s *Storage) MoveAssign(slot int, from *Storage) {
	c := s.head.find(slot)
	d := from.head.find(slot)
	if c.live != nil && d.live != nil {
		reflect.ValueOf(c.live).Elem().Set(reflect.ValueOf(d.live).Elem())
	}
	d.live = nil
	if c.ops.hooks.OnAssign != nil {
		c.ops.hooks.OnAssign()
	}
}

// CopyIn copy-constructs slot's payload from the donor, leaving the donor
// untouched.
func (s *Storage) CopyIn(slot int, from *Storage) {
	c := s.head.find(slot)
	d := from.head.find(slot)
	if d.live == nil {
		c.live = c.ops.Construct(nil)
		return
	}
	c.live = c.ops.CopyConstruct(d.live)
}

// CopyAssign copy-assigns the donor's payload into slot's live payload in
// place, leaving the donor untouched. Both sides must hold the same slot.
func (s *Storage) CopyAssign(slot int, from *Storage) {
	c := s.head.find(slot)
	d := from.head.find(slot)
	if c.live != nil && d.live != nil {
		reflect.ValueOf(c.live).Elem().Set(reflect.ValueOf(d.live).Elem())
	}
	if c.ops.hooks.OnAssign != nil {
		c.ops.hooks.OnAssign()
	}
}

// CloneIn clone-constructs slot's payload from the donor, using the deep
// clone function when the payload type declares one.
func (s *Storage) CloneIn(slot int, from *Storage) {
	c := s.head.find(slot)
	d := from.head.find(slot)
	if d.live == nil {
		c.live = c.ops.Construct(nil)
		return
	}
	c.live = c.ops.CloneConstruct(d.live)
}

// Eq compares slot's payload against the other storage's payload at
// otherSlot. The slots may differ when the two instances were built from
// independently-declared schemas sharing a tag type. Calling Eq on a slot
// without equality support is an invariant violation; the facade gates on
// Ops.HasEq first.
func (s *Storage) Eq(slot int, other *Storage, otherSlot int) bool {
	c := s.head.find(slot)
	o := other.head.find(otherSlot)
	errors.Check(c.ops.HasEq(), errors.PhaseCompare, errors.KindNotComparable,
		"slot %d payload has no equality", slot)
	return c.ops.Eq(c.live, o.live)
}

// Compare orders slot's payload against the other storage's payload at
// otherSlot. The bool result is false when the pair is unordered (partial
// orderings only).
func (s *Storage) Compare(slot int, other *Storage, otherSlot int) (int, bool) {
	c := s.head.find(slot)
	o := other.head.find(otherSlot)
	errors.Check(c.ops.HasOrd(), errors.PhaseCompare, errors.KindNotOrdered,
		"slot %d payload has no ordering", slot)
	return c.ops.Cmp(c.live, o.live)
}
