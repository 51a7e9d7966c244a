package choice

import (
	"github.com/wippyai/choice/errors"
	"github.com/wippyai/choice/schema"
)

// discriminant is the runtime-stored slot index widened by the two
// reserved sentinel states of the schema's layout. The value is always one
// of: an active slot in [0, N), the moved-from sentinel, or the
// never-constructed sentinel. It stays consistent with the storage chain:
// exactly one live payload when active, none otherwise.
type discriminant struct {
	value uint32
	moved uint32
	never uint32
}

func newDiscriminant(l schema.Layout) discriminant {
	return discriminant{value: l.Never, moved: l.Moved, never: l.Never}
}

func (d *discriminant) slot() int      { return int(d.value) }
func (d *discriminant) isActive() bool { return d.value != d.moved && d.value != d.never }
func (d *discriminant) isMoved() bool  { return d.value == d.moved }
func (d *discriminant) isNever() bool  { return d.value == d.never }

func (d *discriminant) activate(slot int) { d.value = uint32(slot) }
func (d *discriminant) markMoved()        { d.value = d.moved }
func (d *discriminant) markNever()        { d.value = d.never }

// takeForMove swaps the discriminant to moved-from and returns the slot
// that was active. The swap happens before any payload transfer; taking
// from a non-active instance is fatal.
func (d *discriminant) takeForMove() int {
	errors.Check(!d.isMoved(), errors.PhaseMutate, errors.KindUseAfterMove,
		"move from a moved-from value")
	errors.Check(d.isActive(), errors.PhaseMutate, errors.KindInvalidData,
		"move from an uninitialized value")
	slot := int(d.value)
	d.value = d.moved
	return slot
}
