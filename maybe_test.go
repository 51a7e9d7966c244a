package choice

import (
	"testing"
	"unsafe"

	"github.com/wippyai/choice/engine"
	"github.com/wippyai/choice/errors"
)

func withDestroyCounter(n *int) engine.Option[int32] {
	return engine.WithHooks[int32](engine.Hooks{OnDestroy: func() { *n++ }})
}

func TestMaybeNiche(t *testing.T) {
	// the empty state lives in the wrapped discriminant's reserved
	// sentinel, so the wrapper adds no storage at all
	if unsafe.Sizeof(Maybe[shape]{}) != unsafe.Sizeof(Choice[shape]{}) {
		t.Errorf("Sizeof(Maybe) = %d, Sizeof(Choice) = %d, want equal",
			unsafe.Sizeof(Maybe[shape]{}), unsafe.Sizeof(Choice[shape]{}))
	}
}

func TestMaybeLifecycle(t *testing.T) {
	sh := newShapes(t)

	var m Maybe[shape]
	if m.IsSome() || !m.IsNone() {
		t.Error("zero Maybe should be empty")
	}

	w := sh.Weight.With(5)
	m = Just(&w)
	if !m.IsSome() {
		t.Error("Just should hold a value")
	}
	expectFatal(t, errors.KindUseAfterMove, func() { w.Which() })

	if got := sh.Weight.As(m.Ref()); got != 5 {
		t.Errorf("Ref payload = %d, want 5", got)
	}

	out := m.Take()
	if !m.IsNone() {
		t.Error("Take should leave the Maybe empty")
	}
	if sh.Weight.As(&out) != 5 {
		t.Error("Take should return the held value")
	}

	t.Run("empty access aborts", func(t *testing.T) {
		expectFatal(t, errors.KindNotFound, func() { m.Ref() })
		expectFatal(t, errors.KindNotFound, func() { m.Take() })
	})
}

func TestMaybeSetClear(t *testing.T) {
	var destroyed int
	sh := newShapes(t, withDestroyCounter(&destroyed))

	var m Maybe[shape]
	a := sh.Weight.With(1)
	m.Set(&a)
	if !m.IsSome() {
		t.Error("Set should fill the Maybe")
	}

	b := sh.Weight.With(2)
	m.Set(&b)
	if destroyed != 1 {
		t.Errorf("destroyed = %d, want 1 (old value destroyed on Set)", destroyed)
	}
	if got := sh.Weight.As(m.Ref()); got != 2 {
		t.Errorf("payload = %d, want 2", got)
	}

	m.Clear()
	if !m.IsNone() {
		t.Error("Clear should empty the Maybe")
	}
	if destroyed != 2 {
		t.Errorf("destroyed = %d, want 2 after Clear", destroyed)
	}

	m.Clear() // no-op when already empty
	if destroyed != 2 {
		t.Error("Clear on empty should not destroy again")
	}
}

func TestMaybeString(t *testing.T) {
	sh := newShapes(t)

	var m Maybe[shape]
	if m.String() != "None" {
		t.Errorf("String = %q, want None", m.String())
	}
	w := sh.Weight.With(5)
	m = Just(&w)
	if m.String() != "Some(1(5))" {
		t.Errorf("String = %q, want Some(1(5))", m.String())
	}
}
