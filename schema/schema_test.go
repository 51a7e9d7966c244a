package schema

import (
	"errors"
	"reflect"
	"testing"

	"github.com/wippyai/choice/engine"
	cerrors "github.com/wippyai/choice/errors"
)

type shape uint8

const (
	empty shape = iota
	weight
	point
)

func shapeBuilder() *Builder[shape] {
	b := NewOrdered[shape]("shape")
	b.Add(empty, engine.UnitOps())
	b.Add(weight, engine.OpsOf[int32]())
	b.Add(point, engine.OpsOf[int64]())
	return b
}

func TestBuilderBuild(t *testing.T) {
	s, err := shapeBuilder().Build()
	if err != nil {
		t.Fatal(err)
	}

	if s.Name() != "shape" {
		t.Errorf("Name = %q, want shape", s.Name())
	}
	if s.Len() != 3 {
		t.Errorf("Len = %d, want 3", s.Len())
	}

	// slots follow declaration order, not tag values
	for i, tag := range []shape{empty, weight, point} {
		slot, ok := s.SlotOf(tag)
		if !ok || slot != i {
			t.Errorf("SlotOf(%d) = %d,%v, want %d,true", tag, slot, ok, i)
		}
		if got := s.TagAt(i); got != tag {
			t.Errorf("TagAt(%d) = %v, want %v", i, got, tag)
		}
	}

	if _, ok := s.SlotOf(shape(9)); ok {
		t.Error("undeclared tag should have no slot")
	}

	if s.PayloadType(0) != nil {
		t.Error("unit variant should have nil payload type")
	}
	if s.PayloadType(1) != reflect.TypeOf(int32(0)) {
		t.Errorf("PayloadType(1) = %v, want int32", s.PayloadType(1))
	}

	if !s.CanEq() {
		t.Error("all payloads comparable, CanEq should hold")
	}
	if s.OrderingStrength() != engine.StrengthStrong {
		t.Errorf("OrderingStrength = %v, want strong", s.OrderingStrength())
	}
	if !s.HasTagOrder() {
		t.Error("NewOrdered should install a tag ordering")
	}
	if s.CompareTags(empty, point) != -1 {
		t.Error("CompareTags(empty, point) should be -1")
	}
}

func TestBuilderDuplicateTag(t *testing.T) {
	b := NewOrdered[shape]("shape")
	b.Add(weight, engine.OpsOf[int32]())
	b.Add(weight, engine.OpsOf[int64]())

	_, err := b.Build()
	if !errors.Is(err, &cerrors.Error{Phase: cerrors.PhaseDefine, Kind: cerrors.KindDuplicateTag}) {
		t.Errorf("err = %v, want duplicate_tag", err)
	}
}

func TestBuilderEmpty(t *testing.T) {
	_, err := New[shape]("nothing").Build()
	if !errors.Is(err, &cerrors.Error{Phase: cerrors.PhaseDefine, Kind: cerrors.KindEmptySchema}) {
		t.Errorf("err = %v, want empty_schema", err)
	}
}

func TestBuildIdempotent(t *testing.T) {
	b := shapeBuilder()
	s1, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	s2, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	if s1 != s2 {
		t.Error("Build should return the same schema on repeat calls")
	}
	if b.Schema() != s1 {
		t.Error("Schema() should return the built schema")
	}
}

func TestMustBuildPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustBuild should panic on definition errors")
		}
	}()
	b := New[shape]("dup")
	b.Add(weight, engine.OpsOf[int32]())
	b.Add(weight, engine.OpsOf[int32]())
	b.MustBuild()
}

func TestOrderingStrength(t *testing.T) {
	t.Run("float payload weakens to partial", func(t *testing.T) {
		b := NewOrdered[shape]("f")
		b.Add(weight, engine.OpsOf[float64]())
		s := b.MustBuild()
		if s.OrderingStrength() != engine.StrengthPartial {
			t.Errorf("OrderingStrength = %v, want partial", s.OrderingStrength())
		}
	})

	t.Run("no tag ordering removes ordering", func(t *testing.T) {
		b := New[shape]("unordered")
		b.Add(weight, engine.OpsOf[int32]())
		s := b.MustBuild()
		if s.OrderingStrength() != engine.StrengthNone {
			t.Errorf("OrderingStrength = %v, want none", s.OrderingStrength())
		}
		if s.HasTagOrder() {
			t.Error("plain New should not install a tag ordering")
		}
	})

	t.Run("unordered payload removes ordering", func(t *testing.T) {
		type pt struct{ X, Y int32 }
		b := NewOrdered[shape]("pt")
		b.Add(point, engine.OpsOf[pt]())
		s := b.MustBuild()
		if s.OrderingStrength() != engine.StrengthNone {
			t.Errorf("OrderingStrength = %v, want none", s.OrderingStrength())
		}
		if !s.CanEq() {
			t.Error("comparable payload should keep equality")
		}
	})

	t.Run("uncomparable payload removes equality", func(t *testing.T) {
		b := NewOrdered[shape]("raw")
		b.Add(weight, engine.OpsOf[[]byte]())
		s := b.MustBuild()
		if s.CanEq() {
			t.Error("[]byte payload should remove equality")
		}
	})

	t.Run("explicit tag comparator", func(t *testing.T) {
		b := New[shape]("custom").TagCompare(func(a, b shape) int {
			return int(b) - int(a) // reversed
		}, engine.StrengthWeak)
		b.Add(empty, engine.UnitOps())
		b.Add(weight, engine.OpsOf[int32]())
		s := b.MustBuild()
		if s.CompareTags(empty, weight) != 1 {
			t.Error("custom comparator should reverse the order")
		}
		if s.OrderingStrength() != engine.StrengthWeak {
			t.Errorf("OrderingStrength = %v, want weak", s.OrderingStrength())
		}
	})
}

func TestCompatible(t *testing.T) {
	a := shapeBuilder().MustBuild()

	t.Run("same schema", func(t *testing.T) {
		if err := Compatible(a, a); err != nil {
			t.Errorf("schema should be compatible with itself: %v", err)
		}
	})

	t.Run("different declaration order", func(t *testing.T) {
		b := NewOrdered[shape]("shape2")
		b.Add(point, engine.OpsOf[int64]())
		b.Add(empty, engine.UnitOps())
		b.Add(weight, engine.OpsOf[int32]())
		other := b.MustBuild()
		if err := Compatible(a, other); err != nil {
			t.Errorf("same tag/payload pairing should be compatible: %v", err)
		}
	})

	t.Run("disjoint tags are compatible", func(t *testing.T) {
		b := NewOrdered[shape]("extra")
		b.Add(shape(7), engine.OpsOf[string]())
		other := b.MustBuild()
		if err := Compatible(a, other); err != nil {
			t.Errorf("disjoint tag sets should be compatible: %v", err)
		}
	})

	t.Run("payload type conflict", func(t *testing.T) {
		b := NewOrdered[shape]("conflict")
		b.Add(weight, engine.OpsOf[string]())
		other := b.MustBuild()
		err := Compatible(a, other)
		if !errors.Is(err, &cerrors.Error{Phase: cerrors.PhaseCompare, Kind: cerrors.KindTypeMismatch}) {
			t.Errorf("err = %v, want type_mismatch", err)
		}
	})
}
