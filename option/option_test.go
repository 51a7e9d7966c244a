package option

import (
	"testing"

	"github.com/wippyai/choice/errors"
)

func TestSomeNone(t *testing.T) {
	s := Some(5)
	if !s.IsSome() || s.IsNone() {
		t.Error("Some should report IsSome")
	}
	if s.Unwrap() != 5 {
		t.Errorf("Unwrap = %d, want 5", s.Unwrap())
	}
	if v, ok := s.Get(); !ok || v != 5 {
		t.Errorf("Get = %d,%v, want 5,true", v, ok)
	}

	n := None[int]()
	if n.IsSome() || !n.IsNone() {
		t.Error("None should report IsNone")
	}
	if n.UnwrapOr(7) != 7 {
		t.Error("UnwrapOr on None should return the fallback")
	}
	if s.UnwrapOr(7) != 5 {
		t.Error("UnwrapOr on Some should return the value")
	}
}

func TestUnwrapNoneAborts(t *testing.T) {
	defer func() {
		err, ok := errors.AsFatal(recover())
		if !ok {
			t.Fatal("expected a fatal invariant panic")
		}
		if err.Kind != errors.KindNotFound {
			t.Errorf("Kind = %v, want not_found", err.Kind)
		}
	}()
	None[int]().Unwrap()
	t.Fatal("Unwrap of None did not abort")
}

func TestTakeReplace(t *testing.T) {
	o := Some("a")
	taken := o.Take()
	if taken.Unwrap() != "a" {
		t.Error("Take should return the held value")
	}
	if o.IsSome() {
		t.Error("Take should leave the option empty")
	}

	prev := o.Replace("b")
	if prev.IsSome() {
		t.Error("Replace on empty should return None")
	}
	if o.Unwrap() != "b" {
		t.Error("Replace should store the new value")
	}
}

func TestString(t *testing.T) {
	if got := Some(3).String(); got != "Some(3)" {
		t.Errorf("String = %q, want Some(3)", got)
	}
	if got := None[int]().String(); got != "None" {
		t.Errorf("String = %q, want None", got)
	}
}
