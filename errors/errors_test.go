package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseDefine,
				Kind:   KindDuplicateTag,
				Path:   []string{"shape", "weight"},
				Tag:    "Weight",
				GoType: "int32",
				Detail: "declared twice",
			},
			contains: []string{"[define]", "duplicate_tag", "shape.weight", "Weight", "int32", "declared twice"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseAccess,
				Kind:  KindWrongTag,
			},
			contains: []string{"[access]", "wrong_tag"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseLoad,
				Kind:   KindInvalidData,
				Detail: "bad variant",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[load]", "invalid_data", "bad variant", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseDefine,
		Kind:  KindInvalidData,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseAccess,
		Kind:  KindWrongTag,
		Path:  []string{"foo"},
	}

	if !err.Is(&Error{Phase: PhaseAccess, Kind: KindWrongTag}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseMutate, Kind: KindWrongTag}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseAccess, Kind: KindUseAfterMove}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseAccess, Kind: KindWrongTag}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseDefine, KindTypeMismatch).
		Path("schema", "point").
		GoType("string").
		Tag("Point").
		Value(42).
		Cause(cause).
		Detail("expected %s, got %s", "int32", "string").
		Build()

	if err.Phase != PhaseDefine {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseDefine)
	}
	if err.Kind != KindTypeMismatch {
		t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
	}
	if len(err.Path) != 2 || err.Path[0] != "schema" || err.Path[1] != "point" {
		t.Errorf("Path = %v, want [schema point]", err.Path)
	}
	if err.GoType != "string" {
		t.Errorf("GoType = %v, want 'string'", err.GoType)
	}
	if err.Tag != "Point" {
		t.Errorf("Tag = %v, want 'Point'", err.Tag)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected int32, got string" {
		t.Errorf("Detail = %v, want 'expected int32, got string'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("DuplicateTag", func(t *testing.T) {
		err := DuplicateTag([]string{"shape"}, "Weight")
		if err.Kind != KindDuplicateTag {
			t.Errorf("Kind = %v, want %v", err.Kind, KindDuplicateTag)
		}
		if err.Value != "Weight" {
			t.Errorf("Value = %v, want Weight", err.Value)
		}
	})

	t.Run("EmptySchema", func(t *testing.T) {
		err := EmptySchema([]string{"shape"})
		if err.Kind != KindEmptySchema {
			t.Errorf("Kind = %v, want %v", err.Kind, KindEmptySchema)
		}
	})

	t.Run("TooManyVariants", func(t *testing.T) {
		err := TooManyVariants(nil, 300, 254)
		if err.Kind != KindTooManyVariants {
			t.Errorf("Kind = %v, want %v", err.Kind, KindTooManyVariants)
		}
		if !strings.Contains(err.Detail, "300") || !strings.Contains(err.Detail, "254") {
			t.Errorf("Detail = %v, should contain count and max", err.Detail)
		}
	})

	t.Run("NotComparable", func(t *testing.T) {
		err := NotComparable([]string{"case"}, "[]byte")
		if err.Kind != KindNotComparable {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNotComparable)
		}
		if err.GoType != "[]byte" {
			t.Errorf("GoType = %v, want []byte", err.GoType)
		}
	})

	t.Run("TypeMismatch", func(t *testing.T) {
		err := TypeMismatch(PhaseLoad, []string{"field"}, "int", "string")
		if err.Kind != KindTypeMismatch {
			t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
		}
		if err.GoType != "int" || !strings.Contains(err.Detail, "string") {
			t.Errorf("GoType=%v Detail=%v", err.GoType, err.Detail)
		}
	})

	t.Run("Unsupported", func(t *testing.T) {
		err := Unsupported(PhaseLoad, "resource types")
		if err.Kind != KindUnsupported {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupported)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(PhaseLoad, "variant", "shape")
		if err.Kind != KindNotFound {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNotFound)
		}
		if !strings.Contains(err.Detail, "shape") {
			t.Errorf("Detail = %v, should contain name", err.Detail)
		}
	})

	t.Run("NotBuilt", func(t *testing.T) {
		err := NotBuilt([]string{"shape"})
		if err.Kind != KindNotBuilt {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNotBuilt)
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("inner")
		err := Wrap(PhaseLoad, KindInvalidData, cause, "decode variant")
		if !errors.Is(err.Unwrap(), cause) {
			t.Error("Wrap did not preserve cause")
		}
	})
}

func TestCheck(t *testing.T) {
	t.Run("passing condition does not panic", func(t *testing.T) {
		Check(true, PhaseAccess, KindWrongTag, "unused")
	})

	t.Run("failing condition panics with structured error", func(t *testing.T) {
		defer func() {
			err, ok := AsFatal(recover())
			if !ok {
				t.Fatal("expected a fatal *Error panic")
			}
			if err.Phase != PhaseAccess || err.Kind != KindUseAfterMove {
				t.Errorf("got %v/%v, want access/use_after_move", err.Phase, err.Kind)
			}
			if err.Detail != "read of moved-from value 7" {
				t.Errorf("Detail = %q", err.Detail)
			}
		}()
		Check(false, PhaseAccess, KindUseAfterMove, "read of moved-from value %d", 7)
		t.Fatal("Check did not panic")
	})
}

func TestAsFatal(t *testing.T) {
	if _, ok := AsFatal("plain string panic"); ok {
		t.Error("AsFatal should reject foreign panic values")
	}
	if _, ok := AsFatal(nil); ok {
		t.Error("AsFatal should reject nil")
	}
}
