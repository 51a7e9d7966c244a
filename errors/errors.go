package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the value lifecycle the error occurred
type Phase string

const (
	PhaseDefine  Phase = "define"  // schema definition and validation
	PhaseAccess  Phase = "access"  // payload reads
	PhaseMutate  Phase = "mutate"  // construct/set/move/clone
	PhaseCompare Phase = "compare" // equality and ordering
	PhaseLoad    Phase = "load"    // external schema sources (WIT)
)

// Kind categorizes the error
type Kind string

const (
	KindDuplicateTag    Kind = "duplicate_tag"
	KindEmptySchema     Kind = "empty_schema"
	KindTooManyVariants Kind = "too_many_variants"
	KindNotComparable   Kind = "not_comparable"
	KindNotOrdered      Kind = "not_ordered"
	KindWrongTag        Kind = "wrong_tag"
	KindUseAfterMove    Kind = "use_after_move"
	KindTypeMismatch    Kind = "type_mismatch"
	KindInvalidData     Kind = "invalid_data"
	KindUnsupported     Kind = "unsupported"
	KindNotBuilt        Kind = "not_built"
	KindNotFound        Kind = "not_found"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	GoType string
	Tag    string
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.GoType != "" || e.Tag != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.Tag != "" {
			b.WriteString("tag ")
			b.WriteString(e.Tag)
			b.WriteString(", Go type ")
			b.WriteString(e.GoType)
		} else if e.Tag != "" {
			b.WriteString("tag ")
			b.WriteString(e.Tag)
		} else {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.Tag != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the schema/case path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// Tag sets the tag rendering
func (b *Builder) Tag(t string) *Builder {
	b.err.Tag = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// DuplicateTag creates a duplicate tag definition error
func DuplicateTag(path []string, tag any) *Error {
	return &Error{
		Phase:  PhaseDefine,
		Kind:   KindDuplicateTag,
		Path:   path,
		Detail: fmt.Sprintf("tag %v declared more than once", tag),
		Value:  tag,
	}
}

// EmptySchema creates an error for a schema with no declared variants
func EmptySchema(path []string) *Error {
	return &Error{
		Phase:  PhaseDefine,
		Kind:   KindEmptySchema,
		Path:   path,
		Detail: "schema declares no variants",
	}
}

// TooManyVariants creates a discriminant range overflow error
func TooManyVariants(path []string, count int, max uint64) *Error {
	return &Error{
		Phase:  PhaseDefine,
		Kind:   KindTooManyVariants,
		Path:   path,
		Detail: fmt.Sprintf("%d variants exceed the discriminant range (max %d)", count, max),
		Value:  count,
	}
}

// NotComparable creates an error for a payload type with no usable equality
func NotComparable(path []string, goType string) *Error {
	return &Error{
		Phase:  PhaseDefine,
		Kind:   KindNotComparable,
		Path:   path,
		GoType: goType,
		Detail: "type has no derivable equality; supply one with WithEq",
	}
}

// TypeMismatch creates a payload type mismatch error
func TypeMismatch(phase Phase, path []string, goType, wantType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTypeMismatch,
		Path:   path,
		GoType: goType,
		Detail: fmt.Sprintf("want %s", wantType),
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// NotBuilt creates an error for using a schema before Build
func NotBuilt(path []string) *Error {
	return &Error{
		Phase:  PhaseDefine,
		Kind:   KindNotBuilt,
		Path:   path,
		Detail: "schema not built; call Build first",
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
