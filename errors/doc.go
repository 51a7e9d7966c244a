// Package errors provides structured error types for the choice library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: case path, Go type and tag names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDefine, errors.KindDuplicateTag).
//		Path("shape", "weight").
//		Tag("Weight").
//		Detail("tag declared twice").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.DuplicateTag(path, tag)
//	err := errors.TypeMismatch(errors.PhaseLoad, path, "string", "int32")
//
// All errors implement the standard error interface and support errors.Is/As.
//
// Invariant violations (wrong-tag strict access, use of a moved-from value)
// do not return errors; they abort through Check/Violate, which panic with
// the same structured *Error type.
package errors
