package errors

import "fmt"

// Fatal errors are invariant violations: wrong-tag strict access, any read
// of a moved-from value, comparison without the required capability. They
// are programmer bugs, not conditions to recover from, so they panic with a
// *Error rather than returning one. Every aborting path in the library goes
// through Check or Violate.

// Check panics with a structured *Error if cond is false.
func Check(cond bool, phase Phase, kind Kind, detail string, args ...any) {
	if !cond {
		Violate(phase, kind, detail, args...)
	}
}

// Violate unconditionally panics with a structured *Error.
func Violate(phase Phase, kind Kind, detail string, args ...any) {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	panic(&Error{Phase: phase, Kind: kind, Detail: detail})
}

// AsFatal reports whether a recovered panic value is one of this library's
// invariant violations, returning the structured error when it is.
func AsFatal(recovered any) (*Error, bool) {
	err, ok := recovered.(*Error)
	return err, ok
}
