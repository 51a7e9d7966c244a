// Package option provides a minimal optional value type.
//
// It exists for the choice facade's non-panicking accessors, which report
// a tag mismatch as None instead of aborting. Unwrap of None aborts
// through the same fatal primitive as the rest of the library.
package option
