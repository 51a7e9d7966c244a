package option

import (
	"fmt"

	"github.com/wippyai/choice/errors"
)

// Option holds either a value of T or nothing. It is the return type of
// the non-panicking choice accessors: a wrong (but valid) tag yields None
// rather than an abort.
type Option[T any] struct {
	value T
	some  bool
}

// Some returns an option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None returns the empty option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool { return o.some }

// IsNone reports whether the option is empty.
func (o Option[T]) IsNone() bool { return !o.some }

// Unwrap returns the held value; unwrapping None is a fatal error.
func (o Option[T]) Unwrap() T {
	errors.Check(o.some, errors.PhaseAccess, errors.KindNotFound, "unwrap of empty option")
	return o.value
}

// UnwrapOr returns the held value, or fallback when empty.
func (o Option[T]) UnwrapOr(fallback T) T {
	if o.some {
		return o.value
	}
	return fallback
}

// Get returns the held value with a presence flag.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Take moves the value out, leaving the option empty.
func (o *Option[T]) Take() Option[T] {
	out := *o
	*o = Option[T]{}
	return out
}

// Replace stores v and returns the previously held option.
func (o *Option[T]) Replace(v T) Option[T] {
	out := *o
	*o = Some(v)
	return out
}

// String implements fmt.Stringer.
func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
