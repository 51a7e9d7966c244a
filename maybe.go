package choice

import (
	"fmt"

	"github.com/wippyai/choice/errors"
)

// Maybe is an optional Choice that costs no extra storage: instead of a
// separate presence flag it parks the wrapped value's discriminant on the
// reserved never-constructed sentinel, a bit pattern no live value uses.
// Maybe is therefore exactly the size of Choice. The sentinel never leaks:
// every accessor resolves emptiness before the wrapped value is touched.
type Maybe[T comparable] struct {
	c Choice[T]
}

// Just wraps a value. The value is moved in; the argument is left
// moved-from.
func Just[T comparable](c *Choice[T]) Maybe[T] {
	return Maybe[T]{c: c.Move()}
}

// IsSome reports whether a value is present.
func (m *Maybe[T]) IsSome() bool {
	return m.c.schema != nil && m.c.disc.isActive()
}

// IsNone reports whether the Maybe is empty.
func (m *Maybe[T]) IsNone() bool { return !m.IsSome() }

// Ref returns the wrapped value in place; empty is fatal.
func (m *Maybe[T]) Ref() *Choice[T] {
	errors.Check(m.IsSome(), errors.PhaseAccess, errors.KindNotFound, "unwrap of empty Maybe")
	return &m.c
}

// Take moves the value out, leaving the Maybe empty; empty is fatal.
func (m *Maybe[T]) Take() Choice[T] {
	errors.Check(m.IsSome(), errors.PhaseAccess, errors.KindNotFound, "take of empty Maybe")
	out := m.c.Move()
	m.c.disc.markNever()
	return out
}

// Set moves a value in, destroying any previously held one.
func (m *Maybe[T]) Set(c *Choice[T]) {
	m.Clear()
	m.c.MoveFrom(c)
}

// Clear destroys the held value, if any, and leaves the Maybe empty.
func (m *Maybe[T]) Clear() {
	if m.IsSome() {
		m.c.Destroy()
	}
	if m.c.schema != nil {
		m.c.disc.markNever()
	}
}

// String implements fmt.Stringer.
func (m *Maybe[T]) String() string {
	if m.IsNone() {
		return "None"
	}
	return fmt.Sprintf("Some(%s)", m.c.String())
}
