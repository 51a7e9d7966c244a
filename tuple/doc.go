// Package tuple provides the aggregate types multi-value variants store
// their payloads in. A variant declared with two or three payload types
// occupies a single slot holding a Pair or Triple; equality and ordering
// of the aggregate are composed per element by the case declaration, not
// by this package.
package tuple
