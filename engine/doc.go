// Package engine provides the low-level slot-indexed storage for tagged
// union values.
//
// A built schema assigns every declared variant a dense slot index. The
// engine stores the single live payload of an instance in a chain of
// single-slot cells; every operation carries the runtime slot index, and
// each cell either handles the operation (when the index matches its own)
// or forwards it to the next cell. Dispatch is therefore linear in the
// number of declared variants, which is small and fixed per schema.
//
// # Architecture
//
// The engine package provides two main types:
//
//	Ops     - The per-slot payload operation table: construct, assign,
//	          copy, clone, destroy, equality and ordering, derived from
//	          the payload's Go type or supplied explicitly.
//	Storage - The per-instance cell chain holding at most one live payload.
//
// # Payload Operations
//
// OpsOf derives an Ops table for a payload type:
//
//	ops := engine.OpsOf[int32]()
//
// Equality defaults to Go's == for comparable types; ordering is derived
// for integer, float, string and bool kinds. Floats order partially: a NaN
// on either side reports unordered. Types outside those kinds keep
// equality (when comparable) but lose ordering unless a comparator is
// supplied with WithCompare. Lifecycle hooks (WithHooks, WithDestructor)
// observe construct, assign and destroy transitions; tests use them to
// prove in-place assignment against destroy/construct cycles.
//
// # Ownership
//
// Storage owns its payload exclusively. Move operations transfer the
// payload pointer between chains and leave the donor cell empty; the
// discriminant layer above converts any later read of the donor into a
// fatal diagnostic rather than a stale read.
//
// Storage is NOT safe for concurrent use; instances require external
// synchronization or exclusive access.
package engine
