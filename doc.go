// Package choice provides a schema-driven tagged union (sum type): a value
// holding exactly one of a fixed, declaration-time set of variants, each
// identified by a tag and carrying zero, one or several payload values.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	choice/          Root package: the Choice value, case handles, comparison
//	├── schema/      Tag space validation and storage layout resolution
//	├── engine/      Slot-indexed payload storage and operation tables
//	├── option/      Optional values returned by the non-panicking accessors
//	├── tuple/       Pair/Triple aggregates for multi-value variants
//	├── errors/      Structured errors and the shared fatal primitive
//	└── wit/         Schemas loaded from WIT variant declarations
//
// # Quick Start
//
// Declare a schema once, then build values through typed case handles:
//
//	type Shape uint8
//	const (
//	    SEmpty Shape = iota
//	    SWeight
//	    SPoint
//	)
//
//	b := schema.NewOrdered[Shape]("shape")
//	var (
//	    Empty  = choice.UnitOf(b, SEmpty)
//	    Weight = choice.CaseOf[int32](b, SWeight)
//	    Point  = choice.PairOf[int32, int32](b, SPoint)
//	)
//	var Shapes = b.MustBuild()
//
//	w := Weight.With(5)
//	w.Which()        // SWeight
//	Weight.As(&w)    // 5
//	Point.Set(&w, 3, 4)
//
// # Access Discipline
//
// Strict accessors (Which, As, Mut, Take) abort the process on a wrong tag
// or on any read of a moved-from value; they panic with a structured
// *errors.Error through one shared fatal primitive. The non-panicking
// accessors (Get, GetMut) return option.None for a wrong but valid tag,
// the only recoverable mismatch. They still abort on moved-from values:
// use-after-move is uniformly a bug, never an empty result.
//
// # Moves, Copies, Clones
//
// Move and MoveFrom transfer payload ownership and leave the donor
// moved-from; Clone and CopyFrom leave the source untouched. Assignment
// between values with the same active tag reuses the destination's payload
// storage in place; switching tags nets exactly one destroy and one
// construct.
//
// # Comparison
//
// Two values sharing a tag type compare even when built from different
// schemas: equality needs the same tag value and equal payloads, ordering
// compares tags first and payloads only on a tie. Comparison capabilities
// are fixed at schema build time; the ordering's strength is the weakest
// among the tag and payload orderings (floats are partial: NaN pairs are
// unordered through TryCompare).
//
// # Thread Safety
//
// Schemas are immutable and safe for concurrent use. Choice values are NOT
// thread-safe and need exclusive access or external synchronization.
package choice
