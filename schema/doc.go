// Package schema validates tagged-union declarations and resolves their
// storage layout.
//
// A schema is the fixed set of (tag, payload type) variants a choice value
// may hold. Declarations accumulate on a Builder and are validated once at
// Build: duplicate tags, an empty variant list, or a variant count
// exceeding the discriminant's representable range are definition errors.
// Nothing is re-validated per use.
//
//	b := schema.NewOrdered[Shape]("shape")
//	b.Add(Empty, engine.UnitOps())
//	b.Add(Weight, engine.OpsOf[int32]())
//	s := b.MustBuild()
//
// Build assigns each variant a dense slot index in declaration order and
// computes the Layout: the discriminant width is the smallest of 1, 2 or 4
// bytes that represents N variants plus the two reserved sentinel states
// (moved-from and never-constructed, the all-ones and all-ones-minus-one
// patterns of that width), and the payload arena is the largest declared
// payload size with a one-byte floor.
//
// The schema also fixes validation-time comparison capabilities: equality
// is available only when every payload supports it, and the ordering
// strength is the weakest among the tag ordering and all payload orderings.
package schema
