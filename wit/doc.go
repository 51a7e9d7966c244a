// Package wit builds choice schemas from WebAssembly Interface Type (WIT)
// variant declarations.
//
// A WIT variant is the component model's tagged union; this package maps
// one onto a string-tagged schema so hosts can mirror component-defined
// variants as native choice values:
//
//	s, err := wit.FromVariant("shape", &witpkg.Variant{Cases: []witpkg.Case{
//	    {Name: "empty"},
//	    {Name: "weight", Type: witpkg.S32{}},
//	}})
//	v, err := choice.Make(s, "weight", int32(5))
//
// Case payloads may be WIT primitives or two/three-element tuples of
// primitives; anything else is reported as an unsupported load error.
// Tags order by declaration, matching the variant's discriminant numbering.
package wit
