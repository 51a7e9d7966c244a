package wit

import (
	"reflect"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/choice/engine"
	"github.com/wippyai/choice/errors"
	"github.com/wippyai/choice/schema"
)

// FromVariant builds a schema from a WIT variant declaration. Case names
// become string tags, slot order follows declaration order, and the tag
// ordering is the declaration order (the order the WIT discriminant
// numbers the cases), so values load and compare the way the component
// model lays them out.
func FromVariant(name string, v *wit.Variant) (*schema.Schema[string], error) {
	if len(v.Cases) == 0 {
		return nil, errors.EmptySchema([]string{name})
	}

	order := make(map[string]int, len(v.Cases))
	for i, cs := range v.Cases {
		if _, dup := order[cs.Name]; dup {
			return nil, errors.DuplicateTag([]string{name}, cs.Name)
		}
		order[cs.Name] = i
	}

	b := schema.New[string](name).TagCompare(func(a, c string) int {
		ai, ak := order[a]
		ci, ck := order[c]
		errors.Check(ak && ck, errors.PhaseCompare, errors.KindNotFound,
			"tag not declared by variant %s", name)
		switch {
		case ai < ci:
			return -1
		case ai > ci:
			return 1
		default:
			return 0
		}
	}, engine.StrengthStrong)

	for _, cs := range v.Cases {
		if cs.Type == nil {
			b.Add(cs.Name, engine.UnitOps())
			continue
		}
		ops, err := opsFor(cs.Type)
		if err != nil {
			return nil, errors.New(errors.PhaseLoad, errors.KindInvalidData).
				Path(name, cs.Name).
				Cause(err).
				Detail("unusable case payload").
				Build()
		}
		b.Add(cs.Name, ops)
	}

	return b.Build()
}

// FromTypeDef is FromVariant for a type definition, which must declare a
// variant kind.
func FromTypeDef(name string, td *wit.TypeDef) (*schema.Schema[string], error) {
	v, ok := td.Kind.(*wit.Variant)
	if !ok {
		return nil, errors.New(errors.PhaseLoad, errors.KindUnsupported).
			Path(name).
			Detail("type definition is not a variant").
			Build()
	}
	return FromVariant(name, v)
}

// opsFor derives a payload operation table for a WIT case type.
func opsFor(t wit.Type) (*engine.Ops, error) {
	if td, ok := t.(*wit.TypeDef); ok {
		return opsForTypeDef(td)
	}
	rt, err := goType(t)
	if err != nil {
		return nil, err
	}
	return engine.OpsForType(rt), nil
}

func opsForTypeDef(td *wit.TypeDef) (*engine.Ops, error) {
	switch kind := td.Kind.(type) {
	case *wit.Tuple:
		return tupleOps(kind)
	case wit.Type:
		return opsFor(kind)
	default:
		return nil, errors.Unsupported(errors.PhaseLoad, "case payload kind")
	}
}

// tupleOps stores a multi-value case as one aggregate struct and composes
// its equality and ordering per element, lexicographically, at the weakest
// element strength.
func tupleOps(tp *wit.Tuple) (*engine.Ops, error) {
	if n := len(tp.Types); n < 2 || n > 3 {
		return nil, errors.Unsupported(errors.PhaseLoad, "tuple payloads carry two or three values")
	}

	fieldNames := [...]string{"First", "Second", "Third"}
	fields := make([]reflect.StructField, len(tp.Types))
	elems := make([]*engine.Ops, len(tp.Types))
	for i, et := range tp.Types {
		rt, err := goType(et)
		if err != nil {
			return nil, err
		}
		fields[i] = reflect.StructField{Name: fieldNames[i], Type: rt}
		elems[i] = engine.OpsForType(rt)
	}

	agg := reflect.StructOf(fields)
	ops := engine.OpsForType(agg)

	strength := elems[0].Strength
	ordered := true
	for _, e := range elems {
		if !e.HasOrd() {
			ordered = false
			break
		}
		strength = engine.Weakest(strength, e.Strength)
	}
	if !ordered {
		return ops, nil
	}

	ops.Strength = strength
	ops.Cmp = func(a, b any) (int, bool) {
		av := reflect.ValueOf(a).Elem()
		bv := reflect.ValueOf(b).Elem()
		for i, e := range elems {
			ap := av.Field(i).Addr().Interface()
			bp := bv.Field(i).Addr().Interface()
			if r, ok := e.Cmp(ap, bp); !ok || r != 0 {
				return r, ok
			}
		}
		return 0, true
	}
	return ops, nil
}

// goType maps a WIT primitive type to its Go payload type.
func goType(t wit.Type) (reflect.Type, error) {
	switch t.(type) {
	case wit.Bool:
		return reflect.TypeOf(false), nil
	case wit.U8:
		return reflect.TypeOf(uint8(0)), nil
	case wit.S8:
		return reflect.TypeOf(int8(0)), nil
	case wit.U16:
		return reflect.TypeOf(uint16(0)), nil
	case wit.S16:
		return reflect.TypeOf(int16(0)), nil
	case wit.U32:
		return reflect.TypeOf(uint32(0)), nil
	case wit.S32:
		return reflect.TypeOf(int32(0)), nil
	case wit.U64:
		return reflect.TypeOf(uint64(0)), nil
	case wit.S64:
		return reflect.TypeOf(int64(0)), nil
	case wit.F32:
		return reflect.TypeOf(float32(0)), nil
	case wit.F64:
		return reflect.TypeOf(float64(0)), nil
	case wit.Char:
		return reflect.TypeOf(rune(0)), nil
	case wit.String:
		return reflect.TypeOf(""), nil
	default:
		return nil, errors.Unsupported(errors.PhaseLoad, "case payload type")
	}
}
