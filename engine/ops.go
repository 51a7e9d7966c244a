package engine

import (
	"reflect"
)

// Hooks observe payload lifecycle transitions. All fields are optional.
// Construct fires for every operation that brings a payload to life in a
// cell (construct, move/copy/clone-construct); Assign fires for in-place
// assignment of an already-live payload; Destroy fires when a live payload
// is destroyed.
type Hooks struct {
	OnConstruct func()
	OnAssign    func()
	OnDestroy   func()
}

// Ops is the operation table for one slot's payload type. Eq and Cmp are
// nil when the payload type has no derivable or supplied equality resp.
// ordering; the facade turns a nil capability into the absence of the
// corresponding operator, not a runtime failure.
type Ops struct {
	Type     reflect.Type // nil for payload-less variants
	Eq       func(a, b any) bool
	Cmp      func(a, b any) (int, bool)
	Strength Strength

	construct  func(v any) any
	assign     func(dst, v any)
	copyFrom   func(src any) any
	clone      func(src any) any
	destructor func(v any)
	hooks      Hooks
}

// HasEq reports whether the slot's payload supports equality.
func (o *Ops) HasEq() bool { return o.Eq != nil }

// HasOrd reports whether the slot's payload supports ordering.
func (o *Ops) HasOrd() bool { return o.Cmp != nil }

// Unit reports whether the slot stores no payload.
func (o *Ops) Unit() bool { return o.Type == nil }

// Construct brings a payload to life from a value, returning the cell's
// payload pointer.
func (o *Ops) Construct(v any) any {
	var p any
	if o.construct != nil {
		p = o.construct(v)
	}
	if o.hooks.OnConstruct != nil {
		o.hooks.OnConstruct()
	}
	return p
}

// Assign overwrites a live payload in place.
func (o *Ops) Assign(dst, v any) {
	if o.assign != nil {
		o.assign(dst, v)
	}
	if o.hooks.OnAssign != nil {
		o.hooks.OnAssign()
	}
}

// CopyConstruct brings a payload to life as a copy of another cell's live
// payload.
func (o *Ops) CopyConstruct(src any) any {
	var p any
	if o.copyFrom != nil {
		p = o.copyFrom(src)
	}
	if o.hooks.OnConstruct != nil {
		o.hooks.OnConstruct()
	}
	return p
}

// CloneConstruct is CopyConstruct through the clone function when one was
// supplied, for payloads whose copy must be deep.
func (o *Ops) CloneConstruct(src any) any {
	if o.clone == nil {
		return o.CopyConstruct(src)
	}
	p := o.clone(src)
	if o.hooks.OnConstruct != nil {
		o.hooks.OnConstruct()
	}
	return p
}

// Destroy ends a live payload's life.
func (o *Ops) Destroy(p any) {
	if o.destructor != nil && p != nil {
		o.destructor(reflect.ValueOf(p).Elem().Interface())
	}
	if o.hooks.OnDestroy != nil {
		o.hooks.OnDestroy()
	}
}

// Option customizes a derived Ops table.
type Option[P any] func(*Ops)

// WithEq supplies payload equality, replacing (or providing) the derived one.
func WithEq[P any](eq func(a, b P) bool) Option[P] {
	return func(o *Ops) {
		o.Eq = func(a, b any) bool {
			return eq(*(a.(*P)), *(b.(*P)))
		}
	}
}

// WithCompare supplies a total payload ordering of the given strength.
func WithCompare[P any](cmp func(a, b P) int, s Strength) Option[P] {
	return func(o *Ops) {
		o.Cmp = func(a, b any) (int, bool) {
			return cmp(*(a.(*P)), *(b.(*P))), true
		}
		o.Strength = s
	}
}

// WithPartialCompare supplies a payload ordering that may report a pair as
// unordered, for orderings composed over partially-ordered elements.
func WithPartialCompare[P any](cmp func(a, b P) (int, bool), s Strength) Option[P] {
	return func(o *Ops) {
		o.Cmp = func(a, b any) (int, bool) {
			return cmp(*(a.(*P)), *(b.(*P)))
		}
		o.Strength = s
	}
}

// WithClone supplies a deep clone for payloads holding owned references.
func WithClone[P any](clone func(P) P) Option[P] {
	return func(o *Ops) {
		o.clone = func(src any) any {
			p := new(P)
			*p = clone(*(src.(*P)))
			return p
		}
	}
}

// WithDestructor runs fn on the payload whenever it is destroyed.
func WithDestructor[P any](fn func(P)) Option[P] {
	return func(o *Ops) {
		o.destructor = func(v any) {
			fn(v.(P))
		}
	}
}

// WithHooks attaches lifecycle counters/observers.
func WithHooks[P any](h Hooks) Option[P] {
	return func(o *Ops) {
		o.hooks = h
	}
}

// OpsOf derives the operation table for payload type P.
func OpsOf[P any](opts ...Option[P]) *Ops {
	t := reflect.TypeOf((*P)(nil)).Elem()
	o := &Ops{
		Type: t,
		construct: func(v any) any {
			p := new(P)
			*p = v.(P)
			return p
		},
		assign: func(dst, v any) {
			*(dst.(*P)) = v.(P)
		},
		copyFrom: func(src any) any {
			p := new(P)
			*p = *(src.(*P))
			return p
		},
	}
	deriveCompare(o, t)
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// OpsForType derives the operation table for a payload type known only at
// runtime, for schema sources such as WIT declarations. Values cross this
// table as any; construct and assign reject mismatched dynamic types via
// reflect.Set's own panic.
func OpsForType(t reflect.Type) *Ops {
	o := &Ops{
		Type: t,
		construct: func(v any) any {
			p := reflect.New(t)
			p.Elem().Set(reflect.ValueOf(v))
			return p.Interface()
		},
		assign: func(dst, v any) {
			reflect.ValueOf(dst).Elem().Set(reflect.ValueOf(v))
		},
		copyFrom: func(src any) any {
			p := reflect.New(t)
			p.Elem().Set(reflect.ValueOf(src).Elem())
			return p.Interface()
		},
	}
	deriveCompare(o, t)
	return o
}

// UnitOps is the operation table for payload-less variants. The variant's
// presence is encoded purely by the discriminant; two unit payloads are
// always equal.
func UnitOps() *Ops {
	return &Ops{
		Eq:       func(a, b any) bool { return true },
		Cmp:      func(a, b any) (int, bool) { return 0, true },
		Strength: StrengthStrong,
	}
}

// deriveCompare fills Eq, Cmp and Strength from the payload's kind.
// Integer, string and bool kinds order strongly; floats order partially
// (NaN is unordered); everything else keeps equality when Go's == applies
// and has no derived ordering.
func deriveCompare(o *Ops, t reflect.Type) {
	if t.Comparable() {
		o.Eq = func(a, b any) bool {
			return reflect.ValueOf(a).Elem().Interface() == reflect.ValueOf(b).Elem().Interface()
		}
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		o.Cmp = func(a, b any) (int, bool) {
			av := reflect.ValueOf(a).Elem().Int()
			bv := reflect.ValueOf(b).Elem().Int()
			return order(av, bv), true
		}
		o.Strength = StrengthStrong
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		o.Cmp = func(a, b any) (int, bool) {
			av := reflect.ValueOf(a).Elem().Uint()
			bv := reflect.ValueOf(b).Elem().Uint()
			return order(av, bv), true
		}
		o.Strength = StrengthStrong
	case reflect.Float32, reflect.Float64:
		o.Cmp = func(a, b any) (int, bool) {
			av := reflect.ValueOf(a).Elem().Float()
			bv := reflect.ValueOf(b).Elem().Float()
			if av != av || bv != bv { // NaN
				return 0, false
			}
			return order(av, bv), true
		}
		o.Strength = StrengthPartial
	case reflect.String:
		o.Cmp = func(a, b any) (int, bool) {
			av := reflect.ValueOf(a).Elem().String()
			bv := reflect.ValueOf(b).Elem().String()
			return order(av, bv), true
		}
		o.Strength = StrengthStrong
	case reflect.Bool:
		o.Cmp = func(a, b any) (int, bool) {
			av := reflect.ValueOf(a).Elem().Bool()
			bv := reflect.ValueOf(b).Elem().Bool()
			switch {
			case av == bv:
				return 0, true
			case bv:
				return -1, true
			default:
				return 1, true
			}
		}
		o.Strength = StrengthStrong
	default:
		o.Strength = StrengthNone
	}
}

func order[T int64 | uint64 | float64 | string](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
