package schema

import (
	"cmp"
	goerrors "errors"
	"reflect"

	"go.uber.org/zap"

	"github.com/wippyai/choice/engine"
	"github.com/wippyai/choice/errors"
)

// Builder accumulates variant declarations and validates them into a
// Schema. Validation happens once, at Build; every failure is a definition
// error, never a per-use runtime condition.
type Builder[T comparable] struct {
	name        string
	tags        []T
	ops         []*engine.Ops
	seen        map[T]int
	tagCmp      func(a, b T) int
	tagStrength engine.Strength
	errs        []error
	built       *Schema[T]
}

// New starts a schema over tag type T. The tag type's == gives equality;
// ordering is absent unless supplied with TagCompare (or use NewOrdered).
func New[T comparable](name string) *Builder[T] {
	return &Builder[T]{
		name: name,
		seen: make(map[T]int),
	}
}

// NewOrdered starts a schema over an ordered tag type, deriving the tag
// ordering from the type's < operator. Float tag types order weakly: < is
// total there only under cmp.Compare's NaN convention.
func NewOrdered[T cmp.Ordered](name string) *Builder[T] {
	b := New[T](name)
	b.tagCmp = cmp.Compare[T]
	b.tagStrength = engine.StrengthStrong
	var zero T
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Float32, reflect.Float64:
		b.tagStrength = engine.StrengthWeak
	}
	return b
}

// TagCompare supplies an explicit tag ordering of the given strength.
func (b *Builder[T]) TagCompare(cmp func(a, b T) int, s engine.Strength) *Builder[T] {
	b.tagCmp = cmp
	b.tagStrength = s
	return b
}

// Add declares a variant and returns its slot index. Declaring the same
// tag twice is recorded as a definition error reported by Build.
func (b *Builder[T]) Add(tag T, ops *engine.Ops) int {
	if prev, dup := b.seen[tag]; dup {
		b.errs = append(b.errs, errors.DuplicateTag([]string{b.name}, tag))
		return prev
	}
	slot := len(b.tags)
	b.seen[tag] = slot
	b.tags = append(b.tags, tag)
	b.ops = append(b.ops, ops)
	return slot
}

// Build validates the declarations and produces the schema. It may be
// called once; later calls return the same schema.
func (b *Builder[T]) Build() (*Schema[T], error) {
	if b.built != nil {
		return b.built, nil
	}
	if len(b.errs) > 0 {
		return nil, goerrors.Join(b.errs...)
	}

	payloads := make([]reflect.Type, len(b.ops))
	for i, o := range b.ops {
		payloads[i] = o.Type
	}
	layout, err := resolveLayout([]string{b.name}, payloads)
	if err != nil {
		return nil, err
	}

	canEq := true
	strength := b.tagStrength
	if b.tagCmp == nil {
		strength = engine.StrengthNone
	}
	for _, o := range b.ops {
		if !o.HasEq() {
			canEq = false
		}
		if !o.HasOrd() {
			strength = engine.StrengthNone
		}
		if strength != engine.StrengthNone {
			strength = engine.Weakest(strength, o.Strength)
		}
	}

	b.built = &Schema[T]{
		name:        b.name,
		tags:        b.tags,
		slots:       b.seen,
		ops:         b.ops,
		layout:      layout,
		tagCmp:      b.tagCmp,
		tagStrength: b.tagStrength,
		strength:    strength,
		canEq:       canEq,
	}

	Logger().Debug("schema built",
		zap.String("schema", b.name),
		zap.Int("variants", len(b.tags)),
		zap.Uint32("disc_size", layout.DiscSize),
		zap.Uint32("union_size", layout.UnionSize),
		zap.Stringer("strength", strength),
	)

	return b.built, nil
}

// MustBuild is Build for schemas declared at package init, where a
// definition error is a programming bug.
func (b *Builder[T]) MustBuild() *Schema[T] {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// Schema returns the built schema, or nil before Build.
func (b *Builder[T]) Schema() *Schema[T] { return b.built }
