package bind

import (
	"context"

	language "github.com/hanpama/graphbind/internal/language"
	schema "github.com/hanpama/graphbind/internal/schema"
)

// BoxBinder binds a single-owner pointer wrapper around T. Read-direction
// operations forward through the pointer to the inner binder; the decode
// direction produces a plain value with the inner binder and moves it into a
// fresh allocation. The binder itself is stateless.
type BoxBinder[T any] struct {
	inner Binder[T]
}

func NewBoxBinder[T any](inner Binder[T]) *BoxBinder[T] {
	return &BoxBinder[T]{inner: inner}
}

func (b *BoxBinder[T]) Describe(info TypeInfo) *schema.TypeRef {
	return b.inner.Describe(info)
}

func (b *BoxBinder[T]) ResolveValue(v *T, sel language.SelectionSet, info TypeInfo, ex *Executor) (any, error) {
	return b.inner.ResolveValue(*v, sel, info, ex)
}

func (b *BoxBinder[T]) ResolveValueAsync(ctx context.Context, v *T, sel language.SelectionSet, info TypeInfo, ex *Executor) (any, error) {
	return b.inner.ResolveValueAsync(ctx, *v, sel, info, ex)
}

func (b *BoxBinder[T]) ToInputValue(v *T) *language.Value {
	return b.inner.ToInputValue(*v)
}

// FromInputValue decodes with the inner binder, then allocates. Decoding
// always ends in a fresh single-owner allocation; it never reuses one.
func (b *BoxBinder[T]) FromInputValue(v *language.Value) (*T, error) {
	inner, err := b.inner.FromInputValue(v)
	if err != nil {
		return nil, err
	}
	return &inner, nil
}

func (b *BoxBinder[T]) FromAbsentValue() (*T, error) {
	inner, err := b.inner.FromAbsentValue()
	if err != nil {
		return nil, err
	}
	return &inner, nil
}

func (b *BoxBinder[T]) Release(v *T) {
	if v != nil {
		b.inner.Release(*v)
	}
}
