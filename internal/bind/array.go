package bind

import (
	"context"
	"fmt"

	language "github.com/hanpama/graphbind/internal/language"
	schema "github.com/hanpama/graphbind/internal/schema"
)

// Array is an exact-length sequence: once constructed it holds exactly as
// many elements as the binder that built it was sized for. Construct one
// with MakeArray or by decoding through an ArrayBinder.
type Array[T any] struct {
	elems []T
}

// MakeArray builds an array from existing owned elements.
func MakeArray[T any](elems ...T) Array[T] {
	return Array[T]{elems: append([]T(nil), elems...)}
}

func (a Array[T]) Len() int { return len(a.elems) }

func (a Array[T]) At(i int) T { return a.elems[i] }

// Elems returns a copy of the element slice.
func (a Array[T]) Elems() []T { return append([]T(nil), a.elems...) }

// ArrayBinder binds Array[T] for a fixed size. Output production delegates
// per element to the element binder; input conversion enforces cardinality
// up front and converts elements in order with leak-safe abandonment.
type ArrayBinder[T any] struct {
	elem Binder[T]
	size int
}

// NewArrayBinder creates a binder for arrays of exactly size elements.
func NewArrayBinder[T any](elem Binder[T], size int) *ArrayBinder[T] {
	if size < 0 {
		panic(fmt.Sprintf("bind: negative array size %d", size))
	}
	return &ArrayBinder[T]{elem: elem, size: size}
}

func (b *ArrayBinder[T]) Size() int { return b.size }

func (b *ArrayBinder[T]) Describe(info TypeInfo) *schema.TypeRef {
	return schema.ListType(b.elem.Describe(info))
}

func (b *ArrayBinder[T]) ResolveValue(v Array[T], sel language.SelectionSet, info TypeInfo, ex *Executor) (any, error) {
	return ResolveList(b.elem, v.elems, sel, info, ex)
}

func (b *ArrayBinder[T]) ResolveValueAsync(ctx context.Context, v Array[T], sel language.SelectionSet, info TypeInfo, ex *Executor) (any, error) {
	return ResolveListAsync(ctx, b.elem, v.elems, sel, info, ex)
}

func (b *ArrayBinder[T]) ToInputValue(v Array[T]) *language.Value {
	items := make([]*language.Value, len(v.elems))
	for i, el := range v.elems {
		items[i] = b.elem.ToInputValue(el)
	}
	return language.List(items...)
}

// FromInputValue decodes a dynamic input literal into an exact-size array.
//
// Shape errors (null, wrong count) are detected before any element is
// converted. Element conversion then runs strictly in order and stops at the
// first failure. Elements already converted belong to this call until the
// final transfer; the deferred cleanup releases exactly the live prefix when
// the call does not complete — including when the untrusted element
// converter panics mid-construction.
func (b *ArrayBinder[T]) FromInputValue(v *language.Value) (Array[T], error) {
	var none Array[T]

	if v == nil || v.Kind == language.NullValue {
		return none, ErrNullValue
	}
	if v.Kind != language.ListValue {
		// Input coercion: a bare value satisfies a list position as a
		// singleton list, which only fits an array of size 1.
		if b.size != 1 {
			return none, &WrongCountError{Actual: 1, Expected: b.size}
		}
		el, err := b.elem.FromInputValue(v)
		if err != nil {
			return none, &ItemError{Index: 0, Err: err}
		}
		return Array[T]{elems: []T{el}}, nil
	}

	children := v.Children
	if len(children) != b.size {
		return none, &WrongCountError{Actual: len(children), Expected: b.size}
	}
	if b.size == 0 {
		return Array[T]{}, nil
	}

	// Staging buffer. len(staged) is the live count: every element in it was
	// fully converted and is owned here until the transfer below.
	staged := make([]T, 0, b.size)
	transferred := false
	defer func() {
		if transferred {
			return
		}
		for _, el := range staged {
			b.elem.Release(el)
		}
	}()

	for _, child := range children {
		el, err := b.elem.FromInputValue(child.Value)
		if err != nil {
			return none, &ItemError{Index: len(staged), Err: err}
		}
		staged = append(staged, el)
	}

	// Single ownership transfer; the deferred cleanup must not release the
	// elements the finished array now owns.
	transferred = true
	return Array[T]{elems: staged}, nil
}

func (b *ArrayBinder[T]) FromAbsentValue() (Array[T], error) {
	return b.FromInputValue(language.Null())
}

func (b *ArrayBinder[T]) Release(v Array[T]) {
	for _, el := range v.elems {
		b.elem.Release(el)
	}
}
