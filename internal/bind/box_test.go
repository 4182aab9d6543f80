package bind

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	language "github.com/hanpama/graphbind/internal/language"
)

func TestBoxBinder_ToInputValue_Transparent(t *testing.T) {
	inner := IntBinder{}
	b := NewBoxBinder[int](inner)

	v := 42
	require.True(t, language.ValueEqual(inner.ToInputValue(v), b.ToInputValue(&v)))
}

func TestBoxBinder_Describe_Transparent(t *testing.T) {
	b := NewBoxBinder[int](IntBinder{})
	require.Equal(t, "Int", b.Describe(nil).String())

	nested := NewBoxBinder[Array[int]](NewArrayBinder[int](IntBinder{}, 3))
	require.Equal(t, "[Int]", nested.Describe(nil).String())
}

func TestBoxBinder_FromInputValue_FreshAllocation(t *testing.T) {
	b := NewBoxBinder[int](IntBinder{})
	lit := mustParseValue(t, "7")

	first, err := b.FromInputValue(lit)
	require.NoError(t, err)
	second, err := b.FromInputValue(lit)
	require.NoError(t, err)

	// Decoding always ends in a fresh allocation.
	require.NotSame(t, first, second)
	require.Equal(t, *first, *second)

	// Decoding through the box equals decoding the inner type, then wrapping.
	plain, err := IntBinder{}.FromInputValue(lit)
	require.NoError(t, err)
	require.Equal(t, plain, *first)
}

func TestBoxBinder_FromInputValue_ErrorDelegation(t *testing.T) {
	b := NewBoxBinder[Array[int]](NewArrayBinder[int](IntBinder{}, 2))

	boxed, err := b.FromInputValue(language.Null())
	require.ErrorIs(t, err, ErrNullValue)
	require.Nil(t, boxed)
}

func TestBoxBinder_ResolveValue_Forwards(t *testing.T) {
	ex := NewExecutor(context.Background())
	b := NewBoxBinder[int](IntBinder{})

	v := 5
	got, err := b.ResolveValue(&v, nil, nil, ex)
	require.NoError(t, err)
	require.Equal(t, 5, got)

	got, err = b.ResolveValueAsync(context.Background(), &v, nil, nil, ex)
	require.NoError(t, err)
	require.Equal(t, 5, got)
}

func TestBoxBinder_Release_Forwards(t *testing.T) {
	elem := newCountingBinder()
	b := NewBoxBinder[int](elem)

	v := 9
	b.Release(&v)
	require.Equal(t, []int{9}, elem.released)

	b.Release(nil)
	require.Equal(t, []int{9}, elem.released)
}

func TestBoxBinder_FromAbsentValue(t *testing.T) {
	b := NewBoxBinder[Array[int]](NewArrayBinder[int](IntBinder{}, 1))
	_, err := b.FromAbsentValue()
	require.ErrorIs(t, err, ErrNullValue)
}
