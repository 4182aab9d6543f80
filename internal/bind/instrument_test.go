package bind

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	eventbus "github.com/hanpama/graphbind/internal/eventbus"
	events "github.com/hanpama/graphbind/internal/events"
	language "github.com/hanpama/graphbind/internal/language"
)

func withTestBus(t *testing.T) {
	t.Helper()
	eventbus.Use(eventbus.New())
	t.Cleanup(func() { eventbus.Use(nil) })
}

func TestDecode_PublishesEvents(t *testing.T) {
	withTestBus(t)

	var starts []events.DecodeStart
	var finishes []events.DecodeFinish
	eventbus.Subscribe(func(_ context.Context, e events.DecodeStart) { starts = append(starts, e) })
	eventbus.Subscribe(func(_ context.Context, e events.DecodeFinish) { finishes = append(finishes, e) })

	b := NewArrayBinder[int](IntBinder{}, 2)
	got, err := Decode[Array[int]](context.Background(), b, mustParseValue(t, "[1, 2]"))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, got.Elems())

	require.Len(t, starts, 1)
	require.Equal(t, "[Int]", starts[0].Type)
	require.Len(t, finishes, 1)
	require.NoError(t, finishes[0].Err)

	_, err = Decode[Array[int]](context.Background(), b, language.Null())
	require.ErrorIs(t, err, ErrNullValue)
	require.Len(t, finishes, 2)
	require.ErrorIs(t, finishes[1].Err, ErrNullValue)
}

func TestResolve_PublishesEvents(t *testing.T) {
	withTestBus(t)

	var finishes []events.ResolveFinish
	eventbus.Subscribe(func(_ context.Context, e events.ResolveFinish) { finishes = append(finishes, e) })

	b := NewArrayBinder[int](IntBinder{}, 2)
	ex := NewExecutor(context.Background())
	arr := MakeArray(1, 2)

	got, err := Resolve[Array[int]](b, arr, nil, nil, ex)
	require.NoError(t, err)
	require.Equal(t, []any{1, 2}, got)

	got, err = ResolveAsync[Array[int]](context.Background(), b, arr, nil, nil, ex)
	require.NoError(t, err)
	require.Equal(t, []any{1, 2}, got)

	require.Len(t, finishes, 2)
	require.False(t, finishes[0].Async)
	require.True(t, finishes[1].Async)
	require.Equal(t, "[Int]", finishes[0].Type)
}

func TestDecode_WithoutBusIsQuiet(t *testing.T) {
	eventbus.Use(nil)
	b := NewBoxBinder[int](IntBinder{})
	got, err := Decode[*int](context.Background(), b, mustParseValue(t, "3"))
	require.NoError(t, err)
	require.Equal(t, 3, *got)
}
