package bind

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	language "github.com/hanpama/graphbind/internal/language"
)

// funcBinder lets tests control the resolve paths of an int binder.
type funcBinder struct {
	IntBinder

	mu           sync.Mutex
	calls        []int
	resolve      func(v int) (any, error)
	resolveAsync func(ctx context.Context, v int) (any, error)
}

func (b *funcBinder) record(v int) {
	b.mu.Lock()
	b.calls = append(b.calls, v)
	b.mu.Unlock()
}

func (b *funcBinder) ResolveValue(v int, _ language.SelectionSet, _ TypeInfo, _ *Executor) (any, error) {
	b.record(v)
	return b.resolve(v)
}

func (b *funcBinder) ResolveValueAsync(ctx context.Context, v int, _ language.SelectionSet, _ TypeInfo, _ *Executor) (any, error) {
	b.record(v)
	if b.resolveAsync != nil {
		return b.resolveAsync(ctx, v)
	}
	return b.resolve(v)
}

func TestResolveList_OrderAndShortCircuit(t *testing.T) {
	boom := errors.New("resolve failed at 30")
	b := &funcBinder{resolve: func(v int) (any, error) {
		if v == 30 {
			return nil, boom
		}
		return v, nil
	}}
	ex := NewExecutor(context.Background())

	_, err := ResolveList[int](b, []int{10, 20, 30, 40}, nil, nil, ex)
	require.ErrorIs(t, err, boom)

	// Elements are resolved in order; nothing after the failure runs.
	if diff := cmp.Diff([]int{10, 20, 30}, b.calls); diff != "" {
		t.Fatalf("resolve calls mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveList_Success(t *testing.T) {
	b := &funcBinder{resolve: func(v int) (any, error) { return v * 2, nil }}
	ex := NewExecutor(context.Background())

	got, err := ResolveList[int](b, []int{1, 2, 3}, nil, nil, ex)
	require.NoError(t, err)
	require.Equal(t, []any{2, 4, 6}, got)
}

func TestResolveListAsync_PreservesOrder(t *testing.T) {
	// Later elements finish earlier; the output must still follow input order.
	b := &funcBinder{resolveAsync: func(_ context.Context, v int) (any, error) {
		time.Sleep(time.Duration(4-v) * 5 * time.Millisecond)
		return v * 10, nil
	}}
	ex := NewExecutor(context.Background())

	got, err := ResolveListAsync[int](context.Background(), b, []int{0, 1, 2, 3}, nil, nil, ex)
	require.NoError(t, err)
	require.Equal(t, []any{0, 10, 20, 30}, got)
}

func TestResolveListAsync_FirstErrorCancelsSiblings(t *testing.T) {
	boom := errors.New("element 1 failed")
	b := &funcBinder{resolveAsync: func(ctx context.Context, v int) (any, error) {
		if v == 1 {
			return nil, boom
		}
		// Siblings park until the group context is canceled by the failure.
		<-ctx.Done()
		return nil, ctx.Err()
	}}
	ex := NewExecutor(context.Background())

	_, err := ResolveListAsync[int](context.Background(), b, []int{0, 1, 2}, nil, nil, ex)
	require.ErrorIs(t, err, boom)
}

func TestResolveListAsync_Empty(t *testing.T) {
	ex := NewExecutor(context.Background())
	got, err := ResolveListAsync[int](context.Background(), IntBinder{}, nil, nil, nil, ex)
	require.NoError(t, err)
	require.Equal(t, []any{}, got)
}
