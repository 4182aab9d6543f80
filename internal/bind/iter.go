package bind

import (
	"context"

	"golang.org/x/sync/errgroup"

	language "github.com/hanpama/graphbind/internal/language"
)

// ResolveList produces the aggregated output value for an ordered sequence
// of bindable elements. Elements are resolved in order; the first failure
// propagates and no later element is resolved.
func ResolveList[T any](b Binder[T], elems []T, sel language.SelectionSet, info TypeInfo, ex *Executor) (any, error) {
	out := make([]any, len(elems))
	for i, el := range elems {
		v, err := b.ResolveValue(el, sel, info, ex)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ResolveListAsync is the asynchronous variant of ResolveList. Elements may
// resolve concurrently, but the output preserves input order. The first
// failure cancels the remaining elements' contexts and is the one returned;
// results of elements still in flight are discarded.
func ResolveListAsync[T any](ctx context.Context, b Binder[T], elems []T, sel language.SelectionSet, info TypeInfo, ex *Executor) (any, error) {
	g, ctx := errgroup.WithContext(ctx)
	out := make([]any, len(elems))
	for i, el := range elems {
		g.Go(func() error {
			v, err := b.ResolveValueAsync(ctx, el, sel, info, ex)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
