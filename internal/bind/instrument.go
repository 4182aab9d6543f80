package bind

import (
	"context"
	"time"

	"go.uber.org/zap"

	eventbus "github.com/hanpama/graphbind/internal/eventbus"
	events "github.com/hanpama/graphbind/internal/events"
	language "github.com/hanpama/graphbind/internal/language"
)

// Decode converts an input literal through b, publishing decode events on
// the global bus. FromInputValue itself stays pure; this is the seam where
// observability attaches.
func Decode[T any](ctx context.Context, b Binder[T], v *language.Value) (T, error) {
	typeName := b.Describe(nil).String()
	eventbus.Publish(ctx, events.DecodeStart{Type: typeName})
	started := time.Now()
	out, err := b.FromInputValue(v)
	eventbus.Publish(ctx, events.DecodeFinish{Type: typeName, Err: err, Duration: time.Since(started)})
	if err != nil {
		Logger().Debug("decode failed", zap.String("type", typeName), zap.Error(err))
	}
	return out, err
}

// Resolve produces the output value for v through b, publishing resolve
// events and logging failures on the executor's logger.
func Resolve[T any](b Binder[T], v T, sel language.SelectionSet, info TypeInfo, ex *Executor) (any, error) {
	typeName := b.Describe(info).String()
	eventbus.Publish(ex.Context(), events.ResolveStart{Type: typeName})
	started := time.Now()
	out, err := b.ResolveValue(v, sel, info, ex)
	eventbus.Publish(ex.Context(), events.ResolveFinish{Type: typeName, Err: err, Duration: time.Since(started)})
	if err != nil {
		ex.Logger().Debug("resolve failed", zap.String("type", typeName), zap.Error(err))
	}
	return out, err
}

// ResolveAsync is the asynchronous counterpart of Resolve.
func ResolveAsync[T any](ctx context.Context, b Binder[T], v T, sel language.SelectionSet, info TypeInfo, ex *Executor) (any, error) {
	typeName := b.Describe(info).String()
	eventbus.Publish(ctx, events.ResolveStart{Type: typeName, Async: true})
	started := time.Now()
	out, err := b.ResolveValueAsync(ctx, v, sel, info, ex)
	eventbus.Publish(ctx, events.ResolveFinish{Type: typeName, Async: true, Err: err, Duration: time.Since(started)})
	if err != nil {
		ex.Logger().Debug("resolve failed", zap.String("type", typeName), zap.Bool("async", true), zap.Error(err))
	}
	return out, err
}
