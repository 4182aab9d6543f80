package bind

import (
	"context"

	"go.uber.org/zap"
)

// Executor is the execution-context token threaded through value production.
// It carries the request context and the logger; it holds no per-field state
// and is safe to share across resolutions of the same request.
type Executor struct {
	ctx    context.Context
	logger *zap.Logger
}

// Option mutates an Executor under construction.
type Option func(*Executor)

// WithLogger sets the logger used for resolution diagnostics.
func WithLogger(l *zap.Logger) Option { return func(e *Executor) { e.logger = l } }

// NewExecutor builds an Executor for one request. The default logger is a
// nop.
func NewExecutor(ctx context.Context, opts ...Option) *Executor {
	e := &Executor{ctx: ctx, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Executor) Context() context.Context { return e.ctx }

func (e *Executor) Logger() *zap.Logger { return e.logger }
