package otel

import (
	"context"
	"sync"

	eventbus "github.com/hanpama/graphbind/internal/eventbus"
	events "github.com/hanpama/graphbind/internal/events"
	reqid "github.com/hanpama/graphbind/internal/reqid"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
)

// Setup configures OpenTelemetry and attaches eventbus subscribers that turn
// decode/resolve events into spans. If endpoint is empty, no telemetry is
// configured.
func Setup(endpoint, service string) (func(context.Context) error, error) {
	if endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}
	exp, err := otlptracegrpc.New(context.Background(),
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithDialOption(grpc.WithInsecure()))
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(service),
		)),
	)
	otel.SetTracerProvider(tp)

	sub := &subscriber{tracer: otel.Tracer("graphbind")}
	sub.register()

	return tp.Shutdown, nil
}

type subscriber struct {
	tracer       trace.Tracer
	decodeSpans  sync.Map // rid -> trace.Span
	resolveSpans sync.Map // rid -> trace.Span
}

func (s *subscriber) register() {
	eventbus.Subscribe(func(ctx context.Context, e events.DecodeStart) {
		rid, _ := reqid.FromContext(ctx)
		_, span := s.tracer.Start(ctx, "bind.decode")
		span.SetAttributes(attribute.String("graphbind.type", e.Type))
		s.decodeSpans.Store(rid, span)
	})
	eventbus.Subscribe(func(ctx context.Context, e events.DecodeFinish) {
		rid, _ := reqid.FromContext(ctx)
		v, ok := s.decodeSpans.LoadAndDelete(rid)
		if !ok {
			return
		}
		span := v.(trace.Span)
		if e.Err != nil {
			span.RecordError(e.Err)
			span.SetStatus(codes.Error, e.Err.Error())
		}
		span.End()
	})
	eventbus.Subscribe(func(ctx context.Context, e events.ResolveStart) {
		rid, _ := reqid.FromContext(ctx)
		_, span := s.tracer.Start(ctx, "bind.resolve")
		span.SetAttributes(
			attribute.String("graphbind.type", e.Type),
			attribute.Bool("graphbind.async", e.Async),
		)
		s.resolveSpans.Store(rid, span)
	})
	eventbus.Subscribe(func(ctx context.Context, e events.ResolveFinish) {
		rid, _ := reqid.FromContext(ctx)
		v, ok := s.resolveSpans.LoadAndDelete(rid)
		if !ok {
			return
		}
		span := v.(trace.Span)
		if e.Err != nil {
			span.RecordError(e.Err)
			span.SetStatus(codes.Error, e.Err.Error())
		}
		span.End()
	})
}
