package router

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Snickdx/project-graph/internal/bank"
)

// TracedRouter wraps a Router with OpenTelemetry tracing. Each handled
// question becomes a span carrying the chosen method, confidence and
// template key; reloads become spans carrying the new bank size.
//
// Thread-safety: safe for concurrent access (delegates to the inner router).
type TracedRouter struct {
	inner  *Router
	tracer trace.Tracer
}

// NewTracedRouter creates a traced wrapper around a router.
func NewTracedRouter(inner *Router, tracer trace.Tracer) *TracedRouter {
	return &TracedRouter{inner: inner, tracer: tracer}
}

// Handle answers one question inside a "router.handle" span.
func (t *TracedRouter) Handle(ctx context.Context, rawText string) Envelope {
	ctx, span := t.tracer.Start(ctx, "router.handle")
	defer span.End()

	env := t.inner.Handle(ctx, rawText)

	span.SetAttributes(
		attribute.String("router.request_id", env.RequestID),
		attribute.String("router.method", string(env.Method)),
		attribute.Float64("router.confidence", env.Confidence),
		attribute.Bool("router.degraded_from_template", env.DegradedFromTemplate),
	)
	if env.SourceTemplateKey != "" {
		span.SetAttributes(attribute.String("router.template_key", env.SourceTemplateKey))
	}
	if env.Method == MethodError {
		span.SetStatus(codes.Error, "both resolution paths failed")
	} else {
		span.SetStatus(codes.Ok, "")
	}

	return env
}

// ReloadBank swaps in a fresh bank inside a "router.reload_bank" span.
func (t *TracedRouter) ReloadBank(ctx context.Context, sources []bank.SourceRecord) error {
	ctx, span := t.tracer.Start(ctx, "router.reload_bank")
	defer span.End()

	span.SetAttributes(attribute.Int("router.source_count", len(sources)))

	if err := t.inner.ReloadBank(ctx, sources); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "bank reload failed")
		return err
	}

	span.SetStatus(codes.Ok, "")
	return nil
}
