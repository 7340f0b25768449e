package router

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Snickdx/project-graph/internal/bank"
)

func newRecordingTracer() (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	return recorder, provider
}

func spanAttr(span sdktrace.ReadOnlySpan, key attribute.Key) (attribute.Value, bool) {
	for _, kv := range span.Attributes() {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestTracedRouter_HandleRecordsSpan(t *testing.T) {
	recorder, provider := newRecordingTracer()
	f := newFixture(t)
	traced := NewTracedRouter(f.router, provider.Tracer("test"))

	env := traced.Handle(context.Background(), "Who are the stakeholders?")
	require.Equal(t, MethodTemplate, env.Method)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "router.handle", spans[0].Name())

	method, ok := spanAttr(spans[0], "router.method")
	require.True(t, ok)
	assert.Equal(t, "template", method.AsString())

	key, ok := spanAttr(spans[0], "router.template_key")
	require.True(t, ok)
	assert.Equal(t, "who-are-the-stakeholders", key.AsString())
}

func TestTracedRouter_ErrorSetsSpanStatus(t *testing.T) {
	recorder, provider := newRecordingTracer()
	f := newFixture(t)
	f.embedder.SetEmbedError(errors.New("down"))
	f.reasoner.SetError(errors.New("also down"))
	traced := NewTracedRouter(f.router, provider.Tracer("test"))

	env := traced.Handle(context.Background(), "anything")
	require.Equal(t, MethodError, env.Method)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "both resolution paths failed", spans[0].Status().Description)
}

func TestTracedRouter_ReloadBank(t *testing.T) {
	recorder, provider := newRecordingTracer()
	f := newFixture(t)
	traced := NewTracedRouter(f.router, provider.Tracer("test"))

	err := traced.ReloadBank(context.Background(), []bank.SourceRecord{
		{CanonicalQuestion: "budget breakdown", QueryPattern: "MATCH (li:Line_Item) RETURN li"},
	})
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "router.reload_bank", spans[0].Name())

	count, ok := spanAttr(spans[0], "router.source_count")
	require.True(t, ok)
	assert.EqualValues(t, 1, count.AsInt64())
}
