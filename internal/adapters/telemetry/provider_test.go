package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/jitsnap/internal/adapters/telemetry"
)

func setupRecorder(t *testing.T) (*tracetest.SpanRecorder, *trace.TracerProvider) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := trace.NewTracerProvider(trace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return sr, tp
}

func TestOTelTracer_Start(t *testing.T) {
	sr, tp := setupRecorder(t)
	tracer := telemetry.NewOTelTracer(tp, "test-tracer")

	_, span := tracer.Start(context.Background(), "snapshot.bundle")
	span.SetAttribute("working_dir", "/srv/app")
	span.SetAttribute("files", 2)
	span.SetAttribute("size", int64(42))
	span.SetAttribute("ratio", 0.5)
	span.SetAttribute("generated", true)
	span.SetAttribute("entry_points", []string{"main.ts"})
	span.SetAttribute("other", struct{ A int }{A: 1})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "snapshot.bundle", spans[0].Name())

	attrs := spans[0].Attributes()
	assert.Contains(t, attrs, attribute.String("working_dir", "/srv/app"))
	assert.Contains(t, attrs, attribute.Int("files", 2))
	assert.Contains(t, attrs, attribute.Int64("size", 42))
	assert.Contains(t, attrs, attribute.Float64("ratio", 0.5))
	assert.Contains(t, attrs, attribute.Bool("generated", true))
	assert.Contains(t, attrs, attribute.StringSlice("entry_points", []string{"main.ts"}))
	assert.Contains(t, attrs, attribute.String("other", "{1}"))
}

func TestOTelTracer_NestedSpans(t *testing.T) {
	sr, tp := setupRecorder(t)
	tracer := telemetry.NewOTelTracer(tp, "test-tracer")

	ctx, parent := tracer.Start(context.Background(), "parent")
	_, child := tracer.Start(ctx, "child")
	child.End()
	parent.End()

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())
}

func TestOTelSpan_RecordError(t *testing.T) {
	sr, tp := setupRecorder(t)
	tracer := telemetry.NewOTelTracer(tp, "test-tracer")

	_, span := tracer.Start(context.Background(), "snapshot.tag")
	span.RecordError(errors.New("permission denied"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "permission denied", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	got, span := tracer.Start(ctx, "noop")
	assert.Equal(t, ctx, got)

	span.SetAttribute("k", "v")
	span.RecordError(errors.New("ignored"))
	span.End()
}
