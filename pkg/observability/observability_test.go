package observability

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewTracer_Disabled(t *testing.T) {
	tr, err := NewTracer(TracingConfig{})
	require.NoError(t, err)
	assert.False(t, tr.Enabled())

	ctx, span := tr.Start(context.Background(), "noop")
	assert.False(t, span.IsRecording())
	assert.False(t, span.SpanContext().IsValid())
	EndSpan(span, nil)

	assert.NoError(t, tr.Shutdown(ctx))
}

func TestNewTracer_ExportsSpans(t *testing.T) {
	var buf bytes.Buffer
	tr, err := NewTracer(TracingConfig{
		Enabled:        true,
		ServiceName:    "slugger-test",
		ServiceVersion: "0.0.0-test",
		Writer:         &buf,
	})
	require.NoError(t, err)
	require.True(t, tr.Enabled())

	ctx, parent := tr.Start(context.Background(), "demo")
	_, child := tr.Start(ctx, "sort", attribute.String("key", "avg"))
	assert.True(t, child.IsRecording())
	assert.Equal(t, parent.SpanContext().TraceID(), child.SpanContext().TraceID())

	EndSpan(child, assert.AnError)
	EndSpan(parent, nil)
	require.NoError(t, tr.Shutdown(context.Background()))

	out := buf.String()
	assert.Contains(t, out, `"Name":"sort"`)
	assert.Contains(t, out, `"Name":"demo"`)
	assert.Contains(t, out, `"Key":"key"`)
	assert.Contains(t, out, "slugger-test")
	assert.Contains(t, out, assert.AnError.Error())
}

func TestNilTracer(t *testing.T) {
	var tr *Tracer
	assert.False(t, tr.Enabled())

	ctx, span := tr.Start(context.Background(), "x")
	assert.NotNil(t, ctx)
	assert.False(t, span.IsRecording())
	assert.NoError(t, tr.Shutdown(ctx))
}

func TestLoggerWithSpan(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	// No span: unchanged
	LoggerWithSpan(context.Background(), logger).Info("plain")

	var buf bytes.Buffer
	tr, err := NewTracer(TracingConfig{Enabled: true, Writer: &buf})
	require.NoError(t, err)
	defer func() { _ = tr.Shutdown(context.Background()) }()

	ctx, span := tr.Start(context.Background(), "traced")
	LoggerWithSpan(ctx, logger).Info("traced")
	span.End()

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Empty(t, entries[0].ContextMap())

	fields := entries[1].ContextMap()
	assert.Equal(t, span.SpanContext().TraceID().String(), fields["trace_id"])
	assert.Equal(t, span.SpanContext().SpanID().String(), fields["span_id"])
}
