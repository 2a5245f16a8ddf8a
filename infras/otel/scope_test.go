package otel_test

import (
	"context"
	"errors"
	"testing"

	"grandplaza/infras/otel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newRecordedScope(t *testing.T) (otel.Scope, *tracetest.SpanRecorder) {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("service").Start(context.Background(), "service.SetStatus")

	return otel.NewScope(span), recorder
}

func TestScope_Attributes(t *testing.T) {
	scope, recorder := newRecordedScope(t)

	scope.SetAttributes(map[string]any{
		"workflow.kind":     "invoice",
		"workflow.progress": 50,
		"invoice.amount":    decimal.RequireFromString("1250.50"),
		"room.available":    true,
	})
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	attrs := map[string]string{}
	for _, kv := range spans[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}

	assert.Equal(t, "invoice", attrs["workflow.kind"])
	assert.Equal(t, "50", attrs["workflow.progress"])
	assert.Equal(t, "1250.5", attrs["invoice.amount"])
	assert.Equal(t, "true", attrs["room.available"])
}

func TestScope_TraceIfError(t *testing.T) {
	scope, recorder := newRecordedScope(t)

	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("invoice not found"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "invoice not found", spans[0].Status().Description)
}
