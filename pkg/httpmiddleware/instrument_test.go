package httpmiddleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric"
	mnoop "go.opentelemetry.io/otel/metric/noop"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

type testTelemetry struct {
	tp trace.TracerProvider
	mp metric.MeterProvider
}

func (t testTelemetry) TracerProvider() trace.TracerProvider { return t.tp }
func (t testTelemetry) MeterProvider() metric.MeterProvider  { return t.mp }

func newSpanRecorder() (*tracetest.SpanRecorder, testTelemetry) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	return sr, testTelemetry{tp: tp, mp: mnoop.NewMeterProvider()}
}

func TestInstrument_SpanNamedAfterRoute(t *testing.T) {
	sr, tel := newSpanRecorder()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/orders/{email}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	h := Wrap(mux, Instrument("grokart-api", tel))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orders/a@example.com", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /api/orders/{email}", spans[0].Name())
	assert.Equal(t, trace.SpanKindServer, spans[0].SpanKind())
}

func TestInstrument_UnmatchedRouteKeepsServiceName(t *testing.T) {
	sr, tel := newSpanRecorder()

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	Wrap(inner, Instrument("grokart-api", tel)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/anything", nil))

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "grokart-api", spans[0].Name())
}

func TestInstrument_HandlerSeesActiveSpan(t *testing.T) {
	_, tel := newSpanRecorder()

	var inSpan bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inSpan = trace.SpanFromContext(r.Context()).SpanContext().IsValid()
	})

	rec := httptest.NewRecorder()
	Wrap(inner, Instrument("grokart-api", tel)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.True(t, inSpan, "request context should carry the server span")
}
