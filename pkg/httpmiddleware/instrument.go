package httpmiddleware

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// TelemetryProvider supplies the tracer and meter providers used to
// instrument the server. *app.Telemetry from go-faster/sdk satisfies it.
type TelemetryProvider interface {
	TracerProvider() trace.TracerProvider
	MeterProvider() metric.MeterProvider
}

// Instrument wraps the chain with otelhttp so every request produces a
// server span and request metrics attributed to serviceName. The span is
// renamed to the matched route pattern once the mux has resolved it, so
// traces group by route instead of raw URL.
func Instrument(serviceName string, t TelemetryProvider) Middleware {
	return func(next http.Handler) http.Handler {
		named := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			// ServeMux fills in Pattern on match; the span starts before
			// routing, so the route-based name is applied afterwards.
			if r.Pattern != "" {
				trace.SpanFromContext(r.Context()).SetName(r.Pattern)
			}
		})
		return otelhttp.NewHandler(named, serviceName,
			otelhttp.WithTracerProvider(t.TracerProvider()),
			otelhttp.WithMeterProvider(t.MeterProvider()),
		)
	}
}
