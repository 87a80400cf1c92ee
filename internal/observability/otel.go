// Package observability wires optional OTLP trace export. Tracing is off
// unless TRUSTREPLY_OTEL_ENABLED is set; the rest of the code acquires
// tracers through the global provider and works unchanged either way.
package observability

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.27.0"
)

type Config struct {
	ServiceName string
	Version     string
	Enabled     bool
}

var (
	initOnce sync.Once
	shutdown func(context.Context) error
)

// Init installs the tracer provider. The returned shutdown function is nil
// when tracing is disabled.
func Init(ctx context.Context, cfg Config) func(context.Context) error {
	initOnce.Do(func() {
		if !cfg.Enabled {
			return
		}
		name := strings.TrimSpace(cfg.ServiceName)
		if name == "" {
			name = "trustreply"
		}
		res, err := resource.New(ctx, resource.WithAttributes(
			semconv.ServiceNameKey.String(name),
			semconv.ServiceVersionKey.String(strings.TrimSpace(cfg.Version)),
		))
		if err != nil {
			log.Printf("otel resource init failed (continuing): %v", err)
		}
		exporter, err := otlptracehttp.New(ctx)
		if err != nil {
			log.Printf("otel exporter init failed, tracing disabled: %v", err)
			return
		}
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)),
			sdktrace.WithResource(res),
		)
		otel.SetTracerProvider(tp)
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		))
		shutdown = tp.Shutdown
		log.Printf("otel tracing initialized service=%s", name)
	})
	return shutdown
}
