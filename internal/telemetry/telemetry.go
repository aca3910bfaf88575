package telemetry

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/fleetcases/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Setup installs global tracer provider exporting over otlp grpc, returned func flushes and stops it.
// Nothing is installed if exporter endpoint is not configured.
func Setup(ctx context.Context, cfg config.TelemetryCfg) func(context.Context) error {
	if cfg.Endpoint == "" {
		return func(context.Context) error { return nil }
	}

	opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}

	exporter, err := otlptracegrpc.New(ctx, opts...)
	if err != nil {
		logrus.Errorf("telemetry: failed to build otlp exporter - %v", err)
		return func(context.Context) error { return nil }
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)))
	if err != nil {
		logrus.Warnf("telemetry: failed to build resource - %v", err)
	}

	provider := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(res),
	)
	otel.SetTracerProvider(provider)

	logrus.Infof("telemetry: exporting traces to %s", cfg.Endpoint)
	return provider.Shutdown
}
