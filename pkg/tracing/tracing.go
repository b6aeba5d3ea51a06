package tracing

import (
	"Recycle/config"
	"Recycle/pkg/log"
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.uber.org/zap"
)

type ShutdownFunc func(context.Context) error

// Init 配置 OTLP HTTP 导出；未配置 endpoint 时为 no-op
func Init(ctx context.Context, conf *config.Config) (ShutdownFunc, error) {
	if conf.Tracing == nil || conf.Tracing.Endpoint == "" {
		log.L.Info("tracing disabled")
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(conf.Tracing.Endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(conf.Tracing.ServiceName),
			semconv.DeploymentEnvironment(conf.App.Env),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	log.L.Info("tracing initialized", zap.String("endpoint", conf.Tracing.Endpoint))
	return tp.Shutdown, nil
}
