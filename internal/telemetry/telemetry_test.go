package telemetry

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestSetupInstallsProviders(t *testing.T) {
	prevTracer := otel.GetTracerProvider()
	prevMeter := otel.GetMeterProvider()
	t.Cleanup(func() {
		otel.SetTracerProvider(prevTracer)
		otel.SetMeterProvider(prevMeter)
	})

	// Nothing listens here; exports fail fast and are not checked.
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://127.0.0.1:1")

	shutdown, err := Setup(context.Background(), logr.Discard())
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()
		_ = shutdown(ctx)
	}()

	if _, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider); !ok {
		t.Errorf("tracer provider = %T, want *sdktrace.TracerProvider", otel.GetTracerProvider())
	}
	if _, ok := otel.GetMeterProvider().(*sdkmetric.MeterProvider); !ok {
		t.Errorf("meter provider = %T, want *sdkmetric.MeterProvider", otel.GetMeterProvider())
	}
}

func TestLoggerWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := Logger(&buf, 1)

	logger.Info("hello", "scene", "Scene1_Farm")
	logger.V(1).Info("detail")
	logger.V(2).Info("too verbose")

	out := buf.String()
	if !strings.Contains(out, `"hello"`) || !strings.Contains(out, "Scene1_Farm") {
		t.Errorf("log output missing info line:\n%s", out)
	}
	if !strings.Contains(out, `"detail"`) {
		t.Errorf("log output missing V(1) line:\n%s", out)
	}
	if strings.Contains(out, "too verbose") {
		t.Errorf("log output contains V(2) line at verbosity 1:\n%s", out)
	}
}
