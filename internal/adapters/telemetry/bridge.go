package telemetry

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/jitsnap/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor by reporting finished spans to a logger at debug level.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{logger: logger}
}

// NewProvider returns a TracerProvider whose spans are reported through the bridge.
func NewProvider(logger ports.Logger) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewBridge(logger)),
	)
}

// OnStart does nothing.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, duration, attributes, and failure description.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "span %s took %s", s.Name(), s.EndTime().Sub(s.StartTime()))
	for _, kv := range s.Attributes() {
		fmt.Fprintf(&sb, " %s=%s", kv.Key, kv.Value.Emit())
	}
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "span failed"
		}
		fmt.Fprintf(&sb, " error=%q", desc)
	}

	b.logger.Debug(sb.String())
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}
