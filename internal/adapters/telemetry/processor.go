package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/autobahn/internal/core/ports"
)

// LogProcessor is an sdktrace.SpanProcessor that reports finished spans at debug level.
type LogProcessor struct {
	log ports.Logger
}

var _ sdktrace.SpanProcessor = (*LogProcessor)(nil)

// NewLogProcessor creates a LogProcessor writing to log.
func NewLogProcessor(log ports.Logger) *LogProcessor {
	return &LogProcessor{log: log}
}

// OnStart does nothing.
func (p *LogProcessor) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, its duration and any attributes set on it.
func (p *LogProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	args := []any{
		"span", s.Name(),
		"duration", s.EndTime().Sub(s.StartTime()).Round(time.Microsecond).String(),
	}
	for _, kv := range s.Attributes() {
		args = append(args, string(kv.Key), kv.Value.Emit())
	}
	if s.Status().Code == codes.Error {
		args = append(args, "status", "error")
	}

	p.log.Debug("span finished", args...)
}

// Shutdown does nothing.
func (p *LogProcessor) Shutdown(context.Context) error { return nil }

// ForceFlush does nothing.
func (p *LogProcessor) ForceFlush(context.Context) error { return nil }
