// Package otelsink records xgxresult records as events on an OpenTelemetry span.
//
// Every logged record becomes a span event named EventName carrying the
// severity and message as attributes. Error and critical records also set the
// span status to Error with the record message as description.
package otelsink

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	xgxresult "github.com/xgx-io/xgx-result"
)

// EventName is the name of the span events written by Sink.
const EventName = "xgxresult.record"

// Attribute keys set on each event.
const (
	SeverityKey = attribute.Key("xgxresult.severity")
	MessageKey  = attribute.Key("xgxresult.message")
)

// Sink is an xgxresult.Logger writing to a span.
type Sink struct {
	span trace.Span
}

// New returns a Sink writing to span.
func New(span trace.Span) *Sink {
	return &Sink{span: span}
}

// FromContext returns a Sink writing to the span carried by ctx. Without one
// the events go to a no-op span.
func FromContext(ctx context.Context) *Sink {
	return New(trace.SpanFromContext(ctx))
}

// Log implements xgxresult.Logger.
func (s *Sink) Log(level xgxresult.Level, msg string) {
	if level == 0 {
		level = xgxresult.LevelError
	}
	s.span.AddEvent(EventName, trace.WithAttributes(
		SeverityKey.String(level.String()),
		MessageKey.String(msg),
	))
	if level >= xgxresult.LevelError {
		s.span.SetStatus(codes.Error, msg)
	}
}
