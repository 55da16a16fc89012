// Package slogsink writes xgxresult records to a *slog.Logger.
package slogsink

import (
	"context"
	"log/slog"

	xgxresult "github.com/xgx-io/xgx-result"
)

// Extra slog levels for the xgxresult levels slog has no name for.
const (
	LevelTrace    = slog.LevelDebug - 4
	LevelCritical = slog.LevelError + 4
)

// Sink is an xgxresult.Logger backed by slog.
type Sink struct {
	log   *slog.Logger
	attrs []slog.Attr
}

// Option configures a Sink.
type Option func(*Sink)

// Attrs adds attributes to every entry the Sink writes.
func Attrs(attrs ...slog.Attr) Option {
	return func(s *Sink) {
		s.attrs = append(s.attrs, attrs...)
	}
}

// New returns a Sink writing to logger, or to slog.Default() when logger is nil.
func New(logger *slog.Logger, opts ...Option) *Sink {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Sink{log: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Log implements xgxresult.Logger.
func (s *Sink) Log(level xgxresult.Level, msg string) {
	s.log.LogAttrs(context.Background(), Level(level), msg, s.attrs...)
}

// Level maps an xgxresult level onto slog. Unset maps to slog.LevelError.
func Level(l xgxresult.Level) slog.Level {
	switch l {
	case xgxresult.LevelTrace:
		return LevelTrace
	case xgxresult.LevelDebug:
		return slog.LevelDebug
	case xgxresult.LevelInfo:
		return slog.LevelInfo
	case xgxresult.LevelWarn:
		return slog.LevelWarn
	case xgxresult.LevelCritical:
		return LevelCritical
	default:
		return slog.LevelError
	}
}
