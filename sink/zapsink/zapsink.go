// Package zapsink writes xgxresult records to a *zap.Logger.
package zapsink

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	xgxresult "github.com/xgx-io/xgx-result"
)

// Sink is an xgxresult.Logger backed by zap.
type Sink struct {
	log *zap.Logger
}

// New returns a Sink writing to logger with fields attached to every entry.
// A nil logger yields a Sink that writes nowhere.
func New(logger *zap.Logger, fields ...zap.Field) *Sink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sink{log: logger.With(fields...)}
}

// Log implements xgxresult.Logger. Critical entries are written at error level
// with critical=true, since zap's levels above error panic or exit.
func (s *Sink) Log(level xgxresult.Level, msg string) {
	if level == xgxresult.LevelCritical {
		s.log.Log(zapcore.ErrorLevel, msg, zap.Bool("critical", true))
		return
	}
	s.log.Log(Level(level), msg)
}

// Level maps an xgxresult level onto zap. Unset maps to zapcore.ErrorLevel.
func Level(l xgxresult.Level) zapcore.Level {
	switch l {
	case xgxresult.LevelTrace, xgxresult.LevelDebug:
		return zapcore.DebugLevel
	case xgxresult.LevelInfo:
		return zapcore.InfoLevel
	case xgxresult.LevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
