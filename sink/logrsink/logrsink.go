// Package logrsink writes xgxresult records to a logr.Logger.
//
// logr has no warning level and treats verbosity as "higher is chattier", so
// the mapping is:
//
//	critical, error  → Error(nil, msg)
//	warn, info       → V(0).Info
//	debug            → V(1).Info
//	trace            → V(2).Info
//
// Every entry carries a "severity" key holding the xgxresult level name.
package logrsink

import (
	"github.com/go-logr/logr"

	xgxresult "github.com/xgx-io/xgx-result"
)

// Verbosity levels used for debug and trace entries.
const (
	DebugV = 1
	TraceV = 2
)

// Sink is an xgxresult.Logger backed by logr.
type Sink struct {
	log logr.Logger
}

// New returns a Sink writing to logger.
func New(logger logr.Logger) *Sink {
	return &Sink{log: logger}
}

// Log implements xgxresult.Logger.
func (s *Sink) Log(level xgxresult.Level, msg string) {
	if level == 0 {
		level = xgxresult.LevelError
	}
	kv := []any{"severity", level.String()}
	switch level {
	case xgxresult.LevelTrace:
		s.log.V(TraceV).Info(msg, kv...)
	case xgxresult.LevelDebug:
		s.log.V(DebugV).Info(msg, kv...)
	case xgxresult.LevelInfo, xgxresult.LevelWarn:
		s.log.Info(msg, kv...)
	default:
		s.log.Error(nil, msg, kv...)
	}
}
