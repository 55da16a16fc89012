// Package klogsink writes xgxresult records through the global klog logger.
//
// Debug and trace entries use klog verbosity, so they only appear when klog
// runs with -v at or above DebugV and TraceV respectively.
package klogsink

import (
	"k8s.io/klog/v2"

	xgxresult "github.com/xgx-io/xgx-result"
)

// klog verbosity for debug and trace entries.
const (
	DebugV klog.Level = 4
	TraceV klog.Level = 5
)

// Sink is an xgxresult.Logger backed by klog. The zero value is ready to use.
type Sink struct {
	// Prefix is prepended to every message, e.g. "ID: 42 ".
	Prefix string
}

// New returns a Sink that prefixes every message with prefix.
func New(prefix string) *Sink {
	return &Sink{Prefix: prefix}
}

// Log implements xgxresult.Logger.
func (s *Sink) Log(level xgxresult.Level, msg string) {
	msg = s.Prefix + msg
	switch level {
	case xgxresult.LevelTrace:
		klog.V(TraceV).Info(msg)
	case xgxresult.LevelDebug:
		klog.V(DebugV).Info(msg)
	case xgxresult.LevelInfo:
		klog.InfoDepth(1, msg)
	case xgxresult.LevelWarn:
		klog.WarningDepth(1, msg)
	default:
		klog.ErrorDepth(1, msg)
	}
}
