package xgxresult

import "strings"

// Level is the severity a record is logged at. The zero value means "not set";
// see effectiveLevel for how it is resolved.
type Level int8

const (
	LevelTrace Level = iota + 1
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelCritical
)

var levelNames = map[Level]string{
	LevelTrace:    "trace",
	LevelDebug:    "debug",
	LevelInfo:     "info",
	LevelWarn:     "warn",
	LevelError:    "error",
	LevelCritical: "critical",
}

func (l Level) String() string {
	if s, ok := levelNames[l]; ok {
		return s
	}
	return "unset"
}

// ParseLevel maps a level name (case-insensitive) back to a Level.
func ParseLevel(s string) (Level, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for l, name := range levelNames {
		if name == s {
			return l, true
		}
	}
	return 0, false
}

// effectiveLevel returns the first level that is set, or LevelError.
func effectiveLevel(levels ...Level) Level {
	for _, l := range levels {
		if l != 0 {
			return l
		}
	}
	return LevelError
}

// Logger is the sink a Result writes records to. Implementations must be safe
// for concurrent use; a panic raised by Log propagates to the appending caller.
//
// Adapters for slog, zap, logr, klog, OpenTelemetry spans and Prometheus live
// under the sink/ directory.
type Logger interface {
	Log(level Level, msg string)
}

// LoggerFunc adapts a plain function to Logger.
type LoggerFunc func(level Level, msg string)

// Log calls f(level, msg).
func (f LoggerFunc) Log(level Level, msg string) { f(level, msg) }
