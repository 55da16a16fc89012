// Package sink holds helpers shared by the xgxresult logger adapters. Each
// adapter lives in its own sub-package so importing one backend does not pull
// in the others.
package sink

import xgxresult "github.com/xgx-io/xgx-result"

type multi []xgxresult.Logger

// Multi returns a Logger that forwards every entry to each non-nil logger in
// order. It returns nil when no logger is given, so the result can be passed
// straight to xgxresult.New.
func Multi(loggers ...xgxresult.Logger) xgxresult.Logger {
	out := make(multi, 0, len(loggers))
	for _, l := range loggers {
		if l != nil {
			out = append(out, l)
		}
	}
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0]
	default:
		return out
	}
}

func (m multi) Log(level xgxresult.Level, msg string) {
	for _, l := range m {
		l.Log(level, msg)
	}
}

// Discard is a Logger that drops every entry. Records appended to a Result
// bound to Discard are marked logged.
var Discard xgxresult.Logger = xgxresult.LoggerFunc(func(xgxresult.Level, string) {})
