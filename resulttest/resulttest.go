// Package resulttest provides loggers for testing code that builds xgxresult
// Results.
package resulttest

import (
	"sync"

	xgxresult "github.com/xgx-io/xgx-result"
)

// Entry is one call to Recorder.Log.
type Entry struct {
	Level   xgxresult.Level
	Message string
}

// Recorder is an xgxresult.Logger that keeps every entry in memory.
// Thread-safe for concurrent use in tests.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
	onLog   func(Entry)
}

var _ xgxresult.Logger = (*Recorder)(nil)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		entries: make([]Entry, 0),
	}
}

// WithCallback sets a function invoked after each entry is recorded.
func (r *Recorder) WithCallback(fn func(Entry)) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onLog = fn
	return r
}

// Log records the entry.
func (r *Recorder) Log(level xgxresult.Level, msg string) {
	e := Entry{Level: level, Message: msg}
	r.mu.Lock()
	r.entries = append(r.entries, e)
	onLog := r.onLog
	r.mu.Unlock()

	if onLog != nil {
		onLog(e)
	}
}

// Entries returns a copy of all recorded entries.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Messages returns the recorded messages in order.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Message
	}
	return out
}

// Count returns the number of recorded entries.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// CountOf returns how many entries carry msg.
func (r *Recorder) CountOf(msg string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.entries {
		if e.Message == msg {
			n++
		}
	}
	return n
}

// Reset clears all recorded entries.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = r.entries[:0]
}

// Panicking returns a Logger whose Log panics with v.
func Panicking(v any) xgxresult.Logger {
	return xgxresult.LoggerFunc(func(xgxresult.Level, string) {
		panic(v)
	})
}
