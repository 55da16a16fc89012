// stack.go: stack capture for contract violations.
//
// A blank message or nil record passed to an append operation is a bug at the
// call site, so the panic value records where it happened. Frames are resolved
// with runtime.CallersFrames, which expands inlined calls correctly.
package xgxresult

import (
	"runtime"
)

// Frame is a single call site in a stack trace.
type Frame struct {
	PC       uintptr
	File     string
	Line     int
	Function string
}

// Stack lists Frames from the most recent call outward.
type Stack []Frame

const defaultMaxDepth = 32

// captureStackDefault captures up to defaultMaxDepth frames. skip counts frames
// above the caller of captureStackDefault.
func captureStackDefault(skip int) Stack {
	return captureStack(skip, defaultMaxDepth)
}

// captureStack skips runtime.Callers, itself and captureStackDefault (+3), then
// any extra frames requested by skip.
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}
	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+3, pc)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pc[:n])
	out := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}
