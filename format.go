// format.go: fmt.Formatter implementations.
//
//   %s, %v   → concise string (Error()).
//   %+v      → verbose, multi-line:
//                records:  the String() form (Code / Message / Trace lines)
//                package errors:
//                  code=<code> msg="<message>"
//                  ctx: key1=val1 key2=val2
//                  cause: <%+v of the cause>
//                  stack:
//                    funcA file.go:123
//   %q       → quoted Error().
package xgxresult

import (
	"fmt"
	"io"
	"strings"
)

func formatConcise(w io.Writer, e error) {
	_, _ = io.WriteString(w, e.Error())
}

func formatVerbose(w io.Writer, code Code, msg string, ctx fields, cause error, stk Stack) {
	if code != "" {
		_, _ = fmt.Fprintf(w, "code=%s ", code)
	}
	_, _ = fmt.Fprintf(w, "msg=%q", msg)

	if len(ctx) > 0 {
		_, _ = io.WriteString(w, "\nctx:")
		for _, f := range ctx {
			if f.Key != "" {
				_, _ = fmt.Fprintf(w, " %s=%v", f.Key, f.Val)
			}
		}
	}

	if cause != nil {
		_, _ = io.WriteString(w, "\ncause: ")
		_, _ = fmt.Fprintf(w, "%+v", cause)
	}

	if len(stk) > 0 {
		_, _ = io.WriteString(w, "\nstack:")
		for _, fr := range stk {
			_, _ = fmt.Fprintf(w, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
		}
	}
}

func (e *opErr) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatVerbose(s, e.code, e.msg, e.ctx, e.cause, e.stk)
			return
		}
		formatConcise(s, e)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		formatConcise(s, e)
	}
}

// Format renders the record; "%+v" prints String() without the final newline.
// Variants embedding OperationError inherit it.
func (e *OperationError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, strings.TrimSuffix(e.String(), "\n"))
			return
		}
		formatConcise(s, e)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		formatConcise(s, e)
	}
}
