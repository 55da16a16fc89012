// join.go: formatting-aware multi-error join backing Result.Err.
//
//   • Error() == newline-joined child Error() strings, like errors.Join.
//   • Unwrap() []error so errors.Is/As reach every record.
//   • "%+v" renders each child with its own "%+v", so records print their
//     multi-line Code/Message/Trace form.
package xgxresult

import (
	"fmt"
	"strings"
)

type multi struct {
	errs []error // non-nil children only
}

func (m *multi) Error() string {
	var sb strings.Builder
	for i, e := range m.errs {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(e.Error())
	}
	return sb.String()
}

func (m *multi) Unwrap() []error { return m.errs }

// Format implements fmt.Formatter.
//
//	%v, %s  concise, like Error()
//	%q      quoted Error()
//	%+v     each child with %+v, newline-separated
func (m *multi) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			for i, e := range m.errs {
				if i > 0 {
					_, _ = fmt.Fprint(s, "\n")
				}
				_, _ = fmt.Fprintf(s, "%+v", e)
			}
			return
		}
		_, _ = fmt.Fprint(s, m.Error())
	case 's':
		_, _ = fmt.Fprint(s, m.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", m.Error())
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(%T)", verb, m)
	}
}

// Join wraps errs, ignoring nils.
//   • all nil      → nil
//   • one non-nil  → that error (identity preserved)
//   • two or more  → a join whose "%+v" recurses into children
func Join(errs ...error) error {
	nz := make([]error, 0, len(errs))
	for _, e := range errs {
		if e != nil {
			nz = append(nz, e)
		}
	}
	switch len(nz) {
	case 0:
		return nil
	case 1:
		return nz[0]
	default:
		return &multi{errs: nz}
	}
}
