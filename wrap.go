// wrap.go: turning arbitrary Go errors into records.
//
// The record message is the verbose %+v rendering of the error, so errors that
// implement fmt.Formatter (stack-carrying errors, pkg/errors values, joins) keep
// their full diagnostic text. Plain errors render as Error().
package xgxresult

import "fmt"

// fromException builds the record appended by AppendException. Details are
// not populated; the message already carries everything err can print.
func fromException(err error, opts ...ErrorOption) *OperationError {
	rec := NewOperationError(exceptionText(err), opts...)
	rec.Details = nil
	return rec
}

func exceptionText(err error) string {
	s := fmt.Sprintf("%+v", err)
	if s == "" {
		// records never carry a blank message
		return fmt.Sprintf("%T", err)
	}
	return s
}
