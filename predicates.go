// predicates.go: classification helpers over package errors.
//
// They use errors.As, so they see through fmt.Errorf("%w") wrapping and joins.
// Records inside a Result are domain failures and carry no Code; these helpers
// only classify the errors this package returns or panics with.
package xgxresult

import "errors"

type codeCarrier interface{ CodeVal() Code }

// CodeOf returns the first Code along err's chain, or "" if none.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var cv codeCarrier
	if errors.As(err, &cv) {
		return cv.CodeVal()
	}
	return ""
}

// HasCode reports whether err's chain carries code.
func HasCode(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}

// IsInvalidArgument reports whether err is a caller contract violation.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsCodecError reports whether err came from encoding or decoding.
func IsCodecError(err error) bool {
	switch CodeOf(err) {
	case CodeUnsupportedType, CodeUnknownDiscriminator, CodeDuplicateDiscriminator, CodeMalformedPayload:
		return true
	default:
		return false
	}
}

// Recover turns a panic raised by an append operation back into an error. Use it
// in a deferred call at API boundaries that must not panic:
//
//	func build(msg string) (r *xgxresult.Result, err error) {
//		defer xgxresult.Recover(&err)
//		return xgxresult.New(nil).AppendError(msg), nil
//	}
//
// Panics that are not package errors are re-raised.
func Recover(errp *error) {
	v := recover()
	if v == nil {
		return
	}
	if e, ok := v.(*opErr); ok {
		*errp = e
		return
	}
	panic(v)
}
