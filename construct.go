// construct.go: the concrete error type returned (or panicked) by xgx-result.
//
// Scope:
//   - One concrete type, opErr, classified by Code.
//   - Sentinels per code so callers can use errors.Is.
//   - Contract violations capture a stack at creation, like any other defect;
//     codec failures are ordinary failures and stay cheap.
//
// Domain failures are NOT represented here. They are records inside a Result.
package xgxresult

import (
	"fmt"
	"reflect"
)

// opErr is a package failure: a caller contract violation or a codec failure.
type opErr struct {
	code  Code
	msg   string
	ctx   fields
	cause error
	stk   Stack
}

func (e *opErr) Error() string {
	if e.msg == "" {
		return string(e.code)
	}
	return fmt.Sprintf("%s: %s", e.code, e.msg)
}

func (e *opErr) Unwrap() error           { return e.cause }
func (e *opErr) CodeVal() Code           { return e.code }
func (e *opErr) Context() map[string]any { return ctxToMap(e.ctx) }

// StackTrace returns the frames captured at creation, or nil.
func (e *opErr) StackTrace() Stack { return e.stk }

// Is matches any package error carrying the same code, so the sentinels below
// match errors that carry extra context.
func (e *opErr) Is(target error) bool {
	t, ok := target.(*opErr)
	return ok && t.code == e.code
}

// Sentinels for errors.Is.
var (
	// ErrInvalidArgument is panicked when a caller passes a blank message, a nil
	// error or a nil record to an append operation.
	ErrInvalidArgument error = &opErr{code: CodeInvalidArgument, msg: "invalid argument"}

	// ErrUnsupportedType is returned when encoding a record whose Go type has no
	// registered discriminator.
	ErrUnsupportedType error = &opErr{code: CodeUnsupportedType, msg: "unsupported record type"}

	// ErrUnknownDiscriminator is returned when decoding a record whose
	// discriminator is not registered.
	ErrUnknownDiscriminator error = &opErr{code: CodeUnknownDiscriminator, msg: "unknown discriminator"}

	// ErrDuplicateDiscriminator is returned when a discriminator or Go type is
	// registered twice on the same Codec.
	ErrDuplicateDiscriminator error = &opErr{code: CodeDuplicateDiscriminator, msg: "duplicate discriminator"}

	// ErrMalformedPayload is returned when the wire payload is not valid JSON of
	// the expected shape.
	ErrMalformedPayload error = &opErr{code: CodeMalformedPayload, msg: "malformed payload"}
)

// invalidArgument builds a contract violation naming the offending parameter.
// The stack starts at the caller of the public method that rejected the argument.
func invalidArgument(param, reason string) *opErr {
	return &opErr{
		code: CodeInvalidArgument,
		msg:  fmt.Sprintf("%s %s", param, reason),
		ctx:  ctxFromKV("param", param),
		stk:  captureStackDefault(2),
	}
}

func unsupportedType(v any) *opErr {
	t := fmt.Sprintf("%T", v)
	return &opErr{
		code: CodeUnsupportedType,
		msg:  "no discriminator registered for " + t,
		ctx:  ctxFromKV("go_type", t),
	}
}

func unknownDiscriminator(field string, value any) *opErr {
	return &opErr{
		code: CodeUnknownDiscriminator,
		msg:  fmt.Sprintf("no record type registered for %s=%v", field, value),
		ctx:  ctxFromKV("field", field, "value", value),
	}
}

func duplicateDiscriminator(discriminator string, t reflect.Type) *opErr {
	return &opErr{
		code: CodeDuplicateDiscriminator,
		msg:  fmt.Sprintf("%q or %v already registered", discriminator, t),
		ctx:  ctxFromKV("discriminator", discriminator, "go_type", t.String()),
	}
}

func malformedPayload(what string, cause error) *opErr {
	return &opErr{
		code:  CodeMalformedPayload,
		msg:   "cannot decode " + what,
		ctx:   emptyFields,
		cause: cause,
	}
}
