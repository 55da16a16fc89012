// error.go: the error record contract and its base variant.
//
// A record is one structured failure inside a Result. Records are always handled
// by pointer: the "logged" flag lives on the record itself, so every Result that
// holds the same record (through AppendErrors) observes the same logging state,
// and a record is written to a sink at most once no matter how often it is merged.
//
// Custom variants embed OperationError and add their own exported fields:
//
//	type QuotaError struct {
//		xgxresult.OperationError
//		Tenant string
//	}
//
// *QuotaError satisfies Record through the promoted methods. Register it on a
// Codec to carry it over the wire.
package xgxresult

import (
	"strconv"
	"strings"
)

// Record is the contract every error variant satisfies.
type Record interface {
	// error renders the concise form "<code>: <message>".
	error

	// String renders the multi-line form used by Result.String.
	String() string

	// Base exposes the shared fields and logging state of the record.
	Base() *OperationError
}

// OperationError is the base record variant (discriminator "operation_error").
// Field order is the wire order.
type OperationError struct {
	// Code is an optional numeric identifier.
	Code *int `json:"Code"`

	// Message is the human-readable text.
	Message string `json:"Message"`

	// Details carries text not meant for end users, such as a trace.
	Details *string `json:"Details"`

	level  Level
	logged bool
}

var _ Record = (*OperationError)(nil)

// ErrorOption configures a record built by NewOperationError or an append call.
type ErrorOption func(*OperationError)

// WithCode sets the numeric code.
func WithCode(code int) ErrorOption {
	return func(e *OperationError) { e.Code = &code }
}

// WithDetails sets the detail text.
func WithDetails(details string) ErrorOption {
	return func(e *OperationError) { e.Details = &details }
}

// WithLevel sets the severity the record is logged at.
func WithLevel(level Level) ErrorOption {
	return func(e *OperationError) { e.level = level }
}

// NewOperationError builds a base record. It does not validate message; the
// append operations do.
func NewOperationError(message string, opts ...ErrorOption) *OperationError {
	e := &OperationError{Message: message}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Base returns e. Variants embedding OperationError inherit it.
func (e *OperationError) Base() *OperationError { return e }

// CodeValue returns the code and whether one is set.
func (e *OperationError) CodeValue() (int, bool) {
	if e.Code == nil {
		return 0, false
	}
	return *e.Code, true
}

// DetailsValue returns the details and whether they are set.
func (e *OperationError) DetailsValue() (string, bool) {
	if e.Details == nil {
		return "", false
	}
	return *e.Details, true
}

// Level returns the severity requested for the record, or zero if none.
func (e *OperationError) Level() Level { return e.level }

// Logged reports whether a sink has already been asked to write the record.
func (e *OperationError) Logged() bool { return e.logged }

func (e *OperationError) Error() string {
	if e.Code != nil {
		return strconv.Itoa(*e.Code) + ": " + e.Message
	}
	return e.Message
}

// String renders one line per populated field, each terminated by a newline:
//
//	Code: 666
//	Message: Error
//	Trace: Detail
func (e *OperationError) String() string {
	var sb strings.Builder
	if e.Code != nil {
		sb.WriteString("Code: ")
		sb.WriteString(strconv.Itoa(*e.Code))
		sb.WriteByte('\n')
	}
	if strings.TrimSpace(e.Message) != "" {
		sb.WriteString("Message: ")
		sb.WriteString(e.Message)
		sb.WriteByte('\n')
	}
	if e.Details != nil && strings.TrimSpace(*e.Details) != "" {
		sb.WriteString("Trace: ")
		sb.WriteString(*e.Details)
		sb.WriteByte('\n')
	}
	return sb.String()
}
