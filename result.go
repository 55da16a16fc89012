package xgxresult

import (
	"reflect"
	"strings"
)

// ErrorSource is anything whose records can be merged into a Result. *Result
// and every *TypedResult[T] implement it.
type ErrorSource interface {
	Errors() []Record
}

// Result is the outcome of an operation: zero or more error records, optional
// success messages and the first error appended through AppendException.
//
// Success is derived from the record list and never stored. The zero value is an
// empty, successful Result with no logger.
//
// A Result is not safe for concurrent mutation.
type Result struct {
	errors          []Record
	successMessages []string
	initial         error
	logger          Logger
}

var _ ErrorSource = (*Result)(nil)

// New returns an empty, successful Result. When logger is non-nil every record
// appended to the Result is written to it exactly once.
func New(logger Logger) *Result {
	return &Result{logger: logger}
}

// FromException returns a new Result holding err as its only record.
func FromException(err error, logger Logger) *Result {
	return New(logger).AppendException(err)
}

// FromError returns a new Result holding a single record built from message.
func FromError(message string, logger Logger, opts ...ErrorOption) *Result {
	return New(logger).AppendError(message, opts...)
}

// Success reports whether the Result holds no records.
func (r *Result) Success() bool { return len(r.errors) == 0 }

// Fail reports whether the Result holds at least one record.
func (r *Result) Fail() bool { return len(r.errors) > 0 }

// Errors returns the records in insertion order. The slice is a copy; the
// records are shared. A nil Result has no records.
func (r *Result) Errors() []Record {
	if r == nil || len(r.errors) == 0 {
		return nil
	}
	out := make([]Record, len(r.errors))
	copy(out, r.errors)
	return out
}

// SuccessMessages returns a copy of the success messages, or nil when there are none.
func (r *Result) SuccessMessages() []string {
	if len(r.successMessages) == 0 {
		return nil
	}
	out := make([]string, len(r.successMessages))
	copy(out, r.successMessages)
	return out
}

// InitialException returns the first error passed to AppendException on this
// Result. Merged Results do not contribute to it.
func (r *Result) InitialException() error { return r.initial }

// AddSuccessMessage records msg. Blank messages are ignored.
func (r *Result) AddSuccessMessage(msg string) *Result {
	if strings.TrimSpace(msg) != "" {
		r.successMessages = append(r.successMessages, msg)
	}
	return r
}

// AppendError appends a base record built from message and opts.
//
// It panics with an error matching ErrInvalidArgument when message is blank.
func (r *Result) AppendError(message string, opts ...ErrorOption) *Result {
	if strings.TrimSpace(message) == "" {
		panic(invalidArgument("message", "must not be blank"))
	}
	rec := NewOperationError(message, opts...)
	r.appendRecord(rec, rec.level)
	return r
}

// AppendErrorAs appends a new record of variant *T built from message and
// opts, the same way AppendError builds a base record. Variant-specific fields
// are left at their zero values:
//
//	xgxresult.AppendErrorAs[QuotaError](res, "over quota", xgxresult.WithCode(429))
//
// It panics with an error matching ErrInvalidArgument when message is blank.
func AppendErrorAs[T any, PT RecordPtr[T]](r *Result, message string, opts ...ErrorOption) *Result {
	if strings.TrimSpace(message) == "" {
		panic(invalidArgument("message", "must not be blank"))
	}
	rec := newRecordAs[T, PT](message, opts...)
	r.appendRecord(rec, rec.Base().level)
	return r
}

func newRecordAs[T any, PT RecordPtr[T]](message string, opts ...ErrorOption) PT {
	rec := PT(new(T))
	base := rec.Base()
	if base == nil {
		panic(invalidArgument("record", "variant must expose its base"))
	}
	base.Message = message
	for _, opt := range opts {
		opt(base)
	}
	return rec
}

// AppendRecord appends a caller-built record, typically a custom variant. A zero
// level falls back to the record's own level, then to LevelError.
//
// It panics with an error matching ErrInvalidArgument when rec is nil.
func (r *Result) AppendRecord(rec Record, level Level) *Result {
	if nilRecord(rec) {
		panic(invalidArgument("record", "must not be nil"))
	}
	r.appendRecord(rec, level)
	return r
}

// AppendException converts err into a record whose message is the full %+v
// text of err and appends it. The first error appended this way is kept as the
// initial exception. Only WithCode and WithLevel are meaningful in opts.
//
// It panics with an error matching ErrInvalidArgument when err is nil.
func (r *Result) AppendException(err error, opts ...ErrorOption) *Result {
	if isNil(err) {
		panic(invalidArgument("exception", "must not be nil"))
	}
	if r.initial == nil {
		r.initial = err
	}
	rec := fromException(err, opts...)
	r.appendRecord(rec, rec.level)
	return r
}

// AppendErrors copies every record of other into r, keeping order. The records
// are shared, not cloned, and other is left unchanged.
//
// When r has a logger, records that no sink has written yet are logged now and
// marked, which other observes too. Without a logger records stay unlogged, so
// whichever Result with a logger eventually merges them logs each one once.
//
// A nil other is a no-op. It panics with an error matching ErrInvalidArgument,
// leaving r unchanged, when other holds a nil record.
func (r *Result) AppendErrors(other ErrorSource) *Result {
	if isNil(other) {
		return r
	}
	recs := other.Errors()
	for _, rec := range recs {
		if nilRecord(rec) {
			panic(invalidArgument("record", "must not be nil"))
		}
	}
	for _, rec := range recs {
		r.errors = append(r.errors, rec)
		if r.logger != nil {
			r.logOnce(rec, 0)
		}
	}
	return r
}

// String joins the String form of every record with newlines.
func (r *Result) String() string {
	parts := make([]string, len(r.errors))
	for i, rec := range r.errors {
		parts[i] = rec.String()
	}
	return strings.Join(parts, "\n")
}

// Err returns nil for a successful Result and otherwise an error joining all
// records, so errors.As can reach any record variant.
func (r *Result) Err() error {
	if len(r.errors) == 0 {
		return nil
	}
	errs := make([]error, len(r.errors))
	for i, rec := range r.errors {
		errs[i] = rec
	}
	return Join(errs...)
}

// appendRecord is the single append path: add, then log if a sink is bound.
func (r *Result) appendRecord(rec Record, level Level) {
	r.errors = append(r.errors, rec)
	if r.logger != nil {
		r.logOnce(rec, level)
	}
}

func (r *Result) logOnce(rec Record, level Level) {
	base := rec.Base()
	if base.logged {
		return
	}
	r.logger.Log(effectiveLevel(level, base.level), base.Message)
	base.logged = true
}

func nilRecord(rec Record) bool {
	return isNil(rec) || rec.Base() == nil
}

// isNil reports whether v is nil or a typed nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
