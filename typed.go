package xgxresult

import "strings"

// TypedResult is a Result that also carries the payload of the operation. The
// payload and the records are independent: a TypedResult may hold both, for
// example after a partial success.
//
// The fluent methods shadow those of the embedded Result so chains keep the
// *TypedResult[T] type.
type TypedResult[T any] struct {
	Result
	value T
}

// NewTyped returns an empty, successful TypedResult with a zero payload.
func NewTyped[T any](logger Logger) *TypedResult[T] {
	return &TypedResult[T]{Result: Result{logger: logger}}
}

// NewTypedWithValue returns an empty, successful TypedResult holding value.
func NewTypedWithValue[T any](value T, logger Logger) *TypedResult[T] {
	return &TypedResult[T]{Result: Result{logger: logger}, value: value}
}

// TypedFromError returns a new TypedResult holding a single record built from message.
func TypedFromError[T any](message string, logger Logger, opts ...ErrorOption) *TypedResult[T] {
	return NewTyped[T](logger).AppendError(message, opts...)
}

// TypedFromException returns a new TypedResult holding err as its only record.
func TypedFromException[T any](err error, logger Logger) *TypedResult[T] {
	return NewTyped[T](logger).AppendException(err)
}

// Value returns the payload.
func (r *TypedResult[T]) Value() T { return r.value }

// SetValue replaces the payload.
func (r *TypedResult[T]) SetValue(value T) *TypedResult[T] {
	r.value = value
	return r
}

// AddSuccessMessage is Result.AddSuccessMessage.
func (r *TypedResult[T]) AddSuccessMessage(msg string) *TypedResult[T] {
	r.Result.AddSuccessMessage(msg)
	return r
}

// AppendError is Result.AppendError.
func (r *TypedResult[T]) AppendError(message string, opts ...ErrorOption) *TypedResult[T] {
	r.Result.AppendError(message, opts...)
	return r
}

// TypedAppendErrorAs is AppendErrorAs for a TypedResult.
func TypedAppendErrorAs[T any, PT RecordPtr[T], V any](r *TypedResult[V], message string, opts ...ErrorOption) *TypedResult[V] {
	if strings.TrimSpace(message) == "" {
		panic(invalidArgument("message", "must not be blank"))
	}
	rec := newRecordAs[T, PT](message, opts...)
	r.appendRecord(rec, rec.Base().level)
	return r
}

// AppendRecord is Result.AppendRecord.
func (r *TypedResult[T]) AppendRecord(rec Record, level Level) *TypedResult[T] {
	r.Result.AppendRecord(rec, level)
	return r
}

// AppendException is Result.AppendException.
func (r *TypedResult[T]) AppendException(err error, opts ...ErrorOption) *TypedResult[T] {
	r.Result.AppendException(err, opts...)
	return r
}

// AppendErrors merges the records of other, whatever its payload type. The
// payload of other is never copied.
func (r *TypedResult[T]) AppendErrors(other ErrorSource) *TypedResult[T] {
	r.Result.AppendErrors(other)
	return r
}
