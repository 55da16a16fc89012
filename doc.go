// Package xgxresult provides Result, a value that carries the outcome of an
// operation: zero or more structured error records, optional success messages
// and, for TypedResult, the payload. Expected failures are accumulated instead of
// returned one at a time, and Results from nested calls merge into their caller.
//
// # Records
//
// A record is an OperationError or a custom variant that embeds it. Records are
// handled by pointer and carry a "logged" flag of their own.
//
//	res := xgxresult.New(logger)
//	res.AppendError("user not found", xgxresult.WithCode(404), xgxresult.WithLevel(xgxresult.LevelWarn))
//	if res.Fail() { ... }
//
// # Logging
//
// A Result created with a Logger writes every record it receives exactly once.
// A Result without a Logger keeps records unlogged; when it is merged into a
// Result that has one, AppendErrors logs them then. Because the flag lives on the
// record, chains of merges never log a record twice:
//
//	inner := xgxresult.New(nil).AppendError("disk full") // not logged
//	outer := xgxresult.New(logger).AppendErrors(inner)   // logged now
//	other := xgxresult.New(logger).AppendErrors(inner)   // not logged again
//
// Sinks for slog, zap, logr, klog, OpenTelemetry spans and Prometheus counters
// live under sink/.
//
// # Contract violations
//
// Append operations panic with an error matching ErrInvalidArgument when handed
// a blank message, a nil error or a nil record. These are bugs at the call site,
// not domain failures, so they are never recorded. Use Recover at boundaries
// that must not panic.
//
// # Wire format
//
// Codec encodes Results as JSON with a discriminator on every record, so custom
// variants survive a round trip:
//
//	codec := xgxresult.NewCodec()
//	_ = xgxresult.Register[QuotaError](codec, "quota_error")
//	data, err := codec.Marshal(res)
//
// Result and TypedResult also implement json.Marshaler and json.Unmarshaler
// through DefaultCodec.
//
// # Concurrency
//
// A Result is meant to be built within one call stack and is not safe for
// concurrent mutation. Codec is safe for concurrent use.
package xgxresult
