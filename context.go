// context.go: ordered key/value context carried by package errors.
//
// Design:
//   • Internal representation: append-only []Field (deterministic order).
//   • Builders never alias their input.
//   • Public view: copy-on-read map[string]any.
package xgxresult

// Field is one contextual key/value pair attached to a package error, such as
// the discriminator that failed to resolve or the Go type that was not registered.
type Field struct {
	Key string
	Val any
}

type fields []Field

var emptyFields = make(fields, 0)

// ctxFromKV reads (key, value) pairs left to right. A non-string key drops the
// whole pair so later pairs stay aligned; a trailing key gets a nil value.
func ctxFromKV(kv ...any) fields {
	if len(kv) == 0 {
		return emptyFields
	}
	out := make(fields, 0, len(kv)/2+1)
	for i := 0; i < len(kv); {
		k, ok := kv[i].(string)
		if !ok {
			i += 2
			continue
		}
		var v any
		if i+1 < len(kv) {
			v = kv[i+1]
		}
		i += 2
		out = append(out, Field{Key: k, Val: v})
	}
	if len(out) == 0 {
		return emptyFields
	}
	return out
}

// ctxToMap creates a NEW map from fields. Later duplicates win.
func ctxToMap(fs fields) map[string]any {
	if len(fs) == 0 {
		return nil
	}
	m := make(map[string]any, len(fs))
	for _, f := range fs {
		m[f.Key] = f.Val
	}
	return m
}
