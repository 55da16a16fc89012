// unwrap.go: recovering records from an error graph.
//
// Result.Err hands records to ordinary Go error plumbing; callers further up may
// wrap that error with fmt.Errorf("%w") or errors.Join it with others. RecordsOf
// walks the graph and gets the very same record pointers back, logging state
// included, so they can be merged into another Result:
//
//	res.AppendErrors(xgxresult.RecordsOf(err))
//
// Traversal handles both Unwrap() error and Unwrap() []error. Visited nodes are
// tracked by value for comparable dynamic types and by pointer identity
// otherwise, so cycles terminate.
package xgxresult

import (
	"errors"
	"reflect"
)

type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

// Records is a plain list of records. It satisfies ErrorSource.
type Records []Record

// Errors returns the records.
func (rs Records) Errors() []Record { return rs }

// RecordsOf returns every record found in err's graph in pre-order, without
// duplicates. It returns nil when err is nil or holds no record.
func RecordsOf(err error) Records {
	var out Records
	seen := make(map[*OperationError]struct{})
	Walk(err, func(e error) bool {
		rec, ok := e.(Record)
		if !ok || isNil(rec) {
			return true
		}
		base := rec.Base()
		if _, dup := seen[base]; !dup {
			seen[base] = struct{}{}
			out = append(out, rec)
		}
		return true
	})
	return out
}

// Walk visits each distinct node of err's graph depth-first in pre-order. It
// stops as soon as visit returns false. A nil err is a no-op.
func Walk(err error, visit func(error) bool) {
	if err == nil || visit == nil {
		return
	}
	const maxDepth = 1 << 12

	stack := make([]error, 0, 8)
	seenErr := make(map[error]struct{}, 16)
	seenPtr := make(map[uintptr]struct{}, 16)

	stack = append(stack, err)
	_ = markSeen(err, seenErr, seenPtr)

	for len(stack) > 0 && len(stack) < maxDepth {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(cur) {
			return
		}

		// push children in reverse for left-to-right order
		if m, ok := cur.(multiUnwrapper); ok {
			kids := m.Unwrap()
			for i := len(kids) - 1; i >= 0; i-- {
				if c := kids[i]; c != nil && markSeen(c, seenErr, seenPtr) {
					stack = append(stack, c)
				}
			}
			continue
		}
		if s, ok := cur.(singleUnwrapper); ok {
			if u := s.Unwrap(); u != nil && markSeen(u, seenErr, seenPtr) {
				stack = append(stack, u)
			}
		}
	}
}

// Has reports whether target appears anywhere in err's graph. Nil-safe.
func Has(err, target error) bool {
	if err == nil || target == nil {
		return false
	}
	return errors.Is(err, target)
}

// markSeen reports whether err was newly marked.
func markSeen(err error, seenErr map[error]struct{}, seenPtr map[uintptr]struct{}) bool {
	rv := reflect.ValueOf(err)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		id := rv.Pointer()
		if _, dup := seenPtr[id]; dup {
			return false
		}
		seenPtr[id] = struct{}{}
		return true
	}
	if reflect.TypeOf(err).Comparable() {
		if _, dup := seenErr[err]; dup {
			return false
		}
		seenErr[err] = struct{}{}
	}
	return true
}
