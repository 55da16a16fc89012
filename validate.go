package xgxresult

import (
	"fmt"
	"strings"
)

// The Validate helpers append a record describing a missing or default value.
// They do nothing else: no record is appended when the value is acceptable.
// Pass &typed.Result to use them with a TypedResult.

// ValidateAny appends a record when value is nil or empty.
func ValidateAny[V any](r *Result, value []V, className, methodName, identifierName string, level Level) {
	switch {
	case value == nil:
		r.AppendError(fmt.Sprintf("%s, %s - An entity with that %s does not exist.", className, methodName, identifierName), WithLevel(level))
	case len(value) == 0:
		r.AppendError(fmt.Sprintf("%s, %s - The collection with that %s is empty which is not permitted.", className, methodName, identifierName), WithLevel(level))
	}
}

// ValidateDefault appends a record when value is the zero value of V.
func ValidateDefault[V comparable](r *Result, value V, className, methodName, propertyName string, level Level) {
	var zero V
	if value != zero {
		return
	}
	r.AppendError(fmt.Sprintf("%s, %s - The %s has a default value.", className, methodName, propertyName), WithLevel(level))
}

// ValidateNullOrWhitespace appends a record when value is empty or blank.
func ValidateNullOrWhitespace(r *Result, value, className, methodName, propertyName string, level Level) {
	if strings.TrimSpace(value) != "" {
		return
	}
	r.AppendError(fmt.Sprintf("%s, %s - The %s is null, empty or consists only of whitespace characters.", className, methodName, propertyName), WithLevel(level))
}

// ValidateNull appends a record when value is nil.
func ValidateNull[V any](r *Result, value *V, className, methodName, propertyName string, level Level) {
	if value != nil {
		return
	}
	r.AppendError(fmt.Sprintf("%s, %s - The %s is null.", className, methodName, propertyName), WithLevel(level))
}
