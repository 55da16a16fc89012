// codes.go: classification codes for contract and wire failures.
//
// Intent:
//   - Domain failures never become Go errors here; they live inside a Result as
//     records. The codes below classify the few failures the package itself
//     returns or panics with.
//   - Codes are lowercase snake_case ASCII, stable across releases.
package xgxresult

// Code classifies the errors returned (or panicked) by this package.
type Code string

// Caller contract
const (
	CodeInvalidArgument Code = "invalid_argument"
)

// Wire / registry
const (
	CodeUnsupportedType        Code = "unsupported_type"
	CodeUnknownDiscriminator   Code = "unknown_discriminator"
	CodeDuplicateDiscriminator Code = "duplicate_discriminator"
	CodeMalformedPayload       Code = "malformed_payload"
)

// allBuiltinCodes is the ordered set of codes the package can produce.
var allBuiltinCodes = []Code{
	CodeInvalidArgument,
	CodeUnsupportedType,
	CodeUnknownDiscriminator,
	CodeDuplicateDiscriminator,
	CodeMalformedPayload,
}

var builtinCodeSet = map[Code]struct{}{
	CodeInvalidArgument:        {},
	CodeUnsupportedType:        {},
	CodeUnknownDiscriminator:   {},
	CodeDuplicateDiscriminator: {},
	CodeMalformedPayload:       {},
}

// BuiltinCodes returns a copy of the package codes in a stable order.
func BuiltinCodes() []Code {
	out := make([]Code, len(allBuiltinCodes))
	copy(out, allBuiltinCodes)
	return out
}

// IsBuiltin reports whether c is one of the package codes.
func (c Code) IsBuiltin() bool {
	_, ok := builtinCodeSet[c]
	return ok
}
