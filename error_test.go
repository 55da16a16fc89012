package xgxresult

import (
	"testing"
)

func TestOperationError_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		rec  *OperationError
		want string
	}{
		{"all fields", NewOperationError("Error", WithCode(666), WithDetails("Detail")), "Code: 666\nMessage: Error\nTrace: Detail\n"},
		{"message only", NewOperationError("Error"), "Message: Error\n"},
		{"blank details", NewOperationError("Error", WithDetails("  ")), "Message: Error\n"},
		{"zero code", NewOperationError("Error", WithCode(0)), "Code: 0\nMessage: Error\n"},
		{"nothing", &OperationError{}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.rec.String(); got != tc.want {
				t.Fatalf("String() want=%q got=%q", tc.want, got)
			}
		})
	}
}

func TestOperationError_Error(t *testing.T) {
	t.Parallel()

	if got := NewOperationError("Error", WithCode(666)).Error(); got != "666: Error" {
		t.Fatalf("Error() got %q", got)
	}
	if got := NewOperationError("Error").Error(); got != "Error" {
		t.Fatalf("Error() got %q", got)
	}
}

func TestOperationError_Options(t *testing.T) {
	t.Parallel()

	rec := NewOperationError("m", WithCode(7), WithDetails("d"), WithLevel(LevelWarn))

	if code, ok := rec.CodeValue(); !ok || code != 7 {
		t.Fatalf("CodeValue want=(7,true) got=(%d,%v)", code, ok)
	}
	if details, ok := rec.DetailsValue(); !ok || details != "d" {
		t.Fatalf("DetailsValue want=(d,true) got=(%q,%v)", details, ok)
	}
	if rec.Level() != LevelWarn {
		t.Fatalf("Level want=warn got=%s", rec.Level())
	}
	if rec.Logged() {
		t.Fatalf("a new record is not logged")
	}
	if rec.Base() != rec {
		t.Fatalf("Base must return the receiver")
	}

	bare := NewOperationError("m")
	if _, ok := bare.CodeValue(); ok {
		t.Fatalf("unset code must report false")
	}
	if _, ok := bare.DetailsValue(); ok {
		t.Fatalf("unset details must report false")
	}
}

type embeddedRecord struct {
	OperationError
	Extra string
}

func TestEmbeddedVariant_SharesBase(t *testing.T) {
	t.Parallel()

	v := &embeddedRecord{OperationError: OperationError{Message: "custom"}, Extra: "x"}
	var rec Record = v
	if rec.Base() != &v.OperationError {
		t.Fatalf("Base of an embedding variant must point at the embedded record")
	}

	r := New(LoggerFunc(func(Level, string) {})).AppendRecord(v, 0)
	if !v.Logged() || !r.Errors()[0].Base().Logged() {
		t.Fatalf("logging must mark the embedded record")
	}
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var nilRec *OperationError
	var nilResult *Result
	cases := []struct {
		v    any
		want bool
	}{
		{nil, true},
		{nilRec, true},
		{nilResult, true},
		{Records(nil), true},
		{NewOperationError("x"), false},
		{Records{}, false},
		{42, false},
	}
	for _, tc := range cases {
		if got := isNil(tc.v); got != tc.want {
			t.Fatalf("isNil(%#v) want=%v got=%v", tc.v, tc.want, got)
		}
	}
}
