// codec.go: discriminator-tagged JSON for records and Results.
//
// A Result's records are heterogeneous, so a plain structural decode cannot know
// which Go type each element of "Errors" is. Every record is written as an
// object whose first member is a discriminator naming its registered variant:
//
//	{
//	  "Success": false,
//	  "Errors": [
//	    {"type":"operation_error","Code":123,"Message":"Test","Details":null}
//	  ],
//	  "SuccessMessages": ["..."]
//	}
//
// Decoding peeks at the discriminator, picks the registered variant and decodes
// the whole element into it. A missing (or null) discriminator decodes as the
// base variant. "Success" is recomputed from "Errors" and ignored on input;
// the initial exception is never written. Typed results add "ResultObject".
package xgxresult

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"sync"
)

const (
	// BaseDiscriminator tags *OperationError on the wire.
	BaseDiscriminator = "operation_error"

	// DefaultDiscriminatorField is the member name holding the discriminator.
	DefaultDiscriminatorField = "type"
)

// Codec maps discriminators to record variants and back. Create one with
// NewCodec; the zero value is not usable. Register variants before encoding or
// decoding with them. A Codec is safe for concurrent use.
type Codec struct {
	field string

	mu     sync.RWMutex
	byName map[string]func() Record
	byType map[reflect.Type]string
}

// CodecOption configures a Codec.
type CodecOption func(*Codec)

// WithDiscriminatorField changes the member that carries the discriminator.
// Blank names are ignored.
func WithDiscriminatorField(name string) CodecOption {
	return func(c *Codec) {
		if strings.TrimSpace(name) != "" {
			c.field = name
		}
	}
}

// NewCodec returns a Codec that knows the base variant.
func NewCodec(opts ...CodecOption) *Codec {
	c := &Codec{
		field:  DefaultDiscriminatorField,
		byName: make(map[string]func() Record),
		byType: make(map[reflect.Type]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	_ = c.add(BaseDiscriminator, reflect.TypeOf((*OperationError)(nil)), func() Record { return new(OperationError) })
	return c
}

// DefaultCodec backs the MarshalJSON and UnmarshalJSON methods of Result and
// TypedResult. Register custom variants on it at init time.
var DefaultCodec = NewCodec()

// RecordPtr is satisfied by *T when *T is a Record.
type RecordPtr[T any] interface {
	*T
	Record
}

// Register maps discriminator to the record variant *T on c:
//
//	err := xgxresult.Register[QuotaError](codec, "quota_error")
//
// Each discriminator and each Go type can be registered once per Codec.
func Register[T any, PT RecordPtr[T]](c *Codec, discriminator string) error {
	if strings.TrimSpace(discriminator) == "" {
		return invalidArgument("discriminator", "must not be blank")
	}
	return c.add(discriminator, reflect.TypeOf(PT(nil)), func() Record { return PT(new(T)) })
}

func (c *Codec) add(name string, t reflect.Type, newRecord func() Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, nameTaken := c.byName[name]
	_, typeTaken := c.byType[t]
	if nameTaken || typeTaken {
		return duplicateDiscriminator(name, t)
	}
	c.byName[name] = newRecord
	c.byType[t] = name
	return nil
}

// Discriminator returns the discriminator registered for rec's Go type.
func (c *Codec) Discriminator(rec Record) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	name, ok := c.byType[reflect.TypeOf(rec)]
	return name, ok
}

// DiscriminatorField returns the member name carrying the discriminator.
func (c *Codec) DiscriminatorField() string { return c.field }

// ContentType returns the JSON MIME type.
func (c *Codec) ContentType() string { return "application/json" }

// MarshalRecord encodes rec with its discriminator as the first member. It
// fails with ErrUnsupportedType when rec's Go type is not registered.
func (c *Codec) MarshalRecord(rec Record) ([]byte, error) {
	if isNil(rec) {
		return []byte("null"), nil
	}
	name, ok := c.Discriminator(rec)
	if !ok {
		return nil, unsupportedType(rec)
	}
	body, err := json.Marshal(rec)
	if err != nil {
		return nil, malformedPayload("record", err)
	}
	body = bytes.TrimSpace(body)
	if len(body) < 2 || body[0] != '{' {
		return nil, unsupportedType(rec)
	}

	key, _ := json.Marshal(c.field)
	val, _ := json.Marshal(name)

	var buf bytes.Buffer
	buf.Grow(len(body) + len(key) + len(val) + 2)
	buf.WriteByte('{')
	buf.Write(key)
	buf.WriteByte(':')
	buf.Write(val)
	if members := bytes.TrimSpace(body[1 : len(body)-1]); len(members) > 0 {
		buf.WriteByte(',')
		buf.Write(members)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalRecord decodes one discriminator-tagged record. It fails with
// ErrUnknownDiscriminator when the discriminator is present but not registered
// or not a string, and with ErrMalformedPayload on invalid JSON.
func (c *Codec) UnmarshalRecord(data []byte) (Record, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, malformedPayload("record", err)
	}
	if members == nil {
		return nil, malformedPayload("record", errors.New("record is null"))
	}

	name := BaseDiscriminator
	if raw, ok := members[c.field]; ok && string(bytes.TrimSpace(raw)) != "null" {
		if err := json.Unmarshal(raw, &name); err != nil {
			return nil, unknownDiscriminator(c.field, string(raw))
		}
	}

	c.mu.RLock()
	newRecord, ok := c.byName[name]
	c.mu.RUnlock()
	if !ok {
		return nil, unknownDiscriminator(c.field, name)
	}

	rec := newRecord()
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, malformedPayload("record", err)
	}
	return rec, nil
}

// resultCarrier is implemented by *Result and, through embedding, by every
// *TypedResult[T].
type resultCarrier interface {
	result() *Result
}

func (r *Result) result() *Result { return r }

// payloadCarrier is implemented by *TypedResult[T].
type payloadCarrier interface {
	marshalPayload() ([]byte, error)
	unmarshalPayload(data []byte) error
}

type wireResult struct {
	Success         bool              `json:"Success"`
	Errors          []json.RawMessage `json:"Errors"`
	SuccessMessages []string          `json:"SuccessMessages,omitempty"`
	ResultObject    json.RawMessage   `json:"ResultObject,omitempty"`
}

// wireResultIn is the decode side of wireResult. Success is derived, so
// whatever the payload carries for it is not read.
type wireResultIn struct {
	Errors          []json.RawMessage `json:"Errors"`
	SuccessMessages []string          `json:"SuccessMessages"`
	ResultObject    json.RawMessage   `json:"ResultObject"`
}

// Marshal encodes a *Result, a *TypedResult[T] or a single Record.
func (c *Codec) Marshal(v any) ([]byte, error) {
	switch t := v.(type) {
	case resultCarrier:
		if isNil(t) {
			return []byte("null"), nil
		}
		return c.marshalResult(t)
	case Record:
		return c.MarshalRecord(t)
	default:
		return nil, unsupportedType(v)
	}
}

func (c *Codec) marshalResult(rc resultCarrier) ([]byte, error) {
	r := rc.result()
	w := wireResult{
		Success:         r.Success(),
		Errors:          make([]json.RawMessage, 0, len(r.errors)),
		SuccessMessages: r.successMessages,
	}
	for _, rec := range r.errors {
		b, err := c.MarshalRecord(rec)
		if err != nil {
			return nil, err
		}
		w.Errors = append(w.Errors, b)
	}
	if pc, ok := rc.(payloadCarrier); ok {
		b, err := pc.marshalPayload()
		if err != nil {
			return nil, malformedPayload("result object", err)
		}
		w.ResultObject = b
	}
	return json.Marshal(w)
}

// Unmarshal decodes data into a *Result or *TypedResult[T], replacing its
// records, success messages and payload. Decoded records go through the normal
// append path, so a Result with a logger logs them. On error v is unchanged.
func (c *Codec) Unmarshal(data []byte, v any) error {
	rc, ok := v.(resultCarrier)
	if !ok {
		return unsupportedType(v)
	}
	if isNil(rc) {
		return invalidArgument("target", "must not be nil")
	}

	var w wireResultIn
	if err := json.Unmarshal(data, &w); err != nil {
		return malformedPayload("result", err)
	}
	recs := make([]Record, 0, len(w.Errors))
	for _, raw := range w.Errors {
		rec, err := c.UnmarshalRecord(raw)
		if err != nil {
			return err
		}
		recs = append(recs, rec)
	}
	if pc, ok := rc.(payloadCarrier); ok && len(w.ResultObject) > 0 {
		if err := pc.unmarshalPayload(w.ResultObject); err != nil {
			return malformedPayload("result object", err)
		}
	}

	r := rc.result()
	r.errors = nil
	r.successMessages = nil
	r.initial = nil
	for _, rec := range recs {
		r.appendRecord(rec, 0)
	}
	for _, msg := range w.SuccessMessages {
		r.AddSuccessMessage(msg)
	}
	return nil
}

// MarshalJSON encodes r with DefaultCodec.
func (r Result) MarshalJSON() ([]byte, error) { return DefaultCodec.Marshal(&r) }

// UnmarshalJSON decodes data into r with DefaultCodec.
func (r *Result) UnmarshalJSON(data []byte) error { return DefaultCodec.Unmarshal(data, r) }

// MarshalJSON encodes r with DefaultCodec.
func (r TypedResult[T]) MarshalJSON() ([]byte, error) { return DefaultCodec.Marshal(&r) }

// UnmarshalJSON decodes data into r with DefaultCodec.
func (r *TypedResult[T]) UnmarshalJSON(data []byte) error { return DefaultCodec.Unmarshal(data, r) }

func (r *TypedResult[T]) marshalPayload() ([]byte, error) { return json.Marshal(r.value) }

func (r *TypedResult[T]) unmarshalPayload(data []byte) error {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	r.value = v
	return nil
}
