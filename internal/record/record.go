// ABOUTME: Domain record model exchanged between agent implementations and the bridge.
// ABOUTME: Records are immutable once built; construction goes through New and options.

package record

import (
	avro "github.com/hamba/avro/v2"
)

// Header is one named value attached to a record. Header order is
// significant and preserved on the wire.
type Header struct {
	Name  string
	Value any
}

// AvroValue is a structured payload typed by an Avro schema. The codec
// binary-encodes the payload against the schema and announces the schema
// once per bridge instance.
type AvroValue struct {
	Schema avro.Schema
	Value  any
}

// Record is one unit of data flowing through a pipeline step.
//
// Values (value, key, header values) are restricted to the wire-supported
// kinds: nil, []byte, string, bool, int64, float64, AvroValue, or a
// schema-less map/slice that serializes as JSON.
type Record struct {
	value     any
	key       any
	headers   []Header
	origin    string
	timestamp int64
	hasTS     bool
	id        int64
}

// Option configures a record at construction time.
type Option func(*Record)

// WithKey sets the record key.
func WithKey(key any) Option {
	return func(r *Record) { r.key = key }
}

// WithHeader appends one header, preserving insertion order.
func WithHeader(name string, value any) Option {
	return func(r *Record) { r.headers = append(r.headers, Header{Name: name, Value: value}) }
}

// WithHeaders appends a batch of headers, preserving order.
func WithHeaders(headers []Header) Option {
	return func(r *Record) { r.headers = append(r.headers, headers...) }
}

// WithOrigin sets the origin of the record (for example, the source topic).
func WithOrigin(origin string) Option {
	return func(r *Record) { r.origin = origin }
}

// WithTimestamp sets the record timestamp in milliseconds since the epoch.
func WithTimestamp(millis int64) Option {
	return func(r *Record) {
		r.timestamp = millis
		r.hasTS = true
	}
}

// WithID tags the record with its wire correlation id. Set by the bridge on
// inbound records; agent code never needs it.
func WithID(id int64) Option {
	return func(r *Record) { r.id = id }
}

// New builds a record with the given value.
func New(value any, opts ...Option) Record {
	r := Record{value: value}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Value returns the record value.
func (r Record) Value() any { return r.value }

// Key returns the record key, or nil if unset.
func (r Record) Key() any { return r.key }

// Headers returns a copy of the record headers in insertion order.
func (r Record) Headers() []Header {
	if len(r.headers) == 0 {
		return nil
	}
	out := make([]Header, len(r.headers))
	copy(out, r.headers)
	return out
}

// Origin returns the record origin, or "" if unset.
func (r Record) Origin() string { return r.origin }

// Timestamp returns the record timestamp in milliseconds since the epoch.
// The second return value reports whether a timestamp was set.
func (r Record) Timestamp() (int64, bool) { return r.timestamp, r.hasTS }

// ID returns the wire correlation id for records received from the peer.
// Zero means the record was built locally and has not been assigned an id.
func (r Record) ID() int64 { return r.id }
