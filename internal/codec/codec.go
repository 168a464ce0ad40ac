// ABOUTME: Conversion between domain records and their wire representation.
// ABOUTME: Owns typed value encoding, Avro binary payloads, and schema announcements.

package codec

import (
	"encoding/json"
	"errors"
	"fmt"

	avro "github.com/hamba/avro/v2"

	"github.com/tidemill/agent-bridge/internal/record"
	"github.com/tidemill/agent-bridge/internal/schema"
	pb "github.com/tidemill/agent-bridge/proto/bridge"
)

// ErrUnsupportedType indicates a domain value outside the closed set of
// wire-encodable kinds. Fatal to the marshalling call that hit it.
var ErrUnsupportedType = errors.New("unsupported value type")

// Codec converts domain values and records to and from the wire format.
// The outbound registry and inbound cache are shared across every stream of
// the bridge instance that owns this codec.
type Codec struct {
	registry *schema.Registry
	cache    *schema.Cache
}

// New creates a codec backed by the given schema registry and cache.
func New(registry *schema.Registry, cache *schema.Cache) *Codec {
	return &Codec{registry: registry, cache: cache}
}

// EncodeValue converts a domain value to its wire form. When the value is an
// AvroValue whose schema has not been seen before, the returned announcement
// is non-nil and must be sent to the peer before the value itself.
//
// A nil domain value encodes as an absent wire value (nil).
func (c *Codec) EncodeValue(value any) (*pb.Schema, *pb.Value, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil, nil
	case []byte:
		return nil, &pb.Value{TypeOneof: &pb.Value_BytesValue{BytesValue: v}}, nil
	case string:
		return nil, &pb.Value{TypeOneof: &pb.Value_StringValue{StringValue: v}}, nil
	case bool:
		return nil, &pb.Value{TypeOneof: &pb.Value_BooleanValue{BooleanValue: v}}, nil
	case int:
		return nil, &pb.Value{TypeOneof: &pb.Value_LongValue{LongValue: int64(v)}}, nil
	case int64:
		return nil, &pb.Value{TypeOneof: &pb.Value_LongValue{LongValue: v}}, nil
	case float64:
		return nil, &pb.Value{TypeOneof: &pb.Value_DoubleValue{DoubleValue: v}}, nil
	case record.AvroValue:
		return c.encodeAvro(v)
	case map[string]any, []any:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, nil, fmt.Errorf("encoding json value: %w", err)
		}
		return nil, &pb.Value{TypeOneof: &pb.Value_JsonValue{JsonValue: string(data)}}, nil
	default:
		return nil, nil, fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}
}

// encodeAvro binary-encodes the payload against its schema and attaches the
// outbound schema id, registering the schema first if unseen.
func (c *Codec) encodeAvro(v record.AvroValue) (*pb.Schema, *pb.Value, error) {
	canonical := v.Schema.String()
	id, announce := c.registry.GetOrAssign(canonical)

	payload, err := avro.Marshal(v.Schema, v.Value)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding avro value: %w", err)
	}

	var announcement *pb.Schema
	if announce {
		announcement = &pb.Schema{SchemaId: id, Value: []byte(canonical)}
	}
	return announcement, &pb.Value{
		SchemaId:  id,
		TypeOneof: &pb.Value_AvroValue{AvroValue: payload},
	}, nil
}

// DecodeValue converts a wire value back to its domain form, selecting
// behavior by the populated wire variant. An absent wire value decodes to
// nil. Avro values are decoded against the peer-announced schema; an
// unannounced schema id is a protocol error.
func (c *Codec) DecodeValue(value *pb.Value) (any, error) {
	if value == nil || value.GetTypeOneof() == nil {
		return nil, nil
	}
	switch v := value.GetTypeOneof().(type) {
	case *pb.Value_BytesValue:
		return v.BytesValue, nil
	case *pb.Value_BooleanValue:
		return v.BooleanValue, nil
	case *pb.Value_StringValue:
		return v.StringValue, nil
	case *pb.Value_LongValue:
		return v.LongValue, nil
	case *pb.Value_DoubleValue:
		return v.DoubleValue, nil
	case *pb.Value_JsonValue:
		var out any
		if err := json.Unmarshal([]byte(v.JsonValue), &out); err != nil {
			return nil, fmt.Errorf("decoding json value: %w", err)
		}
		return out, nil
	case *pb.Value_AvroValue:
		sch, err := c.cache.Get(value.GetSchemaId())
		if err != nil {
			return nil, err
		}
		var out any
		if err := avro.Unmarshal(sch, v.AvroValue, &out); err != nil {
			return nil, fmt.Errorf("decoding avro value for schema %d: %w", value.GetSchemaId(), err)
		}
		return record.AvroValue{Schema: sch, Value: out}, nil
	default:
		return nil, fmt.Errorf("%w: wire variant %T", ErrUnsupportedType, value.GetTypeOneof())
	}
}

// ToWire builds the wire record for a domain record, collecting every schema
// announcement produced while encoding the value, key, and header values.
// Announcements must be emitted before the record that references them.
// The timestamp is omitted on the wire when absent, never encoded as zero.
func (c *Codec) ToWire(rec record.Record) ([]*pb.Schema, *pb.Record, error) {
	var announcements []*pb.Schema

	announcement, value, err := c.EncodeValue(rec.Value())
	if err != nil {
		return nil, nil, fmt.Errorf("encoding record value: %w", err)
	}
	if announcement != nil {
		announcements = append(announcements, announcement)
	}

	announcement, key, err := c.EncodeValue(rec.Key())
	if err != nil {
		return nil, nil, fmt.Errorf("encoding record key: %w", err)
	}
	if announcement != nil {
		announcements = append(announcements, announcement)
	}

	var headers []*pb.Header
	for _, h := range rec.Headers() {
		announcement, hv, err := c.EncodeValue(h.Value)
		if err != nil {
			return nil, nil, fmt.Errorf("encoding header %q: %w", h.Name, err)
		}
		if announcement != nil {
			announcements = append(announcements, announcement)
		}
		headers = append(headers, &pb.Header{Name: h.Name, Value: hv})
	}

	wire := &pb.Record{
		Value:   value,
		Key:     key,
		Headers: headers,
		Origin:  rec.Origin(),
	}
	if ts, ok := rec.Timestamp(); ok {
		wire.Timestamp = &ts
	}
	return announcements, wire, nil
}

// FromWire rebuilds a domain record from its wire form, tagged with the wire
// record's correlation id. An empty origin field decodes as "no origin"; the
// timestamp is present only if explicitly set on the wire.
func (c *Codec) FromWire(wire *pb.Record) (record.Record, error) {
	value, err := c.DecodeValue(wire.GetValue())
	if err != nil {
		return record.Record{}, fmt.Errorf("decoding record value: %w", err)
	}
	key, err := c.DecodeValue(wire.GetKey())
	if err != nil {
		return record.Record{}, fmt.Errorf("decoding record key: %w", err)
	}

	opts := []record.Option{record.WithID(wire.GetRecordId())}
	if key != nil {
		opts = append(opts, record.WithKey(key))
	}
	for _, h := range wire.GetHeaders() {
		hv, err := c.DecodeValue(h.GetValue())
		if err != nil {
			return record.Record{}, fmt.Errorf("decoding header %q: %w", h.GetName(), err)
		}
		opts = append(opts, record.WithHeader(h.GetName(), hv))
	}
	if wire.GetOrigin() != "" {
		opts = append(opts, record.WithOrigin(wire.GetOrigin()))
	}
	if wire.Timestamp != nil {
		opts = append(opts, record.WithTimestamp(*wire.Timestamp))
	}
	return record.New(value, opts...), nil
}
