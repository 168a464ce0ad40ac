// ABOUTME: Tests for value encoding/decoding and record marshalling round trips.
// ABOUTME: Covers scalar kinds, Avro schema announcements, JSON fallback, and protocol errors.

package codec

import (
	"testing"

	avro "github.com/hamba/avro/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidemill/agent-bridge/internal/record"
	"github.com/tidemill/agent-bridge/internal/schema"
	pb "github.com/tidemill/agent-bridge/proto/bridge"
)

const userSchemaJSON = `{"type":"record","name":"User","fields":[{"name":"name","type":"string"},{"name":"age","type":"long"}]}`

func newTestCodec(t *testing.T) *Codec {
	t.Helper()
	return New(schema.NewRegistry(), schema.NewCache())
}

func TestEncodeScalarValues(t *testing.T) {
	c := newTestCodec(t)

	tests := []struct {
		name  string
		value any
		check func(t *testing.T, v *pb.Value)
	}{
		{"bytes", []byte{0x01, 0x02}, func(t *testing.T, v *pb.Value) {
			assert.Equal(t, []byte{0x01, 0x02}, v.GetBytesValue())
		}},
		{"string", "hello", func(t *testing.T, v *pb.Value) {
			assert.Equal(t, "hello", v.GetStringValue())
		}},
		{"bool", true, func(t *testing.T, v *pb.Value) {
			assert.True(t, v.GetBooleanValue())
		}},
		{"int64", int64(42), func(t *testing.T, v *pb.Value) {
			assert.Equal(t, int64(42), v.GetLongValue())
		}},
		{"int", 42, func(t *testing.T, v *pb.Value) {
			assert.Equal(t, int64(42), v.GetLongValue())
		}},
		{"float64", 3.5, func(t *testing.T, v *pb.Value) {
			assert.Equal(t, 3.5, v.GetDoubleValue())
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			announcement, wire, err := c.EncodeValue(tt.value)
			require.NoError(t, err)
			assert.Nil(t, announcement, "scalar values never announce schemas")
			require.NotNil(t, wire)
			tt.check(t, wire)
		})
	}
}

func TestEncodeNilValueIsAbsent(t *testing.T) {
	c := newTestCodec(t)

	announcement, wire, err := c.EncodeValue(nil)
	require.NoError(t, err)
	assert.Nil(t, announcement)
	assert.Nil(t, wire)
}

func TestEncodeUnsupportedType(t *testing.T) {
	c := newTestCodec(t)

	_, _, err := c.EncodeValue(struct{ X int }{1})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestScalarRoundTrip(t *testing.T) {
	c := newTestCodec(t)

	for _, value := range []any{[]byte("blob"), "text", false, int64(-7), 2.25, nil} {
		_, wire, err := c.EncodeValue(value)
		require.NoError(t, err)

		decoded, err := c.DecodeValue(wire)
		require.NoError(t, err)
		assert.Equal(t, value, decoded)
	}
}

func TestEncodeJSONValue(t *testing.T) {
	c := newTestCodec(t)

	announcement, wire, err := c.EncodeValue(map[string]any{"a": "b"})
	require.NoError(t, err)
	assert.Nil(t, announcement, "schema-less mappings go out as JSON, not Avro")
	assert.JSONEq(t, `{"a":"b"}`, wire.GetJsonValue())

	decoded, err := c.DecodeValue(wire)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": "b"}, decoded)
}

func TestEncodeJSONSliceValue(t *testing.T) {
	c := newTestCodec(t)

	_, wire, err := c.EncodeValue([]any{"x", "y"})
	require.NoError(t, err)
	assert.JSONEq(t, `["x","y"]`, wire.GetJsonValue())
}

func TestAvroValueAnnouncesSchemaOnce(t *testing.T) {
	c := newTestCodec(t)
	userSchema := avro.MustParse(userSchemaJSON)
	value := record.AvroValue{Schema: userSchema, Value: map[string]any{"name": "ada", "age": int64(36)}}

	announcement, wire, err := c.EncodeValue(value)
	require.NoError(t, err)
	require.NotNil(t, announcement, "first encoding must announce the schema")
	assert.Equal(t, int32(1), announcement.GetSchemaId())
	assert.Equal(t, userSchema.String(), string(announcement.GetValue()))
	assert.Equal(t, int32(1), wire.GetSchemaId())
	assert.NotEmpty(t, wire.GetAvroValue())

	// Second encoding with the same schema reuses the id silently.
	announcement, wire, err = c.EncodeValue(value)
	require.NoError(t, err)
	assert.Nil(t, announcement)
	assert.Equal(t, int32(1), wire.GetSchemaId())
}

func TestAvroValueRoundTrip(t *testing.T) {
	registry := schema.NewRegistry()
	cache := schema.NewCache()
	c := New(registry, cache)

	userSchema := avro.MustParse(userSchemaJSON)
	value := record.AvroValue{Schema: userSchema, Value: map[string]any{"name": "ada", "age": int64(36)}}

	announcement, wire, err := c.EncodeValue(value)
	require.NoError(t, err)

	// Loop the announcement back as if the peer had sent it.
	require.NoError(t, cache.Put(wire.GetSchemaId(), announcement.GetValue()))

	decoded, err := c.DecodeValue(wire)
	require.NoError(t, err)

	avroValue, ok := decoded.(record.AvroValue)
	require.True(t, ok, "avro wire values must decode as AvroValue, got %T", decoded)
	assert.Equal(t, map[string]any{"name": "ada", "age": int64(36)}, avroValue.Value)
}

func TestDecodeAvroValueUnknownSchemaId(t *testing.T) {
	c := newTestCodec(t)

	wire := &pb.Value{
		SchemaId:  5,
		TypeOneof: &pb.Value_AvroValue{AvroValue: []byte{0x02}},
	}
	_, err := c.DecodeValue(wire)
	assert.ErrorIs(t, err, schema.ErrUnknownSchema,
		"an unannounced schema id must be a protocol error, not a silent fallback")
}

func TestToWireRecord(t *testing.T) {
	c := newTestCodec(t)

	rec := record.New("payload",
		record.WithKey("k1"),
		record.WithHeader("trace", "abc"),
		record.WithHeader("attempt", int64(2)),
		record.WithOrigin("orders"),
		record.WithTimestamp(1700000000000),
	)

	announcements, wire, err := c.ToWire(rec)
	require.NoError(t, err)
	assert.Empty(t, announcements)

	assert.Equal(t, "payload", wire.GetValue().GetStringValue())
	assert.Equal(t, "k1", wire.GetKey().GetStringValue())
	require.Len(t, wire.GetHeaders(), 2)
	assert.Equal(t, "trace", wire.GetHeaders()[0].GetName())
	assert.Equal(t, "abc", wire.GetHeaders()[0].GetValue().GetStringValue())
	assert.Equal(t, "attempt", wire.GetHeaders()[1].GetName())
	assert.Equal(t, int64(2), wire.GetHeaders()[1].GetValue().GetLongValue())
	assert.Equal(t, "orders", wire.GetOrigin())
	require.NotNil(t, wire.Timestamp)
	assert.Equal(t, int64(1700000000000), *wire.Timestamp)
}

func TestToWireOmitsAbsentTimestamp(t *testing.T) {
	c := newTestCodec(t)

	_, wire, err := c.ToWire(record.New("v"))
	require.NoError(t, err)
	assert.Nil(t, wire.Timestamp, "absent timestamp must not be encoded as zero")
}

func TestToWireCollectsHeaderAnnouncements(t *testing.T) {
	c := newTestCodec(t)
	userSchema := avro.MustParse(userSchemaJSON)

	rec := record.New("v",
		record.WithHeader("user", record.AvroValue{Schema: userSchema, Value: map[string]any{"name": "ada", "age": int64(36)}}),
	)
	announcements, _, err := c.ToWire(rec)
	require.NoError(t, err)
	require.Len(t, announcements, 1)
	assert.Equal(t, int32(1), announcements[0].GetSchemaId())
}

func TestFromWireRecord(t *testing.T) {
	c := newTestCodec(t)

	ts := int64(1700000000000)
	wire := &pb.Record{
		RecordId: 9,
		Value:    &pb.Value{TypeOneof: &pb.Value_StringValue{StringValue: "payload"}},
		Key:      &pb.Value{TypeOneof: &pb.Value_StringValue{StringValue: "k1"}},
		Headers: []*pb.Header{
			{Name: "trace", Value: &pb.Value{TypeOneof: &pb.Value_StringValue{StringValue: "abc"}}},
		},
		Origin:    "orders",
		Timestamp: &ts,
	}

	rec, err := c.FromWire(wire)
	require.NoError(t, err)

	assert.Equal(t, int64(9), rec.ID())
	assert.Equal(t, "payload", rec.Value())
	assert.Equal(t, "k1", rec.Key())
	require.Len(t, rec.Headers(), 1)
	assert.Equal(t, "trace", rec.Headers()[0].Name)
	assert.Equal(t, "orders", rec.Origin())
	gotTS, ok := rec.Timestamp()
	require.True(t, ok)
	assert.Equal(t, ts, gotTS)
}

func TestFromWireDefaults(t *testing.T) {
	c := newTestCodec(t)

	rec, err := c.FromWire(&pb.Record{RecordId: 1})
	require.NoError(t, err)

	assert.Nil(t, rec.Value())
	assert.Nil(t, rec.Key())
	assert.Empty(t, rec.Headers())
	assert.Equal(t, "", rec.Origin(), "empty wire origin decodes as no origin")
	_, ok := rec.Timestamp()
	assert.False(t, ok, "timestamp is present only if set on the wire")
}
