package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, c FieldCodec, v interface{}) interface{} {
	t.Helper()
	encoded, err := c.Encode(nil, v)
	require.NoError(t, err)
	decoded, err := c.Decode(NewBuffer(encoded))
	require.NoError(t, err)
	return decoded
}

func TestPrimitiveRoundTrips(t *testing.T) {
	assert.Equal(t, uint8(200), roundTrip(t, U8, uint8(200)))
	assert.Equal(t, uint16(60000), roundTrip(t, U16, uint16(60000)))
	assert.Equal(t, uint32(4000000000), roundTrip(t, U32, uint32(4000000000)))
	assert.Equal(t, uint64(18000000000000000000), roundTrip(t, U64, uint64(18000000000000000000)))
	assert.Equal(t, int64(-12345), roundTrip(t, I64, int64(-12345)))
	assert.Equal(t, true, roundTrip(t, Bool, true))
	assert.Equal(t, false, roundTrip(t, Bool, false))
	assert.Equal(t, "hello, graphene", roundTrip(t, StringT, "hello, graphene"))
	assert.Equal(t, []byte{1, 2, 3}, roundTrip(t, DataT, []byte{1, 2, 3}))
}

func TestNumericRangeEnforcement(t *testing.T) {
	_, err := U8.Encode(nil, uint64(256))
	require.Error(t, err)
	var encErr *EncodeError
	assert.ErrorAs(t, err, &encErr)
	assert.Equal(t, EncodeOutOfRange, encErr.Kind)

	_, err = U16.Encode(nil, uint64(70000))
	require.Error(t, err)
	_, err = U32.Encode(nil, uint64(1)<<40)
	require.Error(t, err)
}

func TestFixedBytesRoundTrip(t *testing.T) {
	pk := make([]byte, 33)
	for i := range pk {
		pk[i] = byte(i)
	}
	assert.Equal(t, pk, roundTrip(t, PublicKeyT, pk))

	sig := make([]byte, 65)
	assert.Equal(t, sig, roundTrip(t, SignatureT, sig))

	_, err := PublicKeyT.Encode(nil, []byte{1, 2, 3})
	assert.Error(t, err)
}

func TestVoteIDPacking(t *testing.T) {
	v := VoteID{Category: 3, Instance: 42}
	got := roundTrip(t, VoteIDT, v)
	assert.Equal(t, v, got)

	encoded, err := VoteIDT.Encode(nil, v)
	require.NoError(t, err)
	assert.Equal(t, uint32(3)|42<<8, leUint32(encoded))
}

func leUint32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func TestVectorRoundTrip(t *testing.T) {
	vec := VectorOf(U32)
	v := []interface{}{uint32(1), uint32(2), uint32(3)}
	got := roundTrip(t, vec, v)
	assert.Equal(t, v, got)

	empty := roundTrip(t, vec, []interface{}{})
	assert.Equal(t, []interface{}{}, empty)
}

func TestOptionalRoundTrip(t *testing.T) {
	opt := OptionalOf(StringT)
	assert.Equal(t, "present", roundTrip(t, opt, "present"))
	assert.Nil(t, roundTrip(t, opt, nil))
}

func TestMapRoundTrip(t *testing.T) {
	m := MapOf(StringT, U32)
	entries := []MapEntry{{Key: "a", Value: uint32(1)}, {Key: "b", Value: uint32(2)}}
	got := roundTrip(t, m, entries)
	assert.Equal(t, entries, got)
}

func TestStructCodecRoundTrip(t *testing.T) {
	schema := Schema{
		{Name: "item_type", Codec: U32},
		{Name: "item_hashes_available", Codec: VectorOf(RIPEMD160T)},
	}
	sc := StructCodec{Schema: schema}
	hash := make([]byte, 20)
	hash[0] = 0xaa
	rec := Record{
		"item_type":             uint32(1001),
		"item_hashes_available": []interface{}{hash},
	}
	got := roundTrip(t, sc, rec)
	assert.Equal(t, rec, got)
}

func TestStructCodecMissingFieldFails(t *testing.T) {
	schema := Schema{{Name: "x", Codec: U32}}
	sc := StructCodec{Schema: schema}
	_, err := sc.Encode(nil, Record{})
	assert.Error(t, err)
}

func TestVariantObjectRoundTrip(t *testing.T) {
	obj := VariantObject{"platform": "unknown"}
	got := roundTrip(t, VariantObjectT, obj)
	assert.Equal(t, obj, got)
}

func TestExtensionStrictlyIncreasingIndices(t *testing.T) {
	schema := Schema{
		{Name: "a", Codec: U32},
		{Name: "b", Codec: StringT},
		{Name: "c", Codec: Bool},
	}
	ext := ExtensionOf(schema)

	rec := Record{"b": "mid"}
	encoded, err := ext.Encode(nil, rec)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x01}, encoded[:2]) // count=1, index=1

	decoded, err := ext.Decode(NewBuffer(encoded))
	require.NoError(t, err)
	got := decoded.(Record)
	assert.Equal(t, "mid", got["b"])
	_, hasA := got["a"]
	assert.False(t, hasA)

	full := Record{"a": uint32(1), "b": "x", "c": true}
	got2 := roundTrip(t, ext, full)
	assert.Equal(t, full, got2)
}

func TestExtensionRejectsOutOfOrderIndices(t *testing.T) {
	schema := Schema{{Name: "a", Codec: U32}, {Name: "b", Codec: U32}}
	ext := ExtensionOf(schema)
	// hand-crafted: count=2, index=1, value, index=0, value (decreasing -> invalid)
	buf := NewBuffer(nil)
	raw := EncodeVarInt(nil, 2)
	raw = EncodeVarInt(raw, 1)
	raw, _ = U32.Encode(raw, uint32(9))
	raw = EncodeVarInt(raw, 0)
	raw, _ = U32.Encode(raw, uint32(9))
	buf.Write(raw)
	_, err := ext.Decode(buf)
	assert.Error(t, err)
}

func TestStaticVariantRoundTripAndReservedSlots(t *testing.T) {
	variant := StaticVariantOf([]VariantCase{
		{Codec: NullT},
		Reserved,
		{Codec: U64},
	})
	got := roundTrip(t, variant, Variant{Discriminator: 2, Value: uint64(7)})
	assert.Equal(t, Variant{Discriminator: 2, Value: uint64(7)}, got)

	_, err := variant.Encode(nil, Variant{Discriminator: 1, Value: nil})
	require.Error(t, err)
	var encErr *EncodeError
	assert.ErrorAs(t, err, &encErr)
	assert.Equal(t, EncodeUnsupported, encErr.Kind)
}

func TestBufferFIFOOrdering(t *testing.T) {
	buf := NewBuffer(nil)
	buf.Write([]byte{1, 2, 3})
	buf.Write([]byte{4, 5})
	assert.Equal(t, 5, buf.Count())

	peeked, err := buf.Peek(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, peeked)
	assert.Equal(t, 5, buf.Count(), "peek must not consume")

	read, err := buf.Read(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, read)
	assert.Equal(t, 2, buf.Count())

	_, err = buf.Read(10)
	assert.ErrorIs(t, err, ErrUnderflow)
}
