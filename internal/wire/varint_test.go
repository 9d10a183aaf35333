package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVarIntRoundTrip(t *testing.T) {
	cases := []struct {
		value   uint64
		encoded []byte
	}{
		{0, []byte{0x00}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{300, []byte{0xac, 0x02}},
	}
	for _, c := range cases {
		got := EncodeVarInt(nil, c.value)
		assert.Equal(t, c.encoded, got, "encode %d", c.value)

		buf := NewBuffer(append([]byte(nil), c.encoded...))
		decoded, err := DecodeVarInt(buf)
		require.NoError(t, err)
		assert.Equal(t, c.value, decoded, "decode %d", c.value)
		assert.Equal(t, 0, buf.Count())
	}
}

func TestVarIntRoundTripExhaustiveSmall(t *testing.T) {
	for v := uint64(0); v < 5000; v++ {
		encoded := EncodeVarInt(nil, v)
		buf := NewBuffer(encoded)
		decoded, err := DecodeVarInt(buf)
		require.NoError(t, err)
		assert.Equal(t, v, decoded)
	}
}

func TestVarIntUnderflow(t *testing.T) {
	buf := NewBuffer([]byte{0x80, 0x80})
	_, err := DecodeVarInt(buf)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnderflow)
}
