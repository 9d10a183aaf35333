package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFramePadding(t *testing.T) {
	cases := []struct {
		payloadLen int
		totalLen   int
	}{
		{7, 16},
		{8, 16},
		{9, 32},
	}
	for _, c := range cases {
		payload := make([]byte, c.payloadLen)
		encoded := Encode(5007, payload)
		assert.Equal(t, c.totalLen, len(encoded), "payload len %d", c.payloadLen)
		assert.Equal(t, 0, len(encoded)%blockSize)
	}
}

func TestFrameRoundTrip(t *testing.T) {
	payload := []byte("hello graphene world")
	encoded := Encode(5006, payload)

	decoded, n, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, len(encoded), n)
	assert.Equal(t, uint32(5006), decoded.MessageType)
	assert.Equal(t, payload, decoded.Payload)
}

func TestDecodeIncomplete(t *testing.T) {
	payload := make([]byte, 20)
	encoded := Encode(1001, payload)
	_, _, err := Decode(encoded[:len(encoded)-1])
	assert.ErrorIs(t, err, ErrIncomplete)

	_, _, err = Decode(encoded[:2])
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestMultipleFramesConcatenated(t *testing.T) {
	a := Encode(5009, nil)
	b := Encode(5012, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	buf := append(append([]byte(nil), a...), b...)

	f1, n1, err := Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, uint32(5009), f1.MessageType)
	buf = buf[n1:]

	f2, n2, err := Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, uint32(5012), f2.MessageType)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, f2.Payload)
	buf = buf[n2:]
	assert.Empty(t, buf)
}
