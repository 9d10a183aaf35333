package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPv4AddressEndianness(t *testing.T) {
	addr, err := ParseIPv4Address("192.168.1.2")
	require.NoError(t, err)

	encoded, err := IPv4AddressT.Encode(nil, addr)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x01, 0xa8, 0xc0}, encoded)

	decoded, err := IPv4AddressT.Decode(NewBuffer(encoded))
	require.NoError(t, err)
	assert.Equal(t, addr, decoded)
}

func TestIPv4EndpointEndianness(t *testing.T) {
	endp, err := ParseIPv4Endpoint("87.117.52.158:11206")
	require.NoError(t, err)

	encoded, err := IPv4EndpointT.Encode(nil, endp)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x9e, 0x34, 0x75, 0x57, 0xc6, 0x2b}, encoded)

	decoded, err := IPv4EndpointT.Decode(NewBuffer(encoded))
	require.NoError(t, err)
	assert.Equal(t, endp, decoded)
}

func TestParseIPv4AddressRejectsGarbage(t *testing.T) {
	_, err := ParseIPv4Address("not.an.ip.address")
	assert.Error(t, err)
	_, err = ParseIPv4Address("1.2.3")
	assert.Error(t, err)
	_, err = ParseIPv4Address("1.2.3.400")
	assert.Error(t, err)
}
