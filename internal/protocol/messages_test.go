package protocol

import (
	"encoding/hex"
	"testing"

	"github.com/graphene-p2p/peerd/internal/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelloRoundTrip(t *testing.T) {
	chainID, err := hex.DecodeString("4018d7844c78f6a6c41c6a552b898022310fc5dec06da467ee7905a8dad512c8")
	require.NoError(t, err)
	require.Len(t, chainID, 32)

	inboundAddr, err := wire.ParseIPv4Address("0.0.0.0")
	require.NoError(t, err)

	rec := wire.Record{
		"user_agent":            "Haruka Mock Client",
		"core_protocol_version": uint32(106),
		"inbound_address":       inboundAddr,
		"inbound_port":          uint16(0),
		"outbound_port":         uint16(0),
		"node_public_key":       make([]byte, 33),
		"signed_shared_secret":  make([]byte, 65),
		"chain_id":              chainID,
		"user_data":             wire.VariantObject{"platform": "unknown"},
	}

	codec, ok := Lookup(Hello)
	require.True(t, ok)

	encoded, err := codec.Encode(nil, rec)
	require.NoError(t, err)

	decoded, err := codec.Decode(wire.NewBuffer(encoded))
	require.NoError(t, err)
	assert.Equal(t, rec, decoded)
}

func TestUnknownMessageIDNotRegistered(t *testing.T) {
	_, ok := Lookup(5014)
	assert.False(t, ok)
	_, ok = Name(5017)
	assert.False(t, ok)
}

func TestClosingConnectionSchema(t *testing.T) {
	codec, ok := Lookup(ClosingConnection)
	require.True(t, ok)

	encoded, err := codec.Encode(nil, wire.Record{
		"reason_code":   uint8(1),
		"reason_string": "peer requested",
	})
	require.NoError(t, err)

	decoded, err := codec.Decode(wire.NewBuffer(encoded))
	require.NoError(t, err)
	rec := decoded.(wire.Record)
	assert.Equal(t, "peer requested", rec["reason_string"])
}
