package operation

import (
	"testing"

	"github.com/graphene-p2p/peerd/internal/graphobj"
	"github.com/graphene-p2p/peerd/internal/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferRoundTrip(t *testing.T) {
	from, _ := TransferCodec.Schema[1].Codec.Decode(wire.NewBuffer([]byte{5}))
	to, _ := TransferCodec.Schema[2].Codec.Decode(wire.NewBuffer([]byte{7}))

	rec := wire.Record{
		"fee": wire.Record{
			"amount":   int64(100),
			"asset_id": mustAssetID(1),
		},
		"from":   from,
		"to":     to,
		"amount": wire.Record{"amount": int64(5000), "asset_id": mustAssetID(1)},
		"memo":   nil,
		"extensions": wire.Record{},
	}

	encoded, err := TransferCodec.Encode(nil, rec)
	require.NoError(t, err)

	decoded, err := TransferCodec.Decode(wire.NewBuffer(encoded))
	require.NoError(t, err)
	assert.Equal(t, rec, decoded)
}

func mustAssetID(instance uint64) interface{} {
	v, _ := graphobj.AssetIDCodec.Decode(wire.NewBuffer(wire.EncodeVarInt(nil, instance)))
	return v
}

func TestOperationVariantRoundTrip(t *testing.T) {
	payload, err := WitnessCreateCodec.Encode(nil, wire.Record{
		"fee":               wire.Record{"amount": int64(10), "asset_id": mustAssetID(1)},
		"witness_account":   mustAccountID(3),
		"url":               "https://example.invalid",
		"block_signing_key": make([]byte, 33),
	})
	require.NoError(t, err)

	variant := wire.Variant{Discriminator: 20, Value: decodeRecord(t, WitnessCreateCodec, payload)}

	encoded, err := OperationVariant.Encode(nil, variant)
	require.NoError(t, err)

	decoded, err := OperationVariant.Decode(wire.NewBuffer(encoded))
	require.NoError(t, err)
	got := decoded.(wire.Variant)
	assert.Equal(t, uint64(20), got.Discriminator)
}

func decodeRecord(t *testing.T, codec wire.StructCodec, payload []byte) wire.Record {
	t.Helper()
	v, err := codec.Decode(wire.NewBuffer(payload))
	require.NoError(t, err)
	return v.(wire.Record)
}

func mustAccountID(instance uint64) interface{} {
	v, _ := graphobj.AccountIDCodec.Decode(wire.NewBuffer(wire.EncodeVarInt(nil, instance)))
	return v
}

func TestReservedOpidRejected(t *testing.T) {
	_, err := OperationVariant.Encode(nil, wire.Variant{Discriminator: 4, Value: wire.Record{}})
	assert.Error(t, err)
	assert.ErrorIs(t, err, wire.ErrUnsupported)

	_, err = OperationVariant.Encode(nil, wire.Variant{Discriminator: 42, Value: wire.Record{}})
	assert.ErrorIs(t, err, wire.ErrUnsupported)

	_, err = OperationVariant.Encode(nil, wire.Variant{Discriminator: 49, Value: wire.Record{}})
	assert.ErrorIs(t, err, wire.ErrUnsupported)
}

func TestProposalCreateSelfReferenceResolved(t *testing.T) {
	require.NotNil(t, operationVariantLazy.Resolved)

	transferPayload, err := TransferCodec.Encode(nil, wire.Record{
		"fee":    wire.Record{"amount": int64(1), "asset_id": mustAssetID(1)},
		"from":   mustAccountID(1),
		"to":     mustAccountID(2),
		"amount": wire.Record{"amount": int64(1), "asset_id": mustAssetID(1)},
		"memo":   nil,
		"extensions": wire.Record{},
	})
	require.NoError(t, err)
	transferRec := decodeRecord(t, TransferCodec, transferPayload)

	rec := wire.Record{
		"fee":                wire.Record{"amount": int64(1), "asset_id": mustAssetID(1)},
		"fee_paying_account": mustAccountID(1),
		"proposed_ops": []interface{}{
			wire.Variant{Discriminator: 0, Value: transferRec},
		},
		"expiration_time":       uint32(12345),
		"review_period_seconds": nil,
		"extensions":            wire.Record{},
	}

	encoded, err := ProposalCreateCodec.Encode(nil, rec)
	require.NoError(t, err)

	decoded, err := ProposalCreateCodec.Decode(wire.NewBuffer(encoded))
	require.NoError(t, err)
	assert.Equal(t, rec, decoded)
}
