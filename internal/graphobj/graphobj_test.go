package graphobj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphene-p2p/peerd/internal/objectid"
	"github.com/graphene-p2p/peerd/internal/wire"
)

func decode(t *testing.T, codec wire.FieldCodec, encoded []byte) interface{} {
	t.Helper()
	v, err := codec.Decode(wire.NewBuffer(encoded))
	require.NoError(t, err)
	return v
}

func TestAssetRoundTrip(t *testing.T) {
	asset := wire.Record{
		"amount":   int64(1000000),
		"asset_id": objectid.Asset.ID(0),
	}
	encoded, err := AssetCodec.Encode(nil, asset)
	require.NoError(t, err)

	decoded := decode(t, AssetCodec, encoded)
	assert.Equal(t, asset, decoded)
}

func TestPriceFeedRoundTrip(t *testing.T) {
	base := wire.Record{"amount": int64(1), "asset_id": objectid.Asset.ID(0)}
	quote := wire.Record{"amount": int64(2), "asset_id": objectid.Asset.ID(1)}
	feed := wire.Record{
		"settlement_price": wire.Record{"base": base, "quote": quote},
		"maintenance_collateral_ratio": uint16(1750),
		"maximum_short_squeeze_ratio":  uint16(1500),
		"core_exchange_rate":           wire.Record{"base": base, "quote": quote},
	}

	encoded, err := PriceFeedCodec.Encode(nil, feed)
	require.NoError(t, err)
	decoded := decode(t, PriceFeedCodec, encoded)
	assert.Equal(t, feed, decoded)
}

func TestAuthorityRoundTrip(t *testing.T) {
	authority := wire.Record{
		"weight_threshold": uint32(1),
		"account_auths":    []wire.MapEntry{{Key: objectid.Account.ID(5), Value: uint16(1)}},
		"key_auths":        []wire.MapEntry{},
		"address_auths":    []wire.MapEntry{},
	}

	encoded, err := AuthorityCodec.Encode(nil, authority)
	require.NoError(t, err)
	decoded := decode(t, AuthorityCodec, encoded)
	assert.Equal(t, authority, decoded)
}

func TestChainParametersRoundTrip(t *testing.T) {
	schedule := wire.Record{
		"parameters": []interface{}{},
		"scale":      uint32(10000),
	}
	params := wire.Record{
		"current_fees":                              schedule,
		"block_interval":                             uint8(5),
		"maintenance_interval":                       uint32(86400),
		"maintenance_skip_slots":                      uint8(0),
		"committee_proposal_review_period":            uint32(1209600),
		"maximum_transaction_size":                    uint32(2048),
		"maximum_block_size":                          uint32(2097152),
		"maximum_time_until_expiration":               uint32(86400),
		"maximum_proposal_lifetime":                    uint32(2419200),
		"maximum_asset_whitelist_authorities":         uint8(10),
		"maximum_asset_feed_publishers":                uint8(10),
		"maximum_witness_count":                        uint16(101),
		"maximum_committee_count":                       uint16(11),
		"maximum_authority_membership":                  uint16(10),
		"reserve_percent_of_fee":                        uint16(0),
		"network_percent_of_fee":                        uint16(2000),
		"lifetime_referrer_percent_of_fee":              uint16(3000),
		"cashback_vesting_period_seconds":               uint32(604800),
		"cashback_vesting_threshold":                    int64(10000000),
		"count_non_member_votes":                        true,
		"allow_non_member_whitelists":                   false,
		"witness_pay_per_block":                         int64(1000000),
		"worker_budget_per_day":                         int64(50000000000),
		"max_predicate_opcode":                          uint16(1),
		"fee_liquidation_threshold":                     int64(10000000000),
		"accounts_per_fee_scale":                        uint16(1000),
		"account_fee_scale_bitshifts":                   uint8(4),
		"max_authority_depth":                           uint8(2),
		"extensions":                                    wire.Record{},
	}

	encoded, err := ChainParametersCodec.Encode(nil, params)
	require.NoError(t, err)
	decoded := decode(t, ChainParametersCodec, encoded)
	assert.Equal(t, params, decoded)
}
