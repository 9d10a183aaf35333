// Package graphobj defines the concrete object and value-type bodies
// referenced by the operation catalog and by full object-id resolution:
// accounts, assets, authorities, chain parameters, and the blinded-transfer
// value types.
package graphobj

import (
	"github.com/graphene-p2p/peerd/internal/objectid"
	"github.com/graphene-p2p/peerd/internal/wire"
)

// AccountIDCodec, AssetIDCodec, etc. are the short-form object-id codecs
// used as plain fields inside value objects and operations.
var (
	AccountIDCodec            = objectid.ShortCodec(objectid.Account)
	AssetIDCodec              = objectid.ShortCodec(objectid.Asset)
	WitnessIDCodec            = objectid.ShortCodec(objectid.Witness)
	CommitteeMemberIDCodec    = objectid.ShortCodec(objectid.CommitteeMember)
	ProposalIDCodec           = objectid.ShortCodec(objectid.Proposal)
	LimitOrderIDCodec         = objectid.ShortCodec(objectid.LimitOrder)
	WithdrawPermissionIDCodec = objectid.ShortCodec(objectid.WithdrawPermission)
	VestingBalanceIDCodec     = objectid.ShortCodec(objectid.VestingBalance)
	BalanceObjectIDCodec      = objectid.ShortCodec(objectid.BalanceObject)
)

// Asset is a fixed-point amount tagged with its asset type.
var AssetSchema = wire.Schema{
	{Name: "amount", Codec: wire.I64},
	{Name: "asset_id", Codec: AssetIDCodec},
}
var AssetCodec = wire.StructCodec{Schema: AssetSchema}

// Price is a ratio of two Assets, used for exchange rates and feeds.
var PriceSchema = wire.Schema{
	{Name: "base", Codec: AssetCodec},
	{Name: "quote", Codec: AssetCodec},
}
var PriceCodec = wire.StructCodec{Schema: PriceSchema}

// PriceFeed is a published price with collateralization ratios.
var PriceFeedSchema = wire.Schema{
	{Name: "settlement_price", Codec: PriceCodec},
	{Name: "maintenance_collateral_ratio", Codec: wire.U16},
	{Name: "maximum_short_squeeze_ratio", Codec: wire.U16},
	{Name: "core_exchange_rate", Codec: PriceCodec},
}
var PriceFeedCodec = wire.StructCodec{Schema: PriceFeedSchema}

// Authority is a weighted-threshold set of accounts, keys, and addresses.
var AuthoritySchema = wire.Schema{
	{Name: "weight_threshold", Codec: wire.U32},
	{Name: "account_auths", Codec: wire.MapOf(AccountIDCodec, wire.U16)},
	{Name: "key_auths", Codec: wire.MapOf(wire.PublicKeyT, wire.U16)},
	{Name: "address_auths", Codec: wire.MapOf(wire.RIPEMD160T, wire.U16)},
}
var AuthorityCodec = wire.StructCodec{Schema: AuthoritySchema}

// AccountOptionsExt has no known fields in the current protocol revision.
var AccountOptionsExtSchema = wire.Schema{}

var AccountOptionsSchema = wire.Schema{
	{Name: "memo_key", Codec: wire.PublicKeyT},
	{Name: "voting_account", Codec: AccountIDCodec},
	{Name: "num_witness", Codec: wire.U16},
	{Name: "num_committee", Codec: wire.U16},
	{Name: "votes", Codec: wire.VectorOf(wire.VoteIDT)},
	{Name: "extensions", Codec: wire.ExtensionOf(AccountOptionsExtSchema)},
}
var AccountOptionsCodec = wire.StructCodec{Schema: AccountOptionsSchema}

var AssetOptionsExtSchema = wire.Schema{}

var AssetOptionsSchema = wire.Schema{
	{Name: "max_supply", Codec: wire.I64},
	{Name: "market_fee_percent", Codec: wire.U16},
	{Name: "max_market_fee", Codec: wire.I64},
	{Name: "issuer_permissions", Codec: wire.U16},
	{Name: "flags", Codec: wire.U16},
	{Name: "core_exchange_rate", Codec: PriceCodec},
	{Name: "whitelist_authorities", Codec: wire.VectorOf(AccountIDCodec)},
	{Name: "blacklist_authorities", Codec: wire.VectorOf(AccountIDCodec)},
	{Name: "whitelist_markets", Codec: wire.VectorOf(AssetIDCodec)},
	{Name: "blacklist_markets", Codec: wire.VectorOf(AssetIDCodec)},
	{Name: "description", Codec: wire.StringT},
	{Name: "extensions", Codec: wire.ExtensionOf(AssetOptionsExtSchema)},
}
var AssetOptionsCodec = wire.StructCodec{Schema: AssetOptionsSchema}

var BitAssetOptionsExtSchema = wire.Schema{}

var BitAssetOptionsSchema = wire.Schema{
	{Name: "feed_lifetime_sec", Codec: wire.U32},
	{Name: "minimum_feeds", Codec: wire.U8},
	{Name: "force_settlement_delay_sec", Codec: wire.U32},
	{Name: "force_settlement_offset_percent", Codec: wire.U16},
	{Name: "maximum_force_settlement_volume", Codec: wire.U16},
	{Name: "short_backing_asset", Codec: AssetIDCodec},
	{Name: "extensions", Codec: wire.ExtensionOf(BitAssetOptionsExtSchema)},
}
var BitAssetOptionsCodec = wire.StructCodec{Schema: BitAssetOptionsSchema}

// WorkerInitializer is a StaticVariant over the three known worker kinds.
var (
	RefundWorkerInitializerSchema         = wire.Schema{}
	VestingBalanceWorkerInitializerSchema = wire.Schema{
		{Name: "pay_vesting_period_days", Codec: wire.U16},
	}
	BurnWorkerInitializerSchema = wire.Schema{}
)

var WorkerInitializerCodec = wire.StaticVariantOf([]wire.VariantCase{
	{Codec: wire.StructCodec{Schema: RefundWorkerInitializerSchema}},
	{Codec: wire.StructCodec{Schema: VestingBalanceWorkerInitializerSchema}},
	{Codec: wire.StructCodec{Schema: BurnWorkerInitializerSchema}},
})

// VestingPolicyInitializer is a StaticVariant over the two known vesting
// policy kinds used by VestingBalanceCreate.
var (
	LinearVestingPolicyInitializerSchema = wire.Schema{
		{Name: "begin_timestamp", Codec: wire.U32},
		{Name: "vesting_cliff_seconds", Codec: wire.U32},
		{Name: "vesting_duration_seconds", Codec: wire.U32},
	}
	CddVestingPolicyInitializerSchema = wire.Schema{
		{Name: "start_claim", Codec: wire.U32},
		{Name: "vesting_seconds", Codec: wire.U32},
	}
)

var VestingPolicyInitializerCodec = wire.StaticVariantOf([]wire.VariantCase{
	{Codec: wire.StructCodec{Schema: LinearVestingPolicyInitializerSchema}},
	{Codec: wire.StructCodec{Schema: CddVestingPolicyInitializerSchema}},
})

// Predicate is a StaticVariant over the three assert-operation predicates.
// BlockIDPredicate is defined here as an ordered two-field struct: one
// historical reference describes it with a bare set literal, which cannot
// express an ordered field-to-type mapping and is treated as a copy/paste
// defect rather than reproduced.
var (
	AccountNameEqLitPredicateSchema = wire.Schema{
		{Name: "account_id", Codec: AccountIDCodec},
		{Name: "name", Codec: wire.StringT},
	}
	AssetSymbolEqLitPredicateSchema = wire.Schema{
		{Name: "asset_id", Codec: AssetIDCodec},
		{Name: "symbol", Codec: wire.StringT},
	}
	BlockIDPredicateSchema = wire.Schema{
		{Name: "id", Codec: wire.U32},
		{Name: "block_id", Codec: wire.RIPEMD160T},
	}
)

var PredicateCodec = wire.StaticVariantOf([]wire.VariantCase{
	{Codec: wire.StructCodec{Schema: AccountNameEqLitPredicateSchema}},
	{Codec: wire.StructCodec{Schema: AssetSymbolEqLitPredicateSchema}},
	{Codec: wire.StructCodec{Schema: BlockIDPredicateSchema}},
})

// MemoData is an encrypted memo attached to a transfer.
var MemoDataSchema = wire.Schema{
	{Name: "from", Codec: wire.FakePublicKeyT},
	{Name: "to", Codec: wire.FakePublicKeyT},
	{Name: "nonce", Codec: wire.U64},
	{Name: "message", Codec: wire.DataT},
}
var MemoDataCodec = wire.StructCodec{Schema: MemoDataSchema}

// commitmentCodec is the 33-byte Pedersen commitment used by blind transfers.
var commitmentCodec = wire.FieldCodec(fixedBytes{33})

type fixedBytes struct{ size int }

func (c fixedBytes) Encode(dst []byte, v interface{}) ([]byte, error) {
	b, ok := v.([]byte)
	if !ok || len(b) != c.size {
		return nil, wire.ErrWrongShape
	}
	return append(dst, b...), nil
}

func (c fixedBytes) Decode(buf *wire.Buffer) (interface{}, error) {
	b, err := buf.Read(c.size)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), b...), nil
}

var StealthConfirmationSchema = wire.Schema{
	{Name: "one_time_key", Codec: wire.FakePublicKeyT},
	{Name: "to", Codec: wire.OptionalOf(wire.FakePublicKeyT)},
	{Name: "encrypted_memo", Codec: wire.DataT},
}
var StealthConfirmationCodec = wire.StructCodec{Schema: StealthConfirmationSchema}

var BlindInputSchema = wire.Schema{
	{Name: "commitment", Codec: commitmentCodec},
	{Name: "owner", Codec: AuthorityCodec},
}
var BlindInputCodec = wire.StructCodec{Schema: BlindInputSchema}

var BlindOutputSchema = wire.Schema{
	{Name: "commitment", Codec: commitmentCodec},
	{Name: "range_proof", Codec: wire.DataT},
	{Name: "owner", Codec: AuthorityCodec},
	{Name: "stealth_memo", Codec: wire.OptionalOf(StealthConfirmationCodec)},
}
var BlindOutputCodec = wire.StructCodec{Schema: BlindOutputSchema}
