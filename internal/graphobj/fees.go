package graphobj

import "github.com/graphene-p2p/peerd/internal/wire"

// Fee schedule: one fee entry per opid slot (0-48), StaticVariant between a
// flat fee and a fee plus a per-kilobyte data charge. The mapping of which
// operations carry a data-rate charge follows the fee-scaling convention of
// operations whose payload size is caller-controlled (account/asset/proposal/
// worker creation, custom data, memo-bearing transfers); this is the one
// place in the catalog where the source material is a convention rather than
// an explicit field list, so it is a best-effort approximation rather than a
// byte-exact capture.
var (
	BasicFeeSchema = wire.Schema{
		{Name: "fee", Codec: wire.I64},
	}
	DataRateFeeSchema = wire.Schema{
		{Name: "fee", Codec: wire.I64},
		{Name: "price_per_kbyte", Codec: wire.U32},
	}
)

var basicFee = wire.VariantCase{Codec: wire.StructCodec{Schema: BasicFeeSchema}}
var dataFee = wire.VariantCase{Codec: wire.StructCodec{Schema: DataRateFeeSchema}}

// dataRateOpids are the opids whose fee structure includes a per-kilobyte
// charge: Transfer, AccountCreate, AssetCreate, ProposalCreate, WorkerCreate,
// Custom, and the blind-transfer family.
var dataRateOpids = map[int]bool{
	0: true, 5: true, 10: true, 22: true, 34: true, 35: true, 39: true, 40: true, 41: true,
}

// FeeScheduleParametersCases builds the 49-slot fee parameter variant table
// (opids 0-48), matching the reserved slots of the operation catalog itself.
func FeeScheduleParametersCases() []wire.VariantCase {
	cases := make([]wire.VariantCase, 49)
	for i := range cases {
		cases[i] = wire.Reserved
	}
	reserved := map[int]bool{4: true, 42: true, 44: true, 46: true}
	for i := 0; i < 49; i++ {
		if reserved[i] {
			continue
		}
		if dataRateOpids[i] {
			cases[i] = dataFee
		} else {
			cases[i] = basicFee
		}
	}
	return cases
}

var FeeParameterCodec = wire.StaticVariantOf(FeeScheduleParametersCases())

var FeeScheduleSchema = wire.Schema{
	{Name: "parameters", Codec: wire.VectorOf(FeeParameterCodec)},
	{Name: "scale", Codec: wire.U32},
}
var FeeScheduleCodec = wire.StructCodec{Schema: FeeScheduleSchema}

var ChainParametersExtSchema = wire.Schema{}

var ChainParametersSchema = wire.Schema{
	{Name: "current_fees", Codec: FeeScheduleCodec},
	{Name: "block_interval", Codec: wire.U8},
	{Name: "maintenance_interval", Codec: wire.U32},
	{Name: "maintenance_skip_slots", Codec: wire.U8},
	{Name: "committee_proposal_review_period", Codec: wire.U32},
	{Name: "maximum_transaction_size", Codec: wire.U32},
	{Name: "maximum_block_size", Codec: wire.U32},
	{Name: "maximum_time_until_expiration", Codec: wire.U32},
	{Name: "maximum_proposal_lifetime", Codec: wire.U32},
	{Name: "maximum_asset_whitelist_authorities", Codec: wire.U8},
	{Name: "maximum_asset_feed_publishers", Codec: wire.U8},
	{Name: "maximum_witness_count", Codec: wire.U16},
	{Name: "maximum_committee_count", Codec: wire.U16},
	{Name: "maximum_authority_membership", Codec: wire.U16},
	{Name: "reserve_percent_of_fee", Codec: wire.U16},
	{Name: "network_percent_of_fee", Codec: wire.U16},
	{Name: "lifetime_referrer_percent_of_fee", Codec: wire.U16},
	{Name: "cashback_vesting_period_seconds", Codec: wire.U32},
	{Name: "cashback_vesting_threshold", Codec: wire.I64},
	{Name: "count_non_member_votes", Codec: wire.Bool},
	{Name: "allow_non_member_whitelists", Codec: wire.Bool},
	{Name: "witness_pay_per_block", Codec: wire.I64},
	{Name: "worker_budget_per_day", Codec: wire.I64},
	{Name: "max_predicate_opcode", Codec: wire.U16},
	{Name: "fee_liquidation_threshold", Codec: wire.I64},
	{Name: "accounts_per_fee_scale", Codec: wire.U16},
	{Name: "account_fee_scale_bitshifts", Codec: wire.U8},
	{Name: "max_authority_depth", Codec: wire.U8},
	{Name: "extensions", Codec: wire.ExtensionOf(ChainParametersExtSchema)},
}
var ChainParametersCodec = wire.StructCodec{Schema: ChainParametersSchema}
