package operation

import (
	"github.com/graphene-p2p/peerd/internal/graphobj"
	"github.com/graphene-p2p/peerd/internal/wire"
)

// operationVariantLazy defers to the completed OperationVariant table,
// resolved in init() below. ProposalCreateOperation.proposed_ops is the only
// operation whose own schema is a member of the table it references.
var operationVariantLazy = &wire.LazyCodec{}

var (
	ProposalCreateSchema = withFee(
		wire.Field{Name: "fee_paying_account", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "proposed_ops", Codec: wire.VectorOf(operationVariantLazy)},
		wire.Field{Name: "expiration_time", Codec: wire.U32},
		wire.Field{Name: "review_period_seconds", Codec: wire.OptionalOf(wire.U32)},
		wire.Field{Name: "extensions", Codec: ext()},
	)
	ProposalCreateCodec = wire.StructCodec{Schema: ProposalCreateSchema}

	CommitteeMemberUpdateGlobalParametersSchema = withFee(
		wire.Field{Name: "new_parameters", Codec: graphobj.ChainParametersCodec},
	)
	CommitteeMemberUpdateGlobalParametersCodec = wire.StructCodec{Schema: CommitteeMemberUpdateGlobalParametersSchema}
)

// opidTable maps each known opid to its operation codec. Slots 4, 42, 44, 46
// and everything at or past 49 are reserved and left out, becoming
// wire.Reserved in the assembled OperationVariant below.
var opidTable = map[int]wire.FieldCodec{
	0:  TransferCodec,
	1:  LimitOrderCreateCodec,
	2:  LimitOrderCancelCodec,
	3:  CallOrderUpdateCodec,
	5:  AccountCreateCodec,
	6:  AccountUpdateCodec,
	7:  AccountWhitelistCodec,
	8:  AccountUpgradeCodec,
	9:  AccountTransferCodec,
	10: AssetCreateCodec,
	11: AssetUpdateCodec,
	12: AssetUpdateBitassetCodec,
	13: AssetUpdateFeedProducersCodec,
	14: AssetIssueCodec,
	15: AssetReserveCodec,
	16: AssetFundFeePoolCodec,
	17: AssetSettleCodec,
	18: AssetGlobalSettleCodec,
	19: AssetPublishFeedCodec,
	20: WitnessCreateCodec,
	21: WitnessUpdateCodec,
	22: ProposalCreateCodec,
	23: ProposalUpdateCodec,
	24: ProposalDeleteCodec,
	25: WithdrawPermissionCreateCodec,
	26: WithdrawPermissionUpdateCodec,
	27: WithdrawPermissionClaimCodec,
	28: WithdrawPermissionDeleteCodec,
	29: CommitteeMemberCreateCodec,
	30: CommitteeMemberUpdateCodec,
	31: CommitteeMemberUpdateGlobalParametersCodec,
	32: VestingBalanceCreateCodec,
	33: VestingBalanceWithdrawCodec,
	34: WorkerCreateCodec,
	35: CustomCodec,
	36: AssertCodec,
	37: BalanceClaimCodec,
	38: OverrideTransferCodec,
	39: TransferToBlindCodec,
	40: BlindTransferCodec,
	41: TransferFromBlindCodec,
	43: AssetClaimFeeCodec,
	45: BidCollateralCodec,
	47: AssetClaimPoolCodec,
	48: AssetUpdateIssuerCodec,
}

// catalogSize is one past the highest defined opid (48); slots 49+ are
// reserved, matching the registry's own "49+" open-ended reservation.
const catalogSize = 49

// OperationVariant is the StaticVariant over the full operation catalog,
// indexed by opid. Reserved slots (4, 42, 44, 46, and anything omitted from
// opidTable) fail to encode or decode with Unsupported/InvalidVariant.
var OperationVariant wire.FieldCodec

func init() {
	cases := make([]wire.VariantCase, catalogSize)
	for i := range cases {
		cases[i] = wire.Reserved
	}
	for opid, codec := range opidTable {
		cases[opid] = wire.VariantCase{Codec: codec}
	}
	OperationVariant = wire.StaticVariantOf(cases)
	operationVariantLazy.Resolved = OperationVariant
}

// NameForOpid returns the human-readable operation name for logging, or
// ("", false) for a reserved or unknown opid.
func NameForOpid(opid int) (string, bool) {
	name, ok := opidNames[opid]
	return name, ok
}

var opidNames = map[int]string{
	0:  "transfer",
	1:  "limit_order_create",
	2:  "limit_order_cancel",
	3:  "call_order_update",
	5:  "account_create",
	6:  "account_update",
	7:  "account_whitelist",
	8:  "account_upgrade",
	9:  "account_transfer",
	10: "asset_create",
	11: "asset_update",
	12: "asset_update_bitasset",
	13: "asset_update_feed_producers",
	14: "asset_issue",
	15: "asset_reserve",
	16: "asset_fund_fee_pool",
	17: "asset_settle",
	18: "asset_global_settle",
	19: "asset_publish_feed",
	20: "witness_create",
	21: "witness_update",
	22: "proposal_create",
	23: "proposal_update",
	24: "proposal_delete",
	25: "withdraw_permission_create",
	26: "withdraw_permission_update",
	27: "withdraw_permission_claim",
	28: "withdraw_permission_delete",
	29: "committee_member_create",
	30: "committee_member_update",
	31: "committee_member_update_global_parameters",
	32: "vesting_balance_create",
	33: "vesting_balance_withdraw",
	34: "worker_create",
	35: "custom",
	36: "assert",
	37: "balance_claim",
	38: "override_transfer",
	39: "transfer_to_blind",
	40: "blind_transfer",
	41: "transfer_from_blind",
	43: "asset_claim_fee",
	45: "bid_collateral",
	47: "asset_claim_pool",
	48: "asset_update_issuer",
}
