package operation

import (
	"github.com/graphene-p2p/peerd/internal/graphobj"
	"github.com/graphene-p2p/peerd/internal/wire"
)

// Every *Ext extension field below has no known fields in the current
// protocol revision; each operation calls ext() with no arguments for its own
// empty extension schema, so a future field can be added to one operation's extension without touching
// any other operation's wire layout.

var (
	TransferSchema = withFee(
		wire.Field{Name: "from", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "to", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "amount", Codec: graphobj.AssetCodec},
		memoOptional,
		wire.Field{Name: "extensions", Codec: ext()},
	)
	TransferCodec = wire.StructCodec{Schema: TransferSchema}

	LimitOrderCreateSchema = withFee(
		wire.Field{Name: "seller", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "amount_to_sell", Codec: graphobj.AssetCodec},
		wire.Field{Name: "min_to_receive", Codec: graphobj.AssetCodec},
		wire.Field{Name: "expiration", Codec: wire.U32},
		wire.Field{Name: "fill_or_kill", Codec: wire.Bool},
		wire.Field{Name: "extensions", Codec: ext()},
	)
	LimitOrderCreateCodec = wire.StructCodec{Schema: LimitOrderCreateSchema}

	LimitOrderCancelSchema = withFee(
		wire.Field{Name: "fee_paying_account", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "order", Codec: limitOrderID},
		wire.Field{Name: "extensions", Codec: ext()},
	)
	LimitOrderCancelCodec = wire.StructCodec{Schema: LimitOrderCancelSchema}

	CallOrderUpdateSchema = withFee(
		wire.Field{Name: "funding_account", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "delta_collateral", Codec: graphobj.AssetCodec},
		wire.Field{Name: "delta_debt", Codec: graphobj.AssetCodec},
		wire.Field{Name: "extensions", Codec: ext()},
	)
	CallOrderUpdateCodec = wire.StructCodec{Schema: CallOrderUpdateSchema}

	AccountCreateSchema = withFee(
		wire.Field{Name: "registrar", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "referrer", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "referrer_percent", Codec: wire.U16},
		wire.Field{Name: "name", Codec: wire.StringT},
		wire.Field{Name: "owner", Codec: graphobj.AuthorityCodec},
		wire.Field{Name: "active", Codec: graphobj.AuthorityCodec},
		wire.Field{Name: "options", Codec: graphobj.AccountOptionsCodec},
		wire.Field{Name: "extensions", Codec: ext()},
	)
	AccountCreateCodec = wire.StructCodec{Schema: AccountCreateSchema}

	AccountUpdateSchema = withFee(
		wire.Field{Name: "account", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "owner", Codec: wire.OptionalOf(graphobj.AuthorityCodec)},
		wire.Field{Name: "active", Codec: wire.OptionalOf(graphobj.AuthorityCodec)},
		wire.Field{Name: "new_options", Codec: wire.OptionalOf(graphobj.AccountOptionsCodec)},
		wire.Field{Name: "extensions", Codec: ext()},
	)
	AccountUpdateCodec = wire.StructCodec{Schema: AccountUpdateSchema}

	AccountWhitelistSchema = withFee(
		wire.Field{Name: "authorizing_account", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "account_to_list", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "new_listing", Codec: wire.U8},
		wire.Field{Name: "extensions", Codec: ext()},
	)
	AccountWhitelistCodec = wire.StructCodec{Schema: AccountWhitelistSchema}

	AccountUpgradeSchema = withFee(
		wire.Field{Name: "account_to_upgrade", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "upgrade_to_lifetime_member", Codec: wire.Bool},
		wire.Field{Name: "extensions", Codec: ext()},
	)
	AccountUpgradeCodec = wire.StructCodec{Schema: AccountUpgradeSchema}

	AccountTransferSchema = withFee(
		wire.Field{Name: "account_id", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "new_owner", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "extensions", Codec: ext()},
	)
	AccountTransferCodec = wire.StructCodec{Schema: AccountTransferSchema}

	AssetCreateSchema = withFee(
		wire.Field{Name: "issuer", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "symbol", Codec: wire.StringT},
		wire.Field{Name: "precision", Codec: wire.U8},
		wire.Field{Name: "common_options", Codec: graphobj.AssetOptionsCodec},
		wire.Field{Name: "bitasset_opts", Codec: wire.OptionalOf(graphobj.BitAssetOptionsCodec)},
		wire.Field{Name: "is_prediction_market", Codec: wire.Bool},
		wire.Field{Name: "extensions", Codec: ext()},
	)
	AssetCreateCodec = wire.StructCodec{Schema: AssetCreateSchema}

	AssetUpdateSchema = withFee(
		wire.Field{Name: "issuer", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "asset_to_update", Codec: graphobj.AssetIDCodec},
		wire.Field{Name: "new_issuer", Codec: wire.OptionalOf(graphobj.AccountIDCodec)},
		wire.Field{Name: "new_options", Codec: graphobj.AssetOptionsCodec},
		wire.Field{Name: "extensions", Codec: ext()},
	)
	AssetUpdateCodec = wire.StructCodec{Schema: AssetUpdateSchema}

	AssetUpdateBitassetSchema = withFee(
		wire.Field{Name: "issuer", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "asset_to_update", Codec: graphobj.AssetIDCodec},
		wire.Field{Name: "new_options", Codec: graphobj.BitAssetOptionsCodec},
		wire.Field{Name: "extensions", Codec: ext()},
	)
	AssetUpdateBitassetCodec = wire.StructCodec{Schema: AssetUpdateBitassetSchema}

	AssetUpdateFeedProducersSchema = withFee(
		wire.Field{Name: "issuer", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "asset_to_update", Codec: graphobj.AssetIDCodec},
		wire.Field{Name: "new_feed_producers", Codec: wire.VectorOf(graphobj.AccountIDCodec)},
		wire.Field{Name: "extensions", Codec: ext()},
	)
	AssetUpdateFeedProducersCodec = wire.StructCodec{Schema: AssetUpdateFeedProducersSchema}

	AssetIssueSchema = withFee(
		wire.Field{Name: "issuer", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "asset_to_issue", Codec: graphobj.AssetCodec},
		wire.Field{Name: "issue_to_account", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "extensions", Codec: ext()},
		memoOptional,
	)
	AssetIssueCodec = wire.StructCodec{Schema: AssetIssueSchema}

	AssetReserveSchema = withFee(
		wire.Field{Name: "payer", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "amount_to_reserve", Codec: graphobj.AssetCodec},
		wire.Field{Name: "extensions", Codec: ext()},
	)
	AssetReserveCodec = wire.StructCodec{Schema: AssetReserveSchema}

	AssetFundFeePoolSchema = withFee(
		wire.Field{Name: "from_account", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "asset_id", Codec: graphobj.AssetIDCodec},
		wire.Field{Name: "amount", Codec: wire.I64},
		wire.Field{Name: "extensions", Codec: ext()},
	)
	AssetFundFeePoolCodec = wire.StructCodec{Schema: AssetFundFeePoolSchema}

	AssetSettleSchema = withFee(
		wire.Field{Name: "account", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "amount", Codec: graphobj.AssetCodec},
		wire.Field{Name: "extensions", Codec: ext()},
	)
	AssetSettleCodec = wire.StructCodec{Schema: AssetSettleSchema}

	AssetGlobalSettleSchema = withFee(
		wire.Field{Name: "issuer", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "asset_to_settle", Codec: graphobj.AssetIDCodec},
		wire.Field{Name: "settle_price", Codec: graphobj.PriceCodec},
		wire.Field{Name: "extensions", Codec: ext()},
	)
	AssetGlobalSettleCodec = wire.StructCodec{Schema: AssetGlobalSettleSchema}

	AssetPublishFeedSchema = withFee(
		wire.Field{Name: "publisher", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "asset_id", Codec: graphobj.AssetIDCodec},
		wire.Field{Name: "feed", Codec: graphobj.PriceFeedCodec},
		wire.Field{Name: "extensions", Codec: ext()},
	)
	AssetPublishFeedCodec = wire.StructCodec{Schema: AssetPublishFeedSchema}

	WitnessCreateSchema = withFee(
		wire.Field{Name: "witness_account", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "url", Codec: wire.StringT},
		wire.Field{Name: "block_signing_key", Codec: wire.FakePublicKeyT},
	)
	WitnessCreateCodec = wire.StructCodec{Schema: WitnessCreateSchema}

	WitnessUpdateSchema = withFee(
		wire.Field{Name: "witness", Codec: witnessID},
		wire.Field{Name: "witness_account", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "new_url", Codec: wire.OptionalOf(wire.StringT)},
		wire.Field{Name: "new_signing_key", Codec: wire.OptionalOf(wire.FakePublicKeyT)},
	)
	WitnessUpdateCodec = wire.StructCodec{Schema: WitnessUpdateSchema}

	ProposalUpdateSchema = withFee(
		wire.Field{Name: "fee_paying_account", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "proposal", Codec: proposalID},
		wire.Field{Name: "active_approvals_to_add", Codec: wire.VectorOf(graphobj.AccountIDCodec)},
		wire.Field{Name: "active_approvals_to_remove", Codec: wire.VectorOf(graphobj.AccountIDCodec)},
		wire.Field{Name: "owner_approvals_to_add", Codec: wire.VectorOf(graphobj.AccountIDCodec)},
		wire.Field{Name: "owner_approvals_to_remove", Codec: wire.VectorOf(graphobj.AccountIDCodec)},
		wire.Field{Name: "key_approvals_to_add", Codec: wire.VectorOf(wire.FakePublicKeyT)},
		wire.Field{Name: "key_approvals_to_remove", Codec: wire.VectorOf(wire.FakePublicKeyT)},
		wire.Field{Name: "extensions", Codec: ext()},
	)
	ProposalUpdateCodec = wire.StructCodec{Schema: ProposalUpdateSchema}

	ProposalDeleteSchema = withFee(
		wire.Field{Name: "fee_paying_account", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "using_owner_authority", Codec: wire.Bool},
		wire.Field{Name: "proposal", Codec: proposalID},
		wire.Field{Name: "extensions", Codec: ext()},
	)
	ProposalDeleteCodec = wire.StructCodec{Schema: ProposalDeleteSchema}

	WithdrawPermissionCreateSchema = withFee(
		wire.Field{Name: "withdraw_from_account", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "authorized_account", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "withdrawal_limit", Codec: graphobj.AssetCodec},
		wire.Field{Name: "withdrawal_period_sec", Codec: wire.U32},
		wire.Field{Name: "periods_until_expiration", Codec: wire.U32},
		wire.Field{Name: "period_start_time", Codec: wire.U32},
	)
	WithdrawPermissionCreateCodec = wire.StructCodec{Schema: WithdrawPermissionCreateSchema}

	WithdrawPermissionUpdateSchema = withFee(
		wire.Field{Name: "withdraw_from_account", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "authorized_account", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "permission_to_update", Codec: withdrawPermissionID},
		wire.Field{Name: "withdrawal_limit", Codec: graphobj.AssetCodec},
		wire.Field{Name: "withdrawal_period_sec", Codec: wire.U32},
		wire.Field{Name: "period_start_time", Codec: wire.U32},
		wire.Field{Name: "periods_until_expiration", Codec: wire.U32},
	)
	WithdrawPermissionUpdateCodec = wire.StructCodec{Schema: WithdrawPermissionUpdateSchema}

	WithdrawPermissionClaimSchema = withFee(
		wire.Field{Name: "withdraw_permission", Codec: withdrawPermissionID},
		wire.Field{Name: "withdraw_from_account", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "withdraw_to_account", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "amount_to_withdraw", Codec: graphobj.AssetCodec},
		memoOptional,
	)
	WithdrawPermissionClaimCodec = wire.StructCodec{Schema: WithdrawPermissionClaimSchema}

	WithdrawPermissionDeleteSchema = withFee(
		wire.Field{Name: "withdraw_permission", Codec: withdrawPermissionID},
		wire.Field{Name: "withdraw_from_account", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "authorized_account", Codec: graphobj.AccountIDCodec},
	)
	WithdrawPermissionDeleteCodec = wire.StructCodec{Schema: WithdrawPermissionDeleteSchema}

	CommitteeMemberCreateSchema = withFee(
		wire.Field{Name: "committee_member_account", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "url", Codec: wire.StringT},
	)
	CommitteeMemberCreateCodec = wire.StructCodec{Schema: CommitteeMemberCreateSchema}

	CommitteeMemberUpdateSchema = withFee(
		wire.Field{Name: "committee_member", Codec: committeeMemberID},
		wire.Field{Name: "committee_member_account", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "new_url", Codec: wire.OptionalOf(wire.StringT)},
	)
	CommitteeMemberUpdateCodec = wire.StructCodec{Schema: CommitteeMemberUpdateSchema}

	VestingBalanceCreateSchema = withFee(
		wire.Field{Name: "creator", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "owner", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "amount", Codec: graphobj.AssetCodec},
		wire.Field{Name: "policy", Codec: graphobj.VestingPolicyInitializerCodec},
	)
	VestingBalanceCreateCodec = wire.StructCodec{Schema: VestingBalanceCreateSchema}

	VestingBalanceWithdrawSchema = withFee(
		wire.Field{Name: "vesting_balance", Codec: vestingBalanceID},
		wire.Field{Name: "owner", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "amount", Codec: graphobj.AssetCodec},
	)
	VestingBalanceWithdrawCodec = wire.StructCodec{Schema: VestingBalanceWithdrawSchema}

	WorkerCreateSchema = withFee(
		wire.Field{Name: "owner", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "work_begin_date", Codec: wire.U32},
		wire.Field{Name: "work_end_date", Codec: wire.U32},
		wire.Field{Name: "daily_pay", Codec: wire.I64},
		wire.Field{Name: "name", Codec: wire.StringT},
		wire.Field{Name: "url", Codec: wire.StringT},
		wire.Field{Name: "initializer", Codec: graphobj.WorkerInitializerCodec},
	)
	WorkerCreateCodec = wire.StructCodec{Schema: WorkerCreateSchema}

	CustomSchema = withFee(
		wire.Field{Name: "payer", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "required_auths", Codec: wire.VectorOf(graphobj.AccountIDCodec)},
		wire.Field{Name: "id", Codec: wire.U16},
		wire.Field{Name: "data", Codec: wire.DataT},
	)
	CustomCodec = wire.StructCodec{Schema: CustomSchema}

	AssertSchema = withFee(
		wire.Field{Name: "fee_paying_account", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "predicates", Codec: wire.VectorOf(graphobj.PredicateCodec)},
		wire.Field{Name: "required_auths", Codec: wire.VectorOf(graphobj.AccountIDCodec)},
		wire.Field{Name: "extensions", Codec: ext()},
	)
	AssertCodec = wire.StructCodec{Schema: AssertSchema}

	BalanceClaimSchema = withFee(
		wire.Field{Name: "deposit_to_account", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "balance_to_claim", Codec: balanceObjectID},
		wire.Field{Name: "balance_owner_key", Codec: wire.FakePublicKeyT},
		wire.Field{Name: "total_claimed", Codec: graphobj.AssetCodec},
	)
	BalanceClaimCodec = wire.StructCodec{Schema: BalanceClaimSchema}

	OverrideTransferSchema = withFee(
		wire.Field{Name: "issuer", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "from", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "to", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "amount", Codec: graphobj.AssetCodec},
		memoOptional,
		wire.Field{Name: "extensions", Codec: ext()},
	)
	OverrideTransferCodec = wire.StructCodec{Schema: OverrideTransferSchema}

	TransferToBlindSchema = withFee(
		wire.Field{Name: "amount", Codec: graphobj.AssetCodec},
		wire.Field{Name: "from", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "blinding_factor", Codec: wire.SHA256T},
		wire.Field{Name: "outputs", Codec: wire.VectorOf(graphobj.BlindOutputCodec)},
	)
	TransferToBlindCodec = wire.StructCodec{Schema: TransferToBlindSchema}

	BlindTransferSchema = withFee(
		wire.Field{Name: "inputs", Codec: wire.VectorOf(graphobj.BlindInputCodec)},
		wire.Field{Name: "outputs", Codec: wire.VectorOf(graphobj.BlindOutputCodec)},
	)
	BlindTransferCodec = wire.StructCodec{Schema: BlindTransferSchema}

	TransferFromBlindSchema = withFee(
		wire.Field{Name: "amount", Codec: graphobj.AssetCodec},
		wire.Field{Name: "to", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "blinding_factor", Codec: wire.SHA256T},
		wire.Field{Name: "inputs", Codec: wire.VectorOf(graphobj.BlindInputCodec)},
	)
	TransferFromBlindCodec = wire.StructCodec{Schema: TransferFromBlindSchema}

	AssetClaimFeeSchema = withFee(
		wire.Field{Name: "issuer", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "amount_to_claim", Codec: graphobj.AssetCodec},
		wire.Field{Name: "extensions", Codec: ext()},
	)
	AssetClaimFeeCodec = wire.StructCodec{Schema: AssetClaimFeeSchema}

	BidCollateralSchema = withFee(
		wire.Field{Name: "bidder", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "additional_collateral", Codec: graphobj.AssetCodec},
		wire.Field{Name: "debt_covered", Codec: graphobj.AssetCodec},
		wire.Field{Name: "extensions", Codec: ext()},
	)
	BidCollateralCodec = wire.StructCodec{Schema: BidCollateralSchema}

	AssetClaimPoolSchema = withFee(
		wire.Field{Name: "issuer", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "asset_id", Codec: graphobj.AssetIDCodec},
		wire.Field{Name: "amount_to_claim", Codec: graphobj.AssetCodec},
		wire.Field{Name: "extensions", Codec: ext()},
	)
	AssetClaimPoolCodec = wire.StructCodec{Schema: AssetClaimPoolSchema}

	AssetUpdateIssuerSchema = withFee(
		wire.Field{Name: "issuer", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "asset_to_update", Codec: graphobj.AssetIDCodec},
		wire.Field{Name: "new_issuer", Codec: graphobj.AccountIDCodec},
		wire.Field{Name: "extensions", Codec: ext()},
	)
	AssetUpdateIssuerCodec = wire.StructCodec{Schema: AssetUpdateIssuerSchema}
)
