// Package operation implements the closed catalog of blockchain operation
// variants: one ordered field schema per opid, assembled into the
// OperationVariant StaticVariant that a Transaction's operation list is made
// of.
package operation

import (
	"github.com/graphene-p2p/peerd/internal/graphobj"
	"github.com/graphene-p2p/peerd/internal/objectid"
	"github.com/graphene-p2p/peerd/internal/wire"
)

// feeField is the Asset fee every operation leads with.
var feeField = wire.Field{Name: "fee", Codec: graphobj.AssetCodec}

// withFee prepends the shared leading fee field to an operation's remaining
// schema, mirroring how every concrete operation struct in the source
// begins with the same fee field.
func withFee(rest ...wire.Field) wire.Schema {
	return append(wire.Schema{feeField}, rest...)
}

func ext(fields ...wire.Field) wire.FieldCodec {
	return wire.ExtensionOf(wire.Schema(fields))
}

var (
	memoOptional = wire.Field{Name: "memo", Codec: wire.OptionalOf(graphobj.MemoDataCodec)}
)

// ids used directly as object-id field codecs inside operation schemas.
var (
	limitOrderID         = objectid.ShortCodec(objectid.LimitOrder)
	withdrawPermissionID = objectid.ShortCodec(objectid.WithdrawPermission)
	proposalID           = objectid.ShortCodec(objectid.Proposal)
	committeeMemberID    = objectid.ShortCodec(objectid.CommitteeMember)
	witnessID            = objectid.ShortCodec(objectid.Witness)
	vestingBalanceID     = objectid.ShortCodec(objectid.VestingBalance)
	balanceObjectID      = objectid.ShortCodec(objectid.BalanceObject)
)
