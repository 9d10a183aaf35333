// Package protocol implements the closed registry of wire message bodies:
// block/transaction envelopes and the thirteen named message_id schemas that
// ride inside a frame, keyed the way this codebase's other table-driven
// codecs are keyed — by a small integer discriminator resolved through a
// package-level registry built in init().
package protocol

import (
	"github.com/graphene-p2p/peerd/internal/objectid"
	"github.com/graphene-p2p/peerd/internal/operation"
	"github.com/graphene-p2p/peerd/internal/wire"
)

// operationResultCodec is StaticVariant<Null, FullObjectID, Asset>, the
// per-operation result slot inside a processed transaction.
var operationResultCodec = wire.StaticVariantOf([]wire.VariantCase{
	{Codec: wire.NullT},
	{Codec: objectid.FullCodec},
	{Codec: assetResultCodec()},
})

// assetResultCodec avoids importing graphobj.AssetCodec directly into this
// file's var block to keep init ordering obvious; it is the same Asset shape
// (amount: i64, asset_id: AssetID) used throughout the operation catalog.
func assetResultCodec() wire.FieldCodec {
	return wire.StructCodec{Schema: wire.Schema{
		{Name: "amount", Codec: wire.I64},
		{Name: "asset_id", Codec: objectid.ShortCodec(objectid.Asset)},
	}}
}

var TransactionExtSchema = wire.Schema{}

// TransactionSchema is the unsigned transaction body: a reference block and
// expiration window, the operation list, and an extension point.
var TransactionSchema = wire.Schema{
	{Name: "ref_block_num", Codec: wire.U16},
	{Name: "ref_block_prefix", Codec: wire.U32},
	{Name: "expiration", Codec: wire.U32},
	{Name: "operations", Codec: wire.VectorOf(operation.OperationVariant)},
	{Name: "extensions", Codec: wire.ExtensionOf(TransactionExtSchema)},
}
var TransactionCodec = wire.StructCodec{Schema: TransactionSchema}

// PrecomputableTransactionSchema carries the transaction body plus its
// signatures; the reference implementation also caches a digest alongside it,
// which this client has no need to recompute for dispatch purposes and so
// does not carry.
var PrecomputableTransactionSchema = wire.Schema{
	{Name: "body", Codec: TransactionCodec},
	{Name: "signatures", Codec: wire.VectorOf(wire.SignatureT)},
}
var PrecomputableTransactionCodec = wire.StructCodec{Schema: PrecomputableTransactionSchema}

// SignedBlockHeaderSchema is a block header: previous block reference,
// timestamp, signing witness, transaction merkle root, and an extension
// point, followed by the witness's signature over the header.
var SignedBlockHeaderExtSchema = wire.Schema{}

var SignedBlockHeaderSchema = wire.Schema{
	{Name: "previous", Codec: wire.RIPEMD160T},
	{Name: "timestamp", Codec: wire.U32},
	{Name: "witness", Codec: objectid.ShortCodec(objectid.Witness)},
	{Name: "transaction_merkle_root", Codec: wire.SHA256T},
	{Name: "extensions", Codec: wire.ExtensionOf(SignedBlockHeaderExtSchema)},
	{Name: "witness_signature", Codec: wire.SignatureT},
}
var SignedBlockHeaderCodec = wire.StructCodec{Schema: SignedBlockHeaderSchema}

// ProcessedTransactionSchema is a transaction as it appears inside a block:
// the precomputable body plus the per-operation results.
var ProcessedTransactionSchema = wire.Schema{
	{Name: "trx", Codec: PrecomputableTransactionCodec},
	{Name: "operation_results", Codec: wire.VectorOf(operationResultCodec)},
}
var ProcessedTransactionCodec = wire.StructCodec{Schema: ProcessedTransactionSchema}

// SignedBlockSchema is a header plus the transactions it contains.
var SignedBlockSchema = wire.Schema{
	{Name: "header", Codec: SignedBlockHeaderCodec},
	{Name: "transactions", Codec: wire.VectorOf(ProcessedTransactionCodec)},
}
var SignedBlockCodec = wire.StructCodec{Schema: SignedBlockSchema}
