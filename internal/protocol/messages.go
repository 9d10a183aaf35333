package protocol

import "github.com/graphene-p2p/peerd/internal/wire"

// Message ids, the closed set this registry resolves.
const (
	Transaction                 = 1000
	Block                       = 1001
	ItemIdsInventory            = 5001
	BlockchainItemIdsInventory  = 5002
	FetchBlockchainItemIds      = 5003
	FetchItems                  = 5004
	ItemNotAvailable            = 5005
	Hello                       = 5006
	ConnectionAccepted          = 5007
	ConnectionRejected          = 5008
	AddressRequest              = 5009
	Address                     = 5010
	ClosingConnection           = 5011
	TimeRequest                 = 5012
	TimeReply                   = 5013
)

// AddressRecordSchema is one entry of an Address (5010) message's peer list.
var AddressRecordSchema = wire.Schema{
	{Name: "remote_endpoint", Codec: wire.IPv4EndpointT},
	{Name: "last_seen_time", Codec: wire.U32},
	{Name: "latency", Codec: wire.I64},
	{Name: "node_id", Codec: wire.FakePublicKeyT},
	{Name: "direction", Codec: wire.U8},
	{Name: "firewalled", Codec: wire.U8},
}
var AddressRecordCodec = wire.StructCodec{Schema: AddressRecordSchema}

var (
	TransactionMessageSchema = wire.Schema{
		{Name: "trx", Codec: PrecomputableTransactionCodec},
	}
	BlockMessageSchema = wire.Schema{
		{Name: "block", Codec: SignedBlockCodec},
		{Name: "block_id", Codec: wire.RIPEMD160T},
	}
	ItemIdsInventorySchema = wire.Schema{
		{Name: "item_type", Codec: wire.U32},
		{Name: "item_hashes_available", Codec: wire.VectorOf(wire.RIPEMD160T)},
	}
	BlockchainItemIdsInventorySchema = wire.Schema{
		{Name: "total_remaining_item_count", Codec: wire.U32},
		{Name: "item_type", Codec: wire.U32},
		{Name: "item_hashes_available", Codec: wire.VectorOf(wire.RIPEMD160T)},
	}
	FetchBlockchainItemIdsSchema = wire.Schema{
		{Name: "item_type", Codec: wire.U32},
		{Name: "blockchain_synopsis", Codec: wire.VectorOf(wire.RIPEMD160T)},
	}
	FetchItemsSchema = wire.Schema{
		{Name: "item_type", Codec: wire.U32},
		{Name: "items_to_fetch", Codec: wire.VectorOf(wire.RIPEMD160T)},
	}
	ItemNotAvailableSchema = wire.Schema{
		{Name: "item_type", Codec: wire.U32},
		{Name: "item_id", Codec: wire.RIPEMD160T},
	}
	HelloSchema = wire.Schema{
		{Name: "user_agent", Codec: wire.StringT},
		{Name: "core_protocol_version", Codec: wire.U32},
		{Name: "inbound_address", Codec: wire.IPv4AddressT},
		{Name: "inbound_port", Codec: wire.U16},
		{Name: "outbound_port", Codec: wire.U16},
		{Name: "node_public_key", Codec: wire.FakePublicKeyT},
		{Name: "signed_shared_secret", Codec: wire.SignatureT},
		{Name: "chain_id", Codec: wire.SHA256T},
		{Name: "user_data", Codec: wire.VariantObjectT},
	}
	ConnectionAcceptedSchema = wire.Schema{}
	ConnectionRejectedSchema = wire.Schema{
		{Name: "user_agent", Codec: wire.StringT},
		{Name: "core_protocol_version", Codec: wire.U32},
		{Name: "remote_endpoint", Codec: wire.IPv4EndpointT},
		{Name: "reason_code", Codec: wire.U8},
		{Name: "reason_string", Codec: wire.StringT},
	}
	AddressRequestSchema = wire.Schema{}
	AddressSchema        = wire.Schema{
		{Name: "addresses", Codec: wire.VectorOf(AddressRecordCodec)},
	}
	// ClosingConnectionSchema decodes only the two leading fields the
	// reference exposes a counterpart for (ConnectionRejected's trailing
	// reason fields); any payload bytes beyond them are left unread by the
	// decoder.
	ClosingConnectionSchema = wire.Schema{
		{Name: "reason_code", Codec: wire.U8},
		{Name: "reason_string", Codec: wire.StringT},
	}
	TimeRequestSchema = wire.Schema{
		{Name: "request_sent_time", Codec: wire.U64},
	}
	TimeReplySchema = wire.Schema{
		{Name: "request_sent_time", Codec: wire.U64},
		{Name: "request_received_time", Codec: wire.U64},
		{Name: "reply_transmitted_time", Codec: wire.U64},
	}
)

// registry maps message_id to its field schema. Lookup misses (5014-5017 and
// anything else outside the closed set) are a legitimate "no known schema"
// outcome, not a registry defect: the caller logs and skips the frame.
var registry = map[uint32]wire.Schema{
	Transaction:                TransactionMessageSchema,
	Block:                      BlockMessageSchema,
	ItemIdsInventory:           ItemIdsInventorySchema,
	BlockchainItemIdsInventory: BlockchainItemIdsInventorySchema,
	FetchBlockchainItemIds:     FetchBlockchainItemIdsSchema,
	FetchItems:                 FetchItemsSchema,
	ItemNotAvailable:           ItemNotAvailableSchema,
	Hello:                      HelloSchema,
	ConnectionAccepted:         ConnectionAcceptedSchema,
	ConnectionRejected:         ConnectionRejectedSchema,
	AddressRequest:             AddressRequestSchema,
	Address:                    AddressSchema,
	ClosingConnection:          ClosingConnectionSchema,
	TimeRequest:                TimeRequestSchema,
	TimeReply:                  TimeReplySchema,
}

var codecByID map[uint32]wire.FieldCodec

func init() {
	codecByID = make(map[uint32]wire.FieldCodec, len(registry))
	for id, schema := range registry {
		codecByID[id] = wire.StructCodec{Schema: schema}
	}
}

// Lookup returns the codec for a known message_id, and whether it was found.
func Lookup(messageID uint32) (wire.FieldCodec, bool) {
	c, ok := codecByID[messageID]
	return c, ok
}

// Name gives a human-readable name for logging; unknown ids return ("", false).
func Name(messageID uint32) (string, bool) {
	name, ok := messageNames[messageID]
	return name, ok
}

var messageNames = map[uint32]string{
	Transaction:                "transaction",
	Block:                      "block",
	ItemIdsInventory:           "item_ids_inventory",
	BlockchainItemIdsInventory: "blockchain_item_ids_inventory",
	FetchBlockchainItemIds:     "fetch_blockchain_item_ids",
	FetchItems:                 "fetch_items",
	ItemNotAvailable:           "item_not_available",
	Hello:                      "hello",
	ConnectionAccepted:         "connection_accepted",
	ConnectionRejected:         "connection_rejected",
	AddressRequest:             "address_request",
	Address:                    "address",
	ClosingConnection:          "closing_connection",
	TimeRequest:                "time_request",
	TimeReply:                  "time_reply",
}
