// Package dispatch implements the action table: what the connection does in
// response to each inbound message, translated field-for-field from the
// reference client's message_action_table and its per-message handler
// functions (hello_respond, item_id_inventory_respond,
// blockchain_item_id_inventory_respond, fetch_item_id_respond,
// address_request_respond, address_respond, time_request_respond,
// block_respond).
package dispatch

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/log"

	"github.com/graphene-p2p/peerd/internal/protocol"
	"github.com/graphene-p2p/peerd/internal/secure"
	"github.com/graphene-p2p/peerd/internal/wire"
)

// Sender is the subset of a connection a dispatch action needs: enough to
// emit a reply message without the action package knowing about sockets,
// ciphers, or framing.
type Sender interface {
	Send(messageID uint32, fields wire.Record) error
}

// Metrics is the subset of internal/metrics a dispatch action reports
// through, kept as an interface here so this package never imports
// prometheus directly.
type Metrics interface {
	ObserveAction(messageID uint32, outcome string)
}

// EventSink is the subset of internal/eventsink a dispatch action publishes
// through.
type EventSink interface {
	Publish(messageName, summary string)
}

// State is the per-connection data an action may read or mutate.
// fetch_target mirrors the reference client's module-level global of the
// same name, scoped here to one connection instead of the whole process.
type State struct {
	SharedSecret secure.SharedSecret
	FetchTarget  []byte // RIPEMD160, nil if never set
}

// Action is one entry of the dispatch table.
type Action func(state *State, msg wire.Record, sender Sender) error

// Table maps message_id to its action. Messages with no entry are logged and
// discarded, mirroring message_action_table.get(msg_type, None) falling
// through to a no-op.
var Table = map[uint32]Action{
	protocol.Block:                      blockRespond,
	protocol.ItemIdsInventory:           itemIDInventoryRespond,
	protocol.BlockchainItemIdsInventory: blockchainItemIDInventoryRespond,
	protocol.FetchBlockchainItemIds:     fetchItemIDRespond,
	protocol.Hello:                      helloRespond,
	protocol.AddressRequest:             addressRequestRespond,
	protocol.Address:                    addressRespond,
	protocol.TimeRequest:                timeRequestRespond,
}

// Dispatch looks up and runs the action for messageID, if any. A missing
// action is not an error. metrics and sink may be nil, in which case
// observability for this call is skipped.
func Dispatch(state *State, messageID uint32, msg wire.Record, sender Sender, metrics Metrics, sink EventSink) error {
	name, _ := protocol.Name(messageID)
	action, ok := Table[messageID]
	if !ok {
		log.Debug("dispatch: no action registered", "message_id", messageID, "name", name)
		if metrics != nil {
			metrics.ObserveAction(messageID, "no_action")
		}
		return nil
	}
	err := action(state, msg, sender)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	if metrics != nil {
		metrics.ObserveAction(messageID, outcome)
	}
	if sink != nil {
		sink.Publish(name, fmt.Sprintf("dispatched %s: %s", name, outcome))
	}
	return err
}

func blockRespond(state *State, msg wire.Record, sender Sender) error {
	blockID, _ := msg["block_id"].([]byte)
	if state.FetchTarget == nil || !bytesEqual(blockID, state.FetchTarget) {
		return nil
	}
	return sender.Send(protocol.FetchBlockchainItemIds, wire.Record{
		"item_type":           uint32(1001),
		"blockchain_synopsis": []interface{}{state.FetchTarget},
	})
}

func itemIDInventoryRespond(state *State, msg wire.Record, sender Sender) error {
	itemType, _ := msg["item_type"].(uint32)
	hashes, _ := msg["item_hashes_available"].([]interface{})
	if len(hashes) == 0 {
		return nil
	}
	first, _ := hashes[0].([]byte)
	if itemType == 1001 {
		state.FetchTarget = first
		return sender.Send(protocol.FetchItems, wire.Record{
			"item_type":      uint32(1001),
			"items_to_fetch": []interface{}{first},
		})
	}
	return sender.Send(protocol.FetchItems, wire.Record{
		"item_type":      uint32(1000),
		"items_to_fetch": []interface{}{first},
	})
}

func blockchainItemIDInventoryRespond(state *State, msg wire.Record, sender Sender) error {
	hashes, _ := msg["item_hashes_available"].([]interface{})
	if len(hashes) == 0 {
		return nil
	}
	last, _ := hashes[len(hashes)-1].([]byte)
	if state.FetchTarget != nil && bytesEqual(last, state.FetchTarget) {
		return nil
	}
	if err := sender.Send(protocol.FetchItems, wire.Record{
		"item_type":      uint32(1001),
		"items_to_fetch": hashes,
	}); err != nil {
		return err
	}
	state.FetchTarget = last
	return nil
}

func fetchItemIDRespond(_ *State, _ wire.Record, sender Sender) error {
	return sender.Send(protocol.BlockchainItemIdsInventory, wire.Record{
		"item_type":                  uint32(1001),
		"total_remaining_item_count": uint32(0),
		"item_hashes_available":      []interface{}{},
	})
}

// helloRespond validates the peer's Hello by recovering the ECDSA public key
// from signed_shared_secret over SHA-256(shared_secret) and comparing it
// against the peer's own claimed node_public_key. Only on a match does it
// send ConnectionAccepted followed by AddressRequest.
func helloRespond(state *State, msg wire.Record, sender Sender) error {
	sigBytes, _ := msg["signed_shared_secret"].([]byte)
	claimed, _ := msg["node_public_key"].([]byte)
	if len(sigBytes) != 65 || len(claimed) != 33 {
		return fmt.Errorf("dispatch: hello: malformed signature or public key")
	}
	var sig [65]byte
	copy(sig[:], sigBytes)

	recovered, err := secure.RecoverPublicKey(sig, state.SharedSecret)
	if err != nil {
		return fmt.Errorf("dispatch: hello: recover public key: %w", err)
	}
	if !bytesEqual(recovered[:], claimed) {
		log.Warn("dispatch: hello public key mismatch, not accepting connection")
		return nil
	}
	if err := sender.Send(protocol.ConnectionAccepted, wire.Record{}); err != nil {
		return err
	}
	return sender.Send(protocol.AddressRequest, wire.Record{})
}

func addressRequestRespond(_ *State, _ wire.Record, sender Sender) error {
	return sender.Send(protocol.Address, wire.Record{
		"addresses": []interface{}{},
	})
}

func addressRespond(state *State, _ wire.Record, sender Sender) error {
	now := uint64(time.Now().UTC().UnixMicro())
	if err := sender.Send(protocol.TimeRequest, wire.Record{
		"request_sent_time": now,
	}); err != nil {
		return err
	}
	target := state.FetchTarget
	if target == nil {
		target = make([]byte, 20)
	}
	return sender.Send(protocol.FetchBlockchainItemIds, wire.Record{
		"item_type":           uint32(1001),
		"blockchain_synopsis": []interface{}{target},
	})
}

func timeRequestRespond(_ *State, msg wire.Record, sender Sender) error {
	now := uint64(time.Now().UTC().UnixMicro())
	return sender.Send(protocol.TimeReply, wire.Record{
		"request_sent_time":      msg["request_sent_time"],
		"request_received_time":  now,
		"reply_transmitted_time": now,
	})
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
