package dispatch

import (
	"testing"

	"github.com/graphene-p2p/peerd/internal/protocol"
	"github.com/graphene-p2p/peerd/internal/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []sentMessage
}

type sentMessage struct {
	id     uint32
	fields wire.Record
}

func (f *fakeSender) Send(messageID uint32, fields wire.Record) error {
	f.sent = append(f.sent, sentMessage{id: messageID, fields: fields})
	return nil
}

func hash(b byte) []byte {
	h := make([]byte, 20)
	h[0] = b
	return h
}

func TestBlockchainItemIdsInventoryTailDetection(t *testing.T) {
	state := &State{FetchTarget: hash(9)}
	sender := &fakeSender{}

	err := Dispatch(state, protocol.BlockchainItemIdsInventory, wire.Record{
		"total_remaining_item_count": uint32(0),
		"item_type":                  uint32(1001),
		"item_hashes_available":      []interface{}{hash(9)},
	}, sender, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, sender.sent, "stable tail must not produce an outbound FetchItems")

	state.FetchTarget = hash(1)
	err = Dispatch(state, protocol.BlockchainItemIdsInventory, wire.Record{
		"total_remaining_item_count": uint32(0),
		"item_type":                  uint32(1001),
		"item_hashes_available":      []interface{}{hash(2), hash(3)},
	}, sender, nil, nil)
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, uint32(protocol.FetchItems), sender.sent[0].id)
	assert.Equal(t, uint32(1001), sender.sent[0].fields["item_type"])
	assert.Equal(t, hash(3), state.FetchTarget)
}

func TestItemIdsInventoryBlockVsTransaction(t *testing.T) {
	state := &State{}
	sender := &fakeSender{}
	err := Dispatch(state, protocol.ItemIdsInventory, wire.Record{
		"item_type":             uint32(1001),
		"item_hashes_available": []interface{}{hash(5)},
	}, sender, nil, nil)
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, hash(5), state.FetchTarget)
	assert.Equal(t, uint32(1001), sender.sent[0].fields["item_type"])

	sender2 := &fakeSender{}
	state2 := &State{}
	err = Dispatch(state2, protocol.ItemIdsInventory, wire.Record{
		"item_type":             uint32(1000),
		"item_hashes_available": []interface{}{hash(6)},
	}, sender2, nil, nil)
	require.NoError(t, err)
	require.Len(t, sender2.sent, 1)
	assert.Equal(t, uint32(1000), sender2.sent[0].fields["item_type"])
}

func TestFetchBlockchainItemIdsRespondsWithEmptyInventory(t *testing.T) {
	sender := &fakeSender{}
	err := Dispatch(&State{}, protocol.FetchBlockchainItemIds, wire.Record{}, sender, nil, nil)
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, uint32(protocol.BlockchainItemIdsInventory), sender.sent[0].id)
	assert.Equal(t, []interface{}{}, sender.sent[0].fields["item_hashes_available"])
}

func TestUnknownMessageIDIsNotAnError(t *testing.T) {
	sender := &fakeSender{}
	err := Dispatch(&State{}, 5014, wire.Record{}, sender, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, sender.sent)
}
