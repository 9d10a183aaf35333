package peer

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphene-p2p/peerd/internal/config"
	"github.com/graphene-p2p/peerd/internal/dispatch"
	"github.com/graphene-p2p/peerd/internal/frame"
	"github.com/graphene-p2p/peerd/internal/protocol"
	"github.com/graphene-p2p/peerd/internal/secure"
	"github.com/graphene-p2p/peerd/internal/wire"
)

// newTestChannel builds a matching encrypt/decrypt pair from a fixed shared
// secret, the same way both ends of a handshake derive identical key
// material from one ECDH result.
func newTestChannel(t *testing.T) (encrypt, decrypt *secure.StreamCipher, secret secure.SharedSecret) {
	t.Helper()
	var s secure.SharedSecret
	for i := range s {
		s[i] = byte(i)
	}
	key := s.AESKey()
	iv := secure.DeriveIV(s)
	enc, dec, err := secure.NewChannel(key, iv)
	require.NoError(t, err)
	return enc, dec, s
}

func TestSendFramesAndEncryptsOverTheWire(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	encrypt, decrypt, secret := newTestChannel(t)

	c := &Connection{
		conn:          clientConn,
		cfg:           config.Config{HeartbeatInterval: time.Second},
		encrypt:       encrypt,
		sharedSecret:  secret,
		dispatchState: &dispatch.State{},
	}

	done := make(chan error, 1)
	go func() {
		done <- c.Send(protocol.TimeRequest, wire.Record{"request_sent_time": uint64(42)})
	}()

	raw := make([]byte, 16)
	_, err := readFull(serverConn, raw)
	require.NoError(t, err)
	require.NoError(t, <-done)

	plaintext, err := decrypt.Process(raw)
	require.NoError(t, err)

	fr, consumed, err := frame.Decode(plaintext)
	require.NoError(t, err)
	assert.Equal(t, len(plaintext), consumed)
	assert.Equal(t, uint32(protocol.TimeRequest), fr.MessageType)

	codec, ok := protocol.Lookup(protocol.TimeRequest)
	require.True(t, ok)
	decoded, err := codec.Decode(wire.NewBuffer(fr.Payload))
	require.NoError(t, err)
	assert.Equal(t, uint64(42), decoded.(wire.Record)["request_sent_time"])
}

func readFull(conn net.Conn, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := conn.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func TestHandleFrameTransitionsStateOnConnectionAccepted(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()
	go drain(serverConn)

	encrypt, _, secret := newTestChannel(t)
	c := &Connection{
		conn:          clientConn,
		cfg:           config.Config{},
		encrypt:       encrypt,
		sharedSecret:  secret,
		state:         HelloSent,
		dispatchState: &dispatch.State{},
	}

	err := c.handleFrame(frame.Frame{MessageType: protocol.ConnectionAccepted, Payload: nil})
	require.NoError(t, err)
	assert.Equal(t, Active, c.State())
}

func TestHandleFrameUnknownMessageIDIsIgnored(t *testing.T) {
	c := &Connection{dispatchState: &dispatch.State{}}
	err := c.handleFrame(frame.Frame{MessageType: 5099, Payload: nil})
	require.NoError(t, err)
}

func drain(conn net.Conn) {
	buf := make([]byte, 4096)
	for {
		if _, err := conn.Read(buf); err != nil {
			return
		}
	}
}

func TestHandshakeTimesOutWithoutPeerPublicKey(t *testing.T) {
	clientConn, _ := net.Pipe()
	defer clientConn.Close()

	c := &Connection{conn: clientConn, dispatchState: &dispatch.State{}}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := c.handshake(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHandshakeTimeout)
}
