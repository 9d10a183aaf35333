// Package peer drives one TCP connection end to end: the ECDH handshake,
// the AES-CBC framed byte stream, and the dispatcher loop that turns
// decoded frames into outbound replies, following this codebase's pattern
// of a connection object owning a socket, a cipher, and a receive goroutine
// coordinated through an errgroup.
package peer

import (
	"context"
	"fmt"
	"io"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/ethereum/go-ethereum/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/graphene-p2p/peerd/internal/config"
	"github.com/graphene-p2p/peerd/internal/dispatch"
	"github.com/graphene-p2p/peerd/internal/frame"
	"github.com/graphene-p2p/peerd/internal/metrics"
	"github.com/graphene-p2p/peerd/internal/protocol"
	"github.com/graphene-p2p/peerd/internal/secure"
	"github.com/graphene-p2p/peerd/internal/wire"
)

// Connection owns one peer's socket, cipher state, and dispatch state.
type Connection struct {
	id   uuid.UUID
	conn net.Conn
	cfg  config.Config

	privateKey   *secp256k1.PrivateKey
	sharedSecret secure.SharedSecret
	encrypt      *secure.StreamCipher
	decrypt      *secure.StreamCipher

	writeMu sync.Mutex

	stateMu sync.RWMutex
	state   State

	dispatchState *dispatch.State
	metrics       *metrics.Metrics
	sink          dispatch.EventSink

	heartbeatLimiter *rate.Limiter
}

// Dial opens a TCP connection to cfg.PeerHost:cfg.PeerPort and runs the
// handshake (§4.4 steps 1-9, then sending Hello). metrics and sink may be
// nil. The returned Connection is in state HelloSent; call Run to start the
// receive loop and heartbeat.
func Dial(ctx context.Context, cfg config.Config, m *metrics.Metrics, sink dispatch.EventSink) (*Connection, error) {
	addr := net.JoinHostPort(cfg.PeerHost, strconv.Itoa(int(cfg.PeerPort)))

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("peer: dial %s: %w", addr, err)
	}

	c := &Connection{
		id:               uuid.New(),
		conn:             conn,
		cfg:              cfg,
		metrics:          m,
		sink:             sink,
		state:            Connecting,
		dispatchState:    &dispatch.State{},
		heartbeatLimiter: rate.NewLimiter(rate.Every(cfg.HeartbeatInterval), 1),
	}

	hctx, cancel := context.WithTimeout(ctx, cfg.HandshakeTimeout)
	defer cancel()

	if err := c.handshake(hctx); err != nil {
		conn.Close()
		return nil, err
	}
	if m != nil {
		m.SetConnectionState(int(c.State()))
	}
	return c, nil
}

// ID returns this connection's session id, stable for its lifetime and used
// to correlate its log lines and event-sink publications.
func (c *Connection) ID() uuid.UUID {
	return c.id
}

// State returns the connection's current lifecycle state.
func (c *Connection) State() State {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	return c.state
}

func (c *Connection) setState(s State) {
	c.stateMu.Lock()
	c.state = s
	c.stateMu.Unlock()
	if c.metrics != nil {
		c.metrics.SetConnectionState(int(s))
	}
}

// Close tears down the underlying socket.
func (c *Connection) Close() error {
	c.setState(Closed)
	return c.conn.Close()
}

// handshake runs the ECDH key exchange and sends this side's Hello, failing
// with ErrHandshakeTimeout if ctx is cancelled first.
func (c *Connection) handshake(ctx context.Context) error {
	c.setState(Handshaking)

	done := make(chan error, 1)
	go func() { done <- c.performHandshake() }()

	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", ErrHandshakeTimeout, ctx.Err())
	case err := <-done:
		return err
	}
}

func (c *Connection) performHandshake() error {
	peerPubRaw := make([]byte, 33)
	if _, err := io.ReadFull(c.conn, peerPubRaw); err != nil {
		return fmt.Errorf("peer: read peer public key: %w", err)
	}
	peerPub, err := secure.ParseCompressedPubKey(peerPubRaw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrHandshakeMalformedKey, err)
	}

	priv, err := secure.GenerateEphemeralKey()
	if err != nil {
		return fmt.Errorf("peer: generate ephemeral key: %w", err)
	}
	c.privateKey = priv
	c.sharedSecret = secure.ComputeSharedSecret(priv, peerPub)
	c.dispatchState.SharedSecret = c.sharedSecret

	if _, err := c.conn.Write(priv.PubKey().SerializeCompressed()); err != nil {
		return fmt.Errorf("peer: send public key: %w", err)
	}

	aesKey := c.sharedSecret.AESKey()
	iv := secure.DeriveIV(c.sharedSecret)
	encrypt, decrypt, err := secure.NewChannel(aesKey, iv)
	if err != nil {
		return fmt.Errorf("peer: build cipher channel: %w", err)
	}
	c.encrypt, c.decrypt = encrypt, decrypt

	return c.sendHello()
}

func (c *Connection) sendHello() error {
	sig := secure.SignSharedSecret(c.privateKey, c.sharedSecret)
	ownPub := c.privateKey.PubKey().SerializeCompressed()
	inboundAddr, _ := wire.ParseIPv4Address("0.0.0.0")

	fields := wire.Record{
		"user_agent":            c.cfg.UserAgent,
		"core_protocol_version": c.cfg.ProtocolVersion,
		"inbound_address":       inboundAddr,
		"inbound_port":          uint16(0),
		"outbound_port":         c.cfg.PeerPort,
		"node_public_key":       ownPub,
		"signed_shared_secret":  sig[:],
		"chain_id":              append([]byte(nil), c.cfg.ChainID[:]...),
		"user_data":             wire.VariantObject{"platform": c.cfg.Platform},
	}
	if err := c.Send(protocol.Hello, fields); err != nil {
		return fmt.Errorf("peer: send hello: %w", err)
	}
	c.setState(HelloSent)
	return nil
}

// Send encodes fields against messageID's registered schema and writes the
// resulting frame to the socket. It implements dispatch.Sender.
func (c *Connection) Send(messageID uint32, fields wire.Record) error {
	codec, ok := protocol.Lookup(messageID)
	if !ok {
		return fmt.Errorf("peer: send: no schema registered for message id %d", messageID)
	}
	payload, err := codec.Encode(nil, fields)
	if err != nil {
		name, _ := protocol.Name(messageID)
		return fmt.Errorf("peer: encode %s (%d): %w", name, messageID, err)
	}
	return c.sendRaw(messageID, payload)
}

// sendRaw frames, encrypts, and writes one message. Every framed outbound
// write, the handshake Hello or dispatcher-triggered, funnels through here
// under writeMu:
// AES-CBC is stateful, so a partial or interleaved write would desynchronize
// the cipher stream for the peer.
func (c *Connection) sendRaw(messageID uint32, payload []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	framed := frame.Encode(messageID, payload)
	ciphertext, err := c.encrypt.Process(framed)
	if err != nil {
		return fmt.Errorf("peer: encrypt frame: %w", err)
	}
	if _, err := c.conn.Write(ciphertext); err != nil {
		return fmt.Errorf("peer: write frame: %w", err)
	}
	if c.metrics != nil {
		c.metrics.ObserveFrameSent(messageID, len(payload))
	}
	name, _ := protocol.Name(messageID)
	log.Debug("peer: sent frame", "connection", c.id, "direction", "outbound", "message", name, "message_id", messageID)
	return nil
}

// Run starts the receive loop and the time-sync heartbeat, tearing both down
// together (via errgroup) if either fails or ctx is cancelled.
func (c *Connection) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(withRecover("receive_loop", func() error { return c.receiveLoop(gctx) }))
	g.Go(withRecover("heartbeat", func() error { return c.heartbeatLoop(gctx) }))
	return g.Wait()
}

// receiveLoop reads the socket, accumulates ciphertext until a 16-byte
// block boundary, decrypts it, and slices complete frames out of the
// resulting plaintext buffer, dispatching each in turn.
func (c *Connection) receiveLoop(ctx context.Context) error {
	readBuf := wire.NewBuffer(nil)
	var accumulator []byte
	tmp := make([]byte, 4096)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		c.conn.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
		n, err := c.conn.Read(tmp)
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				continue
			}
			c.setState(Closed)
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("peer: receive: %w", err)
		}
		accumulator = append(accumulator, tmp[:n]...)
		if len(accumulator)%16 != 0 {
			continue
		}

		plaintext, err := c.decrypt.Process(accumulator)
		if err != nil {
			return fmt.Errorf("peer: decrypt: %w", err)
		}
		accumulator = accumulator[:0]
		readBuf.Write(plaintext)

		for readBuf.Count() > 0 {
			fr, consumed, derr := frame.Decode(readBuf.Bytes())
			if derr == frame.ErrIncomplete {
				break
			}
			if derr != nil {
				return fmt.Errorf("peer: frame decode: %w", derr)
			}
			if _, err := readBuf.Read(consumed); err != nil {
				return fmt.Errorf("peer: frame decode: %w", err)
			}
			if err := c.handleFrame(fr); err != nil {
				return err
			}
		}
	}
}

func (c *Connection) handleFrame(fr frame.Frame) error {
	name, known := protocol.Name(fr.MessageType)
	codec, ok := protocol.Lookup(fr.MessageType)
	if !ok {
		log.Debug("peer: unknown message id, skipping", "message_id", fr.MessageType)
		return nil
	}
	if c.metrics != nil {
		c.metrics.ObserveFrameReceived(fr.MessageType, len(fr.Payload))
	}

	decoded, err := codec.Decode(wire.NewBuffer(fr.Payload))
	if err != nil {
		return fmt.Errorf("peer: decode %s (%d): %w", name, fr.MessageType, err)
	}
	rec, ok := decoded.(wire.Record)
	if !ok {
		return fmt.Errorf("peer: decode %s (%d): %w", name, fr.MessageType, wire.ErrWrongShape)
	}

	var dm dispatch.Metrics
	if c.metrics != nil {
		dm = c.metrics
	}
	if err := dispatch.Dispatch(c.dispatchState, fr.MessageType, rec, c, dm, c.sink); err != nil {
		return fmt.Errorf("peer: dispatch %s (%d): %w", name, fr.MessageType, err)
	}

	switch fr.MessageType {
	case protocol.Hello:
		c.setState(HelloExchanged)
	case protocol.ConnectionAccepted:
		c.setState(Active)
	case protocol.ConnectionRejected:
		c.setState(Closed)
		return fmt.Errorf("%w", ErrConnectionRejected)
	case protocol.ClosingConnection:
		log.Info("peer: peer closed the connection", "connection", c.id, "reason_code", rec["reason_code"], "reason_string", rec["reason_string"])
		c.setState(Closed)
		return fmt.Errorf("%w", ErrConnectionClosed)
	}
	if known {
		log.Debug("peer: dispatched frame", "connection", c.id, "direction", "inbound", "message", name, "message_id", fr.MessageType)
	}
	return nil
}

// heartbeatLoop sends a TimeRequest on a fixed interval once the connection
// reaches Active, rate-limited so a misbehaving local caller or a deadline
// change cannot drive the peer harder than configured.
func (c *Connection) heartbeatLoop(ctx context.Context) error {
	ticker := time.NewTicker(c.cfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if c.State() != Active {
				continue
			}
			if err := c.heartbeatLimiter.Wait(ctx); err != nil {
				return nil
			}
			now := uint64(time.Now().UTC().UnixMicro())
			if err := c.Send(protocol.TimeRequest, wire.Record{"request_sent_time": now}); err != nil {
				return fmt.Errorf("peer: heartbeat: %w", err)
			}
		}
	}
}
