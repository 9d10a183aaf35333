package peer

import "errors"

// Sentinel errors for the handshake and framing failure classes a caller may
// want to distinguish with errors.Is.
var (
	ErrHandshakeKeyMismatch  = errors.New("peer: handshake public key mismatch")
	ErrHandshakeChainID      = errors.New("peer: handshake chain id mismatch")
	ErrHandshakeTimeout      = errors.New("peer: handshake did not complete before the deadline")
	ErrHandshakeMalformedKey = errors.New("peer: malformed public key on handshake")
	ErrConnectionRejected    = errors.New("peer: peer rejected the connection")
	ErrConnectionClosed      = errors.New("peer: connection closed")
)
