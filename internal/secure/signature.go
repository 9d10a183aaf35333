package secure

import (
	"crypto/sha256"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// compactRecoveryOffset is the recovery-byte base this protocol uses for a
// compressed-pubkey compact signature (27 + 4 for "compressed"). Preserved
// exactly as specified rather than using the canonical 27-offset convention:
// signature[0] == 31 means recovery id 0, anything else means recovery id 1.
const compactRecoveryOffset = 31

// SignSharedSecret signs SHA-256(sharedSecret) with priv and returns a
// 65-byte compact signature (recovery byte || r || s) using this protocol's
// recovery-byte convention.
func SignSharedSecret(priv *secp256k1.PrivateKey, secret SharedSecret) [65]byte {
	digest := sha256.Sum256(secret[:])
	compact := ecdsa.SignCompact(priv, digest[:], true)
	var out [65]byte
	copy(out[:], compact)
	return out
}

// RecoverPublicKey recovers the compressed public key that produced sig over
// SHA-256(sharedSecret), using the byte[0]==31 → recid 0, else → recid 1
// convention this protocol relies on instead of the canonical recovery-byte
// formula.
func RecoverPublicKey(sig [65]byte, secret SharedSecret) ([33]byte, error) {
	digest := sha256.Sum256(secret[:])

	recID := byte(1)
	if sig[0] == compactRecoveryOffset {
		recID = 0
	}
	compact := make([]byte, 65)
	compact[0] = compactRecoveryOffset + recID
	copy(compact[1:], sig[1:])

	pub, _, err := ecdsa.RecoverCompact(compact, digest[:])
	if err != nil {
		return [33]byte{}, fmt.Errorf("secure: recover public key: %w", err)
	}
	var out [33]byte
	copy(out[:], pub.SerializeCompressed())
	return out, nil
}
