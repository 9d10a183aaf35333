// Package secure implements the ECDH handshake, shared-secret derivation,
// and the AES-128-CBC stream cipher pair that together form the encrypted
// channel a connection runs over.
package secure

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// SharedSecret is SHA-512 of the X coordinate of an ECDH point: 64 bytes,
// used to derive both the AES key and the initial IV.
type SharedSecret [64]byte

// GenerateEphemeralKey returns a fresh secp256k1 private key, used once per
// connection as the initiator's half of the key exchange.
func GenerateEphemeralKey() (*secp256k1.PrivateKey, error) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, fmt.Errorf("secure: generate ephemeral key: %w", err)
	}
	return priv, nil
}

// ParseCompressedPubKey parses the 33-byte compressed public key a peer
// sends as the first bytes of a new connection.
func ParseCompressedPubKey(b []byte) (*secp256k1.PublicKey, error) {
	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, fmt.Errorf("secure: parse peer public key: %w", err)
	}
	return pub, nil
}

// ComputeSharedSecret performs the ECDH scalar multiplication priv*pub and
// returns SHA-512 of the resulting point's X coordinate, encoded as a
// 32-byte big-endian integer per the handshake definition.
func ComputeSharedSecret(priv *secp256k1.PrivateKey, pub *secp256k1.PublicKey) SharedSecret {
	var point, result secp256k1.JacobianPoint
	pub.AsJacobian(&point)

	scalar := priv.Key
	secp256k1.ScalarMultNonConst(&scalar, &point, &result)
	result.ToAffine()

	x := result.X.Bytes()

	return SharedSecret(sha512.Sum512(x[:]))
}

// AESKey derives the AES-128 key material from a shared secret.
func (s SharedSecret) AESKey() [32]byte {
	return sha256.Sum256(s[:])
}
