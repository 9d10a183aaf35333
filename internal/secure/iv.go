package secure

import (
	"encoding/binary"

	"github.com/go-faster/city"
)

// DeriveIV computes the initial AES-CBC IV from a shared secret: CityHash128
// of the secret, encoded little-endian as 16 bytes, with the two 8-byte
// halves swapped (H[8:16] || H[0:8]).
func DeriveIV(secret SharedSecret) [16]byte {
	h := city.CH128(secret[:])

	var iv [16]byte
	binary.LittleEndian.PutUint64(iv[0:8], h.High)
	binary.LittleEndian.PutUint64(iv[8:16], h.Low)
	return iv
}
