// Package frame implements the length-prefixed, 16-byte-aligned message
// framing layered directly on top of the decrypted byte stream.
package frame

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// blockSize is the AES block size the padding rule aligns to.
const blockSize = 16

// headerSize is the 8-byte [payload_length][message_type] header.
const headerSize = 8

// ErrIncomplete is returned by ExpectedLength and Decode when the buffer does not yet hold a full
// frame; the caller should wait for more bytes.
var ErrIncomplete = errors.New("frame: incomplete frame in buffer")

// Frame is one decoded message envelope: a numeric message type and its
// payload, with padding already stripped.
type Frame struct {
	MessageType uint32
	Payload     []byte
}

// PadLength returns the number of zero padding bytes required so that
// headerSize+payloadLen+pad is a multiple of blockSize.
func PadLength(payloadLen int) int {
	total := headerSize + payloadLen
	rem := total % blockSize
	if rem == 0 {
		return 0
	}
	return blockSize - rem
}

// Encode produces the full on-the-wire bytes for one frame: header (with the
// PRE-padding payload length), payload, and zero padding. The result's
// length is always a multiple of blockSize.
func Encode(messageType uint32, payload []byte) []byte {
	pad := PadLength(len(payload))
	out := make([]byte, headerSize+len(payload)+pad)
	binary.LittleEndian.PutUint32(out[0:4], uint32(len(payload)))
	binary.LittleEndian.PutUint32(out[4:8], messageType)
	copy(out[headerSize:], payload)
	return out
}

// ExpectedLength peeks the payload_length header field (the first 4 bytes of
// buf) and returns the total number of bytes, header+payload+padding, that
// make up this frame.
func ExpectedLength(buf []byte) (int, error) {
	if len(buf) < 4 {
		return 0, ErrIncomplete
	}
	size := binary.LittleEndian.Uint32(buf[0:4])
	total := headerSize + int(size)
	pad := total % blockSize
	if pad != 0 {
		total += blockSize - pad
	}
	return total, nil
}

// Decode consumes exactly one frame from the front of buf and returns it
// along with the number of bytes consumed. It returns ErrIncomplete if buf
// does not yet hold a complete frame.
func Decode(buf []byte) (Frame, int, error) {
	expected, err := ExpectedLength(buf)
	if err != nil {
		return Frame{}, 0, err
	}
	if len(buf) < expected {
		return Frame{}, 0, ErrIncomplete
	}
	if len(buf) < headerSize {
		return Frame{}, 0, fmt.Errorf("frame: buffer shorter than header")
	}
	size := binary.LittleEndian.Uint32(buf[0:4])
	msgType := binary.LittleEndian.Uint32(buf[4:8])
	payload := buf[headerSize : headerSize+int(size)]
	out := make([]byte, len(payload))
	copy(out, payload)
	return Frame{MessageType: msgType, Payload: out}, expected, nil
}
