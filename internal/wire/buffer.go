// Package wire implements the schema-driven binary codec shared by every
// message, operation, and object type on the wire.
package wire

import "fmt"

// Buffer is a strict FIFO of bytes: writes append, reads consume from the
// front, peeks inspect the front without consuming. It backs both the
// decrypted read side of a connection and the scratch space used while
// encoding an outbound message.
type Buffer struct {
	data []byte
	pos  int
}

// NewBuffer returns a Buffer pre-loaded with data. The caller no longer owns
// the slice.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Write appends b to the end of the buffer.
func (buf *Buffer) Write(b []byte) {
	buf.data = append(buf.data, b...)
}

// Count returns the number of unread bytes.
func (buf *Buffer) Count() int {
	return len(buf.data) - buf.pos
}

// Peek returns the next n bytes without consuming them. It returns
// ErrUnderflow if fewer than n bytes are available.
func (buf *Buffer) Peek(n int) ([]byte, error) {
	if n < 0 || buf.Count() < n {
		return nil, fmt.Errorf("wire: peek %d bytes: %w", n, ErrUnderflow)
	}
	return buf.data[buf.pos : buf.pos+n], nil
}

// Read consumes and returns the next n bytes. It returns ErrUnderflow if
// fewer than n bytes are available, leaving the buffer unchanged.
func (buf *Buffer) Read(n int) ([]byte, error) {
	b, err := buf.Peek(n)
	if err != nil {
		return nil, err
	}
	buf.pos += n
	buf.compact()
	return b, nil
}

// ReadByte consumes and returns a single byte.
func (buf *Buffer) ReadByte() (byte, error) {
	b, err := buf.Read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// compact drops already-consumed bytes once they grow large relative to the
// remainder, so a long-lived connection buffer doesn't grow without bound.
func (buf *Buffer) compact() {
	if buf.pos > 0 && buf.pos >= len(buf.data)/2 {
		buf.data = append([]byte(nil), buf.data[buf.pos:]...)
		buf.pos = 0
	}
}

// Bytes returns the unread remainder without consuming it.
func (buf *Buffer) Bytes() []byte {
	return buf.data[buf.pos:]
}
