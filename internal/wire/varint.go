package wire

// VarInt implements the LEB128-style variable-length encoding used for every
// length prefix and discriminator on the wire.
//
// The historical reference this protocol was captured from sets the
// continuation bit with "if value - 128 > 0", which disagrees with standard
// LEB128 at value == 128. This implementation uses the ordinary rule
// (continuation=1 iff the remaining value after a 7-bit right shift is
// non-zero) per the documented decision to not reproduce that quirk.
type VarInt uint64

// EncodeVarInt appends the LEB128 encoding of v to dst and returns the
// extended slice.
func EncodeVarInt(dst []byte, v uint64) []byte {
	for v > 0x7f {
		dst = append(dst, byte(v&0x7f)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

// DecodeVarInt reads a VarInt from buf.
func DecodeVarInt(buf *Buffer) (uint64, error) {
	var result uint64
	var shift uint
	for {
		b, err := buf.ReadByte()
		if err != nil {
			return 0, newDecodeError(DecodeUnderflow, "varint", err)
		}
		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, nil
		}
		shift += 7
		if shift >= 64 {
			return 0, newDecodeError(DecodeInvalidTag, "varint", ErrInvalidTag)
		}
	}
}

// Encode returns the LEB128 encoding of v. It is not a FieldCodec; schemas
// that name a bare VarInt field use VarIntT.
func (v VarInt) Encode() []byte {
	return EncodeVarInt(nil, uint64(v))
}

func DecodeVarIntValue(buf *Buffer) (VarInt, error) {
	v, err := DecodeVarInt(buf)
	return VarInt(v), err
}
