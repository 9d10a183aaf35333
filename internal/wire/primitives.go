package wire

import (
	"encoding/binary"
	"unicode/utf8"
)

// uint8Codec, uint16Codec, ... are the fixed-width little-endian integer
// codecs. Each enforces its declared numeric range on encode.
type uint8Codec struct{}
type uint16Codec struct{}
type uint32Codec struct{}
type uint64Codec struct{}
type int64Codec struct{}
type boolCodec struct{}
type stringCodec struct{}
type dataCodec struct{}
type nullCodec struct{}
type varintCodec struct{}

// U8, U16, U32, U64, I64, Bool, StringT, DataT, NullT, VarIntT are the
// ready-to-use primitive field codecs referenced from schema tables.
var (
	U8      FieldCodec = uint8Codec{}
	U16     FieldCodec = uint16Codec{}
	U32     FieldCodec = uint32Codec{}
	U64     FieldCodec = uint64Codec{}
	I64     FieldCodec = int64Codec{}
	Bool    FieldCodec = boolCodec{}
	StringT FieldCodec = stringCodec{}
	DataT   FieldCodec = dataCodec{}
	NullT   FieldCodec = nullCodec{}
	VarIntT FieldCodec = varintCodec{}
)

func asUint64(field string, v interface{}) (uint64, error) {
	switch x := v.(type) {
	case uint64:
		return x, nil
	case uint32:
		return uint64(x), nil
	case uint16:
		return uint64(x), nil
	case uint8:
		return uint64(x), nil
	case int:
		if x < 0 {
			return 0, newEncodeError(EncodeOutOfRange, field, ErrOutOfRange)
		}
		return uint64(x), nil
	default:
		return 0, newEncodeError(EncodeWrongShape, field, ErrWrongShape)
	}
}

func (uint8Codec) Encode(dst []byte, v interface{}) ([]byte, error) {
	u, err := asUint64("u8", v)
	if err != nil {
		return nil, err
	}
	if u > 0xff {
		return nil, newEncodeError(EncodeOutOfRange, "u8", ErrOutOfRange)
	}
	return append(dst, byte(u)), nil
}

func (uint8Codec) Decode(buf *Buffer) (interface{}, error) {
	b, err := buf.ReadByte()
	if err != nil {
		return nil, newDecodeError(DecodeUnderflow, "u8", err)
	}
	return uint8(b), nil
}

func (uint16Codec) Encode(dst []byte, v interface{}) ([]byte, error) {
	u, err := asUint64("u16", v)
	if err != nil {
		return nil, err
	}
	if u > 0xffff {
		return nil, newEncodeError(EncodeOutOfRange, "u16", ErrOutOfRange)
	}
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], uint16(u))
	return append(dst, b[:]...), nil
}

func (uint16Codec) Decode(buf *Buffer) (interface{}, error) {
	b, err := buf.Read(2)
	if err != nil {
		return nil, newDecodeError(DecodeUnderflow, "u16", err)
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (uint32Codec) Encode(dst []byte, v interface{}) ([]byte, error) {
	u, err := asUint64("u32", v)
	if err != nil {
		return nil, err
	}
	if u > 0xffffffff {
		return nil, newEncodeError(EncodeOutOfRange, "u32", ErrOutOfRange)
	}
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(u))
	return append(dst, b[:]...), nil
}

func (uint32Codec) Decode(buf *Buffer) (interface{}, error) {
	b, err := buf.Read(4)
	if err != nil {
		return nil, newDecodeError(DecodeUnderflow, "u32", err)
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (uint64Codec) Encode(dst []byte, v interface{}) ([]byte, error) {
	u, err := asUint64("u64", v)
	if err != nil {
		return nil, err
	}
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], u)
	return append(dst, b[:]...), nil
}

func (uint64Codec) Decode(buf *Buffer) (interface{}, error) {
	b, err := buf.Read(8)
	if err != nil {
		return nil, newDecodeError(DecodeUnderflow, "u64", err)
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (int64Codec) Encode(dst []byte, v interface{}) ([]byte, error) {
	var i int64
	switch x := v.(type) {
	case int64:
		i = x
	case int:
		i = int64(x)
	default:
		return nil, newEncodeError(EncodeWrongShape, "i64", ErrWrongShape)
	}
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(i))
	return append(dst, b[:]...), nil
}

func (int64Codec) Decode(buf *Buffer) (interface{}, error) {
	b, err := buf.Read(8)
	if err != nil {
		return nil, newDecodeError(DecodeUnderflow, "i64", err)
	}
	return int64(binary.LittleEndian.Uint64(b)), nil
}

func (boolCodec) Encode(dst []byte, v interface{}) ([]byte, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, newEncodeError(EncodeWrongShape, "bool", ErrWrongShape)
	}
	if b {
		return append(dst, 1), nil
	}
	return append(dst, 0), nil
}

func (boolCodec) Decode(buf *Buffer) (interface{}, error) {
	b, err := buf.ReadByte()
	if err != nil {
		return nil, newDecodeError(DecodeUnderflow, "bool", err)
	}
	return b != 0, nil
}

func (stringCodec) Encode(dst []byte, v interface{}) ([]byte, error) {
	s, ok := v.(string)
	if !ok {
		return nil, newEncodeError(EncodeWrongShape, "string", ErrWrongShape)
	}
	dst = EncodeVarInt(dst, uint64(len(s)))
	return append(dst, s...), nil
}

func (stringCodec) Decode(buf *Buffer) (interface{}, error) {
	n, err := DecodeVarInt(buf)
	if err != nil {
		return nil, err
	}
	b, err := buf.Read(int(n))
	if err != nil {
		return nil, newDecodeError(DecodeUnderflow, "string", err)
	}
	if !utf8.Valid(b) {
		return nil, newDecodeError(DecodeInvalidUTF8, "string", ErrInvalidUTF8)
	}
	return string(b), nil
}

func (dataCodec) Encode(dst []byte, v interface{}) ([]byte, error) {
	b, ok := v.([]byte)
	if !ok {
		return nil, newEncodeError(EncodeWrongShape, "data", ErrWrongShape)
	}
	dst = EncodeVarInt(dst, uint64(len(b)))
	return append(dst, b...), nil
}

func (dataCodec) Decode(buf *Buffer) (interface{}, error) {
	n, err := DecodeVarInt(buf)
	if err != nil {
		return nil, err
	}
	b, err := buf.Read(int(n))
	if err != nil {
		return nil, newDecodeError(DecodeUnderflow, "data", err)
	}
	return append([]byte(nil), b...), nil
}

func (nullCodec) Encode(dst []byte, v interface{}) ([]byte, error) {
	return dst, nil
}

func (nullCodec) Decode(buf *Buffer) (interface{}, error) {
	return nil, nil
}

func (varintCodec) Encode(dst []byte, v interface{}) ([]byte, error) {
	u, err := asUint64("varint", v)
	if err != nil {
		return nil, err
	}
	return EncodeVarInt(dst, u), nil
}

func (varintCodec) Decode(buf *Buffer) (interface{}, error) {
	return DecodeVarInt(buf)
}

// fixedBytesCodec handles every "N raw bytes" wire type: PublicKey,
// FakePublicKey, Signature, SHA256, RIPEMD160.
type fixedBytesCodec struct {
	name string
	size int
}

func (c fixedBytesCodec) Encode(dst []byte, v interface{}) ([]byte, error) {
	b, ok := v.([]byte)
	if !ok || len(b) != c.size {
		return nil, newEncodeError(EncodeWrongShape, c.name, ErrWrongShape)
	}
	return append(dst, b...), nil
}

func (c fixedBytesCodec) Decode(buf *Buffer) (interface{}, error) {
	b, err := buf.Read(c.size)
	if err != nil {
		return nil, newDecodeError(DecodeUnderflow, c.name, err)
	}
	return append([]byte(nil), b...), nil
}

var (
	PublicKeyT     FieldCodec = fixedBytesCodec{"pubkey", 33}
	FakePublicKeyT FieldCodec = fixedBytesCodec{"fake_pubkey", 33}
	SignatureT     FieldCodec = fixedBytesCodec{"sig", 65}
	SHA256T        FieldCodec = fixedBytesCodec{"sha256", 32}
	RIPEMD160T     FieldCodec = fixedBytesCodec{"ripemd160", 20}
)

// voteIDCodec packs a VoteID as a little-endian u32: low 8 bits category,
// high 24 bits instance.
type voteIDCodec struct{}

var VoteIDT FieldCodec = voteIDCodec{}

// VoteID is the decoded representation of a VoteID field.
type VoteID struct {
	Category uint8
	Instance uint32
}

func (voteIDCodec) Encode(dst []byte, v interface{}) ([]byte, error) {
	vid, ok := v.(VoteID)
	if !ok {
		return nil, newEncodeError(EncodeWrongShape, "vote_id", ErrWrongShape)
	}
	if vid.Instance > 0xffffff {
		return nil, newEncodeError(EncodeOutOfRange, "vote_id", ErrOutOfRange)
	}
	packed := uint32(vid.Category) | vid.Instance<<8
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], packed)
	return append(dst, b[:]...), nil
}

func (voteIDCodec) Decode(buf *Buffer) (interface{}, error) {
	b, err := buf.Read(4)
	if err != nil {
		return nil, newDecodeError(DecodeUnderflow, "vote_id", err)
	}
	packed := binary.LittleEndian.Uint32(b)
	return VoteID{Category: uint8(packed & 0xff), Instance: packed >> 8}, nil
}
