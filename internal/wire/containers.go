package wire

// VectorOf returns a FieldCodec for Vector<T>: a VarInt count followed by
// that many consecutive encodings of elem. The runtime value is a []interface{}.
func VectorOf(elem FieldCodec) FieldCodec {
	return vectorCodec{elem: elem}
}

type vectorCodec struct {
	elem FieldCodec
}

func (c vectorCodec) Encode(dst []byte, v interface{}) ([]byte, error) {
	items, ok := v.([]interface{})
	if !ok {
		return nil, newEncodeError(EncodeWrongShape, "vector", ErrWrongShape)
	}
	dst = EncodeVarInt(dst, uint64(len(items)))
	for _, item := range items {
		var err error
		dst, err = c.elem.Encode(dst, item)
		if err != nil {
			return nil, err
		}
	}
	return dst, nil
}

func (c vectorCodec) Decode(buf *Buffer) (interface{}, error) {
	count, err := DecodeVarInt(buf)
	if err != nil {
		return nil, err
	}
	items := make([]interface{}, 0, count)
	for i := uint64(0); i < count; i++ {
		v, err := c.elem.Decode(buf)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}

// MapEntry is one (key, value) pair of a decoded Map, kept as a slice of
// pairs rather than a Go map so that non-comparable or order-sensitive key
// types still round-trip predictably.
type MapEntry struct {
	Key   interface{}
	Value interface{}
}

// MapOf returns a FieldCodec for Map<K,V>. The runtime value is []MapEntry.
func MapOf(key, val FieldCodec) FieldCodec {
	return mapCodec{key: key, val: val}
}

type mapCodec struct {
	key, val FieldCodec
}

func (c mapCodec) Encode(dst []byte, v interface{}) ([]byte, error) {
	entries, ok := v.([]MapEntry)
	if !ok {
		return nil, newEncodeError(EncodeWrongShape, "map", ErrWrongShape)
	}
	dst = EncodeVarInt(dst, uint64(len(entries)))
	for _, e := range entries {
		var err error
		dst, err = c.key.Encode(dst, e.Key)
		if err != nil {
			return nil, err
		}
		dst, err = c.val.Encode(dst, e.Value)
		if err != nil {
			return nil, err
		}
	}
	return dst, nil
}

func (c mapCodec) Decode(buf *Buffer) (interface{}, error) {
	count, err := DecodeVarInt(buf)
	if err != nil {
		return nil, err
	}
	entries := make([]MapEntry, 0, count)
	for i := uint64(0); i < count; i++ {
		k, err := c.key.Decode(buf)
		if err != nil {
			return nil, err
		}
		val, err := c.val.Decode(buf)
		if err != nil {
			return nil, err
		}
		entries = append(entries, MapEntry{Key: k, Value: val})
	}
	return entries, nil
}

// OptionalOf returns a FieldCodec for Optional<T>: a 1-byte present/absent
// tag followed, if present, by one encoding of T. The runtime value is nil
// for absent or the decoded/encodable T value for present.
func OptionalOf(elem FieldCodec) FieldCodec {
	return optionalCodec{elem: elem}
}

type optionalCodec struct {
	elem FieldCodec
}

func (c optionalCodec) Encode(dst []byte, v interface{}) ([]byte, error) {
	if v == nil {
		return append(dst, 0), nil
	}
	dst = append(dst, 1)
	return c.elem.Encode(dst, v)
}

func (c optionalCodec) Decode(buf *Buffer) (interface{}, error) {
	tag, err := buf.ReadByte()
	if err != nil {
		return nil, newDecodeError(DecodeUnderflow, "optional", err)
	}
	switch tag {
	case 0:
		return nil, nil
	case 1:
		return c.elem.Decode(buf)
	default:
		return nil, newDecodeError(DecodeInvalidTag, "optional", ErrInvalidTag)
	}
}
