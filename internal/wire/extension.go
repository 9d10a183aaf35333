package wire

// ExtensionOf returns a FieldCodec for Extension<S>: a sparse encoding of the
// struct whose field order is given by schema. Only fields present in the
// runtime Record are emitted, in strictly increasing index order; absent
// fields decode as "not present in the returned Record" rather than a zero
// value, so callers must check for key presence.
func ExtensionOf(schema Schema) FieldCodec {
	return extensionCodec{schema: schema}
}

type extensionCodec struct {
	schema Schema
}

func (c extensionCodec) Encode(dst []byte, v interface{}) ([]byte, error) {
	rec, _ := v.(Record)
	type indexed struct {
		index int
		field Field
		value interface{}
	}
	var present []indexed
	for i, f := range c.schema {
		if val, ok := rec[f.Name]; ok {
			present = append(present, indexed{i, f, val})
		}
	}
	dst = EncodeVarInt(dst, uint64(len(present)))
	for _, p := range present {
		dst = EncodeVarInt(dst, uint64(p.index))
		var err error
		dst, err = p.field.Codec.Encode(dst, p.value)
		if err != nil {
			return nil, err
		}
	}
	return dst, nil
}

func (c extensionCodec) Decode(buf *Buffer) (interface{}, error) {
	count, err := DecodeVarInt(buf)
	if err != nil {
		return nil, err
	}
	rec := make(Record)
	lastIndex := int64(-1)
	for i := uint64(0); i < count; i++ {
		idx, err := DecodeVarInt(buf)
		if err != nil {
			return nil, err
		}
		if int64(idx) <= lastIndex {
			return nil, newDecodeError(DecodeInvalidTag, "extension", ErrInvalidTag)
		}
		lastIndex = int64(idx)
		if int(idx) >= len(c.schema) {
			return nil, newDecodeError(DecodeInvalidVariant, "extension", ErrInvalidVariant)
		}
		f := c.schema[idx]
		val, err := f.Codec.Decode(buf)
		if err != nil {
			return nil, err
		}
		rec[f.Name] = val
	}
	return rec, nil
}
