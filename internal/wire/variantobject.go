package wire

// variantObjectTag indexes the fixed type table a VariantObject entry's tag
// byte selects from. Only indices 2, 5, and 7 have a meaningful encoding;
// the rest are reserved and this implementation never emits them.
const (
	variantObjectTagUint64 = 2
	variantObjectTagString = 5
	variantObjectTagNested = 7
)

// VariantObject is the opaque key/value bag carried in Hello.user_data. Keys
// are strings; values are uint64, string, or a nested VariantObject.
type VariantObject map[string]interface{}

type variantObjectCodec struct{}

var VariantObjectT FieldCodec = variantObjectCodec{}

func (variantObjectCodec) Encode(dst []byte, v interface{}) ([]byte, error) {
	obj, ok := v.(VariantObject)
	if !ok {
		return nil, newEncodeError(EncodeWrongShape, "object", ErrWrongShape)
	}
	dst = EncodeVarInt(dst, uint64(len(obj)))
	for k, val := range obj {
		var err error
		dst, err = StringT.Encode(dst, k)
		if err != nil {
			return nil, err
		}
		switch x := val.(type) {
		case uint64:
			dst = append(dst, variantObjectTagUint64)
			dst, err = U64.Encode(dst, x)
		case string:
			dst = append(dst, variantObjectTagString)
			dst, err = StringT.Encode(dst, x)
		case VariantObject:
			dst = append(dst, variantObjectTagNested)
			dst, err = variantObjectCodec{}.Encode(dst, x)
		default:
			return nil, newEncodeError(EncodeUnsupported, "object."+k, ErrUnsupported)
		}
		if err != nil {
			return nil, err
		}
	}
	return dst, nil
}

func (variantObjectCodec) Decode(buf *Buffer) (interface{}, error) {
	count, err := DecodeVarInt(buf)
	if err != nil {
		return nil, err
	}
	obj := make(VariantObject, count)
	for i := uint64(0); i < count; i++ {
		keyVal, err := StringT.Decode(buf)
		if err != nil {
			return nil, err
		}
		key := keyVal.(string)
		tag, err := buf.ReadByte()
		if err != nil {
			return nil, newDecodeError(DecodeUnderflow, "object."+key, err)
		}
		var val interface{}
		switch tag {
		case variantObjectTagUint64:
			val, err = U64.Decode(buf)
		case variantObjectTagString:
			val, err = StringT.Decode(buf)
		case variantObjectTagNested:
			val, err = variantObjectCodec{}.Decode(buf)
		default:
			return nil, newDecodeError(DecodeInvalidTag, "object."+key, ErrInvalidTag)
		}
		if err != nil {
			return nil, err
		}
		obj[key] = val
	}
	return obj, nil
}
