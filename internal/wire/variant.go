package wire

// Variant is the runtime representation of a StaticVariant<T0,...,Tn-1>
// value: the discriminator and the decoded/to-be-encoded payload.
type Variant struct {
	Discriminator uint64
	Value         interface{}
}

// VariantCase describes one slot of a StaticVariant's type table. A nil
// Codec marks a reserved/null slot: encoding a Variant whose Discriminator
// selects it fails with Unsupported, and it is never produced on decode
// without a registered codec.
type VariantCase struct {
	Codec FieldCodec
}

// Reserved marks a StaticVariant slot with no known schema.
var Reserved = VariantCase{Codec: nil}

// StaticVariantOf returns a FieldCodec for StaticVariant<T0,...,Tn-1>. cases
// is indexed by discriminator.
func StaticVariantOf(cases []VariantCase) FieldCodec {
	return staticVariantCodec{cases: cases}
}

type staticVariantCodec struct {
	cases []VariantCase
}

func (c staticVariantCodec) Encode(dst []byte, v interface{}) ([]byte, error) {
	variant, ok := v.(Variant)
	if !ok {
		return nil, newEncodeError(EncodeWrongShape, "variant", ErrWrongShape)
	}
	if variant.Discriminator >= uint64(len(c.cases)) {
		return nil, newEncodeError(EncodeUnsupported, "variant", ErrUnsupported)
	}
	vc := c.cases[variant.Discriminator]
	if vc.Codec == nil {
		return nil, newEncodeError(EncodeUnsupported, "variant", ErrUnsupported)
	}
	dst = EncodeVarInt(dst, variant.Discriminator)
	return vc.Codec.Encode(dst, variant.Value)
}

func (c staticVariantCodec) Decode(buf *Buffer) (interface{}, error) {
	d, err := DecodeVarInt(buf)
	if err != nil {
		return nil, err
	}
	if d >= uint64(len(c.cases)) {
		return nil, newDecodeError(DecodeInvalidVariant, "variant", ErrInvalidVariant)
	}
	vc := c.cases[d]
	if vc.Codec == nil {
		return nil, newDecodeError(DecodeInvalidVariant, "variant", ErrInvalidVariant)
	}
	val, err := vc.Codec.Decode(buf)
	if err != nil {
		return nil, err
	}
	return Variant{Discriminator: d, Value: val}, nil
}
