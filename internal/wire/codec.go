package wire

// FieldCodec is the interface every wire type implements: an encoder that
// turns a Go value into bytes and a decoder that reads one back out of a
// Buffer. Schema-driven records (messages, operations, objects) are built by
// composing FieldCodecs rather than by generating one Go type per record,
// following the interpreter shape this protocol's source favors over
// per-message codegen.
type FieldCodec interface {
	// Encode appends the wire encoding of v to dst and returns the extended
	// slice. It returns *EncodeError on invalid input.
	Encode(dst []byte, v interface{}) ([]byte, error)
	// Decode reads one value from buf. It returns *DecodeError on malformed
	// input.
	Decode(buf *Buffer) (interface{}, error)
}

// Field is one entry in an ordered record schema.
type Field struct {
	Name  string
	Codec FieldCodec
}

// Schema is an ordered list of fields, the structural backbone of every
// message, operation, and object body.
type Schema []Field

// Record is the runtime representation of a value conforming to a Schema: a
// name-keyed bag of field values, keyed and ordered by the owning Schema.
type Record map[string]interface{}

// StructCodec encodes/decodes a Record by walking Schema in declaration
// order. It is used for messages, operations and objects; Extension walks
// its own schema for sparse records.
type StructCodec struct {
	Schema Schema
}

func (c StructCodec) Encode(dst []byte, v interface{}) ([]byte, error) {
	rec, ok := v.(Record)
	if !ok {
		return nil, newEncodeError(EncodeWrongShape, "", ErrWrongShape)
	}
	for _, f := range c.Schema {
		val, present := rec[f.Name]
		if !present {
			return nil, newEncodeError(EncodeWrongShape, f.Name, ErrWrongShape)
		}
		var err error
		dst, err = f.Codec.Encode(dst, val)
		if err != nil {
			return nil, err
		}
	}
	return dst, nil
}

func (c StructCodec) Decode(buf *Buffer) (interface{}, error) {
	rec := make(Record, len(c.Schema))
	for _, f := range c.Schema {
		val, err := f.Codec.Decode(buf)
		if err != nil {
			return nil, err
		}
		rec[f.Name] = val
	}
	return rec, nil
}

// Names returns the field names of the schema in order, used by Extension to
// number fields by position.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}
