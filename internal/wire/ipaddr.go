package wire

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// IPv4Address is a dotted-quad address. The wire encoding reverses octet
// order relative to network byte order.
type IPv4Address [4]byte

func (a IPv4Address) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", a[0], a[1], a[2], a[3])
}

// ParseIPv4Address parses "a.b.c.d", rejecting anything that doesn't fully
// match the shape (four octets 0-255, nothing trailing) since this
// implementation has no equivalent of a loosely-anchored regex to fall back
// on.
func ParseIPv4Address(s string) (IPv4Address, error) {
	var a IPv4Address
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return a, fmt.Errorf("wire: %q is not a dotted-quad IPv4 address", s)
	}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > 255 {
			return a, fmt.Errorf("wire: %q is not a dotted-quad IPv4 address", s)
		}
		a[i] = byte(n)
	}
	return a, nil
}

type ipv4AddressCodec struct{}

var IPv4AddressT FieldCodec = ipv4AddressCodec{}

func (ipv4AddressCodec) Encode(dst []byte, v interface{}) ([]byte, error) {
	a, ok := v.(IPv4Address)
	if !ok {
		return nil, newEncodeError(EncodeWrongShape, "ipaddr", ErrWrongShape)
	}
	return append(dst, a[3], a[2], a[1], a[0]), nil
}

func (ipv4AddressCodec) Decode(buf *Buffer) (interface{}, error) {
	b, err := buf.Read(4)
	if err != nil {
		return nil, newDecodeError(DecodeUnderflow, "ipaddr", err)
	}
	return IPv4Address{b[3], b[2], b[1], b[0]}, nil
}

// IPv4Endpoint is an address plus a port.
type IPv4Endpoint struct {
	Address IPv4Address
	Port    uint16
}

func (e IPv4Endpoint) String() string {
	return fmt.Sprintf("%s:%d", e.Address, e.Port)
}

// ParseIPv4Endpoint parses "a.b.c.d:port".
func ParseIPv4Endpoint(s string) (IPv4Endpoint, error) {
	var e IPv4Endpoint
	idx := strings.LastIndex(s, ":")
	if idx < 0 {
		return e, fmt.Errorf("wire: %q is not host:port", s)
	}
	addr, err := ParseIPv4Address(s[:idx])
	if err != nil {
		return e, err
	}
	port, err := strconv.Atoi(s[idx+1:])
	if err != nil || port < 0 || port > 0xffff {
		return e, fmt.Errorf("wire: %q has an invalid port", s)
	}
	e.Address = addr
	e.Port = uint16(port)
	return e, nil
}

type ipv4EndpointCodec struct{}

var IPv4EndpointT FieldCodec = ipv4EndpointCodec{}

func (ipv4EndpointCodec) Encode(dst []byte, v interface{}) ([]byte, error) {
	e, ok := v.(IPv4Endpoint)
	if !ok {
		return nil, newEncodeError(EncodeWrongShape, "ipendp", ErrWrongShape)
	}
	a := e.Address
	dst = append(dst, a[3], a[2], a[1], a[0])
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], e.Port)
	return append(dst, b[:]...), nil
}

func (ipv4EndpointCodec) Decode(buf *Buffer) (interface{}, error) {
	b, err := buf.Read(6)
	if err != nil {
		return nil, newDecodeError(DecodeUnderflow, "ipendp", err)
	}
	return IPv4Endpoint{
		Address: IPv4Address{b[3], b[2], b[1], b[0]},
		Port:    binary.LittleEndian.Uint16(b[4:6]),
	}, nil
}
