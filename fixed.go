package serial

import (
	"encoding/binary"
	"fmt"
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

// sizeCache avoids the cost of reflection in binary.Size on every call.
// A concurrent map keeps SerializedLength safe to call from many goroutines.
var sizeCache = xsync.NewMap[reflect.Type, int]()

// Fixed gives any struct composed purely of fixed-size fields the full
// Codec contract without per-type boilerplate: the payload is laid out
// field-by-field in the canonical byte order via encoding/binary.
//
// Constraint: Payload must not contain variable-size fields like slices,
// maps, or strings. Such a payload fails ToBytes with ErrNotRepresentable
// rather than panicking.
type Fixed[Payload any] struct {
	Payload Payload
}

var _ Codec = (*Fixed[struct{}])(nil)

// SerializedLength returns the fixed size of the payload in bytes, or -1
// for an unencodable payload type. The result is cached to avoid reflection
// overhead on subsequent calls.
func (c Fixed[Payload]) SerializedLength() int {
	bodyType := reflect.TypeOf((*Payload)(nil)).Elem()

	if size, ok := sizeCache.Load(bodyType); ok {
		return size
	}

	size := binary.Size(&c.Payload)
	sizeCache.Store(bodyType, size)
	return size
}

func (c Fixed[Payload]) ToBytes() ([]byte, error) {
	size := c.SerializedLength()
	if size < 0 {
		return nil, fmt.Errorf("%w: payload type has no fixed binary size", ErrNotRepresentable)
	}
	buf := make([]byte, size)
	if _, err := binary.Encode(buf, Order, &c.Payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotRepresentable, err)
	}
	return buf, nil
}

func (c Fixed[Payload]) IntoBytes() ([]byte, error) { return c.ToBytes() }

func (c *Fixed[Payload]) FromBytes(data []byte) ([]byte, error) {
	size := c.SerializedLength()
	if size < 0 {
		return nil, fmt.Errorf("%w: payload type has no fixed binary size", ErrNotRepresentable)
	}
	raw, rest, err := SafeSplit(data, size)
	if err != nil {
		return nil, err
	}
	if _, err := binary.Decode(raw, Order, &c.Payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormatting, err)
	}
	return rest, nil
}

func (c *Fixed[Payload]) FromVec(data []byte) ([]byte, error) { return c.FromBytes(data) }
