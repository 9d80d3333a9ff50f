package serial

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Order is the canonical byte order for every encoded integer. Digests and
// wire messages must be bit-identical across independently built nodes, so
// this is fixed for the lifetime of the format.
var Order = binary.LittleEndian

// Serialized lengths of the fixed-width primitive types.
const (
	BoolSerializedLength = 1
	U8SerializedLength   = 1
	U16SerializedLength  = 2
	U32SerializedLength  = 4
	U64SerializedLength  = 8
)

// AppendUint appends the canonical little-endian encoding of v at the given
// byte width to buf. Length prefixes of every variable-length type are
// written through here.
func AppendUint[T constraints.Unsigned](buf []byte, v T, width int) []byte {
	for i := 0; i < width; i++ {
		buf = append(buf, byte(v>>(8*i)))
	}
	return buf
}

// SplitUint consumes a fixed-width little-endian integer from the front of
// data, returning the value and the remainder. Fails with
// ErrEarlyEndOfStream when fewer than width bytes remain.
func SplitUint[T constraints.Unsigned](data []byte, width int) (T, []byte, error) {
	raw, rest, err := SafeSplit(data, width)
	if err != nil {
		return 0, nil, err
	}
	var v uint64
	for i := width - 1; i >= 0; i-- {
		v = v<<8 | uint64(raw[i])
	}
	return T(v), rest, nil
}

// Fixed-width unsigned newtypes. Each implements Codec; decoding consumes
// exactly the type's width regardless of the value's magnitude.
type (
	U8  uint8
	U16 uint16
	U32 uint32
	U64 uint64
)

var (
	_ Codec = (*U8)(nil)
	_ Codec = (*U16)(nil)
	_ Codec = (*U32)(nil)
	_ Codec = (*U64)(nil)
	_ Codec = (*Bool)(nil)
)

func (v U8) SerializedLength() int { return U8SerializedLength }

func (v U8) ToBytes() ([]byte, error) { return []byte{byte(v)}, nil }

func (v U8) IntoBytes() ([]byte, error) { return v.ToBytes() }

func (v *U8) FromBytes(data []byte) ([]byte, error) {
	raw, rest, err := SafeSplit(data, U8SerializedLength)
	if err != nil {
		return nil, err
	}
	*v = U8(raw[0])
	return rest, nil
}

func (v *U8) FromVec(data []byte) ([]byte, error) { return v.FromBytes(data) }

func (v U16) SerializedLength() int { return U16SerializedLength }

func (v U16) ToBytes() ([]byte, error) {
	buf := make([]byte, U16SerializedLength)
	Order.PutUint16(buf, uint16(v))
	return buf, nil
}

func (v U16) IntoBytes() ([]byte, error) { return v.ToBytes() }

func (v *U16) FromBytes(data []byte) ([]byte, error) {
	raw, rest, err := SafeSplit(data, U16SerializedLength)
	if err != nil {
		return nil, err
	}
	*v = U16(Order.Uint16(raw))
	return rest, nil
}

func (v *U16) FromVec(data []byte) ([]byte, error) { return v.FromBytes(data) }

func (v U32) SerializedLength() int { return U32SerializedLength }

func (v U32) ToBytes() ([]byte, error) {
	buf := make([]byte, U32SerializedLength)
	Order.PutUint32(buf, uint32(v))
	return buf, nil
}

func (v U32) IntoBytes() ([]byte, error) { return v.ToBytes() }

func (v *U32) FromBytes(data []byte) ([]byte, error) {
	raw, rest, err := SafeSplit(data, U32SerializedLength)
	if err != nil {
		return nil, err
	}
	*v = U32(Order.Uint32(raw))
	return rest, nil
}

func (v *U32) FromVec(data []byte) ([]byte, error) { return v.FromBytes(data) }

func (v U64) SerializedLength() int { return U64SerializedLength }

func (v U64) ToBytes() ([]byte, error) {
	buf := make([]byte, U64SerializedLength)
	Order.PutUint64(buf, uint64(v))
	return buf, nil
}

func (v U64) IntoBytes() ([]byte, error) { return v.ToBytes() }

func (v *U64) FromBytes(data []byte) ([]byte, error) {
	raw, rest, err := SafeSplit(data, U64SerializedLength)
	if err != nil {
		return nil, err
	}
	*v = U64(Order.Uint64(raw))
	return rest, nil
}

func (v *U64) FromVec(data []byte) ([]byte, error) { return v.FromBytes(data) }

// Bool encodes as a single byte, 0 or 1. Any other byte fails decoding with
// ErrFormatting: accepting it would give one value two encodings.
type Bool bool

func (v Bool) SerializedLength() int { return BoolSerializedLength }

func (v Bool) ToBytes() ([]byte, error) {
	if v {
		return []byte{1}, nil
	}
	return []byte{0}, nil
}

func (v Bool) IntoBytes() ([]byte, error) { return v.ToBytes() }

func (v *Bool) FromBytes(data []byte) ([]byte, error) {
	raw, rest, err := SafeSplit(data, BoolSerializedLength)
	if err != nil {
		return nil, err
	}
	switch raw[0] {
	case 0:
		*v = false
	case 1:
		*v = true
	default:
		return nil, fmt.Errorf("%w: boolean byte %#x", ErrFormatting, raw[0])
	}
	return rest, nil
}

func (v *Bool) FromVec(data []byte) ([]byte, error) { return v.FromBytes(data) }
