package serial

import (
	"fmt"
	"math"
)

// String is a UTF-8 string with the canonical variable-length encoding: a
// 4-byte length prefix followed by the raw bytes, exactly as Bytes. The
// bytes are not validated as UTF-8; the container carries whatever the
// string held.
type String string

var _ Codec = (*String)(nil)

func (s String) SerializedLength() int {
	return U32SerializedLength + len(s)
}

func (s String) ToBytes() ([]byte, error) {
	if uint64(len(s)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes exceed a 4-byte length prefix", ErrNotRepresentable, len(s))
	}
	out := make([]byte, 0, s.SerializedLength())
	out = AppendUint(out, uint32(len(s)), U32SerializedLength)
	return append(out, s...), nil
}

func (s String) IntoBytes() ([]byte, error) { return s.ToBytes() }

func (s *String) FromBytes(data []byte) ([]byte, error) {
	size, rem, err := SplitUint[uint32](data, U32SerializedLength)
	if err != nil {
		return nil, err
	}
	payload, rem, err := SafeSplit(rem, int(size))
	if err != nil {
		return nil, err
	}
	*s = String(payload)
	return rem, nil
}

// FromVec behaves as FromBytes: converting to string copies the payload
// either way, so there is no backing storage to reuse.
func (s *String) FromVec(data []byte) ([]byte, error) { return s.FromBytes(data) }
