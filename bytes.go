package serial

import (
	"bytes"
	"fmt"
	"iter"
	"math"
)

// Bytes is the variable-length byte container: an owned, uninterpreted byte
// sequence with efficient serialization routines. Its encoded form is a
// 4-byte little-endian length prefix followed by exactly that many raw
// bytes, which is the template every variable-length type in the system
// follows.
//
// The zero value is the empty container. Indexing and slicing work as on a
// plain byte slice; callers that hold a Bytes must treat it as immutable.
type Bytes []byte

var _ Codec = (*Bytes)(nil)

// NewBytes wraps an owned byte slice without copying. The caller hands over
// the slice and must not mutate it afterwards.
func NewBytes(b []byte) Bytes {
	return Bytes(b)
}

// CopyBytes copies a borrowed slice into a new container.
func CopyBytes(b []byte) Bytes {
	return Bytes(append([]byte(nil), b...))
}

// CollectBytes collects an iterator of bytes into a new container.
func CollectBytes(seq iter.Seq[byte]) Bytes {
	var b []byte
	for c := range seq {
		b = append(b, c)
	}
	return Bytes(b)
}

// InnerBytes returns the contained bytes as a plain slice, sharing the
// container's backing array. The view is read-only by convention.
func (v Bytes) InnerBytes() []byte { return []byte(v) }

// Equal reports whether two containers hold identical byte sequences. By
// canonicality this holds exactly when their encoded forms are identical.
func (v Bytes) Equal(other Bytes) bool {
	return bytes.Equal(v, other)
}

// Compare lexicographically orders two containers, returning -1, 0 or 1.
func (v Bytes) Compare(other Bytes) int {
	return bytes.Compare(v, other)
}

func (v Bytes) SerializedLength() int {
	return U32SerializedLength + len(v)
}

func (v Bytes) ToBytes() ([]byte, error) {
	if uint64(len(v)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes exceed a 4-byte length prefix", ErrNotRepresentable, len(v))
	}
	out := make([]byte, 0, v.SerializedLength())
	out = AppendUint(out, uint32(len(v)), U32SerializedLength)
	return append(out, v...), nil
}

func (v Bytes) IntoBytes() ([]byte, error) { return v.ToBytes() }

// FromBytes decodes a container from a borrowed buffer. The payload is
// copied so the result does not alias data; the remainder is a view of it.
func (v *Bytes) FromBytes(data []byte) ([]byte, error) {
	size, rem, err := SplitUint[uint32](data, U32SerializedLength)
	if err != nil {
		return nil, err
	}
	payload, rem, err := SafeSplit(rem, int(size))
	if err != nil {
		return nil, err
	}
	*v = Bytes(append([]byte(nil), payload...))
	return rem, nil
}

// FromVec decodes a container from an owned buffer. The payload aliases
// data's backing array instead of being copied, so splitting a long chain of
// values off one buffer stays O(1) per step.
func (v *Bytes) FromVec(data []byte) ([]byte, error) {
	size, rem, err := SplitUint[uint32](data, U32SerializedLength)
	if err != nil {
		return nil, err
	}
	payload, rem, err := SafeSplit(rem, int(size))
	if err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		payload = nil
	}
	*v = Bytes(payload)
	return rem, nil
}
