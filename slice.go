package serial

import (
	"fmt"
	"math"
)

// SliceSerializedLength returns the encoded length of a slice: a 4-byte
// element count followed by each element's own encoding.
func SliceSerializedLength[T Sizer](items []T) int {
	n := U32SerializedLength
	for _, item := range items {
		n += item.SerializedLength()
	}
	return n
}

// SliceToBytes encodes a slice as a 4-byte element count followed by each
// element in order. The count is the number of elements, not bytes; element
// boundaries are recovered on decode by each element's own decoder.
func SliceToBytes[T Encoder](items []T) ([]byte, error) {
	if uint64(len(items)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d elements exceed a 4-byte count prefix", ErrNotRepresentable, len(items))
	}
	out := make([]byte, 0, SliceSerializedLength(items))
	out = AppendUint(out, uint32(len(items)), U32SerializedLength)
	for _, item := range items {
		b, err := item.ToBytes()
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

// SliceFromBytes decodes a slice of T from a borrowed buffer, returning the
// elements and the remainder. An empty slice decodes as nil. The capacity
// hint is clamped to the bytes actually available, so an adversarial count
// prefix cannot force a huge allocation before the stream runs dry.
func SliceFromBytes[T any, PT interface {
	*T
	Decoder
}](data []byte) ([]T, []byte, error) {
	count, rem, err := SplitUint[uint32](data, U32SerializedLength)
	if err != nil {
		return nil, nil, err
	}
	if count == 0 {
		return nil, rem, nil
	}
	items := make([]T, 0, capHint(count, rem))
	for i := uint32(0); i < count; i++ {
		var v T
		rem, err = PT(&v).FromBytes(rem)
		if err != nil {
			return nil, nil, err
		}
		items = append(items, v)
	}
	return items, rem, nil
}

// capHint clamps an untrusted element count to the bytes actually available,
// keeping it a safe capacity on 32-bit platforms where int(count) can wrap.
func capHint(count uint32, rem []byte) int {
	if uint64(count) < uint64(len(rem)) {
		return int(count)
	}
	return len(rem)
}

// SliceFromVec is SliceFromBytes over an owned buffer; elements decode via
// FromVec and may alias data's backing array.
func SliceFromVec[T any, PT interface {
	*T
	Decoder
}](data []byte) ([]T, []byte, error) {
	count, rem, err := SplitUint[uint32](data, U32SerializedLength)
	if err != nil {
		return nil, nil, err
	}
	if count == 0 {
		return nil, rem, nil
	}
	items := make([]T, 0, capHint(count, rem))
	for i := uint32(0); i < count; i++ {
		var v T
		rem, err = PT(&v).FromVec(rem)
		if err != nil {
			return nil, nil, err
		}
		items = append(items, v)
	}
	return items, rem, nil
}
