package serial

import "fmt"

// Sizer is an interface for types that can report their encoded size.
// Composite encoders use it to pre-allocate exactly-sized buffers, and it is
// the anchor of the round-trip invariant: a decoder consumes exactly the
// number of bytes that SerializedLength reports for the value it returns.
type Sizer interface {
	// SerializedLength returns the exact encoded length in bytes without
	// performing the encode.
	SerializedLength() int
}

// Encoder is implemented by every value that can serialize itself into the
// canonical byte form.
type Encoder interface {
	Sizer

	// ToBytes produces a freshly-allocated byte sequence representing the
	// value. The result is exactly SerializedLength bytes long.
	ToBytes() ([]byte, error)

	// IntoBytes is the ownership-consuming variant of ToBytes. The receiver
	// must not be used afterwards: the implementation may reuse its backing
	// storage to avoid a copy. The encoded form is identical to ToBytes.
	IntoBytes() ([]byte, error)
}

// Decoder is implemented (on a pointer receiver) by every value that can
// reconstruct itself from the canonical byte form. Both methods consume a
// prefix of the input and return the unconsumed remainder, which is how
// composite structures decode a sequence of values from one buffer.
type Decoder interface {
	// FromBytes decodes from a borrowed buffer. The remainder is a sub-slice
	// view of data with the same backing array; data itself is never
	// mutated, and the decoded value does not alias it.
	FromBytes(data []byte) (remainder []byte, err error)

	// FromVec decodes from a buffer the caller hands over. The decoded value
	// and the remainder may alias data's backing array, so a chain of N
	// sequential decodes costs O(1) extra allocation rather than O(N)
	// copies. The caller must not reuse data afterwards.
	FromVec(data []byte) (remainder []byte, err error)
}

// Codec aggregates both directions. A type implementing Codec round-trips
// through the canonical encoding.
type Codec interface {
	Encoder
	Decoder
}

// AllocateBuffer returns an empty buffer with capacity for v's encoding.
// Composite ToBytes implementations append their fields' encodings into it.
func AllocateBuffer(v Sizer) []byte {
	return make([]byte, 0, v.SerializedLength())
}

// Serialize encodes v and verifies that the result honours the declared
// length. An encoder that over- or under-runs its own SerializedLength would
// break canonical hashing, so the mismatch is surfaced here rather than
// propagated silently.
func Serialize(v Encoder) ([]byte, error) {
	out, err := v.ToBytes()
	if err != nil {
		return nil, err
	}
	if len(out) != v.SerializedLength() {
		return nil, fmt.Errorf("%w: declared %d bytes, encoded %d", ErrFormatting, v.SerializedLength(), len(out))
	}
	return out, nil
}

// Deserialize decodes exactly one value of type T from data, rejecting
// trailing bytes with ErrLeftOverBytes. This is the policy layer for
// top-level messages; callers that expect to keep decoding from the same
// buffer use FromBytes directly and consume the remainder themselves.
func Deserialize[T any, PT interface {
	*T
	Decoder
}](data []byte) (T, error) {
	var v T
	rem, err := PT(&v).FromBytes(data)
	if err != nil {
		return v, err
	}
	if len(rem) != 0 {
		return v, fmt.Errorf("%w: %d trailing bytes", ErrLeftOverBytes, len(rem))
	}
	return v, nil
}

// DeserializeVec is Deserialize over an owned buffer: the decoded value may
// reuse data's backing storage, and data must not be touched afterwards.
func DeserializeVec[T any, PT interface {
	*T
	Decoder
}](data []byte) (T, error) {
	var v T
	rem, err := PT(&v).FromVec(data)
	if err != nil {
		return v, err
	}
	if len(rem) != 0 {
		return v, fmt.Errorf("%w: %d trailing bytes", ErrLeftOverBytes, len(rem))
	}
	return v, nil
}
