package serial

import "errors"

var (
	// ErrEarlyEndOfStream indicates that fewer bytes remained in the input
	// than a declared or fixed length required. The input may be truncated,
	// or a length prefix may promise more payload than was provided.
	ErrEarlyEndOfStream = errors.New("serial: early end of stream")

	// ErrFormatting indicates that the input bytes violate the canonical
	// form of the target type, e.g. a boolean byte other than 0 or 1, an
	// unknown option tag, or a big integer with trailing zero bytes.
	ErrFormatting = errors.New("serial: invalid or non-canonical encoding")

	// ErrLeftOverBytes is returned by Deserialize and DeserializeVec when
	// bytes remain after the expected value has been decoded. The primitive
	// decoders themselves never return it; they hand the remainder back to
	// the caller instead.
	ErrLeftOverBytes = errors.New("serial: left-over bytes after decoding")

	// ErrNotRepresentable indicates that a value's natural size cannot be
	// expressed by its length-prefix width, e.g. a byte sequence longer
	// than a 4-byte prefix can state. This is a defect of the value itself,
	// not an environmental condition.
	ErrNotRepresentable = errors.New("serial: length not representable in prefix width")
)
