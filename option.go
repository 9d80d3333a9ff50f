package serial

import "fmt"

// Tag bytes for optional values. Anything else is rejected on decode.
const (
	OptionNoneTag byte = 0
	OptionSomeTag byte = 1
)

// OptionSerializedLength returns the encoded length of an optional value:
// one tag byte, plus the value's encoding when present. Absence is modelled
// as a nil pointer.
func OptionSerializedLength[T Sizer](v *T) int {
	if v == nil {
		return 1
	}
	return 1 + (*v).SerializedLength()
}

// OptionToBytes encodes an optional value as a tag byte (0 absent, 1
// present) followed by the value's encoding when present.
func OptionToBytes[T Encoder](v *T) ([]byte, error) {
	if v == nil {
		return []byte{OptionNoneTag}, nil
	}
	body, err := (*v).ToBytes()
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, 1+len(body))
	out = append(out, OptionSomeTag)
	return append(out, body...), nil
}

// OptionFromBytes decodes an optional value of type T, returning nil for the
// absent tag. A tag byte other than 0 or 1 fails with ErrFormatting.
func OptionFromBytes[T any, PT interface {
	*T
	Decoder
}](data []byte) (*T, []byte, error) {
	tag, rem, err := SafeSplit(data, 1)
	if err != nil {
		return nil, nil, err
	}
	switch tag[0] {
	case OptionNoneTag:
		return nil, rem, nil
	case OptionSomeTag:
		var v T
		rem, err = PT(&v).FromBytes(rem)
		if err != nil {
			return nil, nil, err
		}
		return &v, rem, nil
	default:
		return nil, nil, fmt.Errorf("%w: option tag %#x", ErrFormatting, tag[0])
	}
}
