package serial

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// DigestLength is the width of a state digest in bytes.
const DigestLength = 32

// Digest is a 32-byte BLAKE2b hash of canonically encoded state. It is
// itself a fixed-width encodable value: exactly 32 raw bytes, no prefix.
type Digest [DigestLength]byte

var _ Codec = (*Digest)(nil)

// DigestFromSlice converts a 32-byte slice into a Digest, failing with
// ErrFormatting for any other length.
func DigestFromSlice(b []byte) (Digest, error) {
	var d Digest
	if len(b) != DigestLength {
		return d, fmt.Errorf("%w: digest must be %d bytes, got %d", ErrFormatting, DigestLength, len(b))
	}
	copy(d[:], b)
	return d, nil
}

// Hex returns the lowercase hex form of the digest.
func (d Digest) Hex() string { return hex.EncodeToString(d[:]) }

func (d Digest) SerializedLength() int { return DigestLength }

func (d Digest) ToBytes() ([]byte, error) {
	out := make([]byte, DigestLength)
	copy(out, d[:])
	return out, nil
}

func (d Digest) IntoBytes() ([]byte, error) { return d.ToBytes() }

func (d *Digest) FromBytes(data []byte) ([]byte, error) {
	raw, rest, err := SafeSplit(data, DigestLength)
	if err != nil {
		return nil, err
	}
	copy(d[:], raw)
	return rest, nil
}

func (d *Digest) FromVec(data []byte) ([]byte, error) { return d.FromBytes(data) }

// HashBytes returns the BLAKE2b-256 digest of data.
func HashBytes(data []byte) Digest {
	return Digest(blake2b.Sum256(data))
}

// HashOf encodes v canonically and hashes the result. Because the encoding
// is canonical, equal values always hash identically across nodes.
func HashOf(v Encoder) (Digest, error) {
	b, err := Serialize(v)
	if err != nil {
		return Digest{}, err
	}
	return HashBytes(b), nil
}
