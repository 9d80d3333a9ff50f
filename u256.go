package serial

import (
	"fmt"

	"github.com/holiman/uint256"
)

// MaxU256SerializedLength is the longest possible U256 encoding: the length
// byte plus all 32 significant bytes.
const MaxU256SerializedLength = 1 + 32

// U256 is an unsigned 256-bit integer with the canonical big-number
// encoding: one byte holding the count of significant bytes, followed by
// that many bytes little-endian, minimal form. Minimality is enforced on
// decode — a trailing zero byte would give the same value two encodings.
type U256 struct {
	inner uint256.Int
}

var _ Codec = (*U256)(nil)

// NewU256 returns the U256 holding v.
func NewU256(v uint64) U256 {
	var n uint256.Int
	n.SetUint64(v)
	return U256{inner: n}
}

// U256FromSlice interprets b as a big-endian unsigned integer of at most 32
// bytes, the conventional byte form of hashes and balances.
func U256FromSlice(b []byte) (U256, error) {
	if len(b) > 32 {
		return U256{}, fmt.Errorf("%w: %d bytes exceed 256 bits", ErrNotRepresentable, len(b))
	}
	var n uint256.Int
	n.SetBytes(b)
	return U256{inner: n}, nil
}

// Uint64 returns the low 64 bits of the value.
func (v U256) Uint64() uint64 { return v.inner.Uint64() }

func (v U256) IsZero() bool { return v.inner.IsZero() }

// Cmp returns -1, 0 or 1 ordering v against other.
func (v U256) Cmp(other U256) int { return v.inner.Cmp(&other.inner) }

func (v U256) String() string { return v.inner.Dec() }

func (v U256) SerializedLength() int {
	return 1 + v.inner.ByteLen()
}

func (v U256) ToBytes() ([]byte, error) {
	be := v.inner.Bytes()
	out := make([]byte, 0, 1+len(be))
	out = append(out, byte(len(be)))
	for i := len(be) - 1; i >= 0; i-- {
		out = append(out, be[i])
	}
	return out, nil
}

func (v U256) IntoBytes() ([]byte, error) { return v.ToBytes() }

func (v *U256) FromBytes(data []byte) ([]byte, error) {
	prefix, rem, err := SafeSplit(data, 1)
	if err != nil {
		return nil, err
	}
	n := int(prefix[0])
	if n > 32 {
		return nil, fmt.Errorf("%w: big integer length byte %d exceeds 32", ErrFormatting, n)
	}
	raw, rem, err := SafeSplit(rem, n)
	if err != nil {
		return nil, err
	}
	if n > 0 && raw[n-1] == 0 {
		return nil, fmt.Errorf("%w: non-minimal big integer encoding", ErrFormatting)
	}
	be := make([]byte, n)
	for i := 0; i < n; i++ {
		be[i] = raw[n-1-i]
	}
	v.inner.SetBytes(be)
	return rem, nil
}

func (v *U256) FromVec(data []byte) ([]byte, error) { return v.FromBytes(data) }
