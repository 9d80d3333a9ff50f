// Package weight provides the vote-weight arithmetic used by the consensus
// protocol. A Weight is a plain unsigned 64-bit quantity; the interesting
// operations are the ones that widen to 128 bits so that ratio computations
// over the total validator weight cannot overflow midway.
package weight

import (
	"math"
	"math/bits"

	"github.com/oy3o/serial"
)

// Weight is a vote weight.
type Weight uint64

var _ serial.Codec = (*Weight)(nil)

// New returns the weight holding v.
func New(v uint64) Weight { return Weight(v) }

// Uint64 returns the underlying value.
func (w Weight) Uint64() uint64 { return uint64(w) }

// IsZero reports whether the weight is zero.
func (w Weight) IsZero() bool { return w == 0 }

// Add returns w+other with native wrap-around semantics, matching how
// per-era weights are summed. Use CheckedAdd where overflow must be caught.
func (w Weight) Add(other Weight) Weight { return w + other }

// Sub returns w-other with native wrap-around semantics.
func (w Weight) Sub(other Weight) Weight { return w - other }

// CheckedAdd returns w+other and reports whether the sum fit in 64 bits.
func (w Weight) CheckedAdd(other Weight) (Weight, bool) {
	sum, carry := bits.Add64(uint64(w), uint64(other), 0)
	return Weight(sum), carry == 0
}

// CheckedSub returns w-other and reports whether the difference was
// non-negative.
func (w Weight) CheckedSub(other Weight) (Weight, bool) {
	diff, borrow := bits.Sub64(uint64(w), uint64(other), 0)
	return Weight(diff), borrow == 0
}

// Mul returns w scaled by n.
func (w Weight) Mul(n uint64) Weight { return Weight(uint64(w) * n) }

// Div returns w divided by n. n must be non-zero.
func (w Weight) Div(n uint64) Weight { return Weight(uint64(w) / n) }

// MulDiv returns w*num/den with the product computed in 128 bits, so the
// intermediate cannot overflow. It reports ok=false when den is zero or the
// quotient itself does not fit in 64 bits; the returned weight saturates to
// the maximum in that case.
func (w Weight) MulDiv(num, den uint64) (Weight, bool) {
	hi, lo := bits.Mul64(uint64(w), num)
	if den == 0 || hi >= den {
		return Weight(math.MaxUint64), false
	}
	quo, _ := bits.Div64(hi, lo, den)
	return Weight(quo), true
}

// Sum totals a set of weights with native wrap-around semantics.
func Sum(ws []Weight) Weight {
	var total Weight
	for _, w := range ws {
		total += w
	}
	return total
}

func (w Weight) SerializedLength() int { return serial.U64SerializedLength }

func (w Weight) ToBytes() ([]byte, error) { return serial.U64(w).ToBytes() }

func (w Weight) IntoBytes() ([]byte, error) { return w.ToBytes() }

func (w *Weight) FromBytes(data []byte) ([]byte, error) {
	var v serial.U64
	rem, err := v.FromBytes(data)
	if err != nil {
		return nil, err
	}
	*w = Weight(v)
	return rem, nil
}

func (w *Weight) FromVec(data []byte) ([]byte, error) { return w.FromBytes(data) }
