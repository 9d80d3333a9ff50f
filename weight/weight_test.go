package weight_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oy3o/serial/serialtest"
	"github.com/oy3o/serial/weight"
)

func TestArithmetic(t *testing.T) {
	a := weight.New(10)
	b := weight.New(3)

	assert.Equal(t, weight.New(13), a.Add(b))
	assert.Equal(t, weight.New(7), a.Sub(b))
	assert.Equal(t, weight.New(30), a.Mul(3))
	assert.Equal(t, weight.New(3), a.Div(3))
	assert.Equal(t, uint64(10), a.Uint64())
	assert.True(t, weight.New(0).IsZero())
	assert.False(t, a.IsZero())
}

func TestCheckedArithmetic(t *testing.T) {
	max := weight.New(math.MaxUint64)

	sum, ok := max.CheckedAdd(weight.New(1))
	assert.False(t, ok)
	assert.Equal(t, weight.New(0), sum)

	sum, ok = weight.New(1).CheckedAdd(weight.New(2))
	assert.True(t, ok)
	assert.Equal(t, weight.New(3), sum)

	diff, ok := weight.New(1).CheckedSub(weight.New(2))
	assert.False(t, ok)
	_ = diff

	diff, ok = weight.New(5).CheckedSub(weight.New(2))
	assert.True(t, ok)
	assert.Equal(t, weight.New(3), diff)
}

func TestMulDiv(t *testing.T) {
	// Two thirds of the total weight, computed without overflowing even
	// when the product exceeds 64 bits.
	total := weight.New(math.MaxUint64)
	q, ok := total.MulDiv(2, 3)
	assert.True(t, ok)
	assert.Equal(t, uint64(math.MaxUint64)/3*2, q.Uint64())

	_, ok = total.MulDiv(2, 1)
	assert.False(t, ok, "quotient exceeding 64 bits must be flagged")

	_, ok = total.MulDiv(1, 0)
	assert.False(t, ok, "division by zero must be flagged, not panic")
}

func TestSum(t *testing.T) {
	ws := []weight.Weight{1, 2, 3, 4}
	assert.Equal(t, weight.New(10), weight.Sum(ws))
	assert.Equal(t, weight.New(0), weight.Sum(nil))
}

func TestSerialization(t *testing.T) {
	for _, w := range []weight.Weight{0, 1, math.MaxUint64} {
		serialtest.RoundTrip[weight.Weight](t, w)
	}
}
