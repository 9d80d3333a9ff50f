package serial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oy3o/serial"
	"github.com/oy3o/serial/serialtest"
)

func TestIntegerEncodedForms(t *testing.T) {
	// The wire format is fixed little-endian; these byte patterns are part
	// of the cross-node contract, not an implementation detail.
	cases := []struct {
		name string
		v    serial.Encoder
		want []byte
	}{
		{"U8", serial.U8(0xAA), []byte{0xAA}},
		{"U16", serial.U16(0xBBCC), []byte{0xCC, 0xBB}},
		{"U32", serial.U32(0xDDEEFF00), []byte{0x00, 0xFF, 0xEE, 0xDD}},
		{"U64", serial.U64(0x0102030405060708), []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}},
		{"BoolTrue", serial.Bool(true), []byte{1}},
		{"BoolFalse", serial.Bool(false), []byte{0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.v.ToBytes()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, len(tc.want), tc.v.SerializedLength())
		})
	}
}

func TestIntegerRoundTrip(t *testing.T) {
	for _, v := range []serial.U8{0, 1, 0x7F, 0xFF} {
		serialtest.RoundTrip[serial.U8](t, v)
	}
	for _, v := range []serial.U16{0, 1, 0x8000, 0xFFFF} {
		serialtest.RoundTrip[serial.U16](t, v)
	}
	for _, v := range []serial.U32{0, 1, 0xDEADBEEF, 0xFFFFFFFF} {
		serialtest.RoundTrip[serial.U32](t, v)
	}
	for _, v := range []serial.U64{0, 1, 0xDEADBEEFCAFEBABE, 0xFFFFFFFFFFFFFFFF} {
		serialtest.RoundTrip[serial.U64](t, v)
	}
	serialtest.RoundTrip[serial.Bool](t, serial.Bool(true))
	serialtest.RoundTrip[serial.Bool](t, serial.Bool(false))
}

func TestBoolRejectsNonCanonicalByte(t *testing.T) {
	for _, raw := range []byte{2, 0x7F, 0xFF} {
		var v serial.Bool
		_, err := v.FromBytes([]byte{raw})
		assert.ErrorIs(t, err, serial.ErrFormatting, "byte %#x", raw)
	}
}

func TestDecodeIgnoresMagnitude(t *testing.T) {
	// A fixed-width decoder consumes exactly its width, never more, no
	// matter the value.
	var v serial.U32
	rem, err := v.FromBytes([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x42})
	require.NoError(t, err)
	assert.Equal(t, serial.U32(0xFFFFFFFF), v)
	assert.Equal(t, []byte{0x42}, rem)
}

func TestAppendSplitUint(t *testing.T) {
	buf := serial.AppendUint([]byte{0xEE}, uint32(5), serial.U32SerializedLength)
	assert.Equal(t, []byte{0xEE, 5, 0, 0, 0}, buf)

	v, rem, err := serial.SplitUint[uint32](buf[1:], serial.U32SerializedLength)
	require.NoError(t, err)
	assert.Equal(t, uint32(5), v)
	assert.Empty(t, rem)

	_, _, err = serial.SplitUint[uint64](buf, serial.U64SerializedLength)
	assert.ErrorIs(t, err, serial.ErrEarlyEndOfStream)
}
