package serial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oy3o/serial"
	"github.com/oy3o/serial/serialtest"
)

// A simple fixed-size struct exercising the generic adapter.
type handshake struct {
	ID   uint32
	Data [4]byte
}

func TestFixedEncodedForm(t *testing.T) {
	c := &serial.Fixed[handshake]{Payload: handshake{ID: 0xDEADBEEF, Data: [4]byte{1, 2, 3, 4}}}
	assert.Equal(t, 8, c.SerializedLength())

	enc, err := c.ToBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xEF, 0xBE, 0xAD, 0xDE, 1, 2, 3, 4}, enc)
}

func TestFixedRoundTrip(t *testing.T) {
	serialtest.RoundTrip[serial.Fixed[handshake]](t, serial.Fixed[handshake]{
		Payload: handshake{ID: 7, Data: [4]byte{9, 8, 7, 6}},
	})
}

func TestFixedSizeIsCached(t *testing.T) {
	a := &serial.Fixed[handshake]{}
	b := &serial.Fixed[handshake]{}
	assert.Equal(t, a.SerializedLength(), b.SerializedLength())
}

func TestFixedRejectsVariableSizePayload(t *testing.T) {
	type bad struct{ S []byte }
	c := &serial.Fixed[bad]{}
	_, err := c.ToBytes()
	assert.ErrorIs(t, err, serial.ErrNotRepresentable)

	_, err = c.FromBytes([]byte{1, 2, 3})
	assert.ErrorIs(t, err, serial.ErrNotRepresentable)
}

func TestFixedTruncation(t *testing.T) {
	var c serial.Fixed[handshake]
	_, err := c.FromBytes([]byte{1, 2, 3})
	assert.ErrorIs(t, err, serial.ErrEarlyEndOfStream)
}
