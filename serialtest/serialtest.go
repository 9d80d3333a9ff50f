// Package serialtest provides the shared assertion harness for types that
// implement the serial encoding contracts. Every encodable type's tests run
// the same property set through RoundTrip: round-trip identity, declared
// length accuracy, remainder preservation, truncation safety, and agreement
// between the owned and borrowed decode paths.
package serialtest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oy3o/serial"
)

// arbitrary trailing bytes appended when checking remainder preservation.
var suffix = []byte{0xA5, 0x5A, 0xFF, 0x00, 0x42}

// RoundTrip asserts the full contract property set for a single value.
// T must implement serial.Encoder on its value receiver and serial.Decoder
// on its pointer receiver, and must be comparable by require.Equal.
func RoundTrip[T serial.Encoder, PT interface {
	*T
	serial.Decoder
}](t testing.TB, v T) {
	t.Helper()

	enc, err := v.ToBytes()
	require.NoError(t, err, "ToBytes")

	// Length accuracy: the declared length is the encoded length, exactly.
	require.Equal(t, v.SerializedLength(), len(enc), "SerializedLength disagrees with ToBytes")

	// IntoBytes is an ownership optimization, never a different format.
	into, err := v.IntoBytes()
	require.NoError(t, err, "IntoBytes")
	require.Equal(t, enc, into, "IntoBytes disagrees with ToBytes")

	// Remainder preservation: decoding encode(v)++s yields (v, s).
	buf := make([]byte, 0, len(enc)+len(suffix))
	buf = append(buf, enc...)
	buf = append(buf, suffix...)
	var out T
	rem, err := PT(&out).FromBytes(buf)
	require.NoError(t, err, "FromBytes")
	require.Equal(t, v, out, "round-trip changed the value")
	require.Equal(t, suffix, rem, "remainder not preserved")

	// The owned decode path must agree with the borrowed one.
	var owned T
	rem, err = PT(&owned).FromVec(append([]byte(nil), enc...))
	require.NoError(t, err, "FromVec")
	require.Equal(t, v, owned, "FromVec disagrees with FromBytes")
	require.Empty(t, rem, "FromVec left a remainder on an exact buffer")

	// Truncation safety: every strict prefix fails with stream exhaustion
	// and never panics.
	for k := 0; k < len(enc); k++ {
		var tr T
		_, err := PT(&tr).FromBytes(enc[:k])
		require.ErrorIs(t, err, serial.ErrEarlyEndOfStream, "truncation at %d bytes", k)
	}
}
