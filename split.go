package serial

import "fmt"

// SafeSplit splits data into a prefix of exactly n bytes and the remaining
// suffix, as two views over the same memory. It fails with
// ErrEarlyEndOfStream when n exceeds the available bytes, and never panics,
// reads past the end, or allocates.
//
// Every length-prefixed decoder must pass untrusted lengths through here
// before indexing. Centralizing the bounds check means no individual decoder
// can forget it. A negative n is rejected the same way, so lengths that went
// negative through an integer conversion stay harmless.
func SafeSplit(data []byte, n int) (prefix, rest []byte, err error) {
	if n < 0 || n > len(data) {
		return nil, nil, fmt.Errorf("%w: need %d bytes, have %d", ErrEarlyEndOfStream, n, len(data))
	}
	return data[:n:n], data[n:], nil
}
