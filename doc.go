// Package serial implements the canonical binary encoding used to turn
// typed values into byte sequences and back, for hashing and for exchange
// over the network or persisted storage.
//
// The encoding is deterministic and self-describing only in length: equal
// values always produce byte-identical encodings, and every variable-length
// value carries a fixed-width length prefix so a decoder knows exactly how
// many bytes belong to it. There are no embedded type tags; the caller must
// know which decoder to invoke.
//
// Decoders consume a prefix of their input and return the unconsumed
// remainder, which lets composite structures decode a sequence of
// heterogeneous values from one contiguous buffer. Decoding never panics:
// malformed or truncated input, which must be assumed adversarial, always
// yields a typed error. Every bounds check routes through SafeSplit so a
// new decoder cannot forget it.
package serial
