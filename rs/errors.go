// Package rs implements Reed-Solomon forward error correction over
// GF(2^8) for byte-oriented codewords up to 255 bytes: systematic
// encoding, syndrome-based decoding (Berlekamp-Massey, Chien search,
// Forney's algorithm), and the QR-style strength level table.
package rs

import "errors"

// Errors surfaced by the codec. ErrUncorrectable is the only one a caller
// is expected to handle at runtime; the others signal invalid parameters.
var (
	// ErrDivideByZero reports division by the zero polynomial.
	ErrDivideByZero = errors.New("rs: division by zero polynomial")

	// ErrBadParity reports a non-positive parity byte count.
	ErrBadParity = errors.New("rs: parity byte count must be positive")

	// ErrCodewordTooLong reports message + parity exceeding the 255-byte
	// bound imposed by the 255 non-zero elements of GF(2^8).
	ErrCodewordTooLong = errors.New("rs: codeword exceeds 255 bytes")

	// ErrShortCodeword reports a received codeword shorter than its own
	// parity section.
	ErrShortCodeword = errors.New("rs: codeword shorter than parity length")

	// ErrUncorrectable reports that decoding could not produce a verified
	// correction: the error pattern exceeds capacity or is inconsistent.
	ErrUncorrectable = errors.New("rs: uncorrectable codeword")

	// ErrUnknownLevel reports an unrecognized error-correction level name.
	ErrUnknownLevel = errors.New("rs: unknown error correction level")
)
