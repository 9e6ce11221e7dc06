// encoder.go implements systematic Reed-Solomon encoding over GF(2^8).
// The codeword is the original message followed by nsym parity bytes,
// computed as the remainder of m(x) * x^nsym divided by the generator
// polynomial g(x) = (x - a^0)(x - a^1)...(x - a^{nsym-1}).
package rs

import (
	"fmt"
	"sync"
)

// MaxCodewordLen is the longest codeword (message + parity) GF(2^8)
// supports: the field has only 255 non-zero elements, so each codeword
// position needs a distinct power of the primitive element.
const MaxCodewordLen = 255

// Codec performs Reed-Solomon encoding and decoding over a shared Field.
// A single Codec is safe for concurrent use; each call operates on its
// own polynomials, and the generator cache is guarded.
type Codec struct {
	field *Field

	mu         sync.Mutex
	generators map[int][]byte // nsym -> generator polynomial, lowest degree first
}

// New returns a Codec backed by the process-wide default field.
func New() *Codec {
	return NewWithField(DefaultField())
}

// NewWithField returns a Codec backed by the given field. Passing a
// dedicated field keeps independent codec instances fully isolated,
// which matters mostly under test.
func NewWithField(f *Field) *Codec {
	return &Codec{
		field:      f,
		generators: make(map[int][]byte),
	}
}

// generator returns the cached generator polynomial for nsym parity
// bytes, building and caching it on first use. The polynomial is a pure
// function of nsym:
//
//	g(x) = prod_{i=0}^{nsym-1} (x - a^i)
//
// with coefficients lowest degree first and a monic leading term.
func (c *Codec) generator(nsym int) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()

	if g, ok := c.generators[nsym]; ok {
		return g
	}

	gen := []byte{1}
	for i := 0; i < nsym; i++ {
		// (x - a^i) = (a^i + x) in characteristic 2.
		gen = polyMul(c.field, gen, []byte{c.field.Exp(i), 1})
	}
	c.generators[nsym] = gen
	return gen
}

// Encode appends nsym Reed-Solomon parity bytes to msg and returns the
// resulting codeword. Encoding is systematic: the first len(msg) bytes
// of the codeword are msg verbatim, which is what lets Decode hand back
// the exact original bytes.
//
// The correction capacity of the resulting codeword is nsym/2 byte
// errors at unknown positions.
func (c *Codec) Encode(msg []byte, nsym int) ([]byte, error) {
	if nsym < 1 {
		return nil, fmt.Errorf("%w: nsym=%d", ErrBadParity, nsym)
	}
	n := len(msg) + nsym
	if n > MaxCodewordLen {
		return nil, fmt.Errorf("%w: %d message + %d parity bytes", ErrCodewordTooLong, len(msg), nsym)
	}

	// Treat the message as the high-order coefficients of a polynomial
	// shifted up by nsym: byte i of the codeword is the coefficient of
	// x^(n-1-i).
	shifted := make([]byte, n)
	for i, b := range msg {
		shifted[n-1-i] = b
	}

	_, remainder, err := polyDivmod(c.field, shifted, c.generator(nsym))
	if err != nil {
		return nil, err
	}

	// remainder has degree < nsym; zero-pad the missing high coefficients.
	cw := make([]byte, n)
	copy(cw, msg)
	for t := 0; t < nsym; t++ {
		if j := nsym - 1 - t; j < len(remainder) {
			cw[len(msg)+t] = remainder[j]
		}
	}
	return cw, nil
}

// MaxCorrectable returns the number of byte errors a codeword with nsym
// parity bytes can correct at unknown positions: nsym / 2.
func MaxCorrectable(nsym int) int {
	if nsym < 0 {
		return 0
	}
	return nsym / 2
}
