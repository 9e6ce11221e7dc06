// decoder.go implements syndrome-based Reed-Solomon error correction:
// syndrome computation, the Berlekamp-Massey error locator derivation,
// Chien search for error positions, and Forney's algorithm for error
// magnitudes, followed by a mandatory re-verification of the corrected
// codeword.
//
// Reference: Blahut, "Theory and Practice of Error Control Codes" (1983)
package rs

import "fmt"

// Decode corrects up to nsym/2 byte errors in received and returns the
// recovered message (the leading len(received)-nsym bytes). The input
// slice is never mutated.
//
// ErrUncorrectable is returned when the error pattern exceeds capacity
// or produces an inconsistent correction: the locator degree exceeds
// nsym/2, the Chien search root count does not match the locator degree,
// or the corrected codeword still has non-zero syndromes. Decode never
// returns a partially corrected result.
func (c *Codec) Decode(received []byte, nsym int) ([]byte, error) {
	if nsym < 1 {
		return nil, fmt.Errorf("%w: nsym=%d", ErrBadParity, nsym)
	}
	if len(received) > MaxCodewordLen {
		return nil, fmt.Errorf("%w: %d bytes received", ErrCodewordTooLong, len(received))
	}
	if len(received) < nsym {
		return nil, fmt.Errorf("%w: %d bytes received, %d parity", ErrShortCodeword, len(received), nsym)
	}

	n := len(received)
	k := n - nsym

	poly := bytesToPoly(received)
	synd := c.syndromes(poly, nsym)
	if allZero(synd) {
		// Clean pass: no detectable error.
		msg := make([]byte, k)
		copy(msg, received)
		return msg, nil
	}

	locator := c.errorLocator(synd)
	degree := len(locator) - 1
	if degree > nsym/2 {
		return nil, fmt.Errorf("%w: locator degree %d exceeds capacity %d", ErrUncorrectable, degree, nsym/2)
	}

	positions := c.chienSearch(locator, n)
	if len(positions) != degree {
		return nil, fmt.Errorf("%w: %d locator roots found, degree %d", ErrUncorrectable, len(positions), degree)
	}

	magnitudes, err := c.errorMagnitudes(synd, locator, positions)
	if err != nil {
		return nil, err
	}

	corrected := make([]byte, n)
	copy(corrected, received)
	for i, pos := range positions {
		// pos is a coefficient index; byte order is reversed.
		corrected[n-1-pos] ^= magnitudes[i]
	}

	// Verification pass: a correction that does not produce a valid
	// codeword is reported, never silently accepted.
	if !allZero(c.syndromes(bytesToPoly(corrected), nsym)) {
		return nil, fmt.Errorf("%w: syndromes non-zero after correction", ErrUncorrectable)
	}

	return corrected[:k], nil
}

// syndromes evaluates the received polynomial at a^0 .. a^{nsym-1}.
// All-zero syndromes mean no detected error (which does not rule out a
// pattern beyond the detection guarantee).
func (c *Codec) syndromes(poly []byte, nsym int) []byte {
	out := make([]byte, nsym)
	for i := 0; i < nsym; i++ {
		out[i] = polyEval(c.field, poly, c.field.Exp(i))
	}
	return out
}

// errorLocator derives the error locator polynomial Lambda(x) from the
// syndromes via Berlekamp-Massey. The loop carries its state (current
// locator, shifted previous locator) explicitly; one iteration per
// syndrome. The result is trimmed, lowest degree first, with
// Lambda(0) = 1, and its roots' reciprocals mark the error positions.
func (c *Codec) errorLocator(synd []byte) []byte {
	f := c.field

	locator := []byte{1}
	prev := []byte{1}

	for i := 0; i < len(synd); i++ {
		// Discrepancy between the syndrome sequence and the current
		// locator's prediction of it.
		delta := synd[i]
		for j := 1; j < len(locator); j++ {
			if i-j >= 0 {
				delta ^= f.Mul(locator[j], synd[i-j])
			}
		}

		// Shift the previous locator: multiply by x.
		prev = append([]byte{0}, prev...)

		if delta == 0 {
			continue
		}
		if len(prev) > len(locator) {
			// The locator is too short to explain the sequence; swap in
			// the shifted previous locator as the new baseline.
			next := polyScale(f, prev, delta)
			prev = polyScale(f, locator, f.Inv(delta))
			locator = next
		}
		locator = polyAdd(locator, polyScale(f, prev, delta))
	}

	return polyTrim(locator)
}

// chienSearch evaluates Lambda at a^{-pos} for every codeword position
// and returns the coefficient positions where it vanishes, i.e. the
// error locations.
func (c *Codec) chienSearch(locator []byte, n int) []int {
	var positions []int
	for pos := 0; pos < n; pos++ {
		if polyEval(c.field, locator, c.field.Exp(-pos)) == 0 {
			positions = append(positions, pos)
		}
	}
	return positions
}

// errorMagnitudes computes the error value at each located position via
// Forney's algorithm. With the error evaluator
//
//	Omega(x) = S(x) * Lambda(x) mod x^nsym
//
// the magnitude at position j is X_j * Omega(X_j^{-1}) / Lambda'(X_j^{-1}),
// where X_j = a^j and Lambda' is the formal derivative (negation is the
// identity in characteristic 2).
func (c *Codec) errorMagnitudes(synd, locator []byte, positions []int) ([]byte, error) {
	f := c.field

	omega := polyMul(f, synd, locator)
	if len(omega) > len(synd) {
		omega = omega[:len(synd)]
	}
	derivative := formalDerivative(locator)

	out := make([]byte, len(positions))
	for i, pos := range positions {
		xInv := f.Exp(-pos)
		den := polyEval(f, derivative, xInv)
		if den == 0 {
			return nil, fmt.Errorf("%w: degenerate locator derivative at position %d", ErrUncorrectable, pos)
		}
		num := polyEval(f, omega, xInv)
		out[i] = f.Mul(f.Exp(pos), f.Div(num, den))
	}
	return out, nil
}

// bytesToPoly reverses a codeword byte sequence into lowest-degree-first
// polynomial coefficients: byte 0 is the highest-degree term.
func bytesToPoly(cw []byte) []byte {
	out := make([]byte, len(cw))
	for i, b := range cw {
		out[len(cw)-1-i] = b
	}
	return out
}

func allZero(p []byte) bool {
	for _, v := range p {
		if v != 0 {
			return false
		}
	}
	return true
}
