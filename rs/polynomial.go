// polynomial.go implements polynomial arithmetic over GF(2^8) for the
// Reed-Solomon encoder and decoder. Polynomials are plain byte slices
// with coefficient index 0 holding the constant term (lowest degree
// first); the byte-sequence convention at the codec API boundary is the
// reverse, with byte 0 holding the highest-degree coefficient.
//
// All operations are pure functions of a Field and their operands; none
// mutates its inputs or touches shared state.
package rs

import "fmt"

// polyDegree returns the degree of p: the index of the highest non-zero
// coefficient, or -1 for a zero or empty polynomial.
func polyDegree(p []byte) int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != 0 {
			return i
		}
	}
	return -1
}

// polyTrim drops high-order zero coefficients, returning the canonical
// form of p. The zero polynomial is represented as a single zero byte.
func polyTrim(p []byte) []byte {
	deg := polyDegree(p)
	if deg < 0 {
		return []byte{0}
	}
	return p[:deg+1]
}

// polyAdd returns p + q, padding the shorter operand with high-order
// zeros. Addition in characteristic 2 is element-wise XOR.
func polyAdd(p, q []byte) []byte {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	out := make([]byte, n)
	copy(out, p)
	for i, c := range q {
		out[i] ^= c
	}
	return out
}

// polyScale returns p with every coefficient multiplied by c.
func polyScale(f *Field, p []byte, c byte) []byte {
	out := make([]byte, len(p))
	for i, v := range p {
		out[i] = f.Mul(v, c)
	}
	return out
}

// polyMul returns the product p * q: a convolution over the field with
// degree deg(p) + deg(q).
func polyMul(f *Field, p, q []byte) []byte {
	if len(p) == 0 || len(q) == 0 {
		return []byte{0}
	}
	out := make([]byte, len(p)+len(q)-1)
	for i, a := range p {
		if a == 0 {
			continue
		}
		for j, b := range q {
			out[i+j] ^= f.Mul(a, b)
		}
	}
	return out
}

// polyEval evaluates p at x using Horner's method.
func polyEval(f *Field, p []byte, x byte) byte {
	if len(p) == 0 {
		return 0
	}
	acc := p[len(p)-1]
	for i := len(p) - 2; i >= 0; i-- {
		acc = f.Mul(acc, x) ^ p[i]
	}
	return acc
}

// polyDivmod divides dividend by divisor over GF(2^8), returning the
// quotient and remainder. Dividing by the zero polynomial returns
// ErrDivideByZero.
func polyDivmod(f *Field, dividend, divisor []byte) (quot, rem []byte, err error) {
	dDeg := polyDegree(divisor)
	if dDeg < 0 {
		return nil, nil, fmt.Errorf("%w: zero divisor of length %d", ErrDivideByZero, len(divisor))
	}

	aDeg := polyDegree(dividend)
	if aDeg < dDeg {
		out := make([]byte, len(dividend))
		copy(out, dividend)
		return []byte{0}, polyTrim(out), nil
	}

	work := make([]byte, len(dividend))
	copy(work, dividend)

	quot = make([]byte, aDeg-dDeg+1)
	lead := divisor[dDeg]

	for i := aDeg; i >= dDeg; i-- {
		if work[i] == 0 {
			continue
		}
		coeff := f.Div(work[i], lead)
		quot[i-dDeg] = coeff
		for j := 0; j <= dDeg; j++ {
			work[i-dDeg+j] ^= f.Mul(coeff, divisor[j])
		}
	}

	return quot, polyTrim(work[:dDeg]), nil
}

// formalDerivative computes d/dx of p over GF(2^8). In characteristic 2
// the even-degree terms vanish and the odd-degree terms survive:
//
//	d/dx (a0 + a1*x + a2*x^2 + a3*x^3 + ...) = a1 + a3*x^2 + ...
func formalDerivative(p []byte) []byte {
	if len(p) <= 1 {
		return []byte{0}
	}
	out := make([]byte, len(p)-1)
	for i := 1; i < len(p); i += 2 {
		out[i-1] = p[i]
	}
	return out
}
