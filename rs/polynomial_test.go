package rs

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
)

func TestPolyDegreeAndTrim(t *testing.T) {
	cases := []struct {
		in   []byte
		deg  int
		trim []byte
	}{
		{[]byte{0}, -1, []byte{0}},
		{[]byte{0, 0, 0}, -1, []byte{0}},
		{[]byte{5}, 0, []byte{5}},
		{[]byte{1, 2, 0, 0}, 1, []byte{1, 2}},
		{[]byte{0, 0, 7}, 2, []byte{0, 0, 7}},
		{nil, -1, []byte{0}},
	}
	for _, tc := range cases {
		if got := polyDegree(tc.in); got != tc.deg {
			t.Errorf("polyDegree(%v) = %d, want %d", tc.in, got, tc.deg)
		}
		if got := polyTrim(tc.in); !bytes.Equal(got, tc.trim) {
			t.Errorf("polyTrim(%v) = %v, want %v", tc.in, got, tc.trim)
		}
	}
}

func TestPolyAddPadsShorter(t *testing.T) {
	got := polyAdd([]byte{1, 2, 3}, []byte{4})
	want := []byte{5, 2, 3}
	if !bytes.Equal(got, want) {
		t.Fatalf("polyAdd = %v, want %v", got, want)
	}

	// Addition is XOR, so p + p = 0.
	p := []byte{9, 8, 7, 6}
	if got := polyAdd(p, p); polyDegree(got) != -1 {
		t.Fatalf("polyAdd(p, p) = %v, want all zero", got)
	}
}

func TestPolyMulKnown(t *testing.T) {
	f := NewField()

	// (1 + x)^2 = 1 + x^2 in characteristic 2.
	got := polyMul(f, []byte{1, 1}, []byte{1, 1})
	want := []byte{1, 0, 1}
	if !bytes.Equal(got, want) {
		t.Fatalf("(1+x)^2 = %v, want %v", got, want)
	}

	// Multiplying by the zero polynomial stays zero.
	if got := polyMul(f, []byte{3, 7}, []byte{0}); polyDegree(got) != -1 {
		t.Fatalf("p * 0 = %v, want zero polynomial", got)
	}

	// Degree adds.
	got = polyMul(f, []byte{1, 0, 2}, []byte{5, 1})
	if len(got) != 4 {
		t.Fatalf("deg-2 * deg-1 product has %d coefficients, want 4", len(got))
	}
}

func TestPolyScale(t *testing.T) {
	f := NewField()
	p := []byte{1, 2, 3}
	got := polyScale(f, p, 2)
	want := []byte{2, 4, 6}
	if !bytes.Equal(got, want) {
		t.Fatalf("polyScale(%v, 2) = %v, want %v", p, got, want)
	}
	if got := polyScale(f, p, 0); polyDegree(got) != -1 {
		t.Fatalf("polyScale by 0 = %v, want zero polynomial", got)
	}
}

func TestPolyEvalHorner(t *testing.T) {
	f := NewField()

	// p(x) = 1 + x^2: p(2) = 1 ^ 4 = 5 over GF(2^8).
	p := []byte{1, 0, 1}
	if got := polyEval(f, p, 2); got != 5 {
		t.Fatalf("p(2) = %d, want 5", got)
	}
	// p(0) is the constant term.
	if got := polyEval(f, p, 0); got != 1 {
		t.Fatalf("p(0) = %d, want 1", got)
	}
	// p(1) is the XOR of all coefficients.
	if got := polyEval(f, []byte{3, 5, 6}, 1); got != 3^5^6 {
		t.Fatalf("p(1) = %d, want %d", got, 3^5^6)
	}
}

func TestPolyDivmodIdentity(t *testing.T) {
	f := NewField()
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		dividend := randomPoly(rng, 1+rng.Intn(30))
		divisor := randomPoly(rng, 1+rng.Intn(10))
		if polyDegree(divisor) < 0 {
			divisor[len(divisor)-1] = 1
		}

		quot, rem, err := polyDivmod(f, dividend, divisor)
		if err != nil {
			t.Fatalf("trial %d: polyDivmod error: %v", trial, err)
		}
		if polyDegree(rem) >= polyDegree(divisor) {
			t.Fatalf("trial %d: remainder degree %d >= divisor degree %d",
				trial, polyDegree(rem), polyDegree(divisor))
		}

		// dividend == quot*divisor + rem.
		recon := polyAdd(polyMul(f, quot, divisor), rem)
		if !bytes.Equal(polyTrim(recon), polyTrim(dividend)) {
			t.Fatalf("trial %d: reconstruction mismatch:\n got %v\nwant %v",
				trial, polyTrim(recon), polyTrim(dividend))
		}
	}
}

func TestPolyDivmodByZero(t *testing.T) {
	f := NewField()
	_, _, err := polyDivmod(f, []byte{1, 2, 3}, []byte{0, 0})
	if !errors.Is(err, ErrDivideByZero) {
		t.Fatalf("polyDivmod by zero polynomial: err = %v, want ErrDivideByZero", err)
	}
}

func TestFormalDerivative(t *testing.T) {
	cases := []struct {
		in, want []byte
	}{
		// d/dx (a0 + a1 x + a2 x^2 + a3 x^3) = a1 + a3 x^2 in char 2.
		{[]byte{10, 20, 30, 40}, []byte{20, 0, 40}},
		{[]byte{1, 7}, []byte{7}},
		{[]byte{9}, []byte{0}},
		{[]byte{0}, []byte{0}},
	}
	for _, tc := range cases {
		if got := formalDerivative(tc.in); !bytes.Equal(got, tc.want) {
			t.Errorf("formalDerivative(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func randomPoly(rng *rand.Rand, n int) []byte {
	p := make([]byte, n)
	rng.Read(p)
	return p
}
