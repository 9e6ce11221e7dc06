package rs

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncodeSystematic(t *testing.T) {
	c := New()
	msgs := [][]byte{
		[]byte("Hello World"),
		[]byte("x"),
		{0, 0, 0, 0},
		{255, 254, 253},
	}
	for _, msg := range msgs {
		for _, nsym := range []int{2, 8, 16, 32} {
			cw, err := c.Encode(msg, nsym)
			if err != nil {
				t.Fatalf("Encode(%q, %d): %v", msg, nsym, err)
			}
			if len(cw) != len(msg)+nsym {
				t.Fatalf("Encode(%q, %d): codeword length %d, want %d",
					msg, nsym, len(cw), len(msg)+nsym)
			}
			if !bytes.Equal(cw[:len(msg)], msg) {
				t.Fatalf("Encode(%q, %d): codeword prefix %v does not reproduce the message",
					msg, nsym, cw[:len(msg)])
			}
		}
	}
}

func TestEncodeProducesValidCodeword(t *testing.T) {
	// A codeword is valid iff every syndrome is zero.
	c := New()
	msg := []byte("the quick brown fox jumps over the lazy dog")
	for _, nsym := range []int{4, 8, 16, 24, 32} {
		cw, err := c.Encode(msg, nsym)
		if err != nil {
			t.Fatalf("Encode nsym=%d: %v", nsym, err)
		}
		synd := c.syndromes(bytesToPoly(cw), nsym)
		if !allZero(synd) {
			t.Fatalf("nsym=%d: fresh codeword has non-zero syndromes %v", nsym, synd)
		}
	}
}

func TestEncodeHelloWorldLength(t *testing.T) {
	// 11 message bytes + 8 parity bytes (level L) = 19-byte codeword.
	c := New()
	cw, err := c.Encode([]byte("Hello World"), LevelL.ParityBytes())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(cw) != 19 {
		t.Fatalf("codeword length = %d, want 19", len(cw))
	}
}

func TestEncodeEmptyMessage(t *testing.T) {
	c := New()
	cw, err := c.Encode(nil, 8)
	if err != nil {
		t.Fatalf("Encode(nil, 8): %v", err)
	}
	if len(cw) != 8 {
		t.Fatalf("codeword length = %d, want 8", len(cw))
	}
	if !allZero(c.syndromes(bytesToPoly(cw), 8)) {
		t.Fatalf("empty-message codeword has non-zero syndromes")
	}
}

func TestEncodeCodewordTooLong(t *testing.T) {
	c := New()
	msg := make([]byte, 250)
	_, err := c.Encode(msg, 8)
	if !errors.Is(err, ErrCodewordTooLong) {
		t.Fatalf("Encode(250 bytes, 8): err = %v, want ErrCodewordTooLong", err)
	}

	// 247 + 8 = 255 is exactly at the bound and must succeed.
	if _, err := c.Encode(msg[:247], 8); err != nil {
		t.Fatalf("Encode(247 bytes, 8): %v", err)
	}
}

func TestEncodeBadParity(t *testing.T) {
	c := New()
	for _, nsym := range []int{0, -1, -8} {
		if _, err := c.Encode([]byte("abc"), nsym); !errors.Is(err, ErrBadParity) {
			t.Fatalf("Encode(msg, %d): err = %v, want ErrBadParity", nsym, err)
		}
	}
}

func TestGeneratorPolynomial(t *testing.T) {
	c := New()
	for _, nsym := range []int{1, 2, 8, 16} {
		gen := c.generator(nsym)
		if len(gen) != nsym+1 {
			t.Fatalf("generator(%d) has %d coefficients, want %d", nsym, len(gen), nsym+1)
		}
		if gen[nsym] != 1 {
			t.Fatalf("generator(%d) is not monic: leading coefficient %d", nsym, gen[nsym])
		}
		// g(a^i) = 0 for every i < nsym, and non-zero just past the roots.
		for i := 0; i < nsym; i++ {
			if got := polyEval(c.field, gen, c.field.Exp(i)); got != 0 {
				t.Fatalf("generator(%d) evaluated at a^%d = %d, want 0", nsym, i, got)
			}
		}
		if got := polyEval(c.field, gen, c.field.Exp(nsym)); got == 0 {
			t.Fatalf("generator(%d) unexpectedly vanishes at a^%d", nsym, nsym)
		}
	}
}

func TestGeneratorCacheReuse(t *testing.T) {
	c := New()
	g1 := c.generator(8)
	g2 := c.generator(8)
	if &g1[0] != &g2[0] {
		t.Fatalf("generator(8) rebuilt instead of reusing the cached polynomial")
	}
}

func TestMaxCorrectable(t *testing.T) {
	cases := []struct{ nsym, want int }{
		{0, 0}, {1, 0}, {2, 1}, {7, 3}, {8, 4}, {16, 8}, {24, 12}, {32, 16}, {-4, 0},
	}
	for _, tc := range cases {
		if got := MaxCorrectable(tc.nsym); got != tc.want {
			t.Errorf("MaxCorrectable(%d) = %d, want %d", tc.nsym, got, tc.want)
		}
	}
}
