// Package corrupt simulates transmission errors on encoded codewords.
// It mutates a copy of the input at randomly chosen distinct byte
// positions and reports exactly what changed, so the caller can display
// the damage; the decoder itself never sees the change report.
//
// Two channel models are provided: discrete random byte flips (XOR) and
// an AWGN-like model that adds clipped Gaussian noise to byte values.
package corrupt

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
)

var (
	// ErrInvalidCount reports a corruption count that is negative or
	// larger than the codeword.
	ErrInvalidCount = errors.New("corrupt: invalid corruption count")

	// ErrUnknownMode reports an unrecognized corruption model name.
	ErrUnknownMode = errors.New("corrupt: unknown corruption mode")
)

// Mode selects the corruption channel model.
type Mode int

const (
	// ModeXOR flips each chosen byte with a random non-zero XOR mask,
	// guaranteeing the byte actually changes.
	ModeXOR Mode = iota

	// ModeAWGN adds a Gaussian noise sample to each chosen byte and
	// clips the result to [0, 255]. Small noise may round to zero and
	// leave the byte unchanged; that is part of the model.
	ModeAWGN
)

// ParseMode resolves a mode name. "xor"/"awgn" are canonical; "1"/"2"
// are accepted as the historical menu aliases.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "xor", "1":
		return ModeXOR, nil
	case "awgn", "2":
		return ModeAWGN, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// String returns the canonical mode name.
func (m Mode) String() string {
	switch m {
	case ModeXOR:
		return "xor"
	case ModeAWGN:
		return "awgn"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Change records a single corrupted byte, for display only.
type Change struct {
	Pos      int  // byte position in the codeword
	Original byte // value before corruption
	New      byte // value after corruption

	// XorMask is the flip pattern applied in ModeXOR; zero otherwise.
	XorMask byte

	// Noise is the Gaussian sample added in ModeAWGN; zero otherwise.
	Noise float64
}

// Apply corrupts n distinct random positions of cw under the given mode
// and returns the corrupted copy together with the per-byte change
// report, sorted by position. sigma is the noise standard deviation and
// is only consulted in ModeAWGN. The input slice is never mutated.
//
// A nil rng falls back to an unseeded source; tests pass a seeded one
// for determinism.
func Apply(cw []byte, n int, mode Mode, sigma float64, rng *rand.Rand) ([]byte, []Change, error) {
	if n < 0 || n > len(cw) {
		return nil, nil, fmt.Errorf("%w: %d of %d bytes", ErrInvalidCount, n, len(cw))
	}
	if mode != ModeXOR && mode != ModeAWGN {
		return nil, nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	out := make([]byte, len(cw))
	copy(out, cw)
	if n == 0 {
		return out, nil, nil
	}

	positions := rng.Perm(len(cw))[:n]
	sort.Ints(positions)

	changes := make([]Change, 0, n)
	for _, pos := range positions {
		ch := Change{Pos: pos, Original: out[pos]}
		switch mode {
		case ModeXOR:
			ch.XorMask = byte(1 + rng.Intn(255)) // non-zero, guarantees a change
			out[pos] ^= ch.XorMask
		case ModeAWGN:
			ch.Noise = rng.NormFloat64() * sigma
			noisy := math.Round(float64(ch.Original) + ch.Noise)
			out[pos] = byte(math.Max(0, math.Min(255, noisy)))
		}
		ch.New = out[pos]
		changes = append(changes, ch)
	}

	return out, changes, nil
}
