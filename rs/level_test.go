package rs

import (
	"errors"
	"testing"
)

func TestLevelParityTable(t *testing.T) {
	cases := []struct {
		level  Level
		parity int
		maxFix int
		name   string
	}{
		{LevelL, 8, 4, "L"},
		{LevelM, 16, 8, "M"},
		{LevelQ, 24, 12, "Q"},
		{LevelH, 32, 16, "H"},
	}
	for _, tc := range cases {
		if got := tc.level.ParityBytes(); got != tc.parity {
			t.Errorf("%s.ParityBytes() = %d, want %d", tc.name, got, tc.parity)
		}
		if got := tc.level.MaxCorrectable(); got != tc.maxFix {
			t.Errorf("%s.MaxCorrectable() = %d, want %d", tc.name, got, tc.maxFix)
		}
		if got := tc.level.String(); got != tc.name {
			t.Errorf("String() = %q, want %q", got, tc.name)
		}
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"L", LevelL, true},
		{"l", LevelL, true},
		{" m ", LevelM, true},
		{"Q", LevelQ, true},
		{"h", LevelH, true},
		{"", 0, false},
		{"X", 0, false},
		{"low", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseLevel(tc.in)
		if tc.ok {
			if err != nil {
				t.Errorf("ParseLevel(%q): %v", tc.in, err)
				continue
			}
			if got != tc.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
			}
		} else if !errors.Is(err, ErrUnknownLevel) {
			t.Errorf("ParseLevel(%q): err = %v, want ErrUnknownLevel", tc.in, err)
		}
	}
}

func TestLevelsOrdered(t *testing.T) {
	levels := Levels()
	if len(levels) != 4 {
		t.Fatalf("Levels() has %d entries, want 4", len(levels))
	}
	prev := 0
	for _, l := range levels {
		if l.ParityBytes() <= prev {
			t.Fatalf("levels not in ascending strength order at %s", l)
		}
		prev = l.ParityBytes()
	}
}
