// level.go defines the QR-style named error-correction strength levels.
// A level is external configuration resolved to a parity byte count
// before calling the codec; the codec itself only ever sees nsym.
package rs

import (
	"fmt"
	"strings"
)

// Level is a named error-correction strength, QR-style.
type Level int

// The four QR-style levels and the parity byte count each maps to.
const (
	LevelL Level = iota // Low:      8 parity bytes, corrects up to 4
	LevelM              // Medium:  16 parity bytes, corrects up to 8
	LevelQ              // Quartile: 24 parity bytes, corrects up to 12
	LevelH              // High:    32 parity bytes, corrects up to 16
)

// levelParity maps each level to its parity byte count. The mapping is
// static configuration, not computed.
var levelParity = map[Level]int{
	LevelL: 8,
	LevelM: 16,
	LevelQ: 24,
	LevelH: 32,
}

var levelNames = map[Level]string{
	LevelL: "L",
	LevelM: "M",
	LevelQ: "Q",
	LevelH: "H",
}

// Levels returns all levels in ascending strength order.
func Levels() []Level {
	return []Level{LevelL, LevelM, LevelQ, LevelH}
}

// ParseLevel resolves a level name (case-insensitive) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L":
		return LevelL, nil
	case "M":
		return LevelM, nil
	case "Q":
		return LevelQ, nil
	case "H":
		return LevelH, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// String returns the single-letter level name.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParityBytes returns the number of parity bytes this level adds.
func (l Level) ParityBytes() int {
	return levelParity[l]
}

// MaxCorrectable returns the number of byte errors this level can
// correct at unknown positions.
func (l Level) MaxCorrectable() int {
	return MaxCorrectable(l.ParityBytes())
}
