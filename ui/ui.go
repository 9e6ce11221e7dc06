// Package ui renders the demo's terminal output: headers, the encoding
// and corruption walk-throughs, progress animations, and the final
// summary. Everything writes to an injected io.Writer so tests can
// capture output; nothing here touches the codec beyond reading its
// results.
package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/rscode/rscode/corrupt"
	"github.com/rscode/rscode/rs"
)

// Display defaults, matching the historical demo pacing.
const (
	defaultWidth   = 70
	AnimationSteps = 3
	AnimationDelay = 400 * time.Millisecond
)

// Printer renders demo output to a writer with optional color and a
// configurable animation pace.
type Printer struct {
	w     io.Writer
	width int
	steps int
	delay time.Duration

	title   *color.Color
	accent  *color.Color
	good    *color.Color
	bad     *color.Color
	subdued *color.Color
}

// NewPrinter returns a Printer with the default width, colors, and
// animation pacing.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		w:       w,
		width:   defaultWidth,
		steps:   AnimationSteps,
		delay:   AnimationDelay,
		title:   color.New(color.FgCyan, color.Bold),
		accent:  color.New(color.FgYellow),
		good:    color.New(color.FgGreen, color.Bold),
		bad:     color.New(color.FgRed, color.Bold),
		subdued: color.New(color.Faint),
	}
}

// DisableColor turns off ANSI sequences, for dumb terminals and tests.
func (p *Printer) DisableColor() {
	for _, c := range []*color.Color{p.title, p.accent, p.good, p.bad, p.subdued} {
		c.DisableColor()
	}
}

// SetAnimationDelay overrides the per-step animation delay. Tests set
// zero to run instantly.
func (p *Printer) SetAnimationDelay(d time.Duration) {
	p.delay = d
}

func (p *Printer) printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) rule(ch byte) {
	for i := 0; i < p.width; i++ {
		fmt.Fprintf(p.w, "%c", ch)
	}
	fmt.Fprintln(p.w)
}

// Header prints a boxed title.
func (p *Printer) Header(title string) {
	p.rule('=')
	p.title.Fprintln(p.w, title)
	p.rule('=')
	fmt.Fprintln(p.w)
}

// Section prints a section divider.
func (p *Printer) Section(title string) {
	p.rule('-')
	p.accent.Fprintln(p.w, title)
	p.rule('-')
}

// Animate renders a short labeled progress animation. The work it
// "tracks" is instantaneous; the pacing exists so a viewer can follow
// the stages of the demo.
func (p *Printer) Animate(label string) {
	bar := progressbar.NewOptions(p.steps,
		progressbar.OptionSetWriter(p.w),
		progressbar.OptionSetDescription(label),
		progressbar.OptionSetWidth(16),
		progressbar.OptionClearOnFinish(),
	)
	for i := 0; i < p.steps; i++ {
		_ = bar.Add(1)
		time.Sleep(p.delay)
	}
	_ = bar.Finish()
	fmt.Fprintf(p.w, "%s... done\n", label)
}

// Levels prints the strength level table.
func (p *Printer) Levels() {
	p.printf("QR-style error correction levels:\n")
	descriptions := map[rs.Level]string{
		rs.LevelL: "Low",
		rs.LevelM: "Medium",
		rs.LevelQ: "Quartile",
		rs.LevelH: "High",
	}
	for _, l := range rs.Levels() {
		p.printf("  %s (%-8s) -> %2d parity bytes (corrects up to %2d byte errors)\n",
			l, descriptions[l], l.ParityBytes(), l.MaxCorrectable())
	}
	fmt.Fprintln(p.w)
}

// EncodingInfo walks through the encoded codeword: the data part, the
// parity part, and the conceptual view of how the parity was produced.
func (p *Printer) EncodingInfo(message string, codeword []byte, level rs.Level) {
	nparity := level.ParityBytes()
	dataLen := len(codeword) - nparity

	p.printf("Original message: %q\n", message)
	p.printf("Message bytes (%d data bytes):\n  %v\n\n", dataLen, codeword[:dataLen])

	p.printf("Chosen EC level: %s\n", level)
	p.printf("Parity bytes added: %d\n", nparity)
	p.printf("Maximum correctable byte errors (t = parity/2): %d\n\n", level.MaxCorrectable())

	p.printf("Full codeword (data + parity, %d bytes):\n  %v\n\n", len(codeword), codeword)

	p.printf("Data part, indices 0..%d:\n  %v\n", dataLen-1, codeword[:dataLen])
	p.printf("Parity part, indices %d..%d:\n  %v\n", dataLen, len(codeword)-1, codeword[dataLen:])
	for i, b := range codeword[dataLen:] {
		p.subdued.Fprintf(p.w, "    parity[%d] at codeword position %d: %d\n", i, dataLen+i, b)
	}
	fmt.Fprintln(p.w)

	p.printf("How the parity was made:\n")
	p.printf("  - the message bytes are the coefficients of a polynomial m(x)\n")
	p.printf("  - a generator polynomial g(x) is built from the parity count\n")
	p.printf("  - the parity is the remainder of m(x) * x^parity divided by g(x)\n\n")
}

// CorruptionChanges lists each corrupted byte: position, original value,
// what was applied, and the resulting value.
func (p *Printer) CorruptionChanges(changes []corrupt.Change, mode corrupt.Mode, sigma float64) {
	if len(changes) == 0 {
		return
	}
	p.printf("Byte changes (original -> corrupted):\n")
	for _, ch := range changes {
		switch mode {
		case corrupt.ModeXOR:
			p.printf("  position %3d: %3d  XOR %3d  ->  %3d\n", ch.Pos, ch.Original, ch.XorMask, ch.New)
		case corrupt.ModeAWGN:
			p.printf("  position %3d: %3d  + N(0,%g) = %+.1f  ->  %3d\n", ch.Pos, ch.Original, sigma, ch.Noise, ch.New)
		}
	}
	fmt.Fprintln(p.w)
}

// CorruptionInfo shows the codeword before and after the channel, plus
// a lossy text rendering of the damaged bytes.
func (p *Printer) CorruptionInfo(original, corrupted []byte, positions []int) {
	if len(positions) == 0 {
		p.printf("No corruption applied. The codeword is transmitted perfectly.\n\n")
		return
	}
	p.printf("Corrupting %d byte(s) at positions %v\n\n", len(positions), positions)
	p.printf("Original codeword:\n  %v\n\n", original)
	p.printf("Corrupted codeword:\n  %v\n\n", corrupted)
	p.printf("Corrupted bytes as text: %q\n\n", lossyString(corrupted))
}

// DecodingConcept prints the high-level picture of what the decoder is
// about to do.
func (p *Printer) DecodingConcept() {
	p.printf("What the decoder does:\n")
	p.printf("  1) compute syndromes from the received codeword\n")
	p.printf("     (all zero -> no errors; any non-zero -> errors present)\n")
	p.printf("  2) build the error locator polynomial from the syndromes\n")
	p.printf("     (its roots give the positions of the errors)\n")
	p.printf("  3) build the error evaluator polynomial\n")
	p.printf("     (it gives the size of the error at each position)\n")
	p.printf("  4) correct the codeword by adding the error values back in\n")
	p.printf("  5) re-check the syndromes and hand back the data bytes\n\n")
}

// Success prints the happy-path verdict after decoding.
func (p *Printer) Success(decoded string, positions []int) {
	p.good.Fprintln(p.w, "Decoding successful!")
	fmt.Fprintln(p.w)
	p.printf("Corrupted positions: %v\n", positions)
	p.printf("Decoded message: %q\n\n", decoded)
}

// Failure prints the verdict when decoding could not correct the damage.
func (p *Printer) Failure(level rs.Level, requested int) {
	p.bad.Fprintln(p.w, "Decoding failed!")
	fmt.Fprintln(p.w)
	p.printf("Too many errors for error correction level %s.\n", level)
	p.printf("You corrupted %d bytes, but level %s corrects at most %d.\n", requested, level, level.MaxCorrectable())
	p.printf("Try fewer corrupted bytes or a stronger level.\n\n")
}

// Summary prints the closing table, including codec activity counters.
func (p *Printer) Summary(message string, level rs.Level, nErrors int, mode corrupt.Mode, sigma float64, success bool, decoded string, counters map[string]uint64, counterNames []string) {
	fmt.Fprintln(p.w)
	p.rule('=')
	p.title.Fprintln(p.w, "SUMMARY")
	p.rule('=')

	p.printf("Original message:          %q\n", message)
	p.printf("Chosen EC level:           %s (%d parity bytes)\n", level, level.ParityBytes())
	p.printf("Maximum correctable bytes: %d\n", level.MaxCorrectable())
	p.printf("Bytes corrupted:           %d\n", nErrors)
	if mode == corrupt.ModeAWGN {
		p.printf("Corruption model:          AWGN-like (sigma=%g)\n", sigma)
	} else {
		p.printf("Corruption model:          XOR random errors\n")
	}
	if success {
		p.good.Fprintln(p.w, "Decoding result:           SUCCESS")
		p.printf("Final decoded message:     %q\n", decoded)
	} else {
		p.bad.Fprintln(p.w, "Decoding result:           FAILED")
	}

	if len(counterNames) > 0 {
		fmt.Fprintln(p.w)
		p.subdued.Fprintln(p.w, "Codec activity:")
		for _, name := range counterNames {
			p.subdued.Fprintf(p.w, "  %-30s %d\n", name, counters[name])
		}
	}
}

// lossyString renders bytes as text, replacing non-printable bytes so
// damaged codewords stay displayable.
func lossyString(b []byte) string {
	out := make([]rune, len(b))
	for i, c := range b {
		if c < 0x20 || c > 0x7E {
			out[i] = '?'
		} else {
			out[i] = rune(c)
		}
	}
	return string(out)
}
