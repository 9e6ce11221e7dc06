// Command rscode is an interactive walk-through of Reed-Solomon error
// correction: it encodes a message, damages the codeword over a
// simulated channel, and shows the decoder recovering the original.
//
// Usage:
//
//	rscode [flags]
//
// Flags:
//
//	--message          Message to encode (default: "Hello World")
//	--level            Error correction level: L, M, Q, H (default: M)
//	--errors           Number of bytes to corrupt (default: 3)
//	--mode             Corruption model: xor, awgn (default: xor)
//	--sigma            Noise sigma for awgn mode (default: 30)
//	--seed             Corruption RNG seed; 0 means time-based
//	--verbosity        Log level 0-3 (default: 0)
//	--no-color         Disable colored output
//	--non-interactive  Run straight through from flags, no prompts
package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/crypto/sha3"

	"github.com/rscode/rscode/corrupt"
	"github.com/rscode/rscode/log"
	"github.com/rscode/rscode/metrics"
	"github.com/rscode/rscode/rs"
	"github.com/rscode/rscode/ui"
)

// Build-time version info, overridable with ldflags:
//
//	go build -ldflags "-X main.version=v0.2.0 -X main.commit=abc1234"
var (
	version = "v0.1.0-dev"
	commit  = "unknown"
)

func main() {
	if err := newApp(os.Stdin, os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "rscode: %v\n", err)
		os.Exit(1)
	}
}

// config holds the resolved demo parameters after flag parsing and any
// interactive prompting.
type config struct {
	Message     string
	Level       rs.Level
	Errors      int
	Mode        corrupt.Mode
	Sigma       float64
	Seed        int64
	Interactive bool
}

// The built-in version flag's -v shorthand would collide with the
// verbosity flag's -v alias, so keep only the long form.
func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}
}

func newApp(in io.Reader, out io.Writer) *cli.App {
	return &cli.App{
		Name:    "rscode",
		Usage:   "Reed-Solomon error correction demo",
		Version: fmt.Sprintf("%s (commit %s)", version, commit),
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "message",
				Aliases: []string{"m"},
				Value:   "Hello World",
				Usage:   "message to encode",
			},
			&cli.StringFlag{
				Name:    "level",
				Aliases: []string{"l"},
				Value:   "M",
				Usage:   "error correction level (L, M, Q, H)",
			},
			&cli.IntFlag{
				Name:    "errors",
				Aliases: []string{"e"},
				Value:   3,
				Usage:   "number of codeword bytes to corrupt",
			},
			&cli.StringFlag{
				Name:  "mode",
				Value: "xor",
				Usage: "corruption model (xor, awgn)",
			},
			&cli.Float64Flag{
				Name:  "sigma",
				Value: 30,
				Usage: "noise sigma for awgn mode",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "corruption RNG seed (0 means time-based)",
			},
			&cli.IntFlag{
				Name:    "verbosity",
				Aliases: []string{"v"},
				Usage:   "log level 0-3",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored output",
			},
			&cli.BoolFlag{
				Name:    "non-interactive",
				Aliases: []string{"y"},
				Usage:   "run straight through from flags, no prompts",
			},
		},
		Action: func(c *cli.Context) error {
			log.SetDefault(log.New(log.VerbosityToLevel(c.Int("verbosity"))))

			level, err := rs.ParseLevel(c.String("level"))
			if err != nil {
				return err
			}
			mode, err := corrupt.ParseMode(c.String("mode"))
			if err != nil {
				return err
			}

			cfg := config{
				Message:     c.String("message"),
				Level:       level,
				Errors:      c.Int("errors"),
				Mode:        mode,
				Sigma:       c.Float64("sigma"),
				Seed:        c.Int64("seed"),
				Interactive: !c.Bool("non-interactive"),
			}

			printer := ui.NewPrinter(out)
			if c.Bool("no-color") {
				printer.DisableColor()
			}
			if !cfg.Interactive {
				printer.SetAnimationDelay(0)
			}

			d := &demo{
				cfg:     cfg,
				in:      bufio.NewReader(in),
				out:     out,
				printer: printer,
				codec:   rs.New(),
				logger:  log.Default().Module("demo"),
			}
			return d.run()
		},
	}
}

// demo drives one full encode / corrupt / decode pass.
type demo struct {
	cfg     config
	in      *bufio.Reader
	out     io.Writer
	printer *ui.Printer
	codec   *rs.Codec
	logger  *log.Logger
}

func (d *demo) run() error {
	metrics.Default().Reset()

	d.printer.Header("REED-SOLOMON ERROR CORRECTION DEMO")
	d.printer.Levels()

	message := d.cfg.Message
	level := d.cfg.Level
	if d.cfg.Interactive {
		message = d.promptMessage(message)
		level = d.promptLevel(level)
	}
	nparity := level.ParityBytes()

	d.logger.Info("encoding", "message_len", len(message), "level", level.String(), "parity", nparity)

	d.printer.Section("Step 1: Encoding")
	d.printer.Animate("Encoding")
	codeword, err := d.codec.Encode([]byte(message), nparity)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	metrics.Inc(metrics.EncodeOps)
	d.printer.EncodingInfo(message, codeword, level)

	nErrors := d.cfg.Errors
	if d.cfg.Interactive {
		nErrors = d.promptErrors(nErrors, len(codeword), level)
	} else if nErrors < 0 || nErrors > len(codeword) {
		return fmt.Errorf("cannot corrupt %d of %d bytes", nErrors, len(codeword))
	}
	if nErrors > level.MaxCorrectable() {
		d.logger.Warn("error count exceeds correction capacity",
			"errors", nErrors, "max", level.MaxCorrectable())
	}

	seed := d.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	d.printer.Section("Step 2: Channel corruption")
	corrupted, changes, err := corrupt.Apply(codeword, nErrors, d.cfg.Mode, d.cfg.Sigma, rng)
	if err != nil {
		return fmt.Errorf("corrupt: %w", err)
	}
	metrics.Add(metrics.CorruptedBytes, uint64(len(changes)))

	positions := make([]int, len(changes))
	for i, ch := range changes {
		positions[i] = ch.Pos
	}
	d.printer.CorruptionInfo(codeword, corrupted, positions)
	d.printer.CorruptionChanges(changes, d.cfg.Mode, d.cfg.Sigma)

	d.printer.Section("Step 3: Decoding")
	d.printer.DecodingConcept()
	d.printer.Animate("Decoding")

	decoded, err := d.codec.Decode(corrupted, nparity)
	metrics.Inc(metrics.DecodeOps)
	success := err == nil
	if success {
		metrics.Add(metrics.CorrectedBytes, countCorrected(d.codec, decoded, corrupted, nparity))
		d.printer.Success(string(decoded), positions)
		d.verifyDigest(message, decoded)
	} else {
		metrics.Inc(metrics.DecodeFailures)
		d.logger.Info("decode failed", "err", err.Error())
		d.printer.Failure(level, nErrors)
	}

	d.printer.Summary(message, level, nErrors, d.cfg.Mode, d.cfg.Sigma,
		success, string(decoded), metrics.Default().Snapshot(), metrics.Default().Names())
	return nil
}

// verifyDigest compares SHA3-256 digests of the original and recovered
// messages, an end-to-end check independent of the codec itself.
func (d *demo) verifyDigest(message string, decoded []byte) {
	origSum := sha3.Sum256([]byte(message))
	recSum := sha3.Sum256(decoded)

	fmt.Fprintf(d.out, "SHA3-256 of original:  %x\n", origSum)
	fmt.Fprintf(d.out, "SHA3-256 of recovered: %x\n", recSum)
	if origSum == recSum {
		fmt.Fprintf(d.out, "Digests match: recovery is byte-exact.\n\n")
	} else {
		fmt.Fprintf(d.out, "Digests differ: recovery is NOT byte-exact.\n\n")
	}
}

// countCorrected re-encodes the decoded message and counts the byte
// positions where the received codeword had been damaged.
func countCorrected(codec *rs.Codec, decoded, received []byte, nparity int) uint64 {
	clean, err := codec.Encode(decoded, nparity)
	if err != nil || len(clean) != len(received) {
		return 0
	}
	var n uint64
	for i := range clean {
		if clean[i] != received[i] {
			n++
		}
	}
	return n
}

// promptMessage asks for the message to encode; an empty line keeps the
// default.
func (d *demo) promptMessage(def string) string {
	fmt.Fprintf(d.out, "Enter a message to encode [%s]: ", def)
	line, err := d.readLine()
	if err != nil || line == "" {
		return def
	}
	return line
}

// promptLevel asks for an error correction level, re-prompting until a
// valid one is given. An empty line keeps the default.
func (d *demo) promptLevel(def rs.Level) rs.Level {
	for {
		fmt.Fprintf(d.out, "Choose an error correction level (L/M/Q/H) [%s]: ", def)
		line, err := d.readLine()
		if err != nil || line == "" {
			return def
		}
		level, perr := rs.ParseLevel(line)
		if perr != nil {
			fmt.Fprintf(d.out, "Unknown level %q, try again.\n", line)
			continue
		}
		return level
	}
}

// promptErrors asks how many bytes to corrupt, re-prompting until the
// count fits the codeword. Counts beyond the correction capacity are
// allowed so the failure path can be demonstrated.
func (d *demo) promptErrors(def, codewordLen int, level rs.Level) int {
	for {
		fmt.Fprintf(d.out, "How many bytes should be corrupted? (0-%d, up to %d correctable) [%d]: ",
			codewordLen, level.MaxCorrectable(), def)
		line, err := d.readLine()
		if err != nil || line == "" {
			return def
		}
		n, perr := strconv.Atoi(line)
		if perr != nil || n < 0 || n > codewordLen {
			fmt.Fprintf(d.out, "Enter a number between 0 and %d.\n", codewordLen)
			continue
		}
		return n
	}
}

func (d *demo) readLine() (string, error) {
	line, err := d.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil && line == "" {
		return "", err
	}
	return line, nil
}
