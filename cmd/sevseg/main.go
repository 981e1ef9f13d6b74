// Sevseg prints numbers as pseudo seven-segment readouts.
//
// Usage:
//
//	sevseg [-slots n] [-signed] [-gap n] [-v] value...
//
// Each value becomes one readout. Readouts are tiled left to right and
// wrap to a new band when the next one would not fit the terminal.
// Values that cannot be rendered are reported and skipped.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/katalvlaran/sevseg/compose"
	"github.com/katalvlaran/sevseg/fixed"
	"github.com/katalvlaran/sevseg/signed"
)

// defaultWidth is used when stdout is not a terminal.
const defaultWidth = 80

var errSkipped = errors.New("some values were skipped")

type config struct {
	slots  int
	signed bool
	gap    int
	width  int
}

func main() {
	slots := flag.Int("slots", fixed.MaxSlots, "readout width in slots for digit strings (1-4)")
	useSigned := flag.Bool("signed", false, "render values as signed decimals on four slots")
	gap := flag.Int("gap", compose.DefaultGap, "blank columns between readouts")
	verbose := flag.Bool("v", false, "log debug information")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if len(flag.Args()) < 1 {
		fmt.Fprintln(os.Stderr, "error: no values given")
		flag.Usage()
		os.Exit(2)
	}
	if *gap < 0 {
		fmt.Fprintln(os.Stderr, "error: -gap must be non-negative")
		os.Exit(2)
	}

	cfg := config{
		slots:  *slots,
		signed: *useSigned,
		gap:    *gap,
		width:  terminalWidth(logger),
	}
	err := run(os.Stdout, logger, cfg, flag.Args())
	if err != nil {
		logger.Error("sevseg failed", "err", err)
		os.Exit(1)
	}
}

// terminalWidth reports the column count of stdout, or defaultWidth.
func terminalWidth(logger *slog.Logger) int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		logger.Debug("stdout is not a terminal", "width", defaultWidth)
		return defaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		logger.Debug("terminal size unavailable", "err", err, "width", defaultWidth)
		return defaultWidth
	}
	logger.Debug("terminal size", "width", w)

	return w
}

// run renders every value and writes the tiled bands to w.
// It returns errSkipped if any value was rejected; the others are still printed.
func run(w io.Writer, logger *slog.Logger, cfg config, values []string) error {
	var readouts []string
	skipped := 0
	for _, val := range values {
		out, err := render(cfg, val)
		if err != nil {
			logger.Warn("skipping value", "value", val, "err", err)
			skipped++
			continue
		}
		logger.Debug("rendered value", "value", val, "columns", compose.Width(out))
		readouts = append(readouts, out)
	}

	bands, err := tile(readouts, cfg.width, cfg.gap)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, bands); err != nil {
		return err
	}
	if skipped > 0 {
		return fmt.Errorf("%w: %d of %d", errSkipped, skipped, len(values))
	}

	return nil
}

func render(cfg config, val string) (string, error) {
	if cfg.signed {
		return signed.FourText(val)
	}

	return fixed.Format(cfg.slots, val)
}
