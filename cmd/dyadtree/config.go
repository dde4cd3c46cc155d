package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/katalvlaran/dyadtree/internal/report"
)

var (
	errHelp        = errors.New("help requested")
	errMissingArgs = errors.New("expected NUM/DEN or -num and -den")
	errBadFraction = errors.New("fraction must be two integers NUM/DEN")
	errMixedArgs   = errors.New("give either NUM/DEN or -num and -den, not both")
	errBadDepth    = errors.New("depth flags must be non-negative")
)

// config is the parsed command line.
type config struct {
	num, den       int64
	format         report.Format
	steps          bool
	tree           bool
	plain          bool
	maxTreeDepth   int
	maxSearchDepth int
	logLevel       slog.Level
	journal        bool
}

// parseConfig reads flags and the optional positional NUM/DEN from args.
// Flag errors and usage text go to out.
func parseConfig(args []string, out io.Writer) (*config, error) {
	fs := flag.NewFlagSet("dyadtree", flag.ContinueOnError)
	fs.SetOutput(out)

	var (
		cfg      config
		format   string
		logLevel string
		num      = fs.Int64("num", 0, "numerator")
		den      = fs.Int64("den", 0, "denominator, a power of two")
	)
	fs.StringVar(&format, "format", string(report.FormatText), "output format: text, yaml or json")
	fs.BoolVar(&cfg.steps, "steps", false, "print every rope derivation step")
	fs.BoolVar(&cfg.tree, "tree", false, "print the subdivision tree")
	fs.BoolVar(&cfg.plain, "plain", false, "render ropes without <b> emphasis")
	fs.IntVar(&cfg.maxTreeDepth, "max-tree-depth", report.DefaultMaxTreeDepth, "deepest tree level printed with -tree (0 prints the root only)")
	fs.IntVar(&cfg.maxSearchDepth, "max-search-depth", report.DefaultMaxSearchDepth, "largest search depth accepted, i.e. log2 of the denominator")
	fs.StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	fs.BoolVar(&cfg.journal, "journal", false, "also log to the systemd journal")
	fs.Usage = func() {
		fmt.Fprintln(out, "usage: dyadtree [flags] NUM/DEN")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, errHelp
		}

		return nil, err
	}

	var err error
	if cfg.format, err = report.ParseFormat(format); err != nil {
		return nil, err
	}
	if err = cfg.logLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", logLevel, err)
	}

	if cfg.maxTreeDepth < 0 || cfg.maxSearchDepth < 0 {
		return nil, fmt.Errorf("%w: tree %d, search %d", errBadDepth, cfg.maxTreeDepth, cfg.maxSearchDepth)
	}

	// -den 0 is passed through so the zero denominator is reported as such.
	fromFlags := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "num" || f.Name == "den" {
			fromFlags = true
		}
	})

	switch fs.NArg() {
	case 0:
		if !fromFlags {
			return nil, errMissingArgs
		}
		cfg.num, cfg.den = *num, *den
	case 1:
		if fromFlags {
			return nil, fmt.Errorf("%w: -num/-den and %q", errMixedArgs, fs.Arg(0))
		}
		if cfg.num, cfg.den, err = parseFraction(fs.Arg(0)); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: got %d arguments", errMissingArgs, fs.NArg())
	}

	return &cfg, nil
}

// parseFraction splits "NUM/DEN" into two integers.
func parseFraction(s string) (num, den int64, err error) {
	n, d, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", errBadFraction, s)
	}
	if num, err = strconv.ParseInt(strings.TrimSpace(n), 10, 64); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", errBadFraction, s)
	}
	if den, err = strconv.ParseInt(strings.TrimSpace(d), 10, 64); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", errBadFraction, s)
	}

	return num, den, nil
}
