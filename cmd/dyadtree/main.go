// Command dyadtree prints the address word and rope sequence of a dyadic
// fraction, optionally with the derivation steps and the subdivision tree.
//
// Usage:
//
//	dyadtree [flags] NUM/DEN
//	dyadtree [flags] -num NUM -den DEN
//
// Examples:
//
//	$ dyadtree 5/8
//	target: 5/8
//	depth:  3
//	word:   qp
//	rope:   |<b>1</b>2{<b>2</b>3|<b>3</b>}
//
//	$ dyadtree -format yaml -tree -max-tree-depth 2 11/16
//	$ dyadtree -max-search-depth 40 3/1099511627776
//
// Exit status is 0 on success, 1 when the input is rejected or the address
// cannot be derived, and 2 on a usage error.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/dyadtree/dyadic"
	"github.com/katalvlaran/dyadtree/internal/report"
	"github.com/katalvlaran/dyadtree/wordfind"
)

const (
	exitOK       = 0
	exitNotFound = 1
	exitUsage    = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		if errors.Is(err, errHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "dyadtree: %v\n", err)

		return exitUsage
	}

	logger := newLogger(stderr, cfg.logLevel, cfg.journal)
	logger.Debug("request",
		slog.Int64("num", cfg.num),
		slog.Int64("den", cfg.den),
		slog.String("format", string(cfg.format)),
		slog.Bool("tree", cfg.tree),
	)

	req := report.NewRequest(cfg.num, cfg.den)
	req.Steps, req.Tree, req.Plain = cfg.steps, cfg.tree, cfg.plain
	req.MaxTreeDepth = cfg.maxTreeDepth
	req.MaxSearchDepth = cfg.maxSearchDepth

	r, err := report.Build(req)
	if err != nil {
		logger.Error(userMessage(err), slog.Any("error", err))

		return exitNotFound
	}
	logger.Info("address found",
		slog.String("target", r.Target),
		slog.String("word", r.Word),
		slog.Int("depth", r.Depth),
	)

	if err = report.Encode(stdout, r, cfg.format); err != nil {
		logger.Error("write report", slog.Any("error", err))

		return exitNotFound
	}

	return exitOK
}

// userMessage turns a lookup error into the sentence shown to the user.
func userMessage(err error) string {
	switch {
	case errors.Is(err, wordfind.ErrNotDyadic):
		return "denominator must be a power of 2"
	case errors.Is(err, dyadic.ErrZeroDenominator):
		return "denominator must not be zero"
	case errors.Is(err, dyadic.ErrOutOfRange):
		return "fraction must be strictly between 0 and 1"
	case errors.Is(err, wordfind.ErrDepthLimit):
		return "denominator exceeds the search depth limit"
	case errors.Is(err, wordfind.ErrNotFound):
		return "could not derive address word"
	default:
		return "invalid request"
	}
}
