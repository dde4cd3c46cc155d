package report

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/katalvlaran/dyadtree/dyadic"
	"github.com/katalvlaran/dyadtree/rope"
	"github.com/katalvlaran/dyadtree/subtree"
	"github.com/katalvlaran/dyadtree/wordfind"
)

// DefaultMaxTreeDepth is the rendered tree depth used by NewRequest.
const DefaultMaxTreeDepth = 6

// DefaultMaxSearchDepth is the search depth limit used by NewRequest.
// The search may visit 2^(depth+1) - 1 nodes, so denominators above 2^20
// are refused.
const DefaultMaxSearchDepth = 20

// RootLabel names the root node, whose word is empty.
const RootLabel = "ROOT"

// Sentinel errors for request validation.
var (
	// ErrNegativeTreeDepth is returned when Request.MaxTreeDepth < 0.
	ErrNegativeTreeDepth = errors.New("report: max tree depth must be non-negative")

	// ErrNegativeSearchDepth is returned when Request.MaxSearchDepth < 0.
	ErrNegativeSearchDepth = errors.New("report: max search depth must be non-negative")
)

// Request describes one lookup.
type Request struct {
	// Num and Den are the fraction as entered, before reduction.
	Num, Den int64

	// Steps includes the rope derivation.
	Steps bool

	// Tree includes the subdivision tree down to min(depth, MaxTreeDepth).
	Tree bool

	// MaxTreeDepth bounds the rendered tree; 0 renders the root alone.
	MaxTreeDepth int

	// MaxSearchDepth refuses fractions whose search depth, bitlen(Den) - 1,
	// is larger (wordfind.ErrDepthLimit).
	MaxSearchDepth int

	// Plain renders ropes without emphasis markup.
	Plain bool
}

// Report is the outcome of a Request.
type Report struct {
	Target    string   `yaml:"target" json:"target"`
	Depth     int      `yaml:"depth" json:"depth"`
	Word      string   `yaml:"word" json:"word"`
	Rope      string   `yaml:"rope" json:"rope"`
	Steps     []string `yaml:"steps,omitempty" json:"steps,omitempty"`
	TreeDepth int      `yaml:"tree_depth,omitempty" json:"tree_depth,omitempty"`
	Tree      []Row    `yaml:"tree,omitempty" json:"tree,omitempty"`

	root  *subtree.Node
	value dyadic.Value
}

// Row is one depth level of the rendered tree.
type Row struct {
	Depth int     `yaml:"depth" json:"depth"`
	Nodes []Entry `yaml:"nodes" json:"nodes"`
}

// Entry is one tree node as shown to the user.
type Entry struct {
	Word   string `yaml:"word" json:"word"`
	Value  string `yaml:"value" json:"value"`
	Target bool   `yaml:"target,omitempty" json:"target,omitempty"`
}

// NewRequest returns a Request for num/den with the default depth limits.
func NewRequest(num, den int64) Request {
	return Request{
		Num:            num,
		Den:            den,
		MaxTreeDepth:   DefaultMaxTreeDepth,
		MaxSearchDepth: DefaultMaxSearchDepth,
	}
}

// Build validates req, finds the address word, renders its rope and, when
// asked, materializes the tree around it.
func Build(req Request) (*Report, error) {
	if req.MaxTreeDepth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeTreeDepth, req.MaxTreeDepth)
	}
	if req.MaxSearchDepth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSearchDepth, req.MaxSearchDepth)
	}

	target, err := dyadic.New(req.Num, req.Den)
	if err != nil {
		return nil, fmt.Errorf("report: %d/%d: %w", req.Num, req.Den, err)
	}

	word, depth, err := wordfind.FindFraction(req.Num, req.Den, wordfind.WithDepthLimit(req.MaxSearchDepth))
	if err != nil {
		return nil, fmt.Errorf("report: %s: %w", target, err)
	}

	var ropeOpts []rope.Option
	if req.Plain {
		ropeOpts = append(ropeOpts, rope.WithEmphasis("", ""))
	}
	steps, err := rope.Steps(word, ropeOpts...)
	if err != nil {
		return nil, fmt.Errorf("report: rope for %q: %w", word.String(), err)
	}

	r := &Report{
		Target: target.String(),
		Depth:  depth,
		Word:   word.String(),
		Rope:   steps[len(steps)-1],
		value:  target,
	}
	if req.Steps {
		r.Steps = steps
	}
	if req.Tree {
		if err = r.attachTree(depth, req.MaxTreeDepth); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// attachTree builds the tree to min(depth, limit) and flattens it into rows.
func (r *Report) attachTree(depth, limit int) error {
	r.TreeDepth = min(depth, limit)

	root, err := subtree.Build(r.TreeDepth)
	if err != nil {
		return fmt.Errorf("report: tree: %w", err)
	}
	r.root = root

	hit := root.Lookup(r.value)
	r.Tree = lo.Map(root.Levels(), func(row []*subtree.Node, d int) Row {
		return Row{
			Depth: d,
			Nodes: lo.Map(row, func(n *subtree.Node, _ int) Entry {
				return Entry{Word: label(n.Word), Value: n.Value.String(), Target: n == hit}
			}),
		}
	})

	return nil
}

// label returns the display name of a word.
func label(w dyadic.Word) string {
	return lo.Ternary(w == dyadic.Root, RootLabel, w.String())
}
