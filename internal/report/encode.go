package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dyadtree/dyadic"
	"github.com/katalvlaran/dyadtree/subtree"
)

// Format selects an output encoding.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned for a Format other than text, yaml or json.
var ErrUnknownFormat = errors.New("report: unknown output format")

// ParseFormat maps a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatYAML, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Encode writes r to w in the given format.
func Encode(w io.Writer, r *Report, format Format) error {
	switch format {
	case FormatText:
		return encodeText(w, r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("report: yaml: %w", err)
		}

		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("report: json: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

// encodeText prints r for a terminal. The tree is indented by depth and the
// node carrying the target is marked with '*'.
func encodeText(w io.Writer, r *Report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "target: %s\n", r.Target)
	fmt.Fprintf(&b, "depth:  %d\n", r.Depth)
	fmt.Fprintf(&b, "word:   %s\n", label(dyadic.Word(r.Word)))
	fmt.Fprintf(&b, "rope:   %s\n", r.Rope)

	if len(r.Steps) > 0 {
		b.WriteString("steps:\n")
		for i, s := range r.Steps {
			fmt.Fprintf(&b, "  %2d  %s\n", i, s)
		}
	}

	if r.root != nil {
		fmt.Fprintf(&b, "tree (depth %d):\n", r.TreeDepth)
		err := r.root.Walk(func(n *subtree.Node) error {
			mark := " "
			if n.Value.Equal(r.value) {
				mark = "*"
			}
			_, err := fmt.Fprintf(&b, "%s %s%s %s\n", mark, strings.Repeat("  ", n.Depth), label(n.Word), n.Value)

			return err
		})
		if err != nil {
			return fmt.Errorf("report: text tree: %w", err)
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("report: write: %w", err)
	}

	return nil
}
