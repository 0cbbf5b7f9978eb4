// Package output provides formatted rendering of pattern extraction
// results. It supports text, JSON, and table formats.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/keyshape/keyshape/internal/pattern"
)

// Format represents an output format type.
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

// ParseFormat converts a string to a Format, defaulting to text.
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON
	case "table":
		return FormatTable
	default:
		return FormatText
	}
}

// Result is the serializable outcome of an extraction run.
type Result struct {
	Patterns  []string `json:"patterns"`
	TotalKeys int      `json:"total_keys"`
	Files     []string `json:"files,omitempty"`
}

// CountResult is the serializable phase-1 pattern table.
type CountResult struct {
	Counts    map[string]int `json:"counts"`
	TotalKeys int            `json:"total_keys"`
	Files     []string       `json:"files,omitempty"`
}

// Writer handles writing formatted output.
type Writer struct {
	w      io.Writer
	format Format
}

// New creates a new output Writer.
func New(w io.Writer, format Format) *Writer {
	return &Writer{w: w, format: format}
}

// WriteResult outputs an extraction result in the configured format.
func (wr *Writer) WriteResult(res Result, mode ColorMode) error {
	switch wr.format {
	case FormatJSON:
		return wr.WriteJSON(res)
	case FormatTable:
		return wr.writePatternTable(res.Patterns)
	default:
		return wr.WritePatterns(res.Patterns, mode)
	}
}

// WriteCounts outputs a phase-1 pattern table in the configured format.
func (wr *Writer) WriteCounts(res CountResult) error {
	if wr.format == FormatJSON {
		return wr.WriteJSON(res)
	}
	return wr.writeCountTable(res)
}

// WritePatterns writes one pattern per line, colorized when the mode and
// destination allow it.
func (wr *Writer) WritePatterns(patterns []string, mode ColorMode) error {
	colorize := shouldColorize(mode, wr.w)
	for _, p := range patterns {
		if colorize {
			p = ColorizePattern(p)
		}
		if _, err := fmt.Fprintln(wr.w, p); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON outputs any value as indented JSON.
func (wr *Writer) WriteJSON(v interface{}) error {
	enc := json.NewEncoder(wr.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (wr *Writer) writePatternTable(patterns []string) error {
	tw := tabwriter.NewWriter(wr.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tPATTERN")
	fmt.Fprintln(tw, "-\t-------")

	for i, p := range patterns {
		fmt.Fprintf(tw, "%d\t%s\n", i+1, p)
	}

	return tw.Flush()
}

func (wr *Writer) writeCountTable(res CountResult) error {
	tw := tabwriter.NewWriter(wr.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "COUNT\tPERCENT\tPATTERN")
	fmt.Fprintln(tw, "-----\t-------\t-------")

	for _, p := range sortedByCount(res.Counts) {
		percent := 0.0
		if res.TotalKeys > 0 {
			percent = float64(res.Counts[p]) / float64(res.TotalKeys) * 100
		}
		fmt.Fprintf(tw, "%d\t%.1f%%\t%s\n", res.Counts[p], percent, p)
	}

	fmt.Fprintf(tw, "\nTotal keys: %d\n", res.TotalKeys)
	return tw.Flush()
}

// WriteGroups writes a prefix-group report in the configured format.
func (wr *Writer) WriteGroups(groups []pattern.Group, totalKeys int) error {
	switch wr.format {
	case FormatJSON:
		return wr.WriteJSON(struct {
			Groups    []pattern.Group `json:"groups"`
			TotalKeys int             `json:"total_keys"`
		}{Groups: groups, TotalKeys: totalKeys})
	case FormatTable:
		return wr.writeGroupTable(groups)
	default:
		return wr.writeGroupText(groups, totalKeys)
	}
}

func (wr *Writer) writeGroupTable(groups []pattern.Group) error {
	tw := tabwriter.NewWriter(wr.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PREFIX\tPATTERNS\tKEYS\tFREQ\tDECISION")
	fmt.Fprintln(tw, "------\t--------\t----\t----\t--------")

	for _, g := range groups {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.1f%%\t%s\n",
			g.Prefix, len(g.Entries), g.Total, g.Frequency, decisionLabel(g))
	}

	return tw.Flush()
}

func (wr *Writer) writeGroupText(groups []pattern.Group, totalKeys int) error {
	fmt.Fprintf(wr.w, "Prefix groups (%d keys total):\n\n", totalKeys)

	for _, g := range groups {
		fmt.Fprintf(wr.w, "%s (%d keys, %.1f%%) -> %s\n",
			g.Prefix, g.Total, g.Frequency, decisionLabel(g))
		for _, e := range g.Entries {
			fmt.Fprintf(wr.w, "  %4d  %s\n", e.Count, e.Pattern)
		}
		fmt.Fprintln(wr.w)
	}

	return nil
}

func decisionLabel(g pattern.Group) string {
	if g.Generalized {
		return "generalize"
	}
	return "keep"
}

func sortedByCount(counts map[string]int) []string {
	patterns := make([]string, 0, len(counts))
	for p := range counts {
		patterns = append(patterns, p)
	}
	// Descending count, then pattern for a stable order.
	for i := 0; i < len(patterns)-1; i++ {
		for j := i + 1; j < len(patterns); j++ {
			pi, pj := patterns[i], patterns[j]
			if counts[pj] > counts[pi] || (counts[pj] == counts[pi] && pj < pi) {
				patterns[i], patterns[j] = patterns[j], patterns[i]
			}
		}
	}
	return patterns
}
