package output

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorCyan  = "\033[36m"
	colorGray  = "\033[90m"
)

// ColorMode determines when to use colored output.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // Auto-detect based on TTY
	ColorAlways                  // Always use colors
	ColorNever                   // Never use colors
)

// tokenColorizer highlights the substitution tokens inside a pattern:
// digit and word wildcards in cyan, the segment delimiter in gray. Escaped
// literal metacharacters keep the default color. Built once; patterns never
// contain a bare dot, so `\.` only ever marks a delimiter.
var tokenColorizer = strings.NewReplacer(
	`\d+`, colorCyan+`\d+`+colorReset,
	`\w+`, colorCyan+`\w+`+colorReset,
	`\.`, colorGray+`\.`+colorReset,
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// shouldColorize determines if output should be colorized based on mode and
// TTY detection.
func shouldColorize(mode ColorMode, w interface{}) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	case ColorAuto:
		if f, ok := w.(*os.File); ok {
			return isTerminal(f)
		}
		return false
	}
	return false
}

// ColorizePattern highlights the wildcard tokens and delimiters in a
// pattern string.
func ColorizePattern(p string) string {
	return tokenColorizer.Replace(p)
}
