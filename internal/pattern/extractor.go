package pattern

import (
	"regexp"
	"sort"
	"strings"
)

// Replacement tokens used in normalized patterns.
const (
	// DigitToken replaces a purely numeric segment.
	DigitToken = `\d+`

	// WordToken replaces the final segments of a generalized prefix group.
	WordToken = `\w+`

	// Delimiter joins normalized segments; it matches a literal dot.
	Delimiter = `\.`
)

// Extract infers the generalized pattern set for the given keys.
//
// It composes both phases: Counts builds the per-pattern table, Generalize
// applies the frequency rules. The result is sorted and duplicate-free.
// Degenerate inputs (empty list, empty keys, keys without delimiters) are
// never errors; they produce a well-defined, possibly empty, result.
func Extract(keys []string) []string {
	counts, total := Counts(keys)
	return Generalize(counts, total)
}

// Counts normalizes each key and returns the pattern -> count table along
// with the total number of keys counted. Keys that are empty or contain
// only whitespace are skipped and contribute to neither.
func Counts(keys []string) (map[string]int, int) {
	counts := make(map[string]int)
	total := 0

	for _, key := range keys {
		if strings.TrimSpace(key) == "" {
			continue
		}
		counts[Normalize(key)]++
		total++
	}

	return counts, total
}

// Normalize converts a single raw key into its pattern string. Numeric
// segments become DigitToken, static segments are regex-escaped, and the
// results are joined with Delimiter.
func Normalize(key string) string {
	segments := strings.Split(key, ".")
	normalized := make([]string, len(segments))

	for i, segment := range segments {
		if isNumeric(segment) {
			normalized[i] = DigitToken
		} else {
			normalized[i] = regexp.QuoteMeta(segment)
		}
	}

	return strings.Join(normalized, Delimiter)
}

// isNumeric reports whether the segment is non-empty and consists entirely
// of ASCII digits. Unicode digit characters are treated as static.
func isNumeric(segment string) bool {
	if segment == "" {
		return false
	}
	for i := 0; i < len(segment); i++ {
		if segment[i] < '0' || segment[i] > '9' {
			return false
		}
	}
	return true
}

// sortedPatterns converts a pattern set into a sorted slice.
func sortedPatterns(set map[string]struct{}) []string {
	patterns := make([]string, 0, len(set))
	for p := range set {
		patterns = append(patterns, p)
	}
	sort.Strings(patterns)
	return patterns
}
