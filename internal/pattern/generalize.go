package pattern

import (
	"sort"
	"strings"
)

// Group frequency thresholds, as percentages of the total key count.
// A prefix group is generalized only inside [generalizeFloor, generalizeCeil):
// below the floor the shared prefix reads as coincidental collision across
// unrelated schemas, at or above the ceiling as a single intentional schema
// whose final segments carry meaning.
const (
	generalizeFloor = 75.0
	generalizeCeil  = 95.0
)

// GroupEntry is one normalized pattern inside a prefix group.
type GroupEntry struct {
	Pattern string `json:"pattern"`
	Final   string `json:"final"`
	Count   int    `json:"count"`
}

// Group holds all patterns sharing a prefix, together with the frequency
// figures and the generalization decision for the group.
type Group struct {
	Prefix      string       `json:"prefix"`
	Entries     []GroupEntry `json:"entries"`
	Total       int          `json:"total"`
	Frequency   float64      `json:"frequency"`
	Generalized bool         `json:"generalized"`
}

// Generalize applies the frequency rules to a phase-1 pattern table and
// returns the final pattern set, sorted. A totalKeys of 0 yields an empty
// result. Single-segment patterns never join a prefix group and always pass
// through unchanged.
func Generalize(counts map[string]int, totalKeys int) []string {
	final := make(map[string]struct{})
	if totalKeys == 0 {
		return sortedPatterns(final)
	}

	groups := make(map[string][]GroupEntry)
	for p, count := range counts {
		segments := strings.Split(p, Delimiter)
		if len(segments) < 2 {
			final[p] = struct{}{}
			continue
		}

		prefix := strings.Join(segments[:len(segments)-1], Delimiter)
		groups[prefix] = append(groups[prefix], GroupEntry{
			Pattern: p,
			Final:   segments[len(segments)-1],
			Count:   count,
		})
	}

	for prefix, entries := range groups {
		if len(entries) == 1 {
			final[entries[0].Pattern] = struct{}{}
			continue
		}

		if shouldGeneralize(prefix, entries, totalKeys) {
			final[prefix+Delimiter+WordToken] = struct{}{}
			continue
		}

		for _, entry := range entries {
			final[entry.Pattern] = struct{}{}
		}
	}

	return sortedPatterns(final)
}

// shouldGeneralize decides whether a prefix group's final segments collapse
// into WordToken. Groups with an empty prefix (patterns of empty leading
// segments) are never generalized.
func shouldGeneralize(prefix string, entries []GroupEntry, totalKeys int) bool {
	if prefix == "" {
		return false
	}

	frequency := groupFrequency(entries, totalKeys)
	return frequency >= generalizeFloor && frequency < generalizeCeil
}

// groupFrequency returns the group's share of the total key count as a
// percentage.
func groupFrequency(entries []GroupEntry, totalKeys int) float64 {
	groupTotal := 0
	for _, entry := range entries {
		groupTotal += entry.Count
	}
	return float64(groupTotal) / float64(totalKeys) * 100
}

// AnalyzeGroups returns the prefix groups for a phase-1 pattern table,
// sorted by descending key count and then prefix. Single-segment patterns
// do not participate in grouping and are not reported. The result mirrors
// the decisions Generalize would make for the same inputs.
func AnalyzeGroups(counts map[string]int, totalKeys int) []Group {
	if totalKeys == 0 {
		return nil
	}

	byPrefix := make(map[string][]GroupEntry)
	for p, count := range counts {
		segments := strings.Split(p, Delimiter)
		if len(segments) < 2 {
			continue
		}

		prefix := strings.Join(segments[:len(segments)-1], Delimiter)
		byPrefix[prefix] = append(byPrefix[prefix], GroupEntry{
			Pattern: p,
			Final:   segments[len(segments)-1],
			Count:   count,
		})
	}

	groups := make([]Group, 0, len(byPrefix))
	for prefix, entries := range byPrefix {
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].Count != entries[j].Count {
				return entries[i].Count > entries[j].Count
			}
			return entries[i].Pattern < entries[j].Pattern
		})

		groupTotal := 0
		for _, entry := range entries {
			groupTotal += entry.Count
		}

		groups = append(groups, Group{
			Prefix:      prefix,
			Entries:     entries,
			Total:       groupTotal,
			Frequency:   groupFrequency(entries, totalKeys),
			Generalized: len(entries) > 1 && shouldGeneralize(prefix, entries, totalKeys),
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Total != groups[j].Total {
			return groups[i].Total > groups[j].Total
		}
		return groups[i].Prefix < groups[j].Prefix
	})

	return groups
}
