package config

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var durationUnitRe = regexp.MustCompile(`(\d+)([dhms])`)

// ParseDuration parses a duration string supporting standard Go durations
// and extended units (d for days). Examples: "500ms", "5m", "1h30m", "2d".
func ParseDuration(s string) (time.Duration, error) {
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}

	matches := durationUnitRe.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return 0, fmt.Errorf("invalid duration: %s", s)
	}

	matchedLen := 0
	total := time.Duration(0)

	for _, match := range matches {
		matchedLen += match[1] - match[0]
		value, err := strconv.ParseInt(s[match[2]:match[3]], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration: %s", s)
		}

		switch s[match[4]:match[5]] {
		case "d":
			total += time.Hour * 24 * time.Duration(value)
		case "h":
			total += time.Hour * time.Duration(value)
		case "m":
			total += time.Minute * time.Duration(value)
		case "s":
			total += time.Second * time.Duration(value)
		}
	}

	// Reject inputs with stray characters between units.
	if matchedLen != len(s) {
		return 0, fmt.Errorf("invalid duration: %s", s)
	}

	return total, nil
}
