// Package pattern infers compact regex patterns describing the structural
// shape of dot-separated key collections (flattened JSON paths, log fields).
//
// Extraction runs in two phases:
//
//  1. Normalization - each key becomes a pattern string: numeric segments
//     are replaced with `\d+`, static segments are regex-escaped, and
//     segments are rejoined with `\.`. Identical patterns are deduplicated
//     and counted.
//  2. Frequency generalization - patterns sharing a prefix (all segments
//     except the last) are grouped. When a group accounts for 75-95% of
//     the input keys its distinct final segments collapse into a single
//     `\w+` wildcard. Below 75% the shared prefix is treated as
//     coincidence; at 95% and above it is treated as an intentional schema.
//     Both keep the patterns separate.
//
// Basic usage:
//
//	patterns := pattern.Extract([]string{
//	    "users.0.id",
//	    "users.1.name",
//	    "orders.12.total",
//	})
//	// -> ["orders\.\d+\.total", "users\.\d+\.id", "users\.\d+\.name"]
//
// The produced strings are plain regex source; this package never compiles
// or executes them.
package pattern
