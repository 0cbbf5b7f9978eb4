// Package keys turns byte streams into key lists for pattern extraction.
//
// Keys arrive either as plain text (one key per line) or as JSON documents
// that are flattened into dot-separated paths.
package keys

import (
	"bufio"
	"io"
	"os"
)

// maxLineSize bounds a single key line (1MB).
const maxLineSize = 1024 * 1024

// Read reads one key per line from r. Lines are passed through verbatim;
// blank lines are kept because the extractor defines its own skip rule for
// empty keys.
func Read(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, maxLineSize)
	scanner.Buffer(buf, maxLineSize)

	var keys []string
	for scanner.Scan() {
		keys = append(keys, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return keys, nil
}

// ReadFile opens path and reads all keys from it.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}
