package keys

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
)

// Flatten converts a decoded JSON value into dot-separated keys. Object
// fields contribute their names, array elements their indices, so
// {"users":[{"id":1}]} yields "users.0.id". Scalars, nulls, and empty
// containers terminate a path. A scalar at the root has no path and yields
// nothing.
func Flatten(doc interface{}) []string {
	var keys []string
	flattenValue("", doc, &keys)
	return keys
}

// FlattenReader decodes a stream of JSON documents from r and flattens each
// of them. Both a single document and JSON-lines style concatenation are
// accepted.
func FlattenReader(r io.Reader) ([]string, error) {
	dec := json.NewDecoder(r)

	var keys []string
	for {
		var doc interface{}
		if err := dec.Decode(&doc); err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		keys = append(keys, Flatten(doc)...)
	}

	return keys, nil
}

// FlattenFile opens path and flattens all JSON documents in it.
func FlattenFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return FlattenReader(f)
}

func flattenValue(path string, v interface{}, keys *[]string) {
	switch val := v.(type) {
	case map[string]interface{}:
		if len(val) == 0 {
			appendPath(path, keys)
			return
		}
		// Sorted field order keeps output deterministic.
		names := make([]string, 0, len(val))
		for name := range val {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			flattenValue(joinPath(path, name), val[name], keys)
		}

	case []interface{}:
		if len(val) == 0 {
			appendPath(path, keys)
			return
		}
		for i, item := range val {
			flattenValue(joinPath(path, strconv.Itoa(i)), item, keys)
		}

	default:
		appendPath(path, keys)
	}
}

func joinPath(path, segment string) string {
	if path == "" {
		return segment
	}
	return path + "." + segment
}

func appendPath(path string, keys *[]string) {
	if path != "" {
		*keys = append(*keys, path)
	}
}
