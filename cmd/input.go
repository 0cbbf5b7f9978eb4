package cmd

import (
	"fmt"
	"os"

	"github.com/keyshape/keyshape/internal/config"
	"github.com/keyshape/keyshape/internal/keys"
	"github.com/spf13/viper"
)

// readKeys collects keys from the given arguments. A lone "-" reads stdin;
// anything else is treated as a file path or glob pattern. When jsonInput
// is set, every source is decoded as JSON documents and flattened into
// dot-separated paths instead of being read line by line.
func readKeys(args []string, jsonInput bool) ([]string, []string, error) {
	var fileArgs []string
	useStdin := false

	for _, arg := range args {
		if arg == "-" {
			useStdin = true
			continue
		}
		fileArgs = append(fileArgs, arg)
	}

	var all []string
	var sources []string

	if useStdin {
		read, err := readSource(os.Stdin, jsonInput)
		if err != nil {
			return nil, nil, fmt.Errorf("reading stdin: %w", err)
		}
		all = append(all, read...)
		sources = append(sources, "-")
	}

	if len(fileArgs) > 0 {
		files, err := config.ExpandGlobs(fileArgs)
		if err != nil {
			return nil, nil, err
		}

		for _, file := range files {
			read, err := readFileSource(file, jsonInput)
			if err != nil {
				return nil, nil, fmt.Errorf("reading %s: %w", file, err)
			}
			all = append(all, read...)
		}
		sources = append(sources, files...)
	}

	if viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "Read %d keys from %d sources\n", len(all), len(sources))
	}

	return all, sources, nil
}

func readSource(f *os.File, jsonInput bool) ([]string, error) {
	if jsonInput {
		return keys.FlattenReader(f)
	}
	return keys.Read(f)
}

func readFileSource(path string, jsonInput bool) ([]string, error) {
	if jsonInput {
		return keys.FlattenFile(path)
	}
	return keys.ReadFile(path)
}
