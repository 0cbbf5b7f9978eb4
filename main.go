package main

import (
	"os"

	"github.com/keyshape/keyshape/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
