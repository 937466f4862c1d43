package main

import (
	"os"

	"github.com/tunerlab/pandora-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
