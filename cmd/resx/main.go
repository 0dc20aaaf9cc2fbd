package main

import (
	"os"

	"github.com/avasile/resx-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
