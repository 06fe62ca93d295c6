package main

import (
	"os"

	"github.com/go-canopy/canopy/cmd/canopy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
