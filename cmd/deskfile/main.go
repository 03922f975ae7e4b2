package main

import (
	"os"
)

// set via ldflags at release time
var version = "dev"

func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
