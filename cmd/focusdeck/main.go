// Package main is the entry point for the focusdeck CLI/TUI.
package main

import (
	"os"

	"github.com/focusdeck-io/focusdeck/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
