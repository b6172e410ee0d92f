// Package main is the entry point for the termcrack CLI.
package main

import (
	"os"

	"github.com/termcrack/termcrack/cmd/termcrack/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
