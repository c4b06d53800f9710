package main

import (
	"os"

	"github.com/kellerwx/tempscope/cmd/tempscope/commands"
)

// main is the entry point for the tempscope CLI.
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
