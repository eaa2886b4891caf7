// Package main is the entry point for the blend CLI.
package main

import (
	"os"

	"github.com/f3rmion/blend/cmd/blend/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
