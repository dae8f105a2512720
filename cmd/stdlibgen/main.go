// Package main is the entry point for the stdlibgen CLI tool.
// stdlibgen embeds a text module into a source file template as quoted string literals.
package main

import (
	"os"

	"github.com/jpequegn/stdlibgen/cmd/stdlibgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
