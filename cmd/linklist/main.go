// Package main provides the linklist binary entry point.
package main

import (
	"fmt"
	"os"

	"github.com/linkrot/crawl-core/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
