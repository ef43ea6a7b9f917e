package main

import (
	"fmt"
	"os"

	"github.com/wahlandcase/commit-issue-prefix/internal/ui"
)

// Set via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		ui.Fail("%v", err)
		fmt.Fprintln(os.Stderr)
		os.Exit(1)
	}
}
