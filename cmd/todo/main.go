package main

import (
	"fmt"
	"os"

	"todo-list/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// No signal handler: an interrupt ends the process even while a prompt waits for input
	root := cli.NewRootCommand(version, os.Stdin, os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", cli.NewErrorHandler(nil).HandleSimple(err))
		os.Exit(1)
	}
}
