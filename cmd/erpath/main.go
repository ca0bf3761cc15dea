// Package main is the entry point for the erpath CLI.
package main

import (
	"fmt"
	"os"

	"github.com/thoreinstein/erpath/cmd/erpath/commands"
	"github.com/thoreinstein/erpath/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		if !commands.IsSilent(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			if s := errors.Suggestion(err); s != "" {
				fmt.Fprintf(os.Stderr, "  %s\n", s)
			}
		}
		os.Exit(errors.ExitCode(err))
	}
}
