// Package main is the entry point for the myshorts CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jmwatte/myshorts/cmd/myshorts/commands"
	"github.com/jmwatte/myshorts/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Suggestion != "" {
			fmt.Fprintf(os.Stderr, "  %s\n", exitErr.Suggestion)
		}
		os.Exit(exitErr.Code)
	}
	os.Exit(errors.ExitUser)
}
