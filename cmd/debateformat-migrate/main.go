// Package main provides the CLI entrypoint for debateformat-migrate.
//
// debateformat-migrate upgrades a debate format file from schema 1.x to
// schema 2.0:
//
//	debateformat-migrate [flags] original_file new_file
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sethvargo/go-envconfig"
)

func main() {
	err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, envconfig.OsLookuper())
	if err == nil {
		return
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Message != "" {
			fmt.Fprintln(os.Stderr, exitErr.Message)
		}

		os.Exit(exitErr.Code)
	}

	fmt.Fprintln(os.Stderr, err)
	os.Exit(ExitFailure)
}
