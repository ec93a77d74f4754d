// Package main is the entry point for the gomdoc CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/gomdoc/internal/cli"
	"github.com/yaklabco/gomdoc/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code. Warnings exit with 1; running out of
// memory is not recovered and aborts the process.
func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, cli.ErrWarningsFound) {
			return cli.ExitWarnings
		}
		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
		return cli.ExitWarnings
	}

	return cli.ExitSuccess
}
