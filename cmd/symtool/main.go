// Package main is the entry point for the symtool CLI.
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/aloe-os/symtool/internal/cli"
	"github.com/aloe-os/symtool/internal/logging"
)

// Build-time variables set via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ignoreSigpipe stops the runtime from re-raising SIGPIPE fatally when
// standard output is a closed pipe. Writes fail with EPIPE instead, which
// extract treats as normal termination.
func ignoreSigpipe() {
	signal.Ignore(syscall.SIGPIPE)
}

func main() {
	ignoreSigpipe()
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
		return cli.ExitCode(err)
	}

	return cli.ExitCode(nil)
}
