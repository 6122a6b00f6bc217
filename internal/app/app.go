// Package app wires configuration, argument parsing, the projection
// engine and the output formatters into a single CLI run.
package app

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/0xdespot/compound/internal/calculator"
	"github.com/0xdespot/compound/internal/cli"
	"github.com/0xdespot/compound/internal/config"
	"github.com/0xdespot/compound/internal/render"
)

// Exit codes: 0 success, 1 invalid input or failed render, 2 malformed
// command line.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// Run executes one invocation and returns the process exit code. All
// output goes through stdout and stderr so tests can capture it.
func Run(argv []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitError
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, "Error: config:", err)
		return exitError
	}

	fs := cli.NewFlagSet("compound", stderr)
	opts, err := cli.ParseArgs(fs, argv, cfg)
	switch {
	case errors.Is(err, flag.ErrHelp):
		// Explicitly requested help prints to stdout; usage after a
		// flag error stays on stderr.
		fs.SetOutput(stdout)
		fs.Usage()
		return exitOK
	case errors.Is(err, cli.ErrUsage):
		// The flag set already reported the problem.
		return exitUsage
	case err != nil:
		fmt.Fprintln(stderr, "Error:", err)
		return exitError
	}

	for _, w := range opts.Warnings {
		fmt.Fprintln(stderr, "Warning:", w)
	}

	if opts.Version {
		fmt.Fprintln(stdout, cli.VersionLine())
		return exitOK
	}

	result, err := calculator.Project(opts.Input)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitError
	}

	formatter, err := render.Get(opts.Output)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitError
	}
	out, err := formatter.Render(result, render.Options{
		ShowChart: !opts.NoChart,
		ShowTable: !opts.NoTable,
		Quiet:     opts.Quiet,
		Currency:  opts.Currency,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitError
	}

	fmt.Fprintln(stdout, out)
	return exitOK
}
