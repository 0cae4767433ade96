// internal/app/app.go
package app

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"punnett/internal/cli"
	"punnett/internal/cmdutil"
	"punnett/internal/pipeline"
	"punnett/internal/version"
	"punnett/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitCross    = 1 // the genotypes could not be crossed
	ExitUsage    = 2
	ExitWrite    = 3
	ExitCanceled = 130
)

// RunContext parses argv, crosses the two genotypes and writes the report to
// stdout. Diagnostics go to stderr. It returns the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet("punnett")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cli.PrintUsage(outw, fs)
			return flush(outw, stderr, ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		cli.PrintUsage(stderr, fs)
		return ExitUsage
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "punnett version %s\n", version.Version)
		return flush(outw, stderr, ExitOK)
	}

	logger := cmdutil.NewLogger(stderr, opts.Quiet)
	defer func() { _ = logger.Sync() }()

	cross, err := pipeline.Run(parent, pipeline.Config{Strict: opts.Strict, Logger: logger}, opts.Genotype1, opts.Genotype2)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return ExitCanceled
		}
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitCross
	}

	// Render fully before touching stdout so a failing writer leaves no
	// partial report behind.
	var buf bytes.Buffer
	wopt := writers.Options{Sort: opts.Sort, Header: opts.Header, Phenotypes: opts.Phenotypes}
	if err := writers.Write(opts.Output, &buf, cross, wopt); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitWrite
	}
	if _, err := buf.WriteTo(outw); err != nil {
		if writers.IsBrokenPipe(err) {
			return ExitOK
		}
		_, _ = fmt.Fprintln(stderr, err)
		return ExitWrite
	}
	return flush(outw, stderr, ExitOK)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitWrite
	}
	return code
}
