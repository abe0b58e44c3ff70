// internal/createapp/app.go

// Package createapp implements the create subcommand: GFF3 import into a
// new feature database.
package createapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"gffq-core/gffdb"
	"gffq/internal/appcore"
	"gffq/internal/cli"
	"gffq/internal/createcli"
	"gffq/internal/version"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := createcli.NewFlagSet("gffq create")

	opts, err := createcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cli.PrintUsage(fs, outw, stderr)
		}
		fmt.Fprintln(stderr, err)
		if code := cli.PrintUsage(fs, outw, stderr); code != 0 {
			return code
		}
		return appcore.ExitUsage
	}
	if opts.Version {
		fmt.Fprintf(outw, "gffq version %s\n", version.Version)
		_ = outw.Flush()
		return appcore.ExitOK
	}

	n, err := gffdb.Create(parent, opts.Source, opts.OutPath, gffdb.CreateOptions{
		Force:    opts.Force,
		Verbose:  !opts.Quiet,
		Progress: stderr,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return appcore.ExitInterrupted
		}
		fmt.Fprintln(stderr, err)
		return appcore.ExitRuntime
	}
	if !opts.Quiet {
		fmt.Fprintf(outw, "%s: %d features\n", opts.OutPath, n)
		_ = outw.Flush()
	}
	return appcore.ExitOK
}
