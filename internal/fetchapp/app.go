// internal/fetchapp/app.go

// Package fetchapp implements the fetch subcommand: direct id lookups with
// no traversal. Missing ids are reported per id; the rest still stream.
package fetchapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"gffq-core/feature"
	"gffq-core/gffdb"
	"gffq-core/traverse"
	"gffq/internal/appcore"
	"gffq/internal/cli"
	"gffq/internal/cliutil"
	"gffq/internal/config"
	"gffq/internal/fetchcli"
	"gffq/internal/version"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := fetchcli.NewFlagSet("gffq fetch")

	opts, err := fetchcli.ParseArgs(fs, argv)
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

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return appcore.ExitUsage
	}
	if set := cliutil.SetFlags(fs); !set["output"] && !set["o"] && cfg.Output != "" {
		opts.Output = cfg.Output
	}

	coreOpts := appcore.Options{
		DBPath: opts.DBPath,
		Output: opts.Output,
		Header: opts.Header,
		Quiet:  opts.Quiet,
	}

	return appcore.Run(parent, stdout, stderr, coreOpts,
		func(ctx context.Context, store *gffdb.Store, emit func(feature.Feature) error) ([]error, error) {
			ids, err := traverse.Resolve(ctx, store, opts.IDs, "")
			if err != nil {
				return nil, err
			}
			var warns []error
			for _, id := range ids {
				f, err := store.Lookup(ctx, id)
				if errors.Is(err, gffdb.ErrNotFound) {
					warns = append(warns, err)
					continue
				}
				if err != nil {
					return warns, err
				}
				if err := emit(f); err != nil {
					return warns, err
				}
			}
			return warns, nil
		})
}
