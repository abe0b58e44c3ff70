// internal/relapp/app.go

// Package relapp implements the children and parents subcommands: relation
// traversal from a root set, streamed to the configured writer.
package relapp

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
	"gffq/internal/relcli"
	"gffq/internal/version"
)

// Default root featuretypes when no ids are supplied.
const (
	defaultChildrenRoot = "gene"
	defaultParentsRoot  = "exon"
)

func Run(dir traverse.Direction, argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), dir, argv, stdout, stderr)
}

func RunContext(parent context.Context, dir traverse.Direction, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	name := "gffq " + dir.String()
	fs := relcli.NewFlagSet(name)

	opts, err := relcli.ParseArgs(fs, argv)
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
	applyConfig(&opts, dir, cfg, cliutil.SetFlags(fs))

	limit, err := traverse.ParseLimit(opts.Limit)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return appcore.ExitUsage
	}

	rootType := opts.RootType
	if rootType == "" {
		if dir == traverse.Parents {
			rootType = defaultParentsRoot
		} else {
			rootType = defaultChildrenRoot
		}
	}

	coreOpts := appcore.Options{
		DBPath: opts.DBPath,
		Output: opts.Output,
		Header: opts.Header,
		Quiet:  opts.Quiet,
	}
	trOpts := traverse.Options{
		Direction:     dir,
		Exclude:       opts.Exclude,
		Limit:         limit,
		IncludeRoots:  true,
		ExcludeRoots:  opts.ExcludeSelf,
		PruneExcluded: opts.PruneExcluded,
	}

	return appcore.Run(parent, stdout, stderr, coreOpts,
		func(ctx context.Context, store *gffdb.Store, emit func(feature.Feature) error) ([]error, error) {
			roots, err := traverse.Resolve(ctx, store, opts.IDs, rootType)
			if err != nil {
				return nil, err
			}
			cur := traverse.New(ctx, store, roots, trOpts)
			return appcore.PumpCursor(cur, emit)
		})
}

// applyConfig fills option gaps from the config file; flags the user set win.
func applyConfig(o *relcli.Options, dir traverse.Direction, cfg config.Config, set map[string]bool) {
	if !set["output"] && !set["o"] && cfg.Output != "" {
		o.Output = cfg.Output
	}
	if !set["exclude"] && !set["e"] && len(cfg.Exclude) > 0 {
		o.Exclude = append([]string(nil), cfg.Exclude...)
	}
	if !set["root-type"] && o.RootType == "" {
		if dir == traverse.Parents {
			o.RootType = cfg.ParentsRootType
		} else {
			o.RootType = cfg.ChildrenRootType
		}
	}
}
