// internal/app/app.go

// Package app dispatches gffq subcommands.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"gffq-core/traverse"
	"gffq/internal/appcore"
	"gffq/internal/createapp"
	"gffq/internal/fetchapp"
	"gffq/internal/relapp"
	"gffq/internal/searchapp"
	"gffq/internal/version"
	"gffq/internal/writers"
)

// ErrUnsupported marks operations the tool knows about but does not
// implement. Callers can branch on it to distinguish "not built" from
// "bad input".
var ErrUnsupported = errors.New("unsupported operation")

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	if len(argv) == 0 {
		return printUsage(stdout, stderr)
	}

	cmd := argv[0]
	rest := argv[1:]
	switch cmd {
	case "fetch":
		return fetchapp.RunContext(ctx, rest, stdout, stderr)
	case "children":
		return relapp.RunContext(ctx, traverse.Children, rest, stdout, stderr)
	case "parents":
		return relapp.RunContext(ctx, traverse.Parents, rest, stdout, stderr)
	case "search":
		return searchapp.RunContext(ctx, rest, stdout, stderr)
	case "create":
		return createapp.RunContext(ctx, rest, stdout, stderr)
	case "region", "common", "clean":
		fmt.Fprintf(stderr, "gffq %s: %v\n", cmd, ErrUnsupported)
		return appcore.ExitUnsupported
	case "help", "-h", "--help":
		return printUsage(stdout, stderr)
	case "version", "-v", "--version":
		fmt.Fprintf(stdout, "gffq version %s\n", version.Version)
		return appcore.ExitOK
	default:
		fmt.Fprintf(stderr, "gffq: unknown command %q\n", cmd)
		if code := printUsage(stdout, stderr); code != 0 {
			return code
		}
		return appcore.ExitUsage
	}
}

func printUsage(stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	fmt.Fprintf(outw, `gffq – hierarchical feature database queries

Version: %s

Usage:
  gffq <command> [arguments]

Commands:
  create   <filename>        Import a GFF3 file into a feature database
  fetch    <db> <ids>        Fetch features by id
  children <db> [ids]        Walk child relations from the given roots
  parents  <db> [ids]        Walk parent relations from the given roots
  search   <db> <text>       Substring search over feature attributes
  region                     (not implemented)
  common                     (not implemented)
  clean                      (not implemented)

Run 'gffq <command> -h' for command flags.
`, version.Version)
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return appcore.ExitOK
	} else if err != nil {
		fmt.Fprintln(stderr, err)
		return appcore.ExitRuntime
	}
	return appcore.ExitOK
}
