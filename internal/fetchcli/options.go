// internal/fetchcli/options.go
package fetchcli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"gffq/internal/cli"
	"gffq/internal/clibase"
	"gffq/internal/cliutil"
)

// Options holds the flags of the fetch subcommand.
type Options struct {
	clibase.Common

	IDs string // second positional: comma-separated feature ids (required)
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := cli.NewFlagSet(name)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s <db> <ids> [options]\n", name)
		fmt.Fprintln(out, "\nArguments:")
		fmt.Fprintln(out, "  db                       Feature database created by 'gffq create'")
		fmt.Fprintln(out, "  ids                      Comma-separated feature ids to fetch")
	})
	return fs
}

// ParseArgs registers and parses all flags, returning an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool

	noHeader := clibase.Register(fs, &o.Common)
	fs.BoolVar(&help, "h", false, "show this help [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if help {
		return o, flag.ErrHelp
	}
	if o.Version {
		return o, nil
	}
	o.Header = !*noHeader

	switch len(posArgs) {
	case 0:
	case 1:
		o.DBPath = posArgs[0]
	case 2:
		o.DBPath, o.IDs = posArgs[0], posArgs[1]
	default:
		return o, fmt.Errorf("unexpected argument %q", posArgs[2])
	}
	if err := clibase.Validate(&o.Common); err != nil {
		return o, err
	}
	if o.IDs == "" {
		return o, errors.New("a comma-separated id list is required")
	}
	return o, nil
}
