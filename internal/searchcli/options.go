// internal/searchcli/options.go
package searchcli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"gffq/internal/cli"
	"gffq/internal/clibase"
	"gffq/internal/cliutil"
)

// Options holds the flags of the search subcommand.
type Options struct {
	clibase.Common

	Text        string // second positional: substring to find in attributes
	Featuretype string // optional scan narrowing
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := cli.NewFlagSet(name)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s <db> <text> [options]\n", name)
		fmt.Fprintln(out, "\nArguments:")
		fmt.Fprintln(out, "  db                       Feature database created by 'gffq create'")
		fmt.Fprintln(out, "  text                     Substring to find in feature attributes")
		fmt.Fprintln(out, "\nSearch:")
		fmt.Fprintln(out, "  -t, --featuretype string  Restrict the scan to one featuretype")
	})
	return fs
}

// ParseArgs registers and parses all flags, returning an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool

	noHeader := clibase.Register(fs, &o.Common)
	fs.StringVar(&o.Featuretype, "featuretype", "", "restrict the scan to one featuretype")
	fs.StringVar(&o.Featuretype, "t", "", "alias of --featuretype")
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
		o.DBPath, o.Text = posArgs[0], posArgs[1]
	default:
		return o, fmt.Errorf("unexpected argument %q", posArgs[2])
	}
	if err := clibase.Validate(&o.Common); err != nil {
		return o, err
	}
	if o.Text == "" {
		return o, errors.New("a search text is required")
	}
	return o, nil
}
