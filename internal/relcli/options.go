// internal/relcli/options.go
package relcli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"gffq/internal/cli"
	"gffq/internal/clibase"
	"gffq/internal/cliutil"
)

// Options holds the flags of the children/parents subcommands.
type Options struct {
	clibase.Common

	IDs string // second positional: comma-separated root feature ids

	Limit         string   // depth int or stop featuretype
	Exclude       []string // featuretypes suppressed from output
	ExcludeSelf   bool
	PruneExcluded bool
	RootType      string // default root featuretype when no ids are given
}

// csvSlice appends comma-split values to a *[]string (for --exclude).
type csvSlice struct{ dst *[]string }

func (s *csvSlice) String() string {
	if s.dst == nil {
		return ""
	}
	return strings.Join(*s.dst, ",")
}

func (s *csvSlice) Set(v string) error {
	for _, tok := range strings.Split(v, ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			*s.dst = append(*s.dst, tok)
		}
	}
	return nil
}

// NewFlagSet returns the flag set with the command-specific usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := cli.NewFlagSet(name)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s <db> [ids] [options]\n", name)
		fmt.Fprintln(out, "\nArguments:")
		fmt.Fprintln(out, "  db                       Feature database created by 'gffq create'")
		fmt.Fprintln(out, "  ids                      Comma-separated root feature ids;")
		fmt.Fprintf(out, "                           omitted: all features of --root-type\n")
		fmt.Fprintln(out, "\nTraversal:")
		fmt.Fprintln(out, "  -l, --limit string       Max depth (integer) or stop featuretype")
		fmt.Fprintln(out, "  -e, --exclude string     Featuretype(s) to suppress (repeatable or CSV)")
		fmt.Fprintf(out, "      --exclude-self       Omit the root features themselves [%s]\n", def("exclude-self"))
		fmt.Fprintf(out, "      --prune-excluded     Also stop expansion at excluded features [%s]\n", def("prune-excluded"))
		fmt.Fprintln(out, "      --root-type string   Default root featuretype when ids omitted")
	})
	return fs
}

// ParseArgs registers and parses all flags, returning an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool

	noHeader := clibase.Register(fs, &o.Common)

	excl := &csvSlice{dst: &o.Exclude}
	fs.StringVar(&o.Limit, "limit", "", "max depth (integer) or stop featuretype")
	fs.StringVar(&o.Limit, "l", "", "alias of --limit")
	fs.Var(excl, "exclude", "featuretype(s) to suppress (repeatable or CSV)")
	fs.Var(excl, "e", "alias of --exclude")
	fs.BoolVar(&o.ExcludeSelf, "exclude-self", false, "omit the root features themselves [false]")
	fs.BoolVar(&o.PruneExcluded, "prune-excluded", false, "also stop expansion at excluded features [false]")
	fs.StringVar(&o.RootType, "root-type", "", "default root featuretype when ids omitted")

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
		// Validate reports the missing db path.
	case 1:
		o.DBPath = posArgs[0]
	case 2:
		o.DBPath, o.IDs = posArgs[0], posArgs[1]
	default:
		return o, fmt.Errorf("unexpected argument %q", posArgs[2])
	}
	return o, clibase.Validate(&o.Common)
}
