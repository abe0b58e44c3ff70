// internal/createcli/options.go
package createcli

import (
	"errors"
	"flag"
	"fmt"

	"gffq/internal/cli"
	"gffq/internal/cliutil"
	"gffq/internal/version"
)

// Options holds the flags of the create subcommand. It does not share the
// query Common block: --output here names the database file to write.
type Options struct {
	Source  string // positional: GFF3 file ('-' for stdin, .gz transparent)
	OutPath string // --output; default Source + ".db"
	Force   bool
	Quiet   bool
	Version bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := cli.NewFlagSet(name)
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "%s – import a GFF3 file into a feature database\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s <filename> [options]\n", name)
		fmt.Fprintln(out, "\nArguments:")
		fmt.Fprintln(out, "  filename                 GFF3 annotation file (.gz ok, '-' for stdin)")
		fmt.Fprintln(out, "\nOptions:")
		fmt.Fprintln(out, "  -o, --output string      Database file to write [<filename>.db]")
		fmt.Fprintln(out, "  -f, --force              Overwrite an existing database [false]")
		fmt.Fprintln(out, "  -q, --quiet              Suppress progress reporting [false]")
		fmt.Fprintln(out, "  -h, --help               Show this help and exit")
	}
	return fs
}

// ParseArgs registers and parses all flags, returning an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool

	fs.StringVar(&o.OutPath, "output", "", "database file to write [<filename>.db]")
	fs.StringVar(&o.OutPath, "o", "", "alias of --output")
	fs.BoolVar(&o.Force, "force", false, "overwrite an existing database [false]")
	fs.BoolVar(&o.Force, "f", false, "alias of --force")
	fs.BoolVar(&o.Quiet, "quiet", false, "suppress progress reporting [false]")
	fs.BoolVar(&o.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&o.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&o.Version, "v", false, "alias of --version")
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

	switch len(posArgs) {
	case 0:
		return o, errors.New("a GFF3 filename is required")
	case 1:
		o.Source = posArgs[0]
	default:
		return o, fmt.Errorf("unexpected argument %q", posArgs[1])
	}
	if o.OutPath == "" {
		if o.Source == "-" {
			return o, errors.New("--output is required when reading from stdin")
		}
		o.OutPath = o.Source + ".db"
	}
	return o, nil
}
