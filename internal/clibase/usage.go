// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"gffq/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// extra prints command-specific sections (usage line, command flags).
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – hierarchical feature database queries\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string    Output: text | gff | json | jsonl [%s]\n", def("output"))
		fmt.Fprintf(out, "      --no-header        Suppress header line in text output [%s]\n", def("no-header"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "      --config string    TOML config file (default: user config dir)")
		fmt.Fprintf(out, "  -q, --quiet            Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version          Print version and exit")
		fmt.Fprintln(out, "  -h, --help             Show this help and exit")
	}
}
