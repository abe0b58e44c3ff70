// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"
)

// Output format names shared by all subcommands.
const (
	FormatText  = "text"
	FormatGFF   = "gff"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Common holds the CLI fields every gffq subcommand shares.
type Common struct {
	DBPath string // first positional: the feature database

	// Output
	Output string // text|gff|json|jsonl
	Header bool   // true unless --no-header

	// Misc
	ConfigPath string
	Quiet      bool
	Version    bool
}

// Register wires the shared flags onto fs and returns a pointer to the
// "no-header" bool; callers set Common.Header = !noHeader after parsing.
func Register(fs *flag.FlagSet, c *Common) *bool {
	fs.StringVar(&c.Output, "output", FormatText, "output format: text | gff | json | jsonl [text]")
	fs.StringVar(&c.Output, "o", FormatText, "alias of --output")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text output [false]")
	fs.StringVar(&c.ConfigPath, "config", "", "TOML config file (default: user config dir)")
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "v", false, "alias of --version")
	return &noHeader
}

// Validate applies the shared CLI invariants.
func Validate(c *Common) error {
	if c.DBPath == "" {
		return errors.New("a feature database path is required")
	}
	switch c.Output {
	case FormatText, FormatGFF, FormatJSON, FormatJSONL:
	default:
		return fmt.Errorf("invalid --output %q", c.Output)
	}
	return nil
}
