// internal/cli/flagset.go
package cli

import (
	"flag"
	"io"
)

// NewFlagSet returns a FlagSet with ContinueOnError and discarded output.
// Parse errors and usage are reported by the app layer, not by the FlagSet.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}
