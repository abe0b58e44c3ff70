// internal/cli/help.go
package cli

import (
	"bufio"
	"flag"
	"fmt"
	"io"

	"gffq/internal/writers"
)

// PrintUsage flushes fs.Usage() through outw, tolerating broken pipes.
// Returns the exit code for the usage path (0, or 3 on write failure).
func PrintUsage(fs *flag.FlagSet, outw *bufio.Writer, stderr io.Writer) int {
	fs.SetOutput(outw)
	fs.Usage()
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}
