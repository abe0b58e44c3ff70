// internal/writers/feature.go
package writers

import (
	"fmt"
	"io"

	"gffq-core/feature"
	"gffq/internal/clibase"
	"gffq/internal/output"
)

// StartFeatureWriter spins up a writer goroutine for feature records.
// Producers send on the returned channel and close it when done; the final
// write status arrives on the error channel. json buffers (it is a single
// array); text, gff and jsonl stream record by record.
func StartFeatureWriter(out io.Writer, format string, header bool, bufSize int) (chan<- feature.Feature, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan feature.Feature, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case clibase.FormatJSON:
			var buf []feature.Feature
			for f := range in {
				buf = append(buf, f)
			}
			err = output.WriteJSON(out, buf)

		case clibase.FormatJSONL:
			err = output.StreamJSONL(out, in)

		case clibase.FormatGFF:
			err = output.StreamGFF(out, in)

		case clibase.FormatText:
			err = output.StreamText(out, in, header)

		default:
			err = fmt.Errorf("unsupported output %q", format)
		}
		// Drain so producers never block on an early writer failure.
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}
