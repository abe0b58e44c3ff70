// internal/output/output.go
package output

import (
	"fmt"
	"io"

	"gffq-core/feature"
)

// TSVHeader is the canonical header row for text/TSV output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "id\tfeaturetype\tseqid\tstart\tend\tstrand"

func tsvLine(f feature.Feature) string {
	strand := f.Strand
	if strand == "" {
		strand = "."
	}
	return fmt.Sprintf("%s\t%s\t%s\t%d\t%d\t%s",
		f.ID, f.Featuretype, f.Seqid, f.Start, f.End, strand)
}

// StreamText streams features as TSV rows from a channel to the writer.
func StreamText(w io.Writer, in <-chan feature.Feature, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for f := range in {
		if _, err := fmt.Fprintln(w, tsvLine(f)); err != nil {
			return err
		}
	}
	return nil
}

// StreamGFF streams features as 9-column GFF3 lines.
func StreamGFF(w io.Writer, in <-chan feature.Feature) error {
	for f := range in {
		if _, err := fmt.Fprintln(w, f.GFFLine()); err != nil {
			return err
		}
	}
	return nil
}
