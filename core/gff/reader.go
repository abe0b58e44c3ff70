// core/gff/reader.go
package gff

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gffq-core/feature"
)

// StreamCtx parses GFF3 from r and calls emit once per feature line.
// Comment lines and directives are skipped; an inline "##FASTA" section
// terminates parsing. It is cancelable, checking ctx between records.
func StreamCtx(ctx context.Context, r io.Reader, emit func(feature.Feature) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 16 * 1024 * 1024
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "##FASTA") {
			break
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, ">") { // bare FASTA without the directive
			break
		}

		f, err := parseLine(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err := emit(f); err != nil {
			return err
		}
	}
	return sc.Err()
}

// StreamPathCtx opens path (gzip and "-" for stdin handled) and streams it.
func StreamPathCtx(ctx context.Context, path string, emit func(feature.Feature) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	return StreamCtx(ctx, rc, emit)
}

// parseLine splits one tab-delimited GFF3 record. The ID attribute, when
// present, becomes Feature.ID; callers derive IDs for the rest.
func parseLine(line string) (feature.Feature, error) {
	cols := strings.Split(line, "\t")
	if len(cols) != 9 {
		return feature.Feature{}, fmt.Errorf("expected 9 columns, got %d", len(cols))
	}
	start, err := strconv.Atoi(cols[3])
	if err != nil {
		return feature.Feature{}, fmt.Errorf("bad start %q", cols[3])
	}
	end, err := strconv.Atoi(cols[4])
	if err != nil {
		return feature.Feature{}, fmt.Errorf("bad end %q", cols[4])
	}
	attrs, err := feature.ParseAttributes(cols[8])
	if err != nil {
		return feature.Feature{}, err
	}
	dot := func(s string) string {
		if s == "." {
			return ""
		}
		return s
	}
	return feature.Feature{
		ID:          attrs.Get("ID"),
		Seqid:       cols[0],
		Source:      dot(cols[1]),
		Featuretype: cols[2],
		Start:       start,
		End:         end,
		Score:       dot(cols[5]),
		Strand:      dot(cols[6]),
		Frame:       dot(cols[7]),
		Attributes:  attrs,
	}, nil
}
