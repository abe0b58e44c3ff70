package writers

import (
	"bytes"
	"strings"
	"testing"

	"gffq-core/feature"
	"gffq/internal/clibase"
	"gffq/internal/output"
)

func send(t *testing.T, format string, header bool, feats ...feature.Feature) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	in, errCh := StartFeatureWriter(&buf, format, header, 4)
	for _, f := range feats {
		in <- f
	}
	close(in)
	err := <-errCh // writer goroutine is done once this arrives
	return buf.String(), err
}

func feat(id string) feature.Feature {
	return feature.Feature{ID: id, Seqid: "chr1", Featuretype: "gene", Start: 1, End: 2, Strand: "+"}
}

func TestStartFeatureWriter_Text(t *testing.T) {
	got, err := send(t, clibase.FormatText, true, feat("a"), feat("b"))
	if err != nil {
		t.Fatalf("writer: %v", err)
	}
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 || lines[0] != output.TSVHeader {
		t.Fatalf("unexpected text output: %q", got)
	}
}

func TestStartFeatureWriter_JSONBuffers(t *testing.T) {
	got, err := send(t, clibase.FormatJSON, false, feat("a"))
	if err != nil {
		t.Fatalf("writer: %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(got), "[") {
		t.Fatalf("expected JSON array, got %q", got)
	}
}

func TestStartFeatureWriter_UnknownFormat(t *testing.T) {
	_, err := send(t, "yaml", false, feat("a"))
	if err == nil || !strings.Contains(err.Error(), "unsupported output") {
		t.Fatalf("expected unsupported-output error, got %v", err)
	}
}
