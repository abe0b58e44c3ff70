package gff

import (
	"context"
	"strings"
	"testing"

	"gffq-core/feature"
)

const sample = `##gff-version 3
# a comment
chr1	test	gene	100	500	.	+	.	ID=gene1;Name=abc
chr1	test	mRNA	100	500	.	+	.	ID=mRNA1;Parent=gene1

chr1	test	exon	100	200	.	+	.	ID=exon1;Parent=mRNA1
##FASTA
>chr1
ACGT
`

func collect(t *testing.T, in string) []feature.Feature {
	t.Helper()
	var got []feature.Feature
	err := StreamCtx(context.Background(), strings.NewReader(in), func(f feature.Feature) error {
		got = append(got, f)
		return nil
	})
	if err != nil {
		t.Fatalf("stream: %v", err)
	}
	return got
}

func TestStream_SkipsCommentsAndFASTA(t *testing.T) {
	got := collect(t, sample)
	if len(got) != 3 {
		t.Fatalf("expected 3 features, got %d", len(got))
	}
	if got[0].ID != "gene1" || got[0].Featuretype != "gene" || got[0].Start != 100 || got[0].End != 500 {
		t.Errorf("unexpected first feature: %+v", got[0])
	}
	if got[1].Attributes.Get("Parent") != "gene1" {
		t.Errorf("Parent = %q, want gene1", got[1].Attributes.Get("Parent"))
	}
}

func TestStream_BadColumnCount(t *testing.T) {
	err := StreamCtx(context.Background(), strings.NewReader("chr1\tonly\tfour\tcols\n"),
		func(feature.Feature) error { return nil })
	if err == nil || !strings.Contains(err.Error(), "line 1") {
		t.Fatalf("expected column-count error with line number, got %v", err)
	}
}

func TestStream_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := StreamCtx(ctx, strings.NewReader(sample), func(feature.Feature) error { return nil })
	if err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestStream_EmitErrorStops(t *testing.T) {
	n := 0
	sentinel := strings.NewReader(sample)
	err := StreamCtx(context.Background(), sentinel, func(feature.Feature) error {
		n++
		if n == 2 {
			return context.DeadlineExceeded // any sentinel
		}
		return nil
	})
	if err != context.DeadlineExceeded || n != 2 {
		t.Fatalf("expected emit error to propagate after 2 records, got n=%d err=%v", n, err)
	}
}
