package feature

import (
	"strings"
	"testing"
)

func TestParseAttributes_MultiValue(t *testing.T) {
	a, err := ParseAttributes("ID=mRNA1;Parent=gene1,gene2;Note=hydrolase%3B putative")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := a.Get("ID"); got != "mRNA1" {
		t.Errorf("ID = %q, want mRNA1", got)
	}
	if got := a.Values("Parent"); len(got) != 2 || got[0] != "gene1" || got[1] != "gene2" {
		t.Errorf("Parent = %v, want [gene1 gene2]", got)
	}
	if got := a.Get("Note"); got != "hydrolase; putative" {
		t.Errorf("Note = %q (percent-decoding failed)", got)
	}
}

func TestParseAttributes_EmptyAndDot(t *testing.T) {
	for _, in := range []string{"", ".", "  "} {
		a, err := ParseAttributes(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if a.Len() != 0 {
			t.Errorf("parse %q: want empty attributes, got %d keys", in, a.Len())
		}
	}
}

func TestParseAttributes_Malformed(t *testing.T) {
	if _, err := ParseAttributes("=nokey;x=1"); err == nil {
		t.Fatal("expected error for field with empty key")
	}
}

func TestAttributesString_RoundTrip(t *testing.T) {
	a, err := ParseAttributes("ID=exon1;Parent=mRNA1;Note=a%2Cb")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	s := a.String()
	b, err := ParseAttributes(s)
	if err != nil {
		t.Fatalf("re-parse %q: %v", s, err)
	}
	if b.Get("Note") != "a,b" {
		t.Errorf("Note = %q after round trip, want %q", b.Get("Note"), "a,b")
	}
	if !strings.HasPrefix(s, "ID=exon1;") {
		t.Errorf("key order not preserved: %q", s)
	}
}

func TestGFFLine(t *testing.T) {
	f := Feature{
		ID: "gene1", Seqid: "chr1", Source: "test", Featuretype: "gene",
		Start: 100, End: 200, Strand: "+",
	}
	f.Attributes.Add("ID", "gene1")
	got := f.GFFLine()
	want := "chr1\ttest\tgene\t100\t200\t.\t+\t.\tID=gene1"
	if got != want {
		t.Errorf("GFFLine:\n got:  %q\n want: %q", got, want)
	}
}
