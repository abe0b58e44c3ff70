package relcli

import (
	"errors"
	"flag"
	"reflect"
	"testing"
)

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	o, err := ParseArgs(NewFlagSet("children"), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return o
}

func TestParse_Positionals(t *testing.T) {
	o := mustParse(t, "db.sqlite", "geneA,geneB", "--limit", "2")
	if o.DBPath != "db.sqlite" || o.IDs != "geneA,geneB" || o.Limit != "2" {
		t.Errorf("bad parse: %+v", o)
	}
	if !o.Header {
		t.Error("header should default on")
	}
}

func TestParse_IDsOptional(t *testing.T) {
	o := mustParse(t, "db.sqlite", "--root-type", "mRNA")
	if o.IDs != "" || o.RootType != "mRNA" {
		t.Errorf("bad parse: %+v", o)
	}
}

func TestParse_ExcludeRepeatableAndCSV(t *testing.T) {
	o := mustParse(t, "db.sqlite", "g1",
		"--exclude", "exon,CDS",
		"-e", "mRNA")
	want := []string{"exon", "CDS", "mRNA"}
	if !reflect.DeepEqual(o.Exclude, want) {
		t.Errorf("Exclude = %v, want %v", o.Exclude, want)
	}
}

func TestParse_FlagsAfterPositionals(t *testing.T) {
	o := mustParse(t, "db.sqlite", "g1", "--exclude-self", "--no-header")
	if !o.ExcludeSelf || o.Header {
		t.Errorf("bad parse: %+v", o)
	}
}

func TestParse_MissingDB(t *testing.T) {
	if _, err := ParseArgs(NewFlagSet("children"), []string{"--limit", "2"}); err == nil {
		t.Fatal("expected error without db path")
	}
}

func TestParse_TooManyPositionals(t *testing.T) {
	if _, err := ParseArgs(NewFlagSet("children"), []string{"db", "ids", "extra"}); err == nil {
		t.Fatal("expected error for extra positional")
	}
}

func TestParse_BadOutput(t *testing.T) {
	if _, err := ParseArgs(NewFlagSet("children"), []string{"db", "--output", "xml"}); err == nil {
		t.Fatal("expected error for invalid output format")
	}
}

func TestParse_Help(t *testing.T) {
	_, err := ParseArgs(NewFlagSet("children"), []string{"-h"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected flag.ErrHelp, got %v", err)
	}
}
