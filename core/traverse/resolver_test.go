package traverse

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestResolve_CSV(t *testing.T) {
	st := newFakeStore()
	got, err := Resolve(context.Background(), st, " geneA, geneB ,,geneA ", "gene")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := []string{"geneA", "geneB"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestResolve_OnlySeparators(t *testing.T) {
	st := newFakeStore()
	_, err := Resolve(context.Background(), st, " , ,", "gene")
	if !errors.Is(err, ErrNoRoots) {
		t.Fatalf("expected ErrNoRoots, got %v", err)
	}
}

func TestResolve_DefaultType(t *testing.T) {
	st := newFakeStore().
		add("geneA", "gene").
		add("exon1", "exon").
		add("geneB", "gene")
	got, err := Resolve(context.Background(), st, "", "gene")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := []string{"geneA", "geneB"} // store order
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestResolve_DefaultTypeEmptyStore(t *testing.T) {
	st := newFakeStore()
	got, err := Resolve(context.Background(), st, "", "gene")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no roots, got %v", got)
	}
}
