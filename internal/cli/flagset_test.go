package cli

import (
	"flag"
	"io"
	"testing"
)

func TestNewFlagSet(t *testing.T) {
	fs := NewFlagSet("test")
	if fs.ErrorHandling() != flag.ContinueOnError {
		t.Errorf("error handling = %v, want ContinueOnError", fs.ErrorHandling())
	}
	if fs.Output() != io.Discard {
		t.Error("parse output should be discarded; the app layer reports errors")
	}
	if err := fs.Parse([]string{"--no-such-flag"}); err == nil {
		t.Error("expected a parse error for an unknown flag")
	}
}
