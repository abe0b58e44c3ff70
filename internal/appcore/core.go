// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"gffq-core/feature"
	"gffq-core/gffdb"
	"gffq-core/traverse"
	"gffq/internal/writers"
)

// Exit codes shared by all subcommands.
const (
	ExitOK          = 0
	ExitNoMatch     = 1
	ExitUsage       = 2
	ExitRuntime     = 3
	ExitUnsupported = 5
	ExitInterrupted = 130
)

// Options is the shared runtime configuration of a query subcommand.
type Options struct {
	DBPath string
	Output string
	Header bool
	Quiet  bool
}

// Produce streams features through emit. It returns non-fatal warnings
// (reported to stderr) and the first fatal error.
type Produce func(ctx context.Context, store *gffdb.Store, emit func(feature.Feature) error) ([]error, error)

// Run opens the store, wires the writer goroutine, and drives produce.
// Emission is streaming: each emitted feature goes straight to the writer
// channel, and a consumer that stops reading cancels the producer.
func Run(parent context.Context, stdout, stderr io.Writer, o Options, produce Produce) int {
	outw := bufio.NewWriter(stdout)

	store, err := gffdb.Open(o.DBPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitRuntime
	}
	defer func() { _ = store.Close() }()

	inCh, writeErr := writers.StartFeatureWriter(outw, o.Output, o.Header, 64)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	total := 0
	warns, perr := produce(ctx, store, func(f feature.Feature) error {
		select {
		case inCh <- f:
			total++
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
	close(inCh)

	if !o.Quiet {
		for _, w := range warns {
			fmt.Fprintf(stderr, "warning: %v\n", w)
		}
	}

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return ExitRuntime
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return ExitRuntime
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return ExitInterrupted
		}
		fmt.Fprintln(stderr, perr)
		if errors.Is(perr, traverse.ErrNoRoots) {
			return ExitUsage
		}
		return ExitRuntime
	}
	if total == 0 {
		return ExitNoMatch
	}
	return ExitOK
}

// PumpCursor drains a traversal cursor into emit and folds the cursor's
// warnings and fatal error into the Produce contract.
func PumpCursor(cur *traverse.Cursor, emit func(feature.Feature) error) ([]error, error) {
	defer func() { _ = cur.Close() }()
	for cur.Next() {
		if err := emit(cur.Feature()); err != nil {
			return cur.Warnings(), err
		}
	}
	return cur.Warnings(), cur.Err()
}
