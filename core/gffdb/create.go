// core/gffdb/create.go
package gffdb

import (
	"context"
	"fmt"
	"io"
	"os"

	"gffq-core/feature"
	"gffq-core/gff"
)

const schema = `
CREATE TABLE features (
	id          TEXT PRIMARY KEY,
	seqid       TEXT NOT NULL,
	source      TEXT,
	featuretype TEXT NOT NULL,
	start       INTEGER NOT NULL,
	end         INTEGER NOT NULL,
	score       TEXT,
	strand      TEXT,
	frame       TEXT,
	attributes  TEXT
);
CREATE TABLE relations (
	parent TEXT NOT NULL,
	child  TEXT NOT NULL,
	UNIQUE(parent, child)
);
`

const indexDDL = `
CREATE INDEX idx_featuretype ON features(featuretype);
CREATE INDEX idx_rel_parent  ON relations(parent, child);
CREATE INDEX idx_rel_child   ON relations(child, parent);
`

// CreateOptions controls database import.
type CreateOptions struct {
	Force    bool      // overwrite an existing database file
	Verbose  bool      // report progress to Progress
	Progress io.Writer // destination for progress lines (stderr typically)
}

// Create imports the GFF3 file at sourcePath into a new database at outPath.
// Features without an ID attribute get a derived id
// "featuretype-seqid-start-end" (with a numeric suffix on collision).
// Parent/child edges come from the multi-valued Parent attribute.
// It returns the number of imported features.
func Create(ctx context.Context, sourcePath, outPath string, opts CreateOptions) (int, error) {
	if _, err := os.Stat(outPath); err == nil {
		if !opts.Force {
			return 0, fmt.Errorf("%s already exists (use --force to overwrite)", outPath)
		}
		if err := os.Remove(outPath); err != nil {
			return 0, fmt.Errorf("remove existing %s: %w", outPath, err)
		}
	}

	st, err := Open(outPath)
	if err != nil {
		return 0, err
	}
	defer func() { _ = st.Close() }()

	if _, err := st.db.ExecContext(ctx, schema); err != nil {
		return 0, fmt.Errorf("create schema: %w", err)
	}

	tx, err := st.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	insFeat, err := tx.PrepareContext(ctx,
		"INSERT INTO features ("+featureCols+") VALUES (?,?,?,?,?,?,?,?,?,?)")
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = insFeat.Close() }()

	insRel, err := tx.PrepareContext(ctx,
		"INSERT OR IGNORE INTO relations (parent, child) VALUES (?, ?)")
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = insRel.Close() }()

	count := 0
	derived := map[string]int{}

	err = gff.StreamPathCtx(ctx, sourcePath, func(f feature.Feature) error {
		if f.ID == "" {
			base := fmt.Sprintf("%s-%s-%d-%d", f.Featuretype, f.Seqid, f.Start, f.End)
			if n := derived[base]; n > 0 {
				f.ID = fmt.Sprintf("%s-%d", base, n)
			} else {
				f.ID = base
			}
			derived[base]++
		}
		_, err := insFeat.ExecContext(ctx, f.ID, f.Seqid, f.Source, f.Featuretype,
			f.Start, f.End, f.Score, f.Strand, f.Frame, f.Attributes.String())
		if err != nil {
			return fmt.Errorf("insert feature %q: %w", f.ID, err)
		}
		for _, parent := range f.Attributes.Values("Parent") {
			if _, err := insRel.ExecContext(ctx, parent, f.ID); err != nil {
				return fmt.Errorf("insert relation %q->%q: %w", parent, f.ID, err)
			}
		}
		count++
		if opts.Verbose && opts.Progress != nil && count%10000 == 0 {
			fmt.Fprintf(opts.Progress, "imported %d features...\n", count)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("import %s: %w", sourcePath, err)
	}

	if _, err := tx.ExecContext(ctx, indexDDL); err != nil {
		return 0, fmt.Errorf("create indexes: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	if opts.Verbose && opts.Progress != nil {
		fmt.Fprintf(opts.Progress, "done: %d features -> %s\n", count, outPath)
	}
	return count, nil
}
