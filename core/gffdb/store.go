// core/gffdb/store.go
package gffdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"gffq-core/feature"
)

// ErrNotFound is returned by Lookup when no feature has the requested id.
var ErrNotFound = errors.New("feature not found")

// Store is a read-mostly feature database backed by SQLite. All query
// methods are safe for concurrent readers; iteration order is rowid order,
// i.e. the order features appeared in the source file.
type Store struct {
	db *sql.DB
}

// Open opens an existing database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

const featureCols = "id, seqid, source, featuretype, start, end, score, strand, frame, attributes"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFeature(row rowScanner) (feature.Feature, error) {
	var f feature.Feature
	var attrs string
	err := row.Scan(&f.ID, &f.Seqid, &f.Source, &f.Featuretype,
		&f.Start, &f.End, &f.Score, &f.Strand, &f.Frame, &attrs)
	if err != nil {
		return feature.Feature{}, err
	}
	f.Attributes, err = feature.ParseAttributes(attrs)
	if err != nil {
		return feature.Feature{}, fmt.Errorf("stored attributes for %q: %w", f.ID, err)
	}
	return f, nil
}

func (s *Store) queryFeatures(ctx context.Context, query string, args ...any) ([]feature.Feature, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("feature query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []feature.Feature
	for rows.Next() {
		f, err := scanFeature(rows)
		if err != nil {
			return nil, fmt.Errorf("feature query: %w", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("feature query: %w", err)
	}
	return out, nil
}

// Lookup fetches one feature by id; ErrNotFound when absent.
func (s *Store) Lookup(ctx context.Context, id string) (feature.Feature, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+featureCols+" FROM features WHERE id = ?", id)
	f, err := scanFeature(row)
	if errors.Is(err, sql.ErrNoRows) {
		return feature.Feature{}, fmt.Errorf("%q: %w", id, ErrNotFound)
	}
	if err != nil {
		return feature.Feature{}, fmt.Errorf("lookup %q: %w", id, err)
	}
	return f, nil
}

// ChildrenOf returns the direct children of id (one hop), in file order.
func (s *Store) ChildrenOf(ctx context.Context, id string) ([]feature.Feature, error) {
	return s.queryFeatures(ctx,
		"SELECT "+featureCols+` FROM features f
		 JOIN relations r ON f.id = r.child
		 WHERE r.parent = ? ORDER BY f.rowid`, id)
}

// ParentsOf returns the direct parents of id (one hop), in file order.
func (s *Store) ParentsOf(ctx context.Context, id string) ([]feature.Feature, error) {
	return s.queryFeatures(ctx,
		"SELECT "+featureCols+` FROM features f
		 JOIN relations r ON f.id = r.parent
		 WHERE r.child = ? ORDER BY f.rowid`, id)
}

// FeaturesOfType returns every feature with the given featuretype, in file order.
func (s *Store) FeaturesOfType(ctx context.Context, featuretype string) ([]feature.Feature, error) {
	return s.queryFeatures(ctx,
		"SELECT "+featureCols+" FROM features WHERE featuretype = ? ORDER BY rowid", featuretype)
}

// escapeLike escapes the LIKE wildcards in a user-supplied substring.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

// SearchAttributes returns features whose attributes column contains text as
// a substring. A non-empty featuretype narrows the scan to that type first.
func (s *Store) SearchAttributes(ctx context.Context, text, featuretype string) ([]feature.Feature, error) {
	pat := "%" + escapeLike(text) + "%"
	if featuretype != "" {
		return s.queryFeatures(ctx,
			"SELECT "+featureCols+` FROM features
			 WHERE featuretype = ? AND attributes LIKE ? ESCAPE '\'
			 ORDER BY rowid`, featuretype, pat)
	}
	return s.queryFeatures(ctx,
		"SELECT "+featureCols+` FROM features
		 WHERE attributes LIKE ? ESCAPE '\'
		 ORDER BY rowid`, pat)
}
