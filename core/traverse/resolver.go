// core/traverse/resolver.go
package traverse

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gffq-core/feature"
)

// ErrNoRoots is returned when an id list parses to nothing.
var ErrNoRoots = errors.New("empty feature id list")

// RootSource is the store slice the resolver needs.
type RootSource interface {
	FeaturesOfType(ctx context.Context, featuretype string) ([]feature.Feature, error)
}

// Resolve turns a caller-supplied comma-separated id list into an ordered,
// de-duplicated root set. When idsCSV is empty, every feature of defaultType
// becomes a root, in store order.
func Resolve(ctx context.Context, src RootSource, idsCSV, defaultType string) ([]string, error) {
	if strings.TrimSpace(idsCSV) != "" {
		var roots []string
		seen := map[string]struct{}{}
		for _, tok := range strings.Split(idsCSV, ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			if _, dup := seen[tok]; dup {
				continue
			}
			seen[tok] = struct{}{}
			roots = append(roots, tok)
		}
		if len(roots) == 0 {
			return nil, fmt.Errorf("%q: %w", idsCSV, ErrNoRoots)
		}
		return roots, nil
	}

	feats, err := src.FeaturesOfType(ctx, defaultType)
	if err != nil {
		return nil, fmt.Errorf("resolve roots of type %q: %w", defaultType, err)
	}
	roots := make([]string, 0, len(feats))
	for _, f := range feats {
		roots = append(roots, f.ID)
	}
	return roots, nil
}
