// core/traverse/traverse.go

// Package traverse walks the parent/child relation graph of a feature store
// and streams matching features. The walk is breadth-first per root, shares
// one visited set across roots, and is pull-based: each Next() advances at
// most one expansion step, so abandoning a cursor is free.
package traverse

import (
	"context"
	"errors"
	"fmt"

	"gffq-core/feature"
	"gffq-core/gffdb"
)

// ErrCycleSuspected tags warnings raised when the relation graph is not the
// DAG it is supposed to be (a back edge, or the depth ceiling was hit).
var ErrCycleSuspected = errors.New("cycle suspected")

// DefaultSafetyCeiling bounds traversal depth when no depth limit is set,
// so malformed edge data cannot make a walk run away.
const DefaultSafetyCeiling = 100

// Direction selects which relation edges the walk follows.
type Direction int

const (
	Children Direction = iota
	Parents
)

func (d Direction) String() string {
	if d == Parents {
		return "parents"
	}
	return "children"
}

// Store is the slice of the feature database the engine consumes. The walk
// never mutates the store; implementations must be safe for repeated reads.
type Store interface {
	Lookup(ctx context.Context, id string) (feature.Feature, error)
	ChildrenOf(ctx context.Context, id string) ([]feature.Feature, error)
	ParentsOf(ctx context.Context, id string) ([]feature.Feature, error)
}

// Options configures one traversal.
type Options struct {
	Direction Direction

	// Exclude lists featuretypes suppressed from emission. Excluded nodes
	// are still expanded (their relatives remain candidates) unless
	// PruneExcluded is set.
	Exclude []string

	// Limit bounds expansion by depth or by stop featuretype; zero = none.
	Limit Limit

	// IncludeRoots emits the root features themselves (depth 0).
	IncludeRoots bool

	// ExcludeRoots drops every root id from the output, even when a root is
	// independently reachable from another root.
	ExcludeRoots bool

	// PruneExcluded stops expansion at excluded nodes instead of only
	// suppressing their emission.
	PruneExcluded bool

	// SafetyCeiling overrides DefaultSafetyCeiling (0 keeps the default).
	SafetyCeiling int
}

type visit struct {
	f     feature.Feature
	depth int
}

// Cursor streams the traversal result. Usage follows the sql.Rows idiom:
//
//	cur := traverse.New(ctx, store, roots, opts)
//	defer cur.Close()
//	for cur.Next() {
//	    f := cur.Feature()
//	    ...
//	}
//	err := cur.Err()
//
// Warnings() collects per-root, non-fatal conditions (missing roots,
// suspected cycles); they never stop the remaining roots.
type Cursor struct {
	ctx   context.Context
	store Store
	opts  Options

	roots   []string
	rootSet map[string]struct{}
	exclude map[string]struct{}
	ceiling int

	ri          int               // next root index
	queue       []visit           // frontier for the root being walked
	pending     []feature.Feature // unconsumed emissions from the last expansion
	visited     map[string]int    // id -> depth at first discovery
	discovered  map[string]string // BFS-tree edge: id -> id it was reached from
	ceilingHit  bool              // ceiling warning already raised for this root
	emittedRoot bool              // nextRoot staged a root emission in cur

	cur      feature.Feature
	warnings []error
	err      error
	closed   bool
}

// New starts a traversal from roots, in order. No store access happens until
// the first Next().
func New(ctx context.Context, store Store, roots []string, opts Options) *Cursor {
	ceiling := opts.SafetyCeiling
	if ceiling <= 0 {
		ceiling = DefaultSafetyCeiling
	}
	c := &Cursor{
		ctx:        ctx,
		store:      store,
		opts:       opts,
		roots:      roots,
		rootSet:    make(map[string]struct{}, len(roots)),
		exclude:    make(map[string]struct{}, len(opts.Exclude)),
		ceiling:    ceiling,
		visited:    make(map[string]int),
		discovered: make(map[string]string),
	}
	for _, id := range roots {
		c.rootSet[id] = struct{}{}
	}
	for _, t := range opts.Exclude {
		c.exclude[t] = struct{}{}
	}
	return c
}

func (c *Cursor) shouldEmit(f feature.Feature) bool {
	if _, ex := c.exclude[f.Featuretype]; ex {
		return false
	}
	if c.opts.ExcludeRoots {
		if _, isRoot := c.rootSet[f.ID]; isRoot {
			return false
		}
	}
	return true
}

func (c *Cursor) shouldDescend(f feature.Feature, depth int) bool {
	if c.opts.PruneExcluded {
		if _, ex := c.exclude[f.Featuretype]; ex {
			return false
		}
	}
	return c.opts.Limit.allowsDescent(f.Featuretype, depth)
}

// relatives fetches one hop in the configured direction.
func (c *Cursor) relatives(id string) ([]feature.Feature, error) {
	if c.opts.Direction == Parents {
		return c.store.ParentsOf(c.ctx, id)
	}
	return c.store.ChildrenOf(c.ctx, id)
}

// isTreeAncestor reports whether anc is an ancestor of id in the BFS tree.
// An edge back to a tree ancestor is a genuine directed cycle.
func (c *Cursor) isTreeAncestor(anc, id string) bool {
	for cur := id; ; {
		from, ok := c.discovered[cur]
		if !ok {
			return false
		}
		if from == anc {
			return true
		}
		cur = from
	}
}

// Next advances to the next emitted feature. It performs at most one BFS
// expansion (one store query) per call once pending emissions drain.
func (c *Cursor) Next() bool {
	for {
		if c.closed || c.err != nil {
			return false
		}
		if err := c.ctx.Err(); err != nil {
			c.err = err
			return false
		}

		if len(c.pending) > 0 {
			c.cur = c.pending[0]
			c.pending = c.pending[1:]
			return true
		}

		if len(c.queue) == 0 {
			if !c.nextRoot() {
				return false
			}
			if c.emittedRoot {
				c.emittedRoot = false
				return true
			}
			continue
		}

		n := c.queue[0]
		c.queue = c.queue[1:]

		if !c.shouldDescend(n.f, n.depth) {
			continue
		}
		if n.depth >= c.ceiling {
			if !c.ceilingHit {
				c.ceilingHit = true
				c.warnings = append(c.warnings,
					fmt.Errorf("%w: depth ceiling %d reached at %q", ErrCycleSuspected, c.ceiling, n.f.ID))
			}
			continue
		}

		rels, err := c.relatives(n.f.ID)
		if err != nil {
			c.err = fmt.Errorf("%s of %q: %w", c.opts.Direction, n.f.ID, err)
			return false
		}
		for _, nb := range rels {
			if _, seen := c.visited[nb.ID]; seen {
				if nb.ID == n.f.ID || c.isTreeAncestor(nb.ID, n.f.ID) {
					c.warnings = append(c.warnings,
						fmt.Errorf("%w: edge %s -> %s revisits an ancestor", ErrCycleSuspected, n.f.ID, nb.ID))
				}
				continue
			}
			c.visited[nb.ID] = n.depth + 1
			c.discovered[nb.ID] = n.f.ID
			c.queue = append(c.queue, visit{f: nb, depth: n.depth + 1})
			if c.shouldEmit(nb) {
				c.pending = append(c.pending, nb)
			}
		}
	}
}

// nextRoot looks up the next unvisited root and seeds the frontier with it.
// Missing roots become warnings; store failures are fatal. Returns false
// when all roots are drained.
func (c *Cursor) nextRoot() bool {
	for c.ri < len(c.roots) {
		id := c.roots[c.ri]
		c.ri++
		c.ceilingHit = false

		if _, seen := c.visited[id]; seen {
			// Already reached (and possibly emitted) from an earlier root.
			continue
		}

		f, err := c.store.Lookup(c.ctx, id)
		if errors.Is(err, gffdb.ErrNotFound) {
			c.warnings = append(c.warnings, fmt.Errorf("root %q: %w", id, err))
			continue
		}
		if err != nil {
			c.err = fmt.Errorf("root %q: %w", id, err)
			return false
		}

		c.visited[f.ID] = 0
		c.queue = append(c.queue[:0], visit{f: f, depth: 0})
		if c.opts.IncludeRoots && c.shouldEmit(f) {
			c.cur = f
			c.emittedRoot = true
		}
		return true
	}
	return false
}

// Feature returns the feature produced by the last successful Next().
func (c *Cursor) Feature() feature.Feature { return c.cur }

// Err returns the first fatal error hit during traversal, if any.
func (c *Cursor) Err() error { return c.err }

// Warnings returns non-fatal per-root conditions accumulated so far.
func (c *Cursor) Warnings() []error { return c.warnings }

// Close abandons the traversal. The cursor holds no store resources between
// Next() calls, so Close is cheap and always safe.
func (c *Cursor) Close() error {
	c.closed = true
	c.queue = nil
	c.pending = nil
	return nil
}
