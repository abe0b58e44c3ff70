// core/traverse/limit.go
package traverse

import (
	"fmt"
	"strconv"
)

// Limit bounds traversal expansion: either a maximum depth in hops, or a
// featuretype past which the walk does not expand (the node of that type is
// still emitted unless excluded). The zero value is "no limit".
type Limit struct {
	mode  limitMode
	depth int
	stop  string
}

type limitMode int

const (
	limitNone limitMode = iota
	limitDepth
	limitType
)

// DepthLimit bounds the walk to depth hops from each root.
func DepthLimit(depth int) Limit { return Limit{mode: limitDepth, depth: depth} }

// TypeLimit stops expansion past nodes of the given featuretype.
func TypeLimit(featuretype string) Limit { return Limit{mode: limitType, stop: featuretype} }

// ParseLimit interprets a CLI limit string: all digits means a depth bound,
// anything else names a stop featuretype. Empty means no limit.
func ParseLimit(s string) (Limit, error) {
	if s == "" {
		return Limit{}, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return Limit{}, fmt.Errorf("limit depth must be >= 0, got %d", n)
		}
		return DepthLimit(n), nil
	}
	return TypeLimit(s), nil
}

// IsZero reports whether no limit is set.
func (l Limit) IsZero() bool { return l.mode == limitNone }

func (l Limit) String() string {
	switch l.mode {
	case limitDepth:
		return strconv.Itoa(l.depth)
	case limitType:
		return l.stop
	default:
		return ""
	}
}

// allowsDescent reports whether a node of the given featuretype, sitting at
// depth hops from its root, may have its relatives expanded.
func (l Limit) allowsDescent(featuretype string, depth int) bool {
	switch l.mode {
	case limitDepth:
		return depth < l.depth
	case limitType:
		return featuretype != l.stop
	default:
		return true
	}
}
