package dijkstra

import (
	"slices"

	"github.com/katalvlaran/campusmap/core"
	"github.com/katalvlaran/campusmap/hashmap"
)

// Result holds the outcome of one Dijkstra run. It is read-only and safe for
// concurrent readers once returned.
type Result[N comparable, W core.Weight] struct {
	source N
	labels *hashmap.Map[N, *label[N, W]]
	order  []N
	paths  bool
}

// Source returns the node the search started from.
func (r *Result[N, W]) Source() N { return r.source }

// Distance returns the shortest distance from the source to n, and whether
// n was settled at all.
func (r *Result[N, W]) Distance(n N) (W, bool) {
	lb, err := r.labels.Get(n)
	if err != nil || !lb.settled {
		var zero W
		return zero, false
	}

	return lb.dist, true
}

// Reachable reports whether n was settled by the search.
func (r *Result[N, W]) Reachable(n N) bool {
	_, ok := r.Distance(n)
	return ok
}

// Order returns the settled nodes in the order they were finalized, i.e.
// non-decreasing distance. The source comes first.
func (r *Result[N, W]) Order() []N {
	out := make([]N, len(r.order))
	copy(out, r.order)

	return out
}

// PathTo rebuilds the shortest path source→n by walking predecessors.
// Returns nil if the run was made without WithReturnPath or n is unreachable.
func (r *Result[N, W]) PathTo(n N) []N {
	if !r.paths || !r.Reachable(n) {
		return nil
	}

	var path []N
	for cur := n; ; {
		path = append(path, cur)
		lb, err := r.labels.Get(cur)
		if err != nil || !lb.hasPrev {
			break
		}
		cur = lb.prev
	}
	slices.Reverse(path)

	return path
}
