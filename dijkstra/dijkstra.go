// Package dijkstra implements single-source Dijkstra on core.WeightedGraph.
//
// Notes on implementation choices:
//
//   - core.WeightedGraph rejects negative weights on insertion, so no pre-scan is needed.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Per-node state lives in a hashmap.Map keyed with the graph's own hasher.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/campusmap/core"
	"github.com/katalvlaran/campusmap/hashmap"
)

// Dijkstra computes shortest distances from source to every node reachable
// in g.
//
// Preconditions and validation (in order):
//  1. source must not be the zero value (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain source (ErrVertexNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra[N comparable, W core.Weight](g *core.WeightedGraph[N, W], source N, opts ...Option) (*Result[N, W], error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	var zero N
	if source == zero {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.ContainsNode(source) {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, source)
	}

	// 3) Run
	r := &runner[N, W]{
		g:       g,
		options: cfg,
		res: &Result[N, W]{
			source: source,
			labels: hashmap.New[N, *label[N, W]](g.Hasher(), hashmap.WithCapacity(g.NodeCount()+1)),
			paths:  cfg.ReturnPath,
		},
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// label is the per-node bookkeeping of one run.
type label[N comparable, W core.Weight] struct {
	dist    W
	prev    N
	hasPrev bool
	settled bool
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[N comparable, W core.Weight] struct {
	g       *core.WeightedGraph[N, W]
	options Options
	res     *Result[N, W]
	pq      nodePQ[N, W]
	seq     uint64 // push counter; breaks distance ties in push order
}

// init labels the source with distance zero and seeds the heap.
func (r *runner[N, W]) init() {
	_ = r.res.labels.Put(r.res.source, &label[N, W]{})
	heap.Init(&r.pq)
	r.push(r.res.source, 0)
}

// process is the core loop: pop the closest unsettled node, settle it, relax it.
func (r *runner[N, W]) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem[N, W])
		lb, err := r.res.labels.Get(item.id)
		if err != nil {
			return fmt.Errorf("dijkstra: unlabelled node %v popped: %w", item.id, err)
		}

		// Skip stale heap entries.
		if lb.settled {
			continue
		}

		// Everything left in the heap is at least this far away.
		if float64(item.dist) > r.options.MaxDistance {
			break
		}

		lb.settled = true
		r.res.order = append(r.res.order, item.id)

		if err = r.relax(item.id, lb.dist); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge outgoing from u and improves neighbour distances.
func (r *runner[N, W]) relax(u N, du W) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %v: %w", u, err)
	}

	for _, e := range neighbors {
		// Skip impassable edges.
		if float64(e.Weight) >= r.options.InfEdgeThreshold {
			continue
		}

		newDist, ok := core.AddWeight(du, e.Weight)
		if !ok || float64(newDist) > r.options.MaxDistance {
			continue
		}

		lb, err := r.res.labels.Get(e.To)
		if err != nil {
			lb = &label[N, W]{dist: newDist}
			if err = r.res.labels.Put(e.To, lb); err != nil {
				return fmt.Errorf("dijkstra: label %v: %w", e.To, err)
			}
		} else if lb.settled || newDist >= lb.dist {
			// Strict improvement only.
			continue
		}

		lb.dist = newDist
		if r.options.ReturnPath {
			lb.prev, lb.hasPrev = u, true
		}
		r.push(e.To, newDist)
	}

	return nil
}

func (r *runner[N, W]) push(id N, dist W) {
	r.seq++
	heap.Push(&r.pq, nodeItem[N, W]{id: id, dist: dist, seq: r.seq})
}

// nodeItem represents a node and its tentative distance from the source.
type nodeItem[N comparable, W core.Weight] struct {
	id   N
	dist W
	seq  uint64
}

// nodePQ is a min-heap of nodeItem ordered by dist, then push order.
type nodePQ[N comparable, W core.Weight] []nodeItem[N, W]

// Len returns the number of items in the heap.
func (pq nodePQ[N, W]) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority; ties by push order.
func (pq nodePQ[N, W]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ[N, W]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ[N, W]) Push(x any) { *pq = append(*pq, x.(nodeItem[N, W])) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ[N, W]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
