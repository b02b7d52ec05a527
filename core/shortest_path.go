// File: shortest_path.go
// Role: Single-pair shortest path (Dijkstra with early exit at the target).
//
// Notes on implementation choices:
//   - Binary heap (container/heap) frontier with "lazy decrease-key": improved
//     distances are pushed again and stale entries are skipped when popped.
//   - Heap order is (distance asc, node insertion index asc).
//   - Relaxation is strict (<), and neighbours are relaxed in edge insertion
//     order, so among equal-cost shortest paths the same one is returned on
//     every run over the same input.
//   - Weights are validated at insertion time, so no negative-weight scan is needed here.
//   - A tentative distance that overflows W is dropped, so such paths count as unreachable.
package core

import "container/heap"

// ShortestPath returns a minimum-total-weight path from src to dst, both
// endpoints included.
//
// Returns:
//   - [src] when src == dst and src is a node.
//   - nil when either endpoint is unknown or dst is unreachable from src.
//
// "No path" is a normal outcome, not an error; callers needing to tell
// unknown nodes apart should check ContainsNode first.
//
// Complexity:
//   - Time O((V + E) log V), Space O(V + E).
func (g *WeightedGraph[N, W]) ShortestPath(src, dst N) []N {
	from, err := g.vertices.Get(src)
	if err != nil {
		return nil
	}
	to, err := g.vertices.Get(dst)
	if err != nil {
		return nil
	}
	if from == to {
		return []N{src}
	}

	r := newPathRunner(g, from.index)
	if !r.run(to.index) {
		return nil
	}

	return r.path(to.index)
}

// pathRunner holds the mutable state of one ShortestPath execution.
// All slices are indexed by node insertion index.
type pathRunner[N comparable, W Weight] struct {
	byIndex []*vertex[N, W]
	dist    []W    // tentative distance; meaningful only where reached is true
	reached []bool // a tentative distance exists
	settled []bool // distance is final
	prev    []int  // predecessor index, -1 for none
	pq      frontier[W]
}

// newPathRunner allocates state for a search from src.
func newPathRunner[N comparable, W Weight](g *WeightedGraph[N, W], src int) *pathRunner[N, W] {
	v := len(g.order)
	r := &pathRunner[N, W]{
		byIndex: g.order,
		dist:    make([]W, v),
		reached: make([]bool, v),
		settled: make([]bool, v),
		prev:    make([]int, v),
		pq:      make(frontier[W], 0, v),
	}
	for i := range r.prev {
		r.prev[i] = -1
	}

	r.reached[src] = true
	heap.Push(&r.pq, frontierItem[W]{index: src})

	return r
}

// run settles nodes in distance order until target is settled (true) or the
// frontier is exhausted (false).
func (r *pathRunner[N, W]) run(target int) bool {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(frontierItem[W])
		u := item.index
		if r.settled[u] {
			continue // stale entry
		}
		r.settled[u] = true
		if u == target {
			return true
		}
		r.relax(u)
	}

	return false
}

// relax improves tentative distances of u's unsettled neighbours.
func (r *pathRunner[N, W]) relax(u int) {
	v := r.byIndex[u]
	for _, t := range v.targets {
		if r.settled[t.index] {
			continue
		}
		w, _ := v.out.Get(t.id)
		nd, ok := AddWeight(r.dist[u], w)
		if !ok {
			continue
		}
		if r.reached[t.index] && nd >= r.dist[t.index] {
			continue
		}
		r.dist[t.index] = nd
		r.reached[t.index] = true
		r.prev[t.index] = u
		heap.Push(&r.pq, frontierItem[W]{index: t.index, dist: nd})
	}
}

// path walks predecessor links back from target and reverses them.
func (r *pathRunner[N, W]) path(target int) []N {
	var out []N
	for i := target; i != -1; i = r.prev[i] {
		out = append(out, r.byIndex[i].id)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// frontierItem is a node index with its tentative distance.
type frontierItem[W Weight] struct {
	index int
	dist  W
}

// frontier is a min-heap of frontierItem ordered by dist, then index.
type frontier[W Weight] []frontierItem[W]

func (pq frontier[W]) Len() int { return len(pq) }

func (pq frontier[W]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].index < pq[j].index
}

func (pq frontier[W]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontier[W]) Push(x any) { *pq = append(*pq, x.(frontierItem[W])) }

func (pq *frontier[W]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
