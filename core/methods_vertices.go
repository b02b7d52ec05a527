// File: methods_vertices.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns nodes in insertion order.
package core

import (
	"fmt"

	"github.com/katalvlaran/campusmap/hashmap"
)

// InsertNode adds n if it is not already present.
//
// Implementation:
//   - Stage 1: Reject the zero value of N (ErrInvalidNode).
//   - Stage 2: Return early if n is already stored (idempotent).
//   - Stage 3: Allocate a vertex record with an empty adjacency store and
//     register it under the next insertion index.
//
// Behavior highlights:
//   - Unlike hashmap.Map.Put, inserting an existing node is not an error:
//     callers routinely probe-then-insert while loading edge lists.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *WeightedGraph[N, W]) InsertNode(n N) error {
	var zero N
	if n == zero {
		return ErrInvalidNode
	}
	if g.vertices.ContainsKey(n) {
		return nil
	}

	v := &vertex[N, W]{
		id:    n,
		index: len(g.order),
		out:   hashmap.New[N, W](g.hash, hashmap.WithCapacity(g.adjCap)),
	}
	if err := g.vertices.Put(n, v); err != nil {
		return fmt.Errorf("core: insert node %v: %w", n, err)
	}
	g.order = append(g.order, v)

	return nil
}

// ContainsNode reports whether n is a node of the graph.
// Complexity: O(1) average.
func (g *WeightedGraph[N, W]) ContainsNode(n N) bool {
	return g.vertices.ContainsKey(n)
}

// Nodes returns every node in insertion order. The slice is a copy.
// Complexity: O(V).
func (g *WeightedGraph[N, W]) Nodes() []N {
	out := make([]N, len(g.order))
	for i, v := range g.order {
		out[i] = v.id
	}

	return out
}

// NodeCount returns the number of nodes.
func (g *WeightedGraph[N, W]) NodeCount() int { return len(g.order) }

// vertexOf returns the record for n, or ErrNodeNotFound.
func (g *WeightedGraph[N, W]) vertexOf(n N) (*vertex[N, W], error) {
	v, err := g.vertices.Get(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, n)
	}

	return v, nil
}
