// File: methods_adjacent.go
// Role: Neighbourhood API.
//
// Determinism:
//   - Neighbors() returns outgoing edges in edge insertion order.
package core

// Neighbors returns the outgoing edges of n in the order they were inserted.
//
// Errors:
//   - ErrNodeNotFound: if n is not a node.
//
// Complexity:
//   - Time O(d), Space O(d), where d is the out-degree of n.
func (g *WeightedGraph[N, W]) Neighbors(n N) ([]Neighbor[N, W], error) {
	v, err := g.vertexOf(n)
	if err != nil {
		return nil, err
	}

	out := make([]Neighbor[N, W], 0, len(v.targets))
	for _, t := range v.targets {
		w, _ := v.out.Get(t.id) // targets and out are kept in lockstep by InsertEdge
		out = append(out, Neighbor[N, W]{To: t.id, Weight: w})
	}

	return out, nil
}

// OutDegree returns the number of outgoing edges of n.
func (g *WeightedGraph[N, W]) OutDegree(n N) (int, error) {
	v, err := g.vertexOf(n)
	if err != nil {
		return 0, err
	}

	return len(v.targets), nil
}
