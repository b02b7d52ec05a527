// File: methods_edges.go
// Role: Edge lifecycle & queries: InsertEdge/ContainsEdge/Edge/EdgeCount/PathWeight.
//
// Re-insertion policy:
//   - At most one edge per ordered (src, dst) pair. A second InsertEdge for the
//     same pair returns ErrDuplicateEdge and leaves the stored weight untouched.
//     Loaders that replay data check ContainsEdge first.
package core

import (
	"fmt"
	"math"
)

// InsertEdge adds the directed edge src→dst with weight w.
//
// Implementation:
//   - Stage 1: Resolve both endpoints (ErrNodeNotFound).
//   - Stage 2: Validate the weight: finite (ErrBadWeight) and non-negative (ErrNegativeWeight).
//   - Stage 3: Store dst→w in the source's adjacency store (ErrDuplicateEdge if present).
//   - Stage 4: Append dst to the source's target list to keep insertion order.
//
// Behavior highlights:
//   - Directed only: src→dst does not imply dst→src.
//   - Self-loops are accepted; they never shorten a path.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *WeightedGraph[N, W]) InsertEdge(src, dst N, w W) error {
	from, err := g.vertexOf(src)
	if err != nil {
		return err
	}
	to, err := g.vertexOf(dst)
	if err != nil {
		return err
	}

	if err = CheckWeight(w); err != nil {
		return fmt.Errorf("%w: edge %v→%v", err, src, dst)
	}
	if from.out.ContainsKey(dst) {
		return fmt.Errorf("%w: %v→%v", ErrDuplicateEdge, src, dst)
	}

	if err = from.out.Put(dst, w); err != nil {
		return fmt.Errorf("core: insert edge %v→%v: %w", src, dst, err)
	}
	from.targets = append(from.targets, to)
	g.edgeCount++

	return nil
}

// CheckWeight reports whether w is acceptable as an edge weight:
// ErrBadWeight for NaN or ±Inf, ErrNegativeWeight below zero.
func CheckWeight[W Weight](w W) error {
	f := float64(w)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: weight=%v", ErrBadWeight, w)
	}
	if w < 0 {
		return fmt.Errorf("%w: weight=%v", ErrNegativeWeight, w)
	}

	return nil
}

// AddWeight returns a+b for non-negative a and b. ok is false when the sum
// wraps around an integer W or reaches +Inf for a float W.
func AddWeight[W Weight](a, b W) (sum W, ok bool) {
	sum = a + b
	if sum < a || sum < b || math.IsInf(float64(sum), 1) {
		return sum, false
	}

	return sum, true
}

// ContainsEdge reports whether the edge src→dst exists.
// Complexity: O(1) average.
func (g *WeightedGraph[N, W]) ContainsEdge(src, dst N) bool {
	v, err := g.vertices.Get(src)
	if err != nil {
		return false
	}

	return v.out.ContainsKey(dst)
}

// Edge returns the weight of src→dst, or ErrEdgeNotFound.
// Complexity: O(1) average.
func (g *WeightedGraph[N, W]) Edge(src, dst N) (W, error) {
	v, err := g.vertices.Get(src)
	if err == nil {
		var w W
		if w, err = v.out.Get(dst); err == nil {
			return w, nil
		}
	}
	var zero W

	return zero, fmt.Errorf("%w: %v→%v", ErrEdgeNotFound, src, dst)
}

// EdgeCount returns the number of edges.
func (g *WeightedGraph[N, W]) EdgeCount() int { return g.edgeCount }

// PathWeight returns the sum of edge weights along path.
// A path of zero or one node weighs zero. ErrEdgeNotFound is returned if any
// consecutive pair is not connected, ErrWeightOverflow if the sum does not fit in W.
// Complexity: O(len(path)).
func (g *WeightedGraph[N, W]) PathWeight(path []N) (W, error) {
	var total W
	for i := 0; i+1 < len(path); i++ {
		w, err := g.Edge(path[i], path[i+1])
		if err != nil {
			return 0, err
		}
		var ok bool
		if total, ok = AddWeight(total, w); !ok {
			return 0, fmt.Errorf("%w: at %v→%v", ErrWeightOverflow, path[i], path[i+1])
		}
	}

	return total, nil
}
