// Package core provides WeightedGraph, a generic directed, edge-weighted
// graph with single-pair shortest-path search.
//
// The graph G = (V,E) has these properties:
//
//   - Nodes are any comparable type N whose zero value is reserved as "no node".
//   - Edges are directed and carry one weight W (any integer or float type).
//   - At most one edge per ordered pair (src, dst); self-loops are allowed.
//   - Weights are finite and non-negative, checked on InsertEdge.
//   - Storage is hashmap.Map all the way down, so the caller supplies the
//     node Hasher (hashmap.String for string labels).
//
// Core Methods:
//
//	// Node lifecycle
//	InsertNode(n N) error                    // O(1)†, idempotent
//	ContainsNode(n N) bool                   // O(1)
//	Nodes() []N                              // O(V), insertion order
//
//	// Edge lifecycle
//	InsertEdge(src, dst N, w W) error        // O(1)†, ErrDuplicateEdge on re-insert
//	ContainsEdge(src, dst N) bool            // O(1)
//	Edge(src, dst N) (W, error)              // O(1)
//	Neighbors(n N) ([]Neighbor[N,W], error)  // O(d), insertion order
//
//	// Query
//	ShortestPath(src, dst N) []N             // O((V+E) log V)
//	PathWeight(path []N) (W, error)          // O(len(path))
//	Stats() GraphStats                       // O(V)
//
// † amortized: the backing stores double when their load factor reaches 0.8.
//
// Errors:
//
//	ErrInvalidNode    – zero-value node
//	ErrNodeNotFound   – missing endpoint
//	ErrEdgeNotFound   – missing edge
//	ErrDuplicateEdge  – edge already present
//	ErrNegativeWeight – weight < 0
//	ErrBadWeight      – NaN or ±Inf weight
//	ErrWeightOverflow – path weight does not fit in W
//
// Path sums use AddWeight: with a narrow integer W, a path whose total wraps
// around is treated as unreachable.
//
// Thread safety:
//
//   - No internal locking. Load the graph from one goroutine, then share it
//     read-only; every query method is free of side effects.
package core
