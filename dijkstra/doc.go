// Package dijkstra provides single-source Dijkstra over core.WeightedGraph
// with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from one source to every
//     reachable node in O((V + E) log V) time.
//   - It relies on a min-heap (container/heap) to always expand the next-closest node.
//   - Supports optional path reconstruction, distance caps, and “impassable” edge thresholds.
//
// Where core.WeightedGraph.ShortestPath answers one pair and stops early,
// this package settles the whole reachable set, which is what "furthest
// location" style queries need.
//
// Ordering:
//
//   - Nodes are settled in non-decreasing distance.
//   - Equal distances are settled in the order their labels were last improved.
//   - Relaxation is strict, so the first discovered shortest predecessor wins.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:     the source is the zero value of N.
//   - ErrNilGraph:        g is nil.
//   - ErrVertexNotFound:  g does not contain the source.
//   - ErrBadMaxDistance:  (panic) WithMaxDistance got a negative value.
//   - ErrBadInfThreshold: (panic) WithInfEdgeThreshold got a non-positive value.
//
// API reference:
//
//	func Dijkstra[N comparable, W core.Weight](
//	    g *core.WeightedGraph[N, W],
//	    source N,
//	    opts ...Option,
//	) (*Result[N, W], error)
//
// Example:
//
//	res, err := dijkstra.Dijkstra(g, "Memorial Union", dijkstra.WithReturnPath())
//	if err != nil { ... }
//	d, ok := res.Distance("Psychology")
//	path := res.PathTo("Psychology")
package dijkstra
