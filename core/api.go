// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only diagnostics over a WeightedGraph.
// Policy:
//   - No algorithms or hidden state here.

package core

import "github.com/katalvlaran/campusmap/hashmap"

// GraphStats is a snapshot of graph sizes.
type GraphStats struct {
	NodeCount    int // |V|
	EdgeCount    int // |E|
	MaxOutDegree int // largest out-degree over all nodes
	SinkCount    int // nodes without outgoing edges
	SelfLoops    int // edges n→n
}

// Stats produces a read-only snapshot of node/edge counts and degree figures.
//
// Implementation:
//   - Stage 1: Copy the node and edge counters.
//   - Stage 2: Scan vertices once for out-degree, sinks and self-loops.
//
// Complexity:
//   - Time O(V), Space O(1).
func (g *WeightedGraph[N, W]) Stats() GraphStats {
	stats := GraphStats{
		NodeCount: len(g.order),
		EdgeCount: g.edgeCount,
	}
	for _, v := range g.order {
		d := len(v.targets)
		if d > stats.MaxOutDegree {
			stats.MaxOutDegree = d
		}
		if d == 0 {
			stats.SinkCount++
		}
		if v.out.ContainsKey(v.id) {
			stats.SelfLoops++
		}
	}

	return stats
}

// Hasher returns the node hash function the graph was built with, so
// algorithms can key their own hashmap.Map bookkeeping the same way.
func (g *WeightedGraph[N, W]) Hasher() hashmap.Hasher[N] { return g.hash }
