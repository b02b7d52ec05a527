// Package core defines WeightedGraph, a generic directed graph with
// non-negative edge weights, and the sentinel errors of its API.
//
// Storage is built on hashmap.Map rather than Go maps:
//
//	vertices: Map[N, *vertex]        node → vertex record
//	vertex.out: Map[N, W]            neighbour → edge weight
//	vertex.targets []*vertex         neighbours in edge insertion order
//	order []*vertex                  vertices in insertion order
//
// Errors:
//
//	ErrInvalidNode    - node is the zero value of N.
//	ErrNodeNotFound   - an operation referenced a node that is not in the graph.
//	ErrEdgeNotFound   - no edge between the given endpoints.
//	ErrDuplicateEdge  - an edge src→dst already exists.
//	ErrNegativeWeight - edge weight below zero.
//	ErrBadWeight      - edge weight is NaN or infinite.
//	ErrWeightOverflow - a path weight does not fit in W.
package core

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/campusmap/hashmap"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidNode indicates the node is the zero value of its type.
	ErrInvalidNode = errors.New("core: invalid node")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDuplicateEdge indicates InsertEdge was called for an existing src→dst pair.
	ErrDuplicateEdge = errors.New("core: edge already exists")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrBadWeight indicates an edge weight that is NaN or infinite.
	ErrBadWeight = errors.New("core: edge weight is not finite")

	// ErrWeightOverflow indicates a sum of edge weights that W cannot represent.
	ErrWeightOverflow = errors.New("core: path weight overflows")
)

// Weight is the set of numeric types usable as edge weights.
//
// Narrow integer types are allowed. Searches treat a path whose total
// does not fit in W as unreachable (see AddWeight).
type Weight interface {
	constraints.Integer | constraints.Float
}

// Neighbor is one outgoing edge seen from its source node.
type Neighbor[N comparable, W Weight] struct {
	// To is the destination node.
	To N

	// Weight is the cost of travelling the edge.
	Weight W
}

// vertex is the per-node record: insertion index plus outgoing edges.
type vertex[N comparable, W Weight] struct {
	id      N
	index   int
	out     *hashmap.Map[N, W]
	targets []*vertex[N, W]
}

// GraphOption configures a WeightedGraph before creation.
type GraphOption func(cfg *graphConfig)

type graphConfig struct {
	nodeCapacity      int
	adjacencyCapacity int
}

const (
	defaultNodeCapacity      = hashmap.DefaultCapacity
	defaultAdjacencyCapacity = 4
)

// WithCapacity sizes the node store for roughly n nodes.
// Panics if n < 1.
func WithCapacity(n int) GraphOption {
	if n < 1 {
		panic(fmt.Sprintf("core: WithCapacity(%d): capacity must be >= 1", n))
	}
	return func(cfg *graphConfig) {
		cfg.nodeCapacity = n
	}
}

// WithAdjacencyCapacity sets the initial bucket count of every per-node
// adjacency store. Dense graphs benefit from a larger value.
// Panics if n < 1.
func WithAdjacencyCapacity(n int) GraphOption {
	if n < 1 {
		panic(fmt.Sprintf("core: WithAdjacencyCapacity(%d): capacity must be >= 1", n))
	}
	return func(cfg *graphConfig) {
		cfg.adjacencyCapacity = n
	}
}

// WeightedGraph is a directed graph with at most one weighted edge per
// ordered node pair.
//
// It is not safe for concurrent mutation. Once loading is complete the
// graph may be shared read-only between goroutines.
type WeightedGraph[N comparable, W Weight] struct {
	hash      hashmap.Hasher[N]
	vertices  *hashmap.Map[N, *vertex[N, W]]
	order     []*vertex[N, W]
	edgeCount int
	adjCap    int
}

// NewGraph creates an empty WeightedGraph whose stores hash nodes with hash.
// Complexity: O(capacity).
func NewGraph[N comparable, W Weight](hash hashmap.Hasher[N], opts ...GraphOption) *WeightedGraph[N, W] {
	cfg := graphConfig{
		nodeCapacity:      defaultNodeCapacity,
		adjacencyCapacity: defaultAdjacencyCapacity,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &WeightedGraph[N, W]{
		hash:     hash,
		vertices: hashmap.New[N, *vertex[N, W]](hash, hashmap.WithCapacity(cfg.nodeCapacity)),
		adjCap:   cfg.adjacencyCapacity,
	}
}
