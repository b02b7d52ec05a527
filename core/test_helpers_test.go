// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for campusmap/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for WeightedGraph.
//   - Keep core tests on the standard testing package plus go-cmp for diffs.

package core_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/campusmap/core"
	"github.com/katalvlaran/campusmap/hashmap"
)

// Common node labels used across core tests.
const (
	NodeEmpty = ""

	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
	NodeE = "E"

	NodeMissing = "DNE"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight0 = 0.0
	Weight1 = 1.0
	Weight2 = 2.0
	Weight3 = 3.0
	Weight5 = 5.0
)

// edge is a fixture triple.
type edge struct {
	from, to string
	w        float64
}

// NewStringGraph RETURNS an empty string/float64 graph.
func NewStringGraph() *core.WeightedGraph[string, float64] {
	return core.NewGraph[string, float64](hashmap.String)
}

// BuildGraph RETURNS a graph holding every endpoint and edge in edges.
//
// Implementation:
//   - Stage 1: Insert both endpoints of each edge (idempotent).
//   - Stage 2: Insert the edge; any error aborts the test.
func BuildGraph(t testing.TB, edges []edge) *core.WeightedGraph[string, float64] {
	t.Helper()

	g := NewStringGraph()
	for _, e := range edges {
		MustNoError(t, g.InsertNode(e.from), "InsertNode("+e.from+")")
		MustNoError(t, g.InsertNode(e.to), "InsertNode("+e.to+")")
		MustNoError(t, g.InsertEdge(e.from, e.to, e.w), "InsertEdge("+e.from+","+e.to+")")
	}

	return g
}

// MustNoError FAILS the test if err != nil.
func MustNoError(t testing.TB, err error, op string) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs FAILS unless errors.Is(err, target).
func MustErrorIs(t testing.TB, err, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: got error %v, want %v", op, err, target)
}

// MustEqualBool FAILS if got != want.
func MustEqualBool(t testing.TB, got, want bool, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got=%v want=%v", op, got, want)
}

// MustEqualInt FAILS if got != want.
func MustEqualInt(t testing.TB, got, want int, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got=%d want=%d", op, got, want)
}

// MustEqualPath FAILS with a go-cmp diff if got != want.
// nil and empty slices compare equal.
func MustEqualPath(t testing.TB, got, want []string, op string) {
	t.Helper()

	if len(got) == 0 && len(want) == 0 {
		return
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("%s: mismatch (-want +got):\n%s", op, diff)
	}
}
