// SPDX-License-Identifier: MIT
// Package: campusmap/builder
//
// topologies.go - Path, Cycle, Star, Grid and RandomSparse constructors.
//
// Determinism:
//   • Locations are emitted in index order (row-major for Grid).
//   • Routes are emitted in a fixed, documented order per constructor.

package builder

import (
	"fmt"
)

const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"

	minPathVertices  = 2
	minCycleVertices = 3
	minStarVertices  = 2
	minGridDim       = 1
	gridIDFmt        = "%d,%d" // "r,c" coordinate labels
)

// Path emits L0→L1→…→L(n-1).
func Path(n int) Constructor {
	return func(p *plan, cfg builderConfig) error {
		if n < minPathVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathVertices, ErrTooFewVertices)
		}
		for i := 0; i+1 < n; i++ {
			p.route(cfg, cfg.idFn(i), cfg.idFn(i+1))
		}

		return nil
	}
}

// Cycle emits Path(n) plus the closing route L(n-1)→L0.
func Cycle(n int) Constructor {
	return func(p *plan, cfg builderConfig) error {
		if n < minCycleVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleVertices, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			p.route(cfg, cfg.idFn(i), cfg.idFn((i+1)%n))
		}

		return nil
	}
}

// Star emits hub L0 → each of L1..L(n-1).
func Star(n int) Constructor {
	return func(p *plan, cfg builderConfig) error {
		if n < minStarVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarVertices, ErrTooFewVertices)
		}
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			p.route(cfg, hub, cfg.idFn(i))
		}

		return nil
	}
}

// Grid emits a rows×cols grid labelled "r,c"; for each cell the right
// neighbour is emitted before the bottom one. A 1×1 grid has no routes.
func Grid(rows, cols int) Constructor {
	return func(p *plan, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					p.route(cfg, u, fmt.Sprintf(gridIDFmt, r, c+1))
				}
				if r+1 < rows {
					p.route(cfg, u, fmt.Sprintf(gridIDFmt, r+1, c))
				}
			}
		}

		return nil
	}
}

// RandomSparse considers every ordered pair (i,j), i≠j, in (i asc, j asc)
// order and emits i→j with probability prob. Needs WithSeed unless prob is 0 or 1.
func RandomSparse(n int, prob float64) Constructor {
	return func(p *plan, cfg builderConfig) error {
		if n < minPathVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minPathVertices, ErrTooFewVertices)
		}
		if !(prob >= 0 && prob <= 1) {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, prob, ErrInvalidProbability)
		}
		if cfg.rng == nil && prob > 0 && prob < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if prob == 1 || (prob > 0 && cfg.rng.Float64() < prob) {
					p.route(cfg, cfg.idFn(i), cfg.idFn(j))
				}
			}
		}

		return nil
	}
}
