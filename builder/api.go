// SPDX-License-Identifier: MIT
// Package: campusmap/builder
//
// api.go - public entry-points for the builder package.
//
// Contract:
//   - One orchestrator: BuildRecords(bopts, cons...). Resolves cfg, runs cons in order.
//   - Constructors append walking-route records; they never touch a graph directly.
//   - Determinism: same options, seed and constructor order ⇒ identical record slices.
//   - Constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/campusmap/navigator"
)

// Constructor appends records for one topology using the resolved config.
type Constructor func(p *plan, cfg builderConfig) error

// plan accumulates records in emission order.
type plan struct {
	records []navigator.Record
}

// route emits u→v, plus v→u when the config is two-way.
func (p *plan) route(cfg builderConfig, u, v string) {
	w := cfg.weightFn(cfg.rng)
	p.records = append(p.records, navigator.Record{Source: u, Destination: v, Seconds: w})
	if cfg.twoWay {
		p.records = append(p.records, navigator.Record{Source: v, Destination: u, Seconds: w})
	}
}

// BuildRecords resolves bopts and applies every constructor in order.
// A constructor error is wrapped with "BuildRecords: %w" and returned at once.
//
// Complexity:
//   - Σ cost of each constructor; wrapper overhead O(K) for K constructors.
func BuildRecords(bopts []BuilderOption, cons ...Constructor) ([]navigator.Record, error) {
	cfg := newBuilderConfig(bopts...)
	p := &plan{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildRecords: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(p, cfg); err != nil {
			return nil, fmt.Errorf("BuildRecords: %w", err)
		}
	}

	return p.records, nil
}

// BuildNavigator is BuildRecords followed by navigator.New and LoadGraph.
func BuildNavigator(bopts []BuilderOption, cons ...Constructor) (*navigator.Navigator, error) {
	records, err := BuildRecords(bopts, cons...)
	if err != nil {
		return nil, err
	}
	nav := navigator.New(navigator.WithCapacity(max(len(records), 1)))
	if err = nav.LoadGraph(records); err != nil {
		return nil, fmt.Errorf("BuildNavigator: %w", err)
	}

	return nav, nil
}
