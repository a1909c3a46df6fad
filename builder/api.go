// SPDX-License-Identifier: MIT
// Package: edgepath/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   • One orchestrator: BuildEdges(bopts, cons...). Creates a Draft, resolves cfg, runs cons in order.
//   • Generate is the G(n,p) shortcut used by the pipeline and CLI.
//   • Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   • Determinism: same inputs/options/seed and constructor order ⇒ identical edge lists.
//   • Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/edgepath/core"
)

// Draft accumulates nodes and edges while constructors run.
// Node ids are handed out in contiguous blocks by AddNodes.
type Draft struct {
	n     uint64
	edges core.EdgeList
}

// N returns the number of nodes allocated so far.
func (d *Draft) N() uint32 { return uint32(d.n) }

// Edges returns the accumulated list. The slice is owned by the Draft until
// BuildEdges returns.
func (d *Draft) Edges() core.EdgeList { return d.edges }

// AddNodes reserves k fresh node ids and returns the first one.
// Returns ErrTooManyVertices if the total would leave the uint32 id space.
func (d *Draft) AddNodes(method string, k int) (core.NodeID, error) {
	if k < 0 || d.n+uint64(k) > core.MaxNodes {
		return 0, fmt.Errorf("%s: %d + %d nodes > %d: %w", method, d.n, k, core.MaxNodes, ErrTooManyVertices)
	}
	base := core.NodeID(d.n)
	d.n += uint64(k)
	return base, nil
}

// AddEdge appends {u,v} in call order. Endpoints are assumed to come from
// AddNodes blocks; constructors never emit loops or repeated pairs.
func (d *Draft) AddEdge(u, v core.NodeID) {
	d.edges = append(d.edges, core.Edge{U: u, V: v})
}

// grow pre-sizes the edge slice for an expected number of additional edges.
func (d *Draft) grow(extra int) {
	if extra <= 0 || cap(d.edges)-len(d.edges) >= extra {
		return
	}
	next := make(core.EdgeList, len(d.edges), len(d.edges)+extra)
	copy(next, d.edges)
	d.edges = next
}

// Constructor applies a deterministic mutation to a Draft using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Allocate their nodes through Draft.AddNodes.
//   - Preserve determinism for the same config and call order.
type Constructor func(d *Draft, cfg builderConfig) error

// BuildEdges resolves the builder configuration from bopts and applies all
// constructors in order to a fresh Draft. It returns the node count and the
// edge list. Any constructor error is wrapped with "BuildEdges: %w" and
// returned immediately.
//
// Complexity: Σ cost of each constructor; wrapper overhead O(K).
func BuildEdges(bopts []BuilderOption, cons ...Constructor) (uint32, core.EdgeList, error) {
	cfg := newBuilderConfig(bopts...)
	d := &Draft{}

	for i, fn := range cons {
		if fn == nil {
			return 0, nil, fmt.Errorf("BuildEdges: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return 0, nil, fmt.Errorf("BuildEdges: %w", err)
		}
	}

	return d.N(), d.edges, nil
}

// Generate samples an Erdős–Rényi G(n,p) edge list over nodes 0..n-1.
//
// Every unordered pair {u,v}, u<v<n, is included independently with
// probability p, so the list holds no self-loops and no duplicates. A seed
// is required for 0 < p < 1 (WithSeed or WithRand); without one Generate
// fails with ErrNeedRandSource rather than falling back to global state.
//
// Edges are emitted as (u,v) with u<v, ordered by v ascending, then u
// ascending. Expected length is p·n(n-1)/2.
func Generate(n int, p float64, opts ...BuilderOption) (core.EdgeList, error) {
	_, edges, err := BuildEdges(opts, RandomSparse(n, p))
	if err != nil {
		return nil, err
	}
	if edges == nil {
		edges = core.EdgeList{}
	}
	return edges, nil
}
