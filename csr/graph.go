package csr

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/edgepath/core"
)

// ErrTooLarge is returned when the doubled edge list cannot be indexed.
var ErrTooLarge = errors.New("csr: graph too large")

// SparseGraph is an immutable undirected graph in CSR form.
type SparseGraph struct {
	n      uint32
	m      int // input edges that were stored (after optional filtering)
	rowPtr []uint64
	colIdx []core.NodeID
}

// Build converts (n, edges) into a SparseGraph.
// Returns an error wrapping core.ErrNodeOutOfRange if any endpoint is ≥ n.
func Build(n uint32, edges core.EdgeList, opts ...Option) (*SparseGraph, error) {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}

	if err := edges.Validate(n); err != nil {
		return nil, fmt.Errorf("csr: build: %w", err)
	}
	if o.simple {
		edges = simplify(edges)
	}
	if uint64(len(edges)) > math.MaxInt/2 {
		return nil, fmt.Errorf("%w: %d edges", ErrTooLarge, len(edges))
	}

	// 1) degree of every node in the doubled multiset
	rowPtr := make([]uint64, uint64(n)+1)
	for _, e := range edges {
		rowPtr[e.U+1]++
		rowPtr[e.V+1]++
	}
	// 2) exclusive prefix sum in place: rowPtr[u+1] held deg(u)
	for u := uint64(1); u <= uint64(n); u++ {
		rowPtr[u] += rowPtr[u-1]
	}

	// 3) scatter with per-node cursors
	nnz := rowPtr[n]
	colIdx := make([]core.NodeID, nnz)
	cursor := make([]uint64, n)
	copy(cursor, rowPtr[:n])
	for _, e := range edges {
		colIdx[cursor[e.U]] = e.V
		cursor[e.U]++
		colIdx[cursor[e.V]] = e.U
		cursor[e.V]++
	}

	return &SparseGraph{n: n, m: len(edges), rowPtr: rowPtr, colIdx: colIdx}, nil
}

// simplify keeps the first occurrence of every unordered pair and drops loops.
func simplify(edges core.EdgeList) core.EdgeList {
	seen := make(map[core.Edge]struct{}, len(edges))
	out := make(core.EdgeList, 0, len(edges))
	for _, e := range edges {
		if e.IsLoop() {
			continue
		}
		k := e.Canonical()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, e)
	}
	return out
}

// Order returns N, the number of nodes.
func (g *SparseGraph) Order() uint32 { return g.n }

// Size returns the number of undirected edges that were stored.
func (g *SparseGraph) Size() int { return g.m }

// NNZ returns the number of stored directed adjacency entries.
func (g *SparseGraph) NNZ() uint64 { return g.rowPtr[g.n] }

// RowPtr returns a copy of the offset array (length N+1).
func (g *SparseGraph) RowPtr() []uint64 {
	out := make([]uint64, len(g.rowPtr))
	copy(out, g.rowPtr)
	return out
}

// ColIdx returns a copy of the neighbor array (length nnz).
func (g *SparseGraph) ColIdx() []core.NodeID {
	out := make([]core.NodeID, len(g.colIdx))
	copy(out, g.colIdx)
	return out
}

// Neighbors returns u's neighbors in encounter order. The slice aliases the
// graph's storage and must not be modified.
func (g *SparseGraph) Neighbors(u core.NodeID) ([]core.NodeID, error) {
	if err := core.CheckNode(u, g.n); err != nil {
		return nil, fmt.Errorf("csr: neighbors: %w", err)
	}
	return g.neighbors(u), nil
}

// neighbors is the unchecked hot-path accessor used by traversals.
func (g *SparseGraph) neighbors(u core.NodeID) []core.NodeID {
	return g.colIdx[g.rowPtr[u]:g.rowPtr[u+1]]
}

// Degree returns the number of stored entries in u's row (loops count twice).
func (g *SparseGraph) Degree(u core.NodeID) (int, error) {
	if err := core.CheckNode(u, g.n); err != nil {
		return 0, fmt.Errorf("csr: degree: %w", err)
	}
	return int(g.rowPtr[u+1] - g.rowPtr[u]), nil
}

// HasEdge reports whether v appears in u's row. Out-of-range ids report false.
// Complexity: O(deg(u)).
func (g *SparseGraph) HasEdge(u, v core.NodeID) bool {
	if u >= g.n || v >= g.n {
		return false
	}
	for _, w := range g.neighbors(u) {
		if w == v {
			return true
		}
	}
	return false
}

// Row exposes u's neighbors without a range check; u must be < Order().
// Traversal engines use it in their inner loops.
func (g *SparseGraph) Row(u core.NodeID) []core.NodeID {
	return g.neighbors(u)
}
