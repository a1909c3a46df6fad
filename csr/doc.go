// Package csr converts an edge list into a compressed sparse row adjacency
// structure (SparseGraph) supporting O(degree) neighbor iteration.
//
// What
//
//   - rowPtr: N+1 offsets, non-decreasing, rowPtr[0] = 0, rowPtr[N] = nnz.
//   - colIdx: nnz neighbor ids; colIdx[rowPtr[u]:rowPtr[u+1]] are u's neighbors.
//   - Every stored (u,v) has its mirror (v,u): each input edge is doubled
//     before offsets are computed, never symmetrized afterwards.
//
// Construction (Build)
//
//  1. Count, for every edge {u,v}, one slot for u and one for v.
//  2. rowPtr = exclusive prefix sum of those degrees.
//  3. Walk the edge list again with a cursor copy of rowPtr and write v into
//     u's bucket, then u into v's bucket.
//
// Neighbor order (observable)
//
//	No sorting happens. Within a row, neighbors appear in edge-list encounter
//	order: row u lists the other endpoint of every edge touching u, in the
//	order those edges occur in the input. bfs tie-breaking depends on this,
//	so two edge lists describing the same graph in different orders can yield
//	different (equally short) paths.
//
// Duplicates and loops
//
//	By default nothing is removed: a repeated pair is stored twice per side and
//	a self-loop (u,u) stores u twice in row u, so nnz = 2·M always. With
//	WithSimpleEdges, loops and repeated unordered pairs (first occurrence wins)
//	are dropped before doubling.
//
// Complexity: O(N + M) time and space.
//
// Errors
//
//   - core.ErrNodeOutOfRange if any endpoint is ≥ N. No partial graph is returned.
//   - ErrTooLarge if N+1 offsets or 2·M entries cannot be addressed.
//
// A SparseGraph is immutable after Build; concurrent readers are safe.
package csr
