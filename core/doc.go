// Package core defines the shared vocabulary of edgepath: node identifiers,
// undirected edges and ordered edge lists, plus the range sentinel used by
// every package that indexes nodes.
//
// Data model:
//
//   - NodeID is an unsigned 32-bit integer in [0, N).
//   - Edge is an unordered pair {U, V}. Self-loops and repeated pairs are
//     representable; whether they are tolerated is decided by the consumer
//     (csr.Build keeps them unless WithSimpleEdges is set).
//   - EdgeList is an ordered sequence of Edge. Order is insertion order. It
//     carries no meaning for the graph itself, but csr.Build and bfs rely on
//     it for reproducible neighbor order and tie-breaking.
//
// Lifecycle:
//
//	An EdgeList is produced once (builder.Generate or codec.Decode) and is
//	treated as immutable afterwards. Nothing in this module mutates an
//	EdgeList it did not allocate.
//
// Errors:
//
//	ErrNodeOutOfRange - a NodeID ≥ N was supplied where N nodes exist.
//
// Quick ASCII example:
//
//	0───1
//	│ ╱
//	2        EdgeList{{0,1},{1,2},{0,2}}  (N = 3, M = 3)
package core
