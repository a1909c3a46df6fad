// Package bfs provides breadth-first search over a csr.SparseGraph,
// returning unweighted shortest paths, distances, parent links, and visit order.
//
// What
//
//   - BFS: full traversal from a source. Returns a Result containing:
//   - Order: visit sequence
//   - Depth: per-node distance in hops, Unreached (-1) if not discovered
//   - Parent: per-node predecessor in the BFS tree
//   - ShortestPath: single-target query that stops as soon as the target is
//     discovered and reports a PathResult.
//   - BidirectionalShortestPath: same query answered by two frontiers that
//     meet in the middle, expanding the smaller one each round.
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a node is discovered)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Honors a MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Determinism
//
//	Neighbors are taken in CSR row order, which is the edge-list encounter
//	order, and the first discovery of a node fixes its parent. Given the same
//	edge list, ShortestPath always returns the same node sequence.
//
// No path
//
//	An unreachable target is data, not an error: PathResult.HopCount is nil
//	and PathResult.Nodes is empty (never nil).
//
// Complexity (N = nodes, M = edges)
//
//   - Time:   O(N + M)
//   - Memory: O(N) for the queue, depth, and parent arrays.
//
// Usage
//
//	g, _ := csr.Build(n, edges)
//	res, err := bfs.ShortestPath(g, 0, n-1)
//	if err != nil {
//	    // ErrGraphNil, ErrOptionViolation, core.ErrNodeOutOfRange, ctx.Err(), or hook errors
//	}
//	if hops, ok := res.Hops(); ok {
//	    fmt.Println(hops, res.Nodes)
//	}
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - core.ErrNodeOutOfRange  if source or target ≥ N (wrapped).
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath               from Result.PathTo for an unreached node.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
