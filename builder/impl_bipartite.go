// SPDX-License-Identifier: MIT
// Package: edgepath/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1,n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left part takes the first n1 ids of the block, right part the next n2.
//   • Edges (l_i, r_j) for i asc over L, inner j asc over R: n1·n2 edges.
//
// Complexity: O(n1·n2) time and space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/edgepath/core"
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if n1 < MinPartitionSize || n2 < MinPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d < min=%d: %w",
				MethodCompleteBipartite, n1, n2, MinPartitionSize, ErrTooFewVertices)
		}
		left, err := d.AddNodes(MethodCompleteBipartite, n1+n2)
		if err != nil {
			return err
		}
		right := left + core.NodeID(n1)
		d.grow(n1 * n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				d.AddEdge(left+core.NodeID(i), right+core.NodeID(j))
			}
		}
		return nil
	}
}
