// SPDX-License-Identifier: MIT
// Package: edgepath/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits each unordered pair {i,j} with i<j exactly once, lexicographic by (i,j).
//
// Complexity:
//   • Time: O(n²) edges emission.
//   • Space: O(n²) for the emitted list.

package builder

import "github.com/katalvlaran/edgepath/core"

const minCompleteNodes = 1

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if err := validateMin(MethodComplete, n, minCompleteNodes); err != nil {
			return err
		}
		base, err := d.AddNodes(MethodComplete, n)
		if err != nil {
			return err
		}

		d.grow(n * (n - 1) / 2)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d.AddEdge(base+core.NodeID(i), base+core.NodeID(j))
			}
		}
		return nil
	}
}
