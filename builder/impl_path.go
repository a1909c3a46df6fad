// SPDX-License-Identifier: MIT
// Package: edgepath/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Edges (i,i+1) for i = 0..n-2 in ascending order.
//
// Complexity: O(n) time and space.

package builder

import "github.com/katalvlaran/edgepath/core"

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}
		base, err := d.AddNodes(MethodPath, n)
		if err != nil {
			return err
		}
		addChain(d, base, n)
		return nil
	}
}

// addChain links base, base+1, …, base+n-1.
func addChain(d *Draft, base core.NodeID, n int) {
	d.grow(n)
	for i := 0; i+1 < n; i++ {
		d.AddEdge(base+core.NodeID(i), base+core.NodeID(i+1))
	}
}
