// SPDX-License-Identifier: MIT
// Package: edgepath/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits the Path edges (i,i+1) followed by the closing edge (n-1,0).
//
// Complexity: O(n) time and space.

package builder

import "github.com/katalvlaran/edgepath/core"

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		base, err := d.AddNodes(MethodCycle, n)
		if err != nil {
			return err
		}
		addChain(d, base, n)
		d.AddEdge(base+core.NodeID(n-1), base)
		return nil
	}
}
