// SPDX-License-Identifier: MIT
// Package: edgepath/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • The first node of the block is the hub; leaves follow in ascending order.
//   • Edges (hub, leaf) are emitted in leaf order.

package builder

import "github.com/katalvlaran/edgepath/core"

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}
		hub, err := d.AddNodes(MethodStar, n)
		if err != nil {
			return err
		}
		d.grow(n - 1)
		for i := 1; i < n; i++ {
			d.AddEdge(hub, hub+core.NodeID(i))
		}
		return nil
	}
}
