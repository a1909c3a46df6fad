// SPDX-License-Identifier: MIT
// Package: edgepath/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + hub: a rim cycle of n-1 nodes plus one hub node.
//   • Therefore, n ≥ 4 (the rim must be a valid cycle).
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • Rim ids come first (same layout and edge order as Cycle(n-1)); the hub
//     is the last id of the block.
//   • Spokes (hub, rim_i) follow the rim edges in increasing rim index.
//
// Complexity: O(n) time and space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/edgepath/core"
)

// Wheel returns a Constructor that builds a wheel Wₙ = Cₙ₋₁ + hub.
func Wheel(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if err := validateMin(MethodWheel, n, MinWheelNodes); err != nil {
			return err
		}
		rim := core.NodeID(d.N())
		if err := Cycle(n-1)(d, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", MethodWheel, n-1, err)
		}
		hub, err := d.AddNodes(MethodWheel, 1)
		if err != nil {
			return err
		}
		d.grow(n - 1)
		for i := 0; i < n-1; i++ {
			d.AddEdge(hub, rim+core.NodeID(i))
		}
		return nil
	}
}
