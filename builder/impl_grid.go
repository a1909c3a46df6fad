// SPDX-License-Identifier: MIT
// Package: edgepath/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   • Node id of cell (r,c) is base + r*cols + c (row-major).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each (r,c) in row-major order emit Right then Bottom if present.
//
// Complexity:
//   • Time: O(rows*cols).
//   • Space: O(rows*cols) for the emitted list.

package builder

import (
	"fmt"

	"github.com/katalvlaran/edgepath/core"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		base, err := d.AddNodes(MethodGrid, rows*cols)
		if err != nil {
			return err
		}

		cell := func(r, c int) core.NodeID { return base + core.NodeID(r*cols+c) }

		d.grow(2 * rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					d.AddEdge(cell(r, c), cell(r, c+1))
				}
				if r+1 < rows {
					d.AddEdge(cell(r, c), cell(r+1, c))
				}
			}
		}
		return nil
	}
}
