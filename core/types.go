package core

import (
	"errors"
	"fmt"
)

// ErrNodeOutOfRange indicates that a NodeID is not below the node count N.
// It is fatal wherever it appears: callers supplied an inconsistent (N, edges)
// pair or queried a node that does not exist.
var ErrNodeOutOfRange = errors.New("core: node id out of range")

// NodeID identifies a node in [0, N).
type NodeID = uint32

// MaxNodes is the largest node count the 32-bit header can declare.
const MaxNodes = uint64(^uint32(0))

// Edge is an undirected pair of endpoints. {U,V} and {V,U} denote the same
// connection; the stored orientation only matters for encounter order.
type Edge struct {
	U NodeID
	V NodeID
}

// IsLoop reports whether both endpoints coincide.
func (e Edge) IsLoop() bool { return e.U == e.V }

// Canonical returns the edge with its smaller endpoint first.
func (e Edge) Canonical() Edge {
	if e.V < e.U {
		return Edge{U: e.V, V: e.U}
	}
	return e
}

// String renders the edge as "(u,v)".
func (e Edge) String() string {
	return fmt.Sprintf("(%d,%d)", e.U, e.V)
}

// EdgeList is an ordered sequence of edges. Order is insertion order.
type EdgeList []Edge

// Len returns M, the number of edges.
func (l EdgeList) Len() int { return len(l) }

// MaxNode returns the largest endpoint seen and false for an empty list.
// Complexity: O(M).
func (l EdgeList) MaxNode() (NodeID, bool) {
	if len(l) == 0 {
		return 0, false
	}
	var m NodeID
	for _, e := range l {
		if e.U > m {
			m = e.U
		}
		if e.V > m {
			m = e.V
		}
	}
	return m, true
}

// Validate checks every endpoint against n and returns the first violation
// wrapped with ErrNodeOutOfRange.
// Complexity: O(M).
func (l EdgeList) Validate(n uint32) error {
	for i, e := range l {
		if e.U >= n || e.V >= n {
			return fmt.Errorf("edge %d %s with N=%d: %w", i, e, n, ErrNodeOutOfRange)
		}
	}
	return nil
}

// CheckNode returns ErrNodeOutOfRange (wrapped with the offending id) when
// id is not below n.
func CheckNode(id NodeID, n uint32) error {
	if id >= n {
		return fmt.Errorf("node %d with N=%d: %w", id, n, ErrNodeOutOfRange)
	}
	return nil
}
