package codec

import (
	"fmt"

	"github.com/katalvlaran/edgepath/core"
)

// MatrixHeaderSize is the byte length of the N word in the dense format.
const MatrixHeaderSize = 4

// maxMatrixNodes bounds N so that N·N bytes stay addressable in memory.
const maxMatrixNodes = 1 << 16

// Matrix is a decoded dense adjacency matrix, row-major, one byte per cell.
type Matrix struct {
	N     uint32
	Cells []byte
}

// At returns the cell (u,v). Callers must keep u,v below N.
func (m *Matrix) At(u, v core.NodeID) byte {
	return m.Cells[uint64(u)*uint64(m.N)+uint64(v)]
}

// DecodeMatrix parses the dense format: uint32 N, then N·N bytes.
// Unlike the edge-list format, any size other than 4 + N·N is ErrFormat.
func DecodeMatrix(data []byte) (*Matrix, error) {
	actual := uint64(len(data))
	if actual < MatrixHeaderSize {
		return nil, fmt.Errorf("%w: matrix header needs %d bytes, got %d", ErrFormat, MatrixHeaderSize, actual)
	}
	n := order.Uint32(data[0:4])
	expected := MatrixHeaderSize + uint64(n)*uint64(n)
	if actual != expected {
		return nil, fmt.Errorf("%w: header says N=%d, expected %d bytes, got %d",
			ErrFormat, n, expected, actual)
	}
	cells := make([]byte, expected-MatrixHeaderSize)
	copy(cells, data[MatrixHeaderSize:])
	return &Matrix{N: n, Cells: cells}, nil
}

// EncodeMatrix renders edges as a symmetric 0/1 matrix of side n.
// Endpoints ≥ n are rejected with core.ErrNodeOutOfRange.
// Complexity: O(N² + M) time and space.
func EncodeMatrix(n uint32, edges core.EdgeList) ([]byte, error) {
	if n > maxMatrixNodes {
		return nil, fmt.Errorf("%w: N=%d > %d", ErrTooManyNodes, n, maxMatrixNodes)
	}
	if err := edges.Validate(n); err != nil {
		return nil, fmt.Errorf("codec: matrix: %w", err)
	}
	side := uint64(n)
	buf := make([]byte, MatrixHeaderSize+side*side)
	order.PutUint32(buf[0:4], n)
	cells := buf[MatrixHeaderSize:]
	for _, e := range edges {
		cells[uint64(e.U)*side+uint64(e.V)] = 1
		cells[uint64(e.V)*side+uint64(e.U)] = 1
	}
	return buf, nil
}

// Edges recovers the upper-triangle edges (u ≤ v) in row-major order.
// Any non-zero cell counts as an edge; a set diagonal cell yields a self-loop.
func (m *Matrix) Edges() core.EdgeList {
	var out core.EdgeList
	side := uint64(m.N)
	for u := uint64(0); u < side; u++ {
		row := m.Cells[u*side : (u+1)*side]
		for v := u; v < side; v++ {
			if row[v] != 0 {
				out = append(out, core.Edge{U: core.NodeID(u), V: core.NodeID(v)})
			}
		}
	}
	return out
}
