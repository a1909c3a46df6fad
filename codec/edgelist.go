package codec

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/edgepath/core"
)

const (
	// HeaderSize is the byte length of the N and M words.
	HeaderSize = 8
	// EdgeSize is the byte length of one (u,v) pair.
	EdgeSize = 8
)

var order = binary.LittleEndian

// Decoded is the result of a successful Decode.
type Decoded struct {
	// N is the declared node count.
	N uint32
	// M is the declared edge count; len(Edges) == M.
	M uint32
	// Edges preserves file order.
	Edges core.EdgeList
	// Warning is non-nil when the input carried trailing bytes.
	Warning *SizeMismatchWarning
}

// ExpectedSize returns 8 + 8·m, the exact byte size of a file with m edges.
func ExpectedSize(m uint32) uint64 {
	return HeaderSize + EdgeSize*uint64(m)
}

// Decode parses an edge-list buffer.
// Returns an error wrapping ErrFormat if the header or any of the M declared
// pairs is missing. Trailing bytes are reported through Decoded.Warning.
// Complexity: O(M) time, O(M) space.
func Decode(data []byte) (*Decoded, error) {
	actual := uint64(len(data))
	if actual < HeaderSize {
		return nil, fmt.Errorf("%w: header needs %d bytes, got %d", ErrFormat, HeaderSize, actual)
	}
	n := order.Uint32(data[0:4])
	m := order.Uint32(data[4:8])

	expected := ExpectedSize(m)
	if actual < expected {
		return nil, fmt.Errorf("%w: header declares %d edges (%d bytes), got %d bytes",
			ErrFormat, m, expected, actual)
	}

	edges := make(core.EdgeList, m)
	off := HeaderSize
	for i := range edges {
		edges[i] = core.Edge{
			U: order.Uint32(data[off : off+4]),
			V: order.Uint32(data[off+4 : off+8]),
		}
		off += EdgeSize
	}

	d := &Decoded{N: n, M: m, Edges: edges}
	if actual > expected {
		d.Warning = &SizeMismatchWarning{Actual: actual, Expected: expected}
	}
	return d, nil
}

// Encode serializes n and edges: header first, then each pair in list order.
// Endpoints are not checked against n; the format stores what it is given.
// Complexity: O(M).
func Encode(n uint32, edges core.EdgeList) ([]byte, error) {
	if uint64(len(edges)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d edges", ErrTooManyEdges, len(edges))
	}
	buf := make([]byte, ExpectedSize(uint32(len(edges))))
	order.PutUint32(buf[0:4], n)
	order.PutUint32(buf[4:8], uint32(len(edges)))
	off := HeaderSize
	for _, e := range edges {
		order.PutUint32(buf[off:off+4], e.U)
		order.PutUint32(buf[off+4:off+8], e.V)
		off += EdgeSize
	}
	return buf, nil
}

// EncodeTo writes the same bytes as Encode to w without materializing the
// whole buffer. It returns the number of bytes written.
func EncodeTo(w io.Writer, n uint32, edges core.EdgeList) (int64, error) {
	if uint64(len(edges)) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d edges", ErrTooManyEdges, len(edges))
	}
	bw := bufio.NewWriter(w)
	var (
		word    [EdgeSize]byte
		written int64
	)
	order.PutUint32(word[0:4], n)
	order.PutUint32(word[4:8], uint32(len(edges)))
	if _, err := bw.Write(word[:]); err != nil {
		return written, fmt.Errorf("codec: write header: %w", err)
	}
	written += HeaderSize
	for i, e := range edges {
		order.PutUint32(word[0:4], e.U)
		order.PutUint32(word[4:8], e.V)
		if _, err := bw.Write(word[:]); err != nil {
			return written, fmt.Errorf("codec: write edge %d: %w", i, err)
		}
		written += EdgeSize
	}
	if err := bw.Flush(); err != nil {
		return written, fmt.Errorf("codec: flush: %w", err)
	}
	return written, nil
}

// ReadFile loads and decodes an edge-list file.
func ReadFile(path string) (*Decoded, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("codec: read %s: %w", path, err)
	}
	d, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("codec: decode %s: %w", path, err)
	}
	return d, nil
}

// WriteFile encodes n and edges into path, truncating any existing file.
func WriteFile(path string, n uint32, edges core.EdgeList) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("codec: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("codec: close %s: %w", path, cerr)
		}
	}()
	if _, err = EncodeTo(f, n, edges); err != nil {
		return fmt.Errorf("codec: encode %s: %w", path, err)
	}
	return nil
}
