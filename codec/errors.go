// SPDX-License-Identifier: MIT
// Package: edgepath/codec
//
// errors.go - sentinel errors and the non-fatal size warning.
//
// Error policy:
//   • ErrFormat is the only fatal decode class; callers use errors.Is.
//   • SizeMismatchWarning is a value, never returned through the error result
//     of Decode. It implements error so it can be logged or collected.

package codec

import (
	"errors"
	"fmt"
)

// ErrFormat indicates a truncated header or edge payload.
var ErrFormat = errors.New("codec: malformed input")

// ErrTooManyEdges indicates that an edge list does not fit the 32-bit M field.
var ErrTooManyEdges = errors.New("codec: edge count exceeds uint32")

// ErrTooManyNodes indicates that the dense matrix format cannot address N.
var ErrTooManyNodes = errors.New("codec: node count too large for matrix format")

// SizeMismatchWarning reports trailing bytes after the declared payload.
// Decoding proceeds with the parsed data.
type SizeMismatchWarning struct {
	// Actual is the number of bytes supplied.
	Actual uint64
	// Expected is 8 + 8·M.
	Expected uint64
}

// Error implements error.
func (w *SizeMismatchWarning) Error() string {
	return fmt.Sprintf("codec: size mismatch: header expects %d bytes, got %d (%d trailing)",
		w.Expected, w.Actual, w.Trailing())
}

// Trailing returns the number of bytes beyond the expected size.
func (w *SizeMismatchWarning) Trailing() uint64 {
	return w.Actual - w.Expected
}
