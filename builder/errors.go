// SPDX-License-Identifier: MIT
// Package: edgepath/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`, prefixed by the method name.
//   • Constructors never panic at runtime; option constructors may panic on
//     programmer error (nil RNG).

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (e.g., n, rows, cols)
// is smaller than the allowed minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrTooManyVertices indicates that the accumulated node count would exceed
// the 32-bit NodeID space.
var ErrTooManyVertices = errors.New("builder: node count exceeds uint32 id space")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1] (or is NaN).
// Usage: if errors.Is(err, ErrInvalidProbability) { /* clamp or reject p */ }.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a composition failure, e.g. a nil Constructor
// passed to BuildEdges.
var ErrConstructFailed = errors.New("builder: construction failed")

// --- Implementation Notes ----------------------------------------------------
//
// Priority when several validations fail:
//    • ErrTooFewVertices / ErrTooManyVertices - size checks first.
//    • ErrInvalidProbability                  - then probability ranges.
//    • ErrNeedRandSource                      - then RNG presence.
