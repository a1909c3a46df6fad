// SPDX-License-Identifier: MIT
// Package: edgepath/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi G(n,p): each unordered pair {u,v}, u<v, is included
//     independently with probability p. Self-loops are never produced.
//   - Sampling uses geometric skipping (Batagelj & Brandes, 2005): instead of
//     one Bernoulli trial per pair, draw the gap to the next included pair
//     from a geometric distribution. Same distribution, O(n + m) time.
//
// Contract:
//   - n ≥ 0 (else ErrTooFewVertices); n = 0 yields no nodes and no edges.
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - p == 0 emits nothing; p == 1 emits K_n; neither consumes the RNG.
//
// Determinism:
//   - Pairs are walked in the fixed order v = 1..n-1, u = 0..v-1, and each
//     included pair is emitted as (u,v). Fixed seed ⇒ fixed list.

package builder

import (
	"math"

	"github.com/katalvlaran/edgepath/core"
)

// maxSkip caps a single geometric jump; any jump ≥ n² already ends sampling.
const maxSkip = float64(1 << 62)

// RandomSparse returns a Constructor that samples G(n,p) over a fresh block
// of n nodes.
func RandomSparse(n int, p float64) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if err := validateMin(MethodRandomSparse, n, MinRandomNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return builderErrorf(MethodRandomSparse, "rng is required", ErrNeedRandSource)
		}

		// 2) Reserve node ids.
		base, err := d.AddNodes(MethodRandomSparse, n)
		if err != nil {
			return err
		}

		// 3) Degenerate probabilities need no randomness.
		switch p {
		case MinProbability:
			return nil
		case MaxProbability:
			d.grow(n * (n - 1) / 2)
			for v := 1; v < n; v++ {
				for u := 0; u < v; u++ {
					d.AddEdge(base+core.NodeID(u), base+core.NodeID(v))
				}
			}
			return nil
		}

		// 4) Geometric skipping over the lower triangle (w < v).
		d.grow(int(p * float64(n) * float64(n-1) / 2))
		rng := cfg.rng
		logQ := math.Log1p(-p) // log(1-p) < 0
		var (
			v int64 = 1
			w int64 = -1
			N       = int64(n)
		)
		for v < N {
			// 1-Float64() is in (0,1], so the log is finite.
			skip := math.Floor(math.Log(1-rng.Float64()) / logQ)
			if skip > maxSkip {
				skip = maxSkip
			}
			w += 1 + int64(skip)
			for w >= v && v < N {
				w -= v
				v++
			}
			if v < N {
				d.AddEdge(base+core.NodeID(w), base+core.NodeID(v))
			}
		}
		return nil
	}
}
