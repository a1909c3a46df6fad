// Package builder produces edge lists: the Erdős–Rényi G(n,p) generator that
// feeds the codec, plus a handful of deterministic fixture topologies used by
// tests and examples.
//
// The package offers the following key components:
//
//   - Generate(n, p, opts...): G(n,p) sampling with an explicit RNG.
//   - Constructor closures composed by BuildEdges:
//     – RandomSparse(n, p)  Erdős–Rényi G(n,p)
//     – Complete(n)         K_n
//     – Path(n)             P_n
//     – Cycle(n)            C_n
//     – Star(n)             hub plus n-1 leaves
//     – Grid(rows, cols)    4-neighborhood lattice, row-major ids
//     – Wheel(n)            rim cycle of n-1 nodes plus a hub
//     – CompleteBipartite(n1, n2)  K_{n1,n2}
//   - Functional options (BuilderOption): WithSeed, WithRand.
//
// Guarantees:
//
//   - No global randomness. A stochastic constructor without WithSeed or
//     WithRand fails with ErrNeedRandSource; the same seed and constructor
//     order always yield the same edge list.
//   - No self-loops and no repeated pairs from any constructor here.
//   - Each constructor allocates a fresh block of node ids, so composing
//     Path(3) and Cycle(4) gives nodes 0..2 and 3..6 (disjoint union).
//   - Structured runtime errors: sentinels wrapped with the constructor name,
//     "RandomSparse: p=1.500000 not in [0.0,1.0]: builder: probability out of range".
package builder
