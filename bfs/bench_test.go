package bfs_test

import (
	"testing"

	"github.com/katalvlaran/edgepath/bfs"
	"github.com/katalvlaran/edgepath/builder"
	"github.com/katalvlaran/edgepath/core"
	"github.com/katalvlaran/edgepath/csr"
)

// BenchmarkBFS_Chain measures BFS on a linear chain of N nodes.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	edges := make(core.EdgeList, 0, N-1)
	for i := uint32(0); i+1 < N; i++ {
		edges = append(edges, core.Edge{U: i, V: i + 1})
	}
	g, err := csr.Build(N, edges)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(N + len(edges)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// benchmarkRandom builds the default-sized G(n,p) once and runs sp from 0 to n-1.
func benchmarkRandom(b *testing.B, sp shortestFunc) {
	edges, err := builder.Generate(builder.DefaultNodes, builder.DefaultProbability, builder.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	g, err := csr.Build(builder.DefaultNodes, edges)
	if err != nil {
		b.Fatal(err)
	}
	target := core.NodeID(builder.DefaultNodes - 1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = sp(g, 0, target)
	}
}

func BenchmarkShortestPath_Random(b *testing.B) { benchmarkRandom(b, bfs.ShortestPath) }

func BenchmarkBidirectional_Random(b *testing.B) { benchmarkRandom(b, bfs.BidirectionalShortestPath) }
