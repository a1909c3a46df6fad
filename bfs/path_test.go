package bfs_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/edgepath/bfs"
	"github.com/katalvlaran/edgepath/builder"
	"github.com/katalvlaran/edgepath/core"
	"github.com/katalvlaran/edgepath/csr"
)

// shortestFunc lets the same checks run against both engines.
type shortestFunc func(*csr.SparseGraph, core.NodeID, core.NodeID, ...bfs.Option) (*bfs.PathResult, error)

var engines = map[string]shortestFunc{
	"unidirectional": bfs.ShortestPath,
	"bidirectional":  bfs.BidirectionalShortestPath,
}

// assertValidPath checks endpoints, adjacency of consecutive nodes, and hop count.
func assertValidPath(t *testing.T, g *csr.SparseGraph, res *bfs.PathResult) {
	t.Helper()
	require.True(t, res.Found())
	require.NotEmpty(t, res.Nodes)
	assert.Equal(t, res.Source, res.Nodes[0])
	assert.Equal(t, res.Target, res.Nodes[len(res.Nodes)-1])
	assert.Equal(t, uint32(len(res.Nodes)-1), *res.HopCount)
	seen := map[core.NodeID]bool{}
	for i, u := range res.Nodes {
		assert.False(t, seen[u], "node %d repeated", u)
		seen[u] = true
		if i > 0 {
			assert.True(t, g.HasEdge(res.Nodes[i-1], u), "no edge %d-%d", res.Nodes[i-1], u)
		}
	}
}

func TestShortestPath_TrianglePrefersDirectEdge(t *testing.T) {
	g := mustBuild(t, 3, core.EdgeList{{U: 0, V: 1}, {U: 1, V: 2}, {U: 0, V: 2}})
	for name, sp := range engines {
		t.Run(name, func(t *testing.T) {
			res, err := sp(g, 0, 2)
			require.NoError(t, err)
			hops, ok := res.Hops()
			require.True(t, ok)
			assert.Equal(t, uint32(1), hops)
			assert.Equal(t, []core.NodeID{0, 2}, res.Nodes)
		})
	}
}

func TestShortestPath_NoEdges(t *testing.T) {
	g := mustBuild(t, 2, nil)
	for name, sp := range engines {
		t.Run(name, func(t *testing.T) {
			res, err := sp(g, 0, 1)
			require.NoError(t, err)
			assert.False(t, res.Found())
			assert.Nil(t, res.HopCount)
			assert.NotNil(t, res.Nodes)
			assert.Empty(t, res.Nodes)
		})
	}
}

func TestShortestPath_SourceEqualsTarget(t *testing.T) {
	g := mustBuild(t, 3, core.EdgeList{{U: 0, V: 1}})
	for name, sp := range engines {
		t.Run(name, func(t *testing.T) {
			res, err := sp(g, 2, 2)
			require.NoError(t, err)
			require.True(t, res.Found())
			assert.Equal(t, uint32(0), *res.HopCount)
			assert.Equal(t, []core.NodeID{2}, res.Nodes)
		})
	}
}

func TestShortestPath_Errors(t *testing.T) {
	g := mustBuild(t, 3, core.EdgeList{{U: 0, V: 1}})
	for name, sp := range engines {
		t.Run(name, func(t *testing.T) {
			_, err := sp(g, 3, 0)
			assert.ErrorIs(t, err, core.ErrNodeOutOfRange)
			_, err = sp(g, 0, 3)
			assert.ErrorIs(t, err, core.ErrNodeOutOfRange)
			_, err = sp(nil, 0, 1)
			assert.ErrorIs(t, err, bfs.ErrGraphNil)
			_, err = sp(g, 0, 1, bfs.WithMaxDepth(-2))
			assert.ErrorIs(t, err, bfs.ErrOptionViolation)
		})
	}
}

func TestShortestPath_TieBreakFollowsEdgeOrder(t *testing.T) {
	// two 2-hop routes 0-1-3 and 0-2-3
	a := mustBuild(t, 4, core.EdgeList{{U: 0, V: 1}, {U: 0, V: 2}, {U: 1, V: 3}, {U: 2, V: 3}})
	b := mustBuild(t, 4, core.EdgeList{{U: 0, V: 2}, {U: 0, V: 1}, {U: 2, V: 3}, {U: 1, V: 3}})

	ra, err := bfs.ShortestPath(a, 0, 3)
	require.NoError(t, err)
	rb, err := bfs.ShortestPath(b, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1, 3}, ra.Nodes)
	assert.Equal(t, []core.NodeID{0, 2, 3}, rb.Nodes)
}

func TestShortestPath_MaxDepth(t *testing.T) {
	g := mustBuild(t, 4, core.EdgeList{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}})
	for name, sp := range engines {
		t.Run(name, func(t *testing.T) {
			res, err := sp(g, 0, 3, bfs.WithMaxDepth(2))
			require.NoError(t, err)
			assert.False(t, res.Found())

			res, err = sp(g, 0, 3, bfs.WithMaxDepth(3))
			require.NoError(t, err)
			assert.Equal(t, []core.NodeID{0, 1, 2, 3}, res.Nodes)
		})
	}
}

func TestShortestPath_StopsAtTarget(t *testing.T) {
	// star with hub 0; target is the first leaf, later leaves are never visited
	g := mustBuild(t, 5, core.EdgeList{{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}, {U: 0, V: 4}})
	var visited []core.NodeID
	res, err := bfs.ShortestPath(g, 0, 1, bfs.WithOnVisit(func(id core.NodeID, _ int) error {
		visited = append(visited, id)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1}, res.Nodes)
	assert.Equal(t, []core.NodeID{0}, visited)
}

// TestShortestPath_MatchesGonum compares hop counts with gonum's shortest
// paths on small random graphs, including disconnected ones.
func TestShortestPath_MatchesGonum(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		n := 10 + int(seed)*2
		p := 0.02 + float64(seed%5)*0.03
		edges, err := builder.Generate(n, p, builder.WithSeed(seed))
		require.NoError(t, err)
		g := mustBuild(t, uint32(n), edges)
		oracle := g.ToGonum()

		for s := 0; s < n; s += 3 {
			dist := path.DijkstraFrom(simple.Node(s), oracle)
			for d := 0; d < n; d++ {
				want := dist.WeightTo(int64(d))
				for name, sp := range engines {
					res, err := sp(g, core.NodeID(s), core.NodeID(d))
					require.NoError(t, err)
					if math.IsInf(want, 1) {
						assert.False(t, res.Found(), "%s seed=%d %d->%d", name, seed, s, d)
						continue
					}
					require.True(t, res.Found(), "%s seed=%d %d->%d", name, seed, s, d)
					assert.Equal(t, uint32(want), *res.HopCount, "%s seed=%d %d->%d", name, seed, s, d)
					assertValidPath(t, g, res)
				}
			}
		}
	}
}

// TestBFS_DepthMatchesShortestPath checks that full traversal depths agree
// with single-target queries.
func TestBFS_DepthMatchesShortestPath(t *testing.T) {
	edges, err := builder.Generate(80, 0.04, builder.WithSeed(99))
	require.NoError(t, err)
	g := mustBuild(t, 80, edges)

	res, err := bfs.BFS(g, 5)
	require.NoError(t, err)
	for d := core.NodeID(0); d < 80; d++ {
		sp, err := bfs.ShortestPath(g, 5, d)
		require.NoError(t, err)
		if res.Depth[d] == bfs.Unreached {
			assert.False(t, sp.Found())
			continue
		}
		assert.Equal(t, uint32(res.Depth[d]), *sp.HopCount)
		p, err := res.PathTo(d)
		require.NoError(t, err)
		assert.Len(t, p, int(res.Depth[d])+1)
	}
}

func TestShortestPath_Grid(t *testing.T) {
	_, edges, err := builder.BuildEdges(nil, builder.Grid(4, 5))
	require.NoError(t, err)
	g := mustBuild(t, 20, edges)
	for name, sp := range engines {
		t.Run(name, func(t *testing.T) {
			res, err := sp(g, 0, 19)
			require.NoError(t, err)
			assert.Equal(t, uint32(3+4), *res.HopCount)
			assertValidPath(t, g, res)
		})
	}
}
