// Package builder_test contains functional tests for all Constructor
// implementations in the builder package, verifying topology, counts and
// determinism.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edgepath/builder"
	"github.com/katalvlaran/edgepath/core"
)

// assertSimple checks the no-loop / no-duplicate / in-range contract.
func assertSimple(t *testing.T, n uint32, edges core.EdgeList) {
	t.Helper()
	seen := make(map[core.Edge]struct{}, len(edges))
	for _, e := range edges {
		require.Less(t, e.U, n, "endpoint out of range in %s", e)
		require.Less(t, e.V, n, "endpoint out of range in %s", e)
		require.False(t, e.IsLoop(), "self-loop %s", e)
		k := e.Canonical()
		_, dup := seen[k]
		require.False(t, dup, "duplicate pair %s", e)
		seen[k] = struct{}{}
	}
}

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantN uint32
		wantE core.EdgeList
	}{
		{"Path(4)", builder.Path(4), 4, core.EdgeList{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}}},
		{"Cycle(4)", builder.Cycle(4), 4, core.EdgeList{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 0}}},
		{"Star(4)", builder.Star(4), 4, core.EdgeList{{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}}},
		{"Complete(4)", builder.Complete(4), 4, core.EdgeList{{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}, {U: 1, V: 2}, {U: 1, V: 3}, {U: 2, V: 3}}},
		{"Complete(1)", builder.Complete(1), 1, nil},
		{"Grid(2,3)", builder.Grid(2, 3), 6, core.EdgeList{
			{U: 0, V: 1}, {U: 0, V: 3}, {U: 1, V: 2}, {U: 1, V: 4}, {U: 2, V: 5}, {U: 3, V: 4}, {U: 4, V: 5},
		}},
		{"Wheel(4)", builder.Wheel(4), 4, core.EdgeList{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}, {U: 3, V: 0}, {U: 3, V: 1}, {U: 3, V: 2}}},
		{"CompleteBipartite(2,2)", builder.CompleteBipartite(2, 2), 4, core.EdgeList{{U: 0, V: 2}, {U: 0, V: 3}, {U: 1, V: 2}, {U: 1, V: 3}}},
		{"CompleteBipartite(1,3)", builder.CompleteBipartite(1, 3), 4, core.EdgeList{{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			n, edges, err := builder.BuildEdges(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantN, n)
			assert.Equal(t, tc.wantE, edges)
			assertSimple(t, n, edges)
		})
	}
}

// TestBuildEdges_Composition verifies that constructors get disjoint id blocks.
func TestBuildEdges_Composition(t *testing.T) {
	t.Parallel()

	n, edges, err := builder.BuildEdges(nil, builder.Path(3), builder.Cycle(3))
	require.NoError(t, err)
	assert.EqualValues(t, 6, n)
	assert.Equal(t, core.EdgeList{{U: 0, V: 1}, {U: 1, V: 2}, {U: 3, V: 4}, {U: 4, V: 5}, {U: 5, V: 3}}, edges)

	// a wheel after a path keeps its rim and hub inside its own block
	n, edges, err = builder.BuildEdges(nil, builder.Path(2), builder.Wheel(4))
	require.NoError(t, err)
	assert.EqualValues(t, 6, n)
	assert.Equal(t, core.EdgeList{{U: 0, V: 1}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 2}, {U: 5, V: 2}, {U: 5, V: 3}, {U: 5, V: 4}}, edges)
}

func TestBuildEdges_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		cons []builder.Constructor
		want error
	}{
		{"nil constructor", []builder.Constructor{nil}, builder.ErrConstructFailed},
		{"path too small", []builder.Constructor{builder.Path(1)}, builder.ErrTooFewVertices},
		{"cycle too small", []builder.Constructor{builder.Cycle(2)}, builder.ErrTooFewVertices},
		{"star too small", []builder.Constructor{builder.Star(1)}, builder.ErrTooFewVertices},
		{"grid zero rows", []builder.Constructor{builder.Grid(0, 3)}, builder.ErrTooFewVertices},
		{"complete zero", []builder.Constructor{builder.Complete(0)}, builder.ErrTooFewVertices},
		{"wheel too small", []builder.Constructor{builder.Wheel(3)}, builder.ErrTooFewVertices},
		{"bipartite empty side", []builder.Constructor{builder.CompleteBipartite(3, 0)}, builder.ErrTooFewVertices},
		{"random bad p", []builder.Constructor{builder.RandomSparse(4, 1.5)}, builder.ErrInvalidProbability},
		{"random no rng", []builder.Constructor{builder.RandomSparse(4, 0.5)}, builder.ErrNeedRandSource},
		{"random negative n", []builder.Constructor{builder.RandomSparse(-1, 0.5)}, builder.ErrTooFewVertices},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, edges, err := builder.BuildEdges(nil, tc.cons...)
			assert.Nil(t, edges)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
