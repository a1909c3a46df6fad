package report_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/edgepath/bfs"
	"github.com/katalvlaran/edgepath/core"
	"github.com/katalvlaran/edgepath/csr"
	"github.com/katalvlaran/edgepath/report"
)

func query(t *testing.T, n uint32, edges core.EdgeList, s, d core.NodeID) *bfs.PathResult {
	t.Helper()
	g, err := csr.Build(n, edges)
	require.NoError(t, err)
	res, err := bfs.ShortestPath(g, s, d)
	require.NoError(t, err)
	return res
}

func TestWriteJSON_Found(t *testing.T) {
	res := query(t, 3, core.EdgeList{{U: 0, V: 1}, {U: 1, V: 2}, {U: 0, V: 2}}, 0, 2)
	r := report.New(res)
	require.NoError(t, r.Validate())

	var buf bytes.Buffer
	require.NoError(t, r.WriteJSON(&buf))
	want := `{
  "source": 0,
  "target": 2,
  "hop_count": 1,
  "nodes": [
    0,
    2
  ]
}
`
	assert.Equal(t, want, buf.String())
}

func TestWriteJSON_NoPath(t *testing.T) {
	r := report.New(query(t, 2, nil, 0, 1))
	require.NoError(t, r.Validate())
	assert.False(t, r.Found())

	var buf bytes.Buffer
	require.NoError(t, r.WriteJSON(&buf))
	assert.Contains(t, buf.String(), `"hop_count": null`)
	assert.Contains(t, buf.String(), `"nodes": []`)

	// a zero-value report still never writes "nodes": null
	buf.Reset()
	require.NoError(t, report.PathReport{}.WriteJSON(&buf))
	assert.NotContains(t, buf.String(), `"nodes": null`)
}

func TestReadJSON_RoundTrip(t *testing.T) {
	r := report.New(query(t, 4, core.EdgeList{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}}, 3, 0))
	var buf bytes.Buffer
	require.NoError(t, r.WriteJSON(&buf))

	got, err := report.ReadJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, r, got)
	assert.Equal(t, []core.NodeID{3, 2, 1, 0}, got.Nodes)
}

func TestReadJSON_Rejects(t *testing.T) {
	cases := map[string]string{
		"syntax":          `{"source": 0,`,
		"hop mismatch":    `{"source":0,"target":1,"hop_count":2,"nodes":[0,1]}`,
		"wrong endpoints": `{"source":0,"target":1,"hop_count":1,"nodes":[1,0]}`,
		"nodes w/o hops":  `{"source":0,"target":1,"hop_count":null,"nodes":[0,1]}`,
		"hops w/o nodes":  `{"source":0,"target":1,"hop_count":1,"nodes":[]}`,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := report.ReadJSON(strings.NewReader(in))
			require.Error(t, err)
			if name != "syntax" {
				assert.ErrorIs(t, err, report.ErrInconsistent)
			}
		})
	}
}

func TestReadJSON_MissingNodesKey(t *testing.T) {
	got, err := report.ReadJSON(strings.NewReader(`{"source":0,"target":1,"hop_count":null}`))
	require.NoError(t, err)
	assert.NotNil(t, got.Nodes)
	assert.Empty(t, got.Nodes)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.New(query(t, 2, nil, 0, 1)).WriteYAML(&buf))
	assert.Contains(t, buf.String(), "hop_count: null")
	assert.Contains(t, buf.String(), "nodes: []")

	r := report.New(query(t, 3, core.EdgeList{{U: 0, V: 1}, {U: 1, V: 2}}, 0, 2))
	buf.Reset()
	require.NoError(t, r.WriteYAML(&buf))
	var back report.PathReport
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, r, back)
}

func TestPathEdges(t *testing.T) {
	r := report.New(query(t, 4, core.EdgeList{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}}, 0, 3))
	assert.Equal(t, core.EdgeList{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}}, r.PathEdges())

	single := report.New(query(t, 1, nil, 0, 0))
	assert.Empty(t, single.PathEdges())
}

func TestNew_CopiesNodes(t *testing.T) {
	res := query(t, 2, core.EdgeList{{U: 0, V: 1}}, 0, 1)
	r := report.New(res)
	res.Nodes[0] = 9
	*res.HopCount = 7
	assert.Equal(t, []core.NodeID{0, 1}, r.Nodes)
	assert.Equal(t, uint32(1), *r.HopCount)
}

func TestFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "50k.bin")
	path := report.FileName(out)
	assert.Equal(t, filepath.Join(dir, "50k.json"), path)

	r := report.New(query(t, 2, core.EdgeList{{U: 0, V: 1}}, 1, 0))
	require.NoError(t, r.WriteFile(path))
	got, err := report.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, r, got)

	_, err = report.ReadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	cases := map[string]string{
		"50k.bin":          "50k.json",
		"graphs/1k.bin":    "graphs/1k.json",
		"noext":            "noext.json",
		"dir.v2/graph.bin": "dir.v2/graph.json",
	}
	for in, want := range cases {
		assert.Equal(t, want, report.FileName(in), in)
	}
}
