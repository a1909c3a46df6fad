package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/edgepath/bfs"
	"github.com/katalvlaran/edgepath/core"
)

// ErrInconsistent is returned by Validate when the fields disagree.
var ErrInconsistent = errors.New("report: inconsistent path report")

// PathReport is the on-disk form of a bfs.PathResult.
type PathReport struct {
	Source   core.NodeID   `json:"source" yaml:"source"`
	Target   core.NodeID   `json:"target" yaml:"target"`
	HopCount *uint32       `json:"hop_count" yaml:"hop_count"`
	Nodes    []core.NodeID `json:"nodes" yaml:"nodes"`
}

// New converts a query result. Nodes is copied and never nil.
func New(res *bfs.PathResult) PathReport {
	r := PathReport{
		Source: res.Source,
		Target: res.Target,
		Nodes:  make([]core.NodeID, len(res.Nodes)),
	}
	copy(r.Nodes, res.Nodes)
	if res.HopCount != nil {
		h := *res.HopCount
		r.HopCount = &h
	}
	return r
}

// Found reports whether the report describes an existing path.
func (r PathReport) Found() bool { return r.HopCount != nil }

// Validate checks that nodes start at source, end at target and that
// hop_count = len(nodes)-1, or that both are absent for a missing path.
func (r PathReport) Validate() error {
	if r.HopCount == nil {
		if len(r.Nodes) != 0 {
			return fmt.Errorf("%w: %d nodes without hop_count", ErrInconsistent, len(r.Nodes))
		}
		return nil
	}
	if len(r.Nodes) == 0 {
		return fmt.Errorf("%w: hop_count %d with no nodes", ErrInconsistent, *r.HopCount)
	}
	if uint64(*r.HopCount) != uint64(len(r.Nodes)-1) {
		return fmt.Errorf("%w: hop_count %d, %d nodes", ErrInconsistent, *r.HopCount, len(r.Nodes))
	}
	if r.Nodes[0] != r.Source || r.Nodes[len(r.Nodes)-1] != r.Target {
		return fmt.Errorf("%w: path %d..%d does not join %d and %d",
			ErrInconsistent, r.Nodes[0], r.Nodes[len(r.Nodes)-1], r.Source, r.Target)
	}
	return nil
}

// PathEdges returns consecutive node pairs along the path, the edges a
// renderer highlights.
func (r PathReport) PathEdges() core.EdgeList {
	if len(r.Nodes) < 2 {
		return core.EdgeList{}
	}
	out := make(core.EdgeList, 0, len(r.Nodes)-1)
	for i := 1; i < len(r.Nodes); i++ {
		out = append(out, core.Edge{U: r.Nodes[i-1], V: r.Nodes[i]})
	}
	return out
}

// WriteJSON writes r indented by two spaces, followed by a newline.
func (r PathReport) WriteJSON(w io.Writer) error {
	if r.Nodes == nil {
		r.Nodes = []core.NodeID{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("report: encode json: %w", err)
	}
	return nil
}

// WriteYAML writes r as a YAML document.
func (r PathReport) WriteYAML(w io.Writer) error {
	if r.Nodes == nil {
		r.Nodes = []core.NodeID{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}
	return nil
}

// ReadJSON decodes and validates a report.
func ReadJSON(rd io.Reader) (PathReport, error) {
	var r PathReport
	if err := json.NewDecoder(rd).Decode(&r); err != nil {
		return PathReport{}, fmt.Errorf("report: decode json: %w", err)
	}
	if r.Nodes == nil {
		r.Nodes = []core.NodeID{}
	}
	if err := r.Validate(); err != nil {
		return PathReport{}, err
	}
	return r, nil
}

// WriteFile writes the JSON report to path.
func (r PathReport) WriteFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("report: %w", cerr)
		}
	}()
	return r.WriteJSON(f)
}

// WriteYAMLFile writes the YAML report to path.
func (r PathReport) WriteYAMLFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("report: %w", cerr)
		}
	}()
	return r.WriteYAML(f)
}

// ReadFile reads and validates the JSON report at path.
func ReadFile(path string) (PathReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return PathReport{}, fmt.Errorf("report: %w", err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// FileName derives the report path from the graph output path by replacing
// its extension with ".json" (50k.bin → 50k.json).
func FileName(out string) string {
	return strings.TrimSuffix(out, filepath.Ext(out)) + ".json"
}
