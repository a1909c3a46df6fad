package csr

import (
	"gonum.org/v1/gonum/graph/simple"
)

// ToGonum copies g into a gonum simple.UndirectedGraph with nodes 0..N-1.
// gonum graphs are simple: self-loops are skipped and repeated pairs collapse
// into one edge. Node ids map one-to-one (simple.Node(id)).
func (g *SparseGraph) ToGonum() *simple.UndirectedGraph {
	ug := simple.NewUndirectedGraph()
	for u := uint32(0); u < g.n; u++ {
		ug.AddNode(simple.Node(int64(u)))
	}
	for u := uint32(0); u < g.n; u++ {
		for _, v := range g.neighbors(u) {
			// each pair is stored twice; add from the lower endpoint only
			if v <= u {
				continue
			}
			ug.SetEdge(simple.Edge{F: simple.Node(int64(u)), T: simple.Node(int64(v))})
		}
	}
	return ug
}
