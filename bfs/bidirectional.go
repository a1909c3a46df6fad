package bfs

import (
	"fmt"

	"github.com/katalvlaran/edgepath/core"
	"github.com/katalvlaran/edgepath/csr"
)

// side is one half of a bidirectional search.
type side struct {
	seen     []bool
	parent   []core.NodeID
	frontier []core.NodeID
	depth    int
}

func newSide(n uint32, root core.NodeID) *side {
	s := &side{
		seen:     make([]bool, n),
		parent:   make([]core.NodeID, n),
		frontier: []core.NodeID{root},
	}
	s.seen[root] = true
	s.parent[root] = root
	return s
}

// expand advances s by one full level. It returns the first node that the
// other side has already seen, or false if the level produced no meet.
func (s *side) expand(g *csr.SparseGraph, other *side) (core.NodeID, bool) {
	next := make([]core.NodeID, 0, len(s.frontier))
	for _, u := range s.frontier {
		for _, v := range g.Row(u) {
			if s.seen[v] {
				continue
			}
			s.seen[v] = true
			s.parent[v] = u
			if other.seen[v] {
				return v, true
			}
			next = append(next, v)
		}
	}
	s.frontier = next
	s.depth++
	return 0, false
}

// BidirectionalShortestPath answers the same query as ShortestPath by growing
// one frontier from each endpoint, always expanding the smaller one, and
// stopping at the first node seen from both sides.
//
// The hop count always equals ShortestPath's. The node sequence may differ
// when several shortest paths exist. Only WithContext and WithMaxDepth are
// honored; the hooks and neighbor filter apply to ShortestPath and BFS.
func BidirectionalShortestPath(g *csr.SparseGraph, source, target core.NodeID, opts ...Option) (*PathResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := g.Order()
	if err := core.CheckNode(source, n); err != nil {
		return nil, fmt.Errorf("bfs: source: %w", err)
	}
	if err := core.CheckNode(target, n); err != nil {
		return nil, fmt.Errorf("bfs: target: %w", err)
	}
	if source == target {
		return found(source, target, []core.NodeID{source}), nil
	}

	fwd, bwd := newSide(n, source), newSide(n, target)
	for len(fwd.frontier) > 0 && len(bwd.frontier) > 0 {
		// any path found from here on has at most depth+depth+1 hops
		if o.MaxDepth > 0 && fwd.depth+bwd.depth+1 > o.MaxDepth {
			break
		}
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		var (
			meet core.NodeID
			ok   bool
		)
		if len(fwd.frontier) <= len(bwd.frontier) {
			meet, ok = fwd.expand(g, bwd)
		} else {
			meet, ok = bwd.expand(g, fwd)
		}
		if ok {
			return found(source, target, splice(fwd, bwd, meet)), nil
		}
	}
	return notFound(source, target), nil
}

// splice joins source→meet (forward parents) with meet→target (backward parents).
func splice(fwd, bwd *side, meet core.NodeID) []core.NodeID {
	var head []core.NodeID
	for cur := meet; ; cur = fwd.parent[cur] {
		head = append(head, cur)
		if fwd.parent[cur] == cur {
			break
		}
	}
	for i, j := 0, len(head)-1; i < j; i, j = i+1, j-1 {
		head[i], head[j] = head[j], head[i]
	}
	for cur := meet; bwd.parent[cur] != cur; {
		cur = bwd.parent[cur]
		head = append(head, cur)
	}
	return head
}
