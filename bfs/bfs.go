package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/edgepath/core"
	"github.com/katalvlaran/edgepath/csr"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *csr.SparseGraph
	opts  Options
	ctx   context.Context
	queue []core.NodeID
	head  int
	res   *Result

	// early exit for single-target queries
	target    core.NodeID
	hasTarget bool
	hit       bool
}

// BFS runs a full breadth-first traversal of g from source.
// Returns ErrGraphNil, ErrOptionViolation, an error wrapping
// core.ErrNodeOutOfRange for a bad source, ctx.Err() on cancellation,
// or a wrapped OnVisit error.
func BFS(g *csr.SparseGraph, source core.NodeID, opts ...Option) (*Result, error) {
	w, err := newWalker(g, source, opts)
	if err != nil {
		return nil, err
	}
	w.enqueue(source, 0, source)
	if err = w.loop(); err != nil {
		return nil, err
	}
	return w.res, nil
}

// ShortestPath returns a fewest-hop path from source to target.
//
// Neighbors are examined in CSR row order and the first discovery of a node
// fixes its parent, so among equally short paths the one found is determined
// by edge-list order. The search stops as soon as target is discovered.
// No path is not an error: the result has nil HopCount and empty Nodes.
func ShortestPath(g *csr.SparseGraph, source, target core.NodeID, opts ...Option) (*PathResult, error) {
	w, err := newWalker(g, source, opts)
	if err != nil {
		return nil, err
	}
	if err = core.CheckNode(target, g.Order()); err != nil {
		return nil, fmt.Errorf("bfs: target: %w", err)
	}
	if source == target {
		return found(source, target, []core.NodeID{source}), nil
	}

	w.target, w.hasTarget = target, true
	w.enqueue(source, 0, source)
	if err = w.loop(); err != nil {
		return nil, err
	}
	if !w.hit {
		return notFound(source, target), nil
	}
	hops := int(w.res.Depth[target])
	return found(source, target, tracePath(w.res.Parent, source, target, hops)), nil
}

func newWalker(g *csr.SparseGraph, source core.NodeID, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
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

	depth := make([]int32, n)
	for i := range depth {
		depth[i] = Unreached
	}
	return &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]core.NodeID, 0, 64),
		res: &Result{
			Source: source,
			Order:  make([]core.NodeID, 0, 64),
			Depth:  depth,
			Parent: make([]core.NodeID, n),
		},
	}, nil
}

// enqueue marks id discovered at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(id core.NodeID, d int32, parent core.NodeID) {
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.opts.OnEnqueue(id, int(d))
	w.queue = append(w.queue, id)
	if w.hasTarget && id == w.target {
		w.hit = true
	}
}

// loop processes the queue until empty, target hit, error, or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) && !w.hit {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		id := w.dequeue()
		if err := w.visit(id); err != nil {
			return err
		}
		w.enqueueNeighbors(id)
	}
	return nil
}

// dequeue pops the head of the queue and invokes OnDequeue.
func (w *walker) dequeue() core.NodeID {
	id := w.queue[w.head]
	w.head++
	w.opts.OnDequeue(id, int(w.res.Depth[id]))
	return id
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(id core.NodeID) error {
	w.res.Order = append(w.res.Order, id)
	if err := w.opts.OnVisit(id, int(w.res.Depth[id])); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", id, err)
	}
	return nil
}

// enqueueNeighbors walks id's CSR row and enqueues each undiscovered,
// unfiltered neighbor within MaxDepth.
func (w *walker) enqueueNeighbors(id core.NodeID) {
	next := w.res.Depth[id] + 1
	if w.opts.MaxDepth > 0 && int(next) > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Row(id) {
		if w.res.Depth[nbr] != Unreached {
			continue
		}
		if !w.opts.FilterNeighbor(id, nbr) {
			continue
		}
		w.enqueue(nbr, next, id)
		if w.hit {
			return
		}
	}
}
