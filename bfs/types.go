package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/edgepath/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by Result.PathTo for a node the traversal never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Unreached marks a node in Result.Depth that the traversal did not discover.
const Unreached int32 = -1

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when a search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per dequeued node.
	Ctx context.Context

	// OnEnqueue is called when a node is discovered, before it is queued.
	OnEnqueue func(id core.NodeID, depth int)

	// OnDequeue is called immediately before visiting a node.
	OnDequeue func(id core.NodeID, depth int)

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id core.NodeID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	FilterNeighbor func(curr, neighbor core.NodeID) bool

	err error
}

// DefaultOptions returns Options with background context, no depth limit,
// no filtering and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnEnqueue:      func(core.NodeID, int) {},
		OnDequeue:      func(core.NodeID, int) {},
		OnVisit:        func(core.NodeID, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ core.NodeID) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id core.NodeID, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(id core.NodeID, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id core.NodeID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: nodes farther than d hops are never discovered
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor core.NodeID) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a full BFS traversal. Depth and Parent are
// indexed by node id; Parent is meaningful only where Depth != Unreached,
// and the source is its own parent.
type Result struct {
	Source core.NodeID
	Order  []core.NodeID
	Depth  []int32
	Parent []core.NodeID
}

// Reached reports whether id was discovered.
func (r *Result) Reached(id core.NodeID) bool {
	return int(id) < len(r.Depth) && r.Depth[id] != Unreached
}

// PathTo reconstructs the path from the source to dest.
// Returns ErrNoPath if dest was not reached, core.ErrNodeOutOfRange if it does
// not exist.
func (r *Result) PathTo(dest core.NodeID) ([]core.NodeID, error) {
	if err := core.CheckNode(dest, uint32(len(r.Depth))); err != nil {
		return nil, fmt.Errorf("bfs: path: %w", err)
	}
	if r.Depth[dest] == Unreached {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, dest)
	}

	return tracePath(r.Parent, r.Source, dest, int(r.Depth[dest])), nil
}

// PathResult is the answer to a single shortest-path query.
// HopCount is nil and Nodes is empty exactly when no path exists.
type PathResult struct {
	Source   core.NodeID
	Target   core.NodeID
	HopCount *uint32
	Nodes    []core.NodeID
}

// Found reports whether a path exists.
func (p *PathResult) Found() bool { return p.HopCount != nil }

// Hops returns the hop count and whether a path was found.
func (p *PathResult) Hops() (uint32, bool) {
	if p.HopCount == nil {
		return 0, false
	}
	return *p.HopCount, true
}

func notFound(s, t core.NodeID) *PathResult {
	return &PathResult{Source: s, Target: t, Nodes: []core.NodeID{}}
}

func found(s, t core.NodeID, nodes []core.NodeID) *PathResult {
	h := uint32(len(nodes) - 1)
	return &PathResult{Source: s, Target: t, HopCount: &h, Nodes: nodes}
}

// tracePath follows parent links from dest back to src. hops sizes the
// result exactly.
func tracePath(parent []core.NodeID, src, dest core.NodeID, hops int) []core.NodeID {
	path := make([]core.NodeID, hops+1)
	cur := dest
	for i := hops; i > 0; i-- {
		path[i] = cur
		cur = parent[cur]
	}
	path[0] = src
	return path
}
