package csr

// Option configures Build.
type Option func(*buildOptions)

type buildOptions struct {
	simple bool
}

// WithSimpleEdges drops self-loops and repeated unordered pairs before
// doubling, so the result is a simple graph. The first occurrence of a pair
// keeps its position in encounter order.
func WithSimpleEdges() Option {
	return func(o *buildOptions) { o.simple = true }
}
