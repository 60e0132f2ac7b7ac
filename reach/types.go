package reach

// Closure is the ancestor/descendant result for one node.
type Closure struct {
	NodeID         string
	Ancestors      []string
	Descendants    []string
	ReachableNodes []string // union of Ancestors and Descendants
}

// Option configures AncestorsDescendants.
type Option func(*options)

type options struct {
	parallel bool
}

// WithParallel enables node-parallel closure computation via errgroup.
// Output ordering is unaffected: results are written into a pre-sized slice
// by input index.
func WithParallel() Option {
	return func(o *options) { o.parallel = true }
}
