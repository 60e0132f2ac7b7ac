package subgraph

import "errors"

var (
	// ErrEmptyTargetTypes is returned by FromTargets when targetTypes is empty.
	ErrEmptyTargetTypes = errors.New("subgraph: target_node_types must be non-empty")

	// ErrEmptySourceTypes is returned by FromSources when sourceTypes is empty.
	ErrEmptySourceTypes = errors.New("subgraph: source_node_types must be non-empty")
)

// EdgeRef is one internal edge within a Subgraph. A Subgraph retains the
// original directed edges (one EdgeRef per parallel edge type), not a
// symmetrized or deduplicated view.
type EdgeRef struct {
	From string
	To   string
	Type string
}

// Subgraph is the common output shape for FromTargets, FromSources,
// NetworkExtraction, and ByComponent: the node/edge set plus a partition of
// those nodes into source/target/intermediate roles, per spec.md §4.7.
type Subgraph struct {
	Nodes             []string
	Edges             []EdgeRef
	SourceNodes       []string
	TargetNodes       []string
	IntermediateNodes []string
}

// StrongSubgraph is the per-SCC output of StrongSubgraphs: the component's
// node/edge set, its internal source/target ids (no in/out edge *within the
// SCC*), and the set of node/edge types participating in it. Per spec.md §9
// these type sets are compared as sets by callers — ordering is irrelevant.
type StrongSubgraph struct {
	Nodes       []string
	Edges       []EdgeRef
	SourceNodes []string
	TargetNodes []string
	NodeTypes   map[string]bool
	EdgeTypes   map[string]bool
}
