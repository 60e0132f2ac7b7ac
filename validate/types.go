package validate

import "errors"

// ErrInputTooLarge is returned by Validate when the input exceeds the size
// guard: more than 1,000,000 nodes or 5,000,000 edges (spec.md §4.10).
var ErrInputTooLarge = errors.New("validate: input exceeds size guard")

const (
	maxNodes = 1_000_000
	maxEdges = 5_000_000

	tolerance = 1e-3
)

// EdgeRef identifies an edge by its endpoints only, irrespective of type —
// what Validate's duplicate/dangling detection keys on.
type EdgeRef struct {
	From string
	To   string
}

// Report is the structural validation result of Validate.
type Report struct {
	ValidNodes     []string
	ValidEdges     []EdgeRef
	DuplicateNodes []string  // duplicate ids, keep-first, in encounter order
	DuplicateEdges []EdgeRef // duplicate (from,to) pairs, in encounter order
	DanglingEdges  []EdgeRef // edges referencing an absent endpoint
	OrphanedNodes  []string  // valid nodes incident to no valid edge

	// ConnectivityRatio is |referenced nodes| / |valid nodes|, where a
	// referenced node is one incident to at least one valid edge. Defined as
	// 0 when there are no valid nodes (spec.md §9's 0/0 safe-divide).
	ConnectivityRatio float64
}
