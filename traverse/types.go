package traverse

// Record is one visited node in a BFS/DFS traversal: its type label, the
// 0-based order it was visited in, its depth from the source, and its
// parent's id/type (empty for the source itself).
type Record struct {
	ID           string
	Type         string
	VisitedOrder int
	Depth        int
	ParentID     string
	ParentType   string
}

// TrackedRecord extends Record with the full multiset of edge-type labels
// on the discovery edge from ParentID to ID — every parallel edge between
// those two ids contributes its Type, in insertion order.
type TrackedRecord struct {
	Record
	ParentEdgeTypes []string
}
