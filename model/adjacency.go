package model

// Adjacency is the derived forward/reverse neighbor representation every
// kernel in this module traverses. It is built once from a node/edge list
// and never mutated afterwards.
type Adjacency struct {
	// NodeOrder lists valid node ids in first-occurrence input order.
	NodeOrder []string

	// Forward maps a node id to its deduplicated out-neighbor ids, in the
	// order the first edge to each neighbor was seen.
	Forward map[string][]string

	// Reverse maps a node id to its deduplicated in-neighbor ids, mirroring
	// Forward.
	Reverse map[string][]string

	// EdgeTypes maps a (from,to) pair to every edge type seen for that pair,
	// in insertion order, including types repeated across parallel edges.
	// Dedup at the Forward/Reverse level never drops information here —
	// tracked traversal needs the full parallel-edge type multiset.
	EdgeTypes map[EdgeKey][]string

	// nodeSet is the set of valid (first-occurrence, present) node ids.
	nodeSet map[string]struct{}
}

// HasNode reports whether id is a valid node in this adjacency.
func (a *Adjacency) HasNode(id string) bool {
	_, present := a.nodeSet[id]
	return present
}

// Build constructs an Adjacency from nodes and edges. Duplicate node ids
// collapse to their first occurrence (model.Node.ID uniqueness invariant).
// Edges referencing an absent endpoint are dangling and excluded from the
// traversal representation; validate.Validate is the place dangling edges
// are reported, not this builder. Parallel (from,to) edges collapse in
// Forward/Reverse to their first occurrence but contribute every edge Type
// to EdgeTypes.
//
// Complexity: O(V + E).
func Build(nodes []Node, edges []Edge) *Adjacency {
	a := &Adjacency{
		NodeOrder: make([]string, 0, len(nodes)),
		Forward:   make(map[string][]string, len(nodes)),
		Reverse:   make(map[string][]string, len(nodes)),
		EdgeTypes: make(map[EdgeKey][]string),
		nodeSet:   make(map[string]struct{}, len(nodes)),
	}

	for _, n := range nodes {
		if _, dup := a.nodeSet[n.ID]; dup {
			continue
		}
		a.nodeSet[n.ID] = struct{}{}
		a.NodeOrder = append(a.NodeOrder, n.ID)
		a.Forward[n.ID] = nil
		a.Reverse[n.ID] = nil
	}

	seenPair := make(map[EdgeKey]bool, len(edges))
	for _, e := range edges {
		if !a.HasNode(e.From) || !a.HasNode(e.To) {
			continue // dangling reference; reported by validate, ignored here
		}
		key := EdgeKey{From: e.From, To: e.To}
		a.EdgeTypes[key] = append(a.EdgeTypes[key], e.Type)

		if seenPair[key] {
			continue // parallel edge: first occurrence already in Forward/Reverse
		}
		seenPair[key] = true
		a.Forward[e.From] = append(a.Forward[e.From], e.To)
		a.Reverse[e.To] = append(a.Reverse[e.To], e.From)
	}

	return a
}

// OutDegree returns the number of distinct out-neighbors of id.
func (a *Adjacency) OutDegree(id string) int { return len(a.Forward[id]) }

// InDegree returns the number of distinct in-neighbors of id.
func (a *Adjacency) InDegree(id string) int { return len(a.Reverse[id]) }

// EdgeTypesBetween returns every edge type recorded from→to, including
// repeats across parallel edges, in insertion order. A nil/empty result
// means no edge exists from→to.
func (a *Adjacency) EdgeTypesBetween(from, to string) []string {
	return a.EdgeTypes[EdgeKey{From: from, To: to}]
}

// Undirected returns a symmetrized view suitable for connected-component and
// articulation-point analysis: every directed edge (u,v) also implies (v,u),
// and self-loops are dropped since the algorithms that consume this view
// operate on simple undirected graphs (spec: self-loops ignored by CC and
// articulation points).
func (a *Adjacency) Undirected() map[string][]string {
	sym := make(map[string][]string, len(a.NodeOrder))
	seen := make(map[EdgeKey]bool)
	addEdge := func(u, v string) {
		if u == v {
			return // drop self-loops for the undirected view
		}
		if seen[EdgeKey{From: u, To: v}] {
			return
		}
		seen[EdgeKey{From: u, To: v}] = true
		sym[u] = append(sym[u], v)
	}
	for _, id := range a.NodeOrder {
		sym[id] = sym[id] // ensure presence even if isolated
	}
	for _, u := range a.NodeOrder {
		for _, v := range a.Forward[u] {
			addEdge(u, v)
			addEdge(v, u)
		}
	}
	return sym
}
