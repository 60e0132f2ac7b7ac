package connectivity

// ComponentAssignment pairs a node id with the connected-component id it
// belongs to, in node-iteration order.
type ComponentAssignment struct {
	NodeID      string
	ComponentID string
}

// ComponentSummary describes one connected component.
type ComponentSummary struct {
	ComponentID string
	Size        int
	Nodes       []string
}

// Components is the result of ConnectedComponents: per-node assignments and
// per-component summaries.
type Components struct {
	Assignments []ComponentAssignment
	Summaries   []ComponentSummary
}

// BridgeReport is the per-node criticality entry produced by Bridges. Only
// nodes with a positive ComponentIncrease are reported.
type BridgeReport struct {
	NodeID            string
	ComponentIncrease int
	CriticalityScore  float64
}
