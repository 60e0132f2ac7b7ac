package subgraph

import "github.com/flowgraph/graphkit/model"

// FromSources mirrors FromTargets: anchors on nodes whose type is in
// sourceTypes, then a forward DFS over the forward adjacency from each
// unprocessed anchor. A node is a target if its type is in targetTypes, or —
// when targetTypes is empty — if it has no outgoing edge anywhere in the
// whole graph. sourceTypes must be non-empty (spec.md §4.7).
func FromSources(nodes []model.Node, edges []model.Edge, sourceTypes, targetTypes []string) ([]Subgraph, error) {
	if len(sourceTypes) == 0 {
		return nil, ErrEmptySourceTypes
	}

	adj := model.Build(nodes, edges)
	byID := nodeIndex(nodes)
	sourceSet := toSet(sourceTypes)
	targetSet := toSet(targetTypes)
	noOutgoing := noOutgoingGlobal(adj)

	processed := make(map[string]bool, len(adj.NodeOrder))
	var out []Subgraph
	for _, id := range adj.NodeOrder {
		if !sourceSet[byID[id].Type] || processed[id] {
			continue
		}

		order := walk(adj.Forward, id)
		members := make(map[string]bool, len(order))
		for _, v := range order {
			members[v] = true
			processed[v] = true
		}

		out = append(out, partition(adj, byID, order, members, sourceSet, targetSet, nil, noOutgoing))
	}
	return out, nil
}
