package subgraph

import "github.com/flowgraph/graphkit/model"

// FromTargets locates every node whose type is in targetTypes, then performs
// a backward DFS over the reverse adjacency from each unprocessed one,
// forming one Subgraph per anchor; nodes already swept into an earlier
// subgraph are not reprocessed. A node is a source if its type is in
// sourceTypes, or — when sourceTypes is empty — if it has no incoming edge
// anywhere in the whole graph. targetTypes must be non-empty (spec.md §4.7).
func FromTargets(nodes []model.Node, edges []model.Edge, sourceTypes, targetTypes []string) ([]Subgraph, error) {
	if len(targetTypes) == 0 {
		return nil, ErrEmptyTargetTypes
	}

	adj := model.Build(nodes, edges)
	byID := nodeIndex(nodes)
	sourceSet := toSet(sourceTypes)
	targetSet := toSet(targetTypes)
	noIncoming := noIncomingGlobal(adj)

	processed := make(map[string]bool, len(adj.NodeOrder))
	var out []Subgraph
	for _, id := range adj.NodeOrder {
		if !targetSet[byID[id].Type] || processed[id] {
			continue
		}

		order := walk(adj.Reverse, id)
		members := make(map[string]bool, len(order))
		for _, v := range order {
			members[v] = true
			processed[v] = true
		}

		out = append(out, partition(adj, byID, order, members, sourceSet, targetSet, noIncoming, nil))
	}
	return out, nil
}
