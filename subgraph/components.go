package subgraph

import (
	"github.com/flowgraph/graphkit/connectivity"
	"github.com/flowgraph/graphkit/model"
)

// ByComponent returns one Subgraph per connected component of adj
// (connectivity.ConnectedComponents), optionally filtered to components
// containing at least one node whose type is in typeFilter (no filtering
// when typeFilter is empty). Sources/targets are auto-detected from the
// whole graph's edges: a source has no incoming edge anywhere, a target has
// no outgoing edge anywhere; an isolated node (neither) is reported as a
// source (spec.md §4.7).
func ByComponent(nodes []model.Node, adj *model.Adjacency, typeFilter ...string) []Subgraph {
	byID := nodeIndex(nodes)
	filterSet := toSet(typeFilter)
	noIncoming := noIncomingGlobal(adj)
	noOutgoing := noOutgoingGlobal(adj)

	comps := connectivity.ConnectedComponents(adj)
	var out []Subgraph
	for _, summary := range comps.Summaries {
		if len(filterSet) > 0 && !anyTypeMatches(summary.Nodes, byID, filterSet) {
			continue
		}

		members := make(map[string]bool, len(summary.Nodes))
		for _, id := range summary.Nodes {
			members[id] = true
		}

		order := make([]string, 0, len(summary.Nodes))
		for _, id := range adj.NodeOrder {
			if members[id] {
				order = append(order, id)
			}
		}

		sg := Subgraph{Nodes: order, Edges: internalEdges(adj, members)}
		for _, id := range order {
			switch {
			case noIncoming[id]:
				sg.SourceNodes = append(sg.SourceNodes, id)
			case noOutgoing[id]:
				sg.TargetNodes = append(sg.TargetNodes, id)
			default:
				sg.IntermediateNodes = append(sg.IntermediateNodes, id)
			}
		}
		out = append(out, sg)
	}
	return out
}

func anyTypeMatches(ids []string, byID map[string]model.Node, filterSet map[string]bool) bool {
	for _, id := range ids {
		if filterSet[byID[id].Type] {
			return true
		}
	}
	return false
}
