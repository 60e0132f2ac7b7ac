package aggregate

import (
	"github.com/flowgraph/graphkit/model"
	"github.com/flowgraph/graphkit/traverse"
)

// BottomUp rolls each node's value up with the value of every descendant
// (transitive), in input order. ContributingNodes is {node} ∪ descendants,
// ordered exactly as traverse.DFS visits them from that node — cycles are
// handled by DFS's visited set, so a node contributes at most once even if
// reachable via more than one path.
//
// Complexity: O(V * (V + E)) worst case (one DFS per input node).
func BottomUp(nodes []model.Node, adj *model.Adjacency) []Record {
	byID := nodeIndex(nodes)
	out := make([]Record, len(nodes))
	for i, n := range nodes {
		ids := idsOf(traverse.DFS(nodes, adj, n.ID))
		total := 0.0
		for _, id := range ids {
			total += byID[id].Value
		}
		out[i] = Record{NodeID: n.ID, AggregatedValue: total, ContributingNodes: ids}
	}
	return out
}

func nodeIndex(nodes []model.Node) map[string]model.Node {
	byID := make(map[string]model.Node, len(nodes))
	for _, n := range nodes {
		if _, ok := byID[n.ID]; ok {
			continue
		}
		byID[n.ID] = n
	}
	return byID
}

func idsOf(recs []traverse.Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.ID
	}
	return out
}
