package aggregate

import (
	"github.com/flowgraph/graphkit/model"
	"github.com/flowgraph/graphkit/traverse"
)

// GroupBottomUp is BottomUp over a per-key value map instead of a scalar:
// each key is summed independently across {node} ∪ descendants, and a key
// missing from a contributor is treated as zero, per spec.md §4.8.
//
// Complexity: O(V * (V + E)) worst case.
func GroupBottomUp(nodes []model.Node, adj *model.Adjacency) []GroupRecord {
	byID := nodeIndex(nodes)
	out := make([]GroupRecord, len(nodes))
	for i, n := range nodes {
		ids := idsOf(traverse.DFS(nodes, adj, n.ID))
		totals := make(map[string]float64)
		for _, id := range ids {
			for k, v := range byID[id].Values {
				totals[k] += v
			}
		}
		out[i] = GroupRecord{NodeID: n.ID, AggregatedValues: totals, ContributingNodes: ids}
	}
	return out
}
