package aggregate

import (
	"github.com/flowgraph/graphkit/cycle"
	"github.com/flowgraph/graphkit/model"
)

// TopDown distributes value from roots (no predecessor) down to their
// descendants. A root keeps its own value. A non-root receives its own
// value plus, from each parent, parent_accumulated_value / fanout(parent).
// Per spec.md §9, a node reached via multiple parents accumulates every
// parent's contribution additively — this is not deduplicated, even though
// it can double-count in diamond-shaped graphs; that is the pinned
// behavior, not a bug to fix.
//
// Parents are guaranteed finalized before their children via cycle.Kahn's
// topological order; a cyclic adj has no well-defined top-down schedule and
// yields every node at its own (unresolved) value with only itself as
// contributor.
//
// Complexity: O(V + E).
func TopDown(nodes []model.Node, adj *model.Adjacency) []Record {
	byID := nodeIndex(nodes)
	kahn := cycle.Kahn(adj)

	order := adj.NodeOrder
	if !kahn.HasCycle {
		order = make([]string, len(kahn.Records))
		for _, r := range kahn.Records {
			order[r.TopoOrder] = r.ID
		}
	}

	accum := make(map[string]float64, len(order))
	contributors := make(map[string][]string, len(order))
	for _, id := range order {
		if kahn.HasCycle {
			accum[id] = byID[id].Value
			contributors[id] = []string{id}
			continue
		}
		if adj.InDegree(id) == 0 {
			accum[id] = byID[id].Value
			contributors[id] = []string{id}
			continue
		}

		val := byID[id].Value
		contribs := []string{id}
		inContribs := map[string]bool{id: true}
		for _, parent := range adj.Reverse[id] {
			fanout := adj.OutDegree(parent)
			if fanout == 0 {
				fanout = 1
			}
			val += accum[parent] / float64(fanout)
			for _, c := range contributors[parent] {
				if !inContribs[c] {
					inContribs[c] = true
					contribs = append(contribs, c)
				}
			}
		}
		accum[id] = val
		contributors[id] = contribs
	}

	out := make([]Record, len(nodes))
	for i, n := range nodes {
		out[i] = Record{NodeID: n.ID, AggregatedValue: accum[n.ID], ContributingNodes: contributors[n.ID]}
	}
	return out
}
