package connectivity

import "github.com/flowgraph/graphkit/model"

// Bridges reports, for every node, how many additional connected components
// the undirected view splits into if that node is removed. Only nodes with
// a positive increase are reported, per spec.md §4.3.
//
// Complexity: O(V * (V + E)) — one component-count pass per candidate node.
func Bridges(adj *model.Adjacency) []BridgeReport {
	sym := adj.Undirected()
	n := len(adj.NodeOrder)
	if n == 0 {
		return nil
	}
	before := componentCount(adj.NodeOrder, sym, "")

	var reports []BridgeReport
	for _, id := range adj.NodeOrder {
		after := componentCount(adj.NodeOrder, sym, id)
		increase := after - before
		if increase > 0 {
			reports = append(reports, BridgeReport{
				NodeID:            id,
				ComponentIncrease: increase,
				CriticalityScore:  float64(increase) / float64(n),
			})
		}
	}
	return reports
}
