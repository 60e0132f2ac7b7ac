package cycle

import "github.com/flowgraph/graphkit/model"

// Kahn computes a layered topological ordering: layer increments each time
// the current ready-frontier is fully drained, giving parallel-ready batches
// per spec.md §4.4. If fewer than |V| nodes are emitted, the graph has a
// cycle and a witness is attached instead.
//
// Complexity: O(V + E).
func Kahn(adj *model.Adjacency) KahnResult {
	indeg := make(map[string]int, len(adj.NodeOrder))
	for _, id := range adj.NodeOrder {
		indeg[id] = len(adj.Reverse[id])
	}

	var frontier []string
	for _, id := range adj.NodeOrder {
		if indeg[id] == 0 {
			frontier = append(frontier, id)
		}
	}

	var records []LayerRecord
	order := 0
	layer := 0
	for len(frontier) > 0 {
		var next []string
		for _, id := range frontier {
			records = append(records, LayerRecord{ID: id, TopoOrder: order, Layer: layer})
			order++
			for _, nbr := range adj.Forward[id] {
				indeg[nbr]--
				if indeg[nbr] == 0 {
					next = append(next, nbr)
				}
			}
		}
		frontier = next
		layer++
	}

	if len(records) < len(adj.NodeOrder) {
		_, witness := DetectCycle(adj)
		return KahnResult{HasCycle: true, CycleNodes: witness}
	}

	return KahnResult{Records: records}
}
