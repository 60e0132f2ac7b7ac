package traverse

import "github.com/flowgraph/graphkit/model"

// BFS runs breadth-first search from sourceID over adj, expanding neighbors
// in forward-adjacency insertion order. An unknown sourceID yields an empty
// result rather than an error (spec.md §4.2/§7: silent not-found).
//
// Complexity: O(V + E).
func BFS(nodes []model.Node, adj *model.Adjacency, sourceID string) []Record {
	if adj == nil || !adj.HasNode(sourceID) {
		return nil
	}
	byID := indexByID(nodes)

	type queued struct {
		id       string
		depth    int
		parentID string
	}

	visited := make(map[string]bool, len(adj.NodeOrder))
	queue := []queued{{id: sourceID, depth: 0, parentID: ""}}
	visited[sourceID] = true

	out := make([]Record, 0, len(adj.NodeOrder))
	order := 0
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		rec := Record{
			ID:           cur.id,
			Type:         byID[cur.id].Type,
			VisitedOrder: order,
			Depth:        cur.depth,
			ParentID:     cur.parentID,
		}
		if cur.parentID != "" {
			rec.ParentType = byID[cur.parentID].Type
		}
		out = append(out, rec)
		order++

		for _, nbr := range adj.Forward[cur.id] {
			if visited[nbr] {
				continue
			}
			visited[nbr] = true
			queue = append(queue, queued{id: nbr, depth: cur.depth + 1, parentID: cur.id})
		}
	}

	return out
}

// indexByID builds an id→Node lookup, first occurrence wins, matching the
// node-uniqueness invariant model.Build applies to adjacency construction.
func indexByID(nodes []model.Node) map[string]model.Node {
	byID := make(map[string]model.Node, len(nodes))
	for _, n := range nodes {
		if _, ok := byID[n.ID]; ok {
			continue
		}
		byID[n.ID] = n
	}
	return byID
}
