package traverse

import "github.com/flowgraph/graphkit/model"

// DFS runs depth-first search from sourceID over adj using an explicit LIFO
// stack. Neighbors are pushed in forward-adjacency order, so the last-pushed
// (last in adjacency order) child is visited next: last-child-first, as
// pinned by spec.md §4.2's stability requirement. An unknown sourceID yields
// an empty result.
//
// Complexity: O(V + E).
func DFS(nodes []model.Node, adj *model.Adjacency, sourceID string) []Record {
	if adj == nil || !adj.HasNode(sourceID) {
		return nil
	}
	byID := indexByID(nodes)

	type frame struct {
		id       string
		depth    int
		parentID string
	}

	stack := []frame{{id: sourceID, depth: 0, parentID: ""}}
	visited := make(map[string]bool, len(adj.NodeOrder))

	out := make([]Record, 0, len(adj.NodeOrder))
	order := 0
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[top.id] {
			continue
		}
		visited[top.id] = true

		rec := Record{
			ID:           top.id,
			Type:         byID[top.id].Type,
			VisitedOrder: order,
			Depth:        top.depth,
			ParentID:     top.parentID,
		}
		if top.parentID != "" {
			rec.ParentType = byID[top.parentID].Type
		}
		out = append(out, rec)
		order++

		for _, nbr := range adj.Forward[top.id] {
			if visited[nbr] {
				continue
			}
			stack = append(stack, frame{id: nbr, depth: top.depth + 1, parentID: top.id})
		}
	}

	return out
}
