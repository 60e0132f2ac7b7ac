package traverse

import "github.com/flowgraph/graphkit/model"

// TrackedDFS runs the same last-child-first DFS as DFS, additionally
// recording the full multiset of parallel edge-type labels on each discovery
// edge, and honoring an inclusive depth cutoff: limit == nil means no limit,
// otherwise nodes with depth > *limit are not visited at all. An unknown
// sourceID yields an empty result, not an error — spec.md §7 pins this for
// TrackedDFS specifically.
//
// Complexity: O(V + E).
func TrackedDFS(nodes []model.Node, adj *model.Adjacency, sourceID string, limit *int) []TrackedRecord {
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

	out := make([]TrackedRecord, 0, len(adj.NodeOrder))
	order := 0
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[top.id] {
			continue
		}
		if limit != nil && top.depth > *limit {
			continue
		}
		visited[top.id] = true

		rec := TrackedRecord{
			Record: Record{
				ID:           top.id,
				Type:         byID[top.id].Type,
				VisitedOrder: order,
				Depth:        top.depth,
				ParentID:     top.parentID,
			},
		}
		if top.parentID != "" {
			rec.ParentType = byID[top.parentID].Type
			rec.ParentEdgeTypes = adj.EdgeTypesBetween(top.parentID, top.id)
		}
		out = append(out, rec)
		order++

		nextDepth := top.depth + 1
		if limit != nil && nextDepth > *limit {
			continue // children would exceed the inclusive cutoff
		}
		for _, nbr := range adj.Forward[top.id] {
			if visited[nbr] {
				continue
			}
			stack = append(stack, frame{id: nbr, depth: nextDepth, parentID: top.id})
		}
	}

	return out
}
