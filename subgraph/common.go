package subgraph

import "github.com/flowgraph/graphkit/model"

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

func toSet(vals []string) map[string]bool {
	set := make(map[string]bool, len(vals))
	for _, v := range vals {
		set[v] = true
	}
	return set
}

// walk returns every id reachable from start in g (including start itself),
// in last-child-first DFS discovery order over an explicit stack — the same
// stack discipline as traverse.DFS, but parameterized over g so it serves
// both forward (descendants) and reverse (ancestors) adjacency views.
func walk(g map[string][]string, start string) []string {
	visited := map[string]bool{start: true}
	out := []string{start}
	stack := append([]string(nil), g[start]...)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[id] {
			continue
		}
		visited[id] = true
		out = append(out, id)
		stack = append(stack, g[id]...)
	}
	return out
}

// internalEdges returns every edge of adj with both endpoints in members, in
// adj.NodeOrder / adjacency-insertion order, one EdgeRef per parallel edge
// type recorded between a pair.
func internalEdges(adj *model.Adjacency, members map[string]bool) []EdgeRef {
	var out []EdgeRef
	for _, u := range adj.NodeOrder {
		if !members[u] {
			continue
		}
		for _, v := range adj.Forward[u] {
			if !members[v] {
				continue
			}
			for _, t := range adj.EdgeTypesBetween(u, v) {
				out = append(out, EdgeRef{From: u, To: v, Type: t})
			}
		}
	}
	return out
}

func noIncomingGlobal(adj *model.Adjacency) map[string]bool {
	out := make(map[string]bool, len(adj.NodeOrder))
	for _, id := range adj.NodeOrder {
		out[id] = adj.InDegree(id) == 0
	}
	return out
}

func noOutgoingGlobal(adj *model.Adjacency) map[string]bool {
	out := make(map[string]bool, len(adj.NodeOrder))
	for _, id := range adj.NodeOrder {
		out[id] = adj.OutDegree(id) == 0
	}
	return out
}

// partition builds a Subgraph from members (in order), classifying each node
// as target first (typeSet match, or fallback when targetSet is empty), then
// source (typeSet match, or fallback when sourceSet is empty), else
// intermediate. Either fallback map may be nil when its corresponding type
// set is guaranteed non-empty by the caller.
func partition(adj *model.Adjacency, byID map[string]model.Node, order []string, members map[string]bool,
	sourceSet, targetSet map[string]bool, sourceFallback, targetFallback map[string]bool) Subgraph {

	sg := Subgraph{Nodes: order, Edges: internalEdges(adj, members)}
	for _, id := range order {
		typ := byID[id].Type

		isTarget := targetSet[typ]
		if len(targetSet) == 0 && targetFallback != nil {
			isTarget = targetFallback[id]
		}
		isSource := sourceSet[typ]
		if len(sourceSet) == 0 && sourceFallback != nil {
			isSource = sourceFallback[id]
		}

		switch {
		case isTarget:
			sg.TargetNodes = append(sg.TargetNodes, id)
		case isSource:
			sg.SourceNodes = append(sg.SourceNodes, id)
		default:
			sg.IntermediateNodes = append(sg.IntermediateNodes, id)
		}
	}
	return sg
}
