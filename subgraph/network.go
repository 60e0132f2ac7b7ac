package subgraph

import "github.com/flowgraph/graphkit/model"

// NetworkExtraction computes batch genealogy subgraphs: for every
// unprocessed starting id drawn from sourceIDs then targetIDs, it unions the
// forward- and backward-reachable node sets, then repeatedly pulls in any
// node outside the set that has an outgoing edge into it ("external source
// closure") until the set stops growing. Every node swept into a network is
// marked processed, so a later starting id belonging to the same network
// does not produce a duplicate subgraph. Invalid or duplicate starting ids
// are silently ignored. At least one of sourceIDs/targetIDs must be
// non-empty, else the result is empty (spec.md §4.7).
func NetworkExtraction(nodes []model.Node, edges []model.Edge, sourceIDs, targetIDs []string) []Subgraph {
	if len(sourceIDs) == 0 && len(targetIDs) == 0 {
		return nil
	}

	adj := model.Build(nodes, edges)
	sourceSet := toSet(sourceIDs)
	targetSet := toSet(targetIDs)

	starts := make([]string, 0, len(sourceIDs)+len(targetIDs))
	starts = append(starts, sourceIDs...)
	starts = append(starts, targetIDs...)

	seenStart := make(map[string]bool, len(starts))
	processed := make(map[string]bool, len(adj.NodeOrder))

	var out []Subgraph
	for _, id := range starts {
		if seenStart[id] {
			continue
		}
		seenStart[id] = true
		if !adj.HasNode(id) || processed[id] {
			continue
		}

		members := make(map[string]bool)
		for _, v := range walk(adj.Forward, id) {
			members[v] = true
		}
		for _, v := range walk(adj.Reverse, id) {
			members[v] = true
		}
		growExternalSources(adj, members)

		order := make([]string, 0, len(members))
		for _, nid := range adj.NodeOrder {
			if members[nid] {
				order = append(order, nid)
				processed[nid] = true
			}
		}

		sg := Subgraph{Nodes: order, Edges: internalEdges(adj, members)}
		for _, nid := range order {
			switch {
			case targetSet[nid]:
				sg.TargetNodes = append(sg.TargetNodes, nid)
			case sourceSet[nid]:
				sg.SourceNodes = append(sg.SourceNodes, nid)
			default:
				sg.IntermediateNodes = append(sg.IntermediateNodes, nid)
			}
		}
		out = append(out, sg)
	}
	return out
}

// growExternalSources repeatedly adds any node outside members that has an
// outgoing edge into a node already in members, until the set reaches a
// fixed point.
func growExternalSources(adj *model.Adjacency, members map[string]bool) {
	for {
		grew := false
		for _, u := range adj.NodeOrder {
			if members[u] {
				continue
			}
			for _, v := range adj.Forward[u] {
				if members[v] {
					members[u] = true
					grew = true
					break
				}
			}
		}
		if !grew {
			return
		}
	}
}
