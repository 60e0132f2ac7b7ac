package validate

import "github.com/flowgraph/graphkit/model"

// Validate scans nodes and edges directly — not via model.Adjacency, which
// already collapses the very defects this reports — to find duplicate node
// ids (keep-first), duplicate edges by (from,to), dangling edges (endpoint
// missing from the valid node set), and orphaned nodes (no incident valid
// edge). Fails with ErrInputTooLarge if node count exceeds 1,000,000 or edge
// count exceeds 5,000,000 (spec.md §4.10).
//
// Complexity: O(V + E).
func Validate(nodes []model.Node, edges []model.Edge) (Report, error) {
	if len(nodes) > maxNodes || len(edges) > maxEdges {
		return Report{}, ErrInputTooLarge
	}

	seenNode := make(map[string]bool, len(nodes))
	validNodeSet := make(map[string]bool, len(nodes))
	var validNodes, duplicateNodes []string
	for _, n := range nodes {
		if seenNode[n.ID] {
			duplicateNodes = append(duplicateNodes, n.ID)
			continue
		}
		seenNode[n.ID] = true
		validNodeSet[n.ID] = true
		validNodes = append(validNodes, n.ID)
	}

	seenEdge := make(map[EdgeRef]bool, len(edges))
	incident := make(map[string]bool, len(validNodes))
	var validEdges, duplicateEdges, danglingEdges []EdgeRef
	for _, e := range edges {
		key := EdgeRef{From: e.From, To: e.To}
		if !validNodeSet[e.From] || !validNodeSet[e.To] {
			danglingEdges = append(danglingEdges, key)
			continue
		}
		if seenEdge[key] {
			duplicateEdges = append(duplicateEdges, key)
			continue
		}
		seenEdge[key] = true
		validEdges = append(validEdges, key)
		incident[e.From] = true
		incident[e.To] = true
	}

	var orphaned []string
	for _, id := range validNodes {
		if !incident[id] {
			orphaned = append(orphaned, id)
		}
	}

	ratio := 0.0
	if len(validNodes) > 0 {
		ratio = float64(len(incident)) / float64(len(validNodes))
	}

	return Report{
		ValidNodes:        validNodes,
		ValidEdges:        validEdges,
		DuplicateNodes:    duplicateNodes,
		DuplicateEdges:    duplicateEdges,
		DanglingEdges:     danglingEdges,
		OrphanedNodes:     orphaned,
		ConnectivityRatio: ratio,
	}, nil
}
