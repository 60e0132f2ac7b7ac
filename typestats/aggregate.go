package typestats

import (
	"sort"

	"github.com/flowgraph/graphkit/model"
)

type typeEdgeKey struct {
	from, to, edgeType string
}

// Aggregate builds the type-quotient graph: the node set is every type
// participating in at least one valid edge endpoint, with the count of
// original nodes of that type; the edge set summarizes every valid edge
// sharing (from_type, to_type, edge_type) into a transition_count and
// transition_probability = count / total outgoing transitions from
// from_type. Orphaned types (no participating edge) are excluded from both
// sides. Output edges are ordered lexicographically by (from_type,
// edge_type, to_type), per spec.md §5.
func Aggregate(nodes []model.Node, edges []model.Edge) Aggregation {
	byID := nodeIndex(nodes)

	counts := make(map[typeEdgeKey]int)
	outTotals := make(map[string]int)
	participating := make(map[string]bool)

	for _, e := range edges {
		from, fromOK := byID[e.From]
		to, toOK := byID[e.To]
		if !fromOK || !toOK {
			continue
		}
		key := typeEdgeKey{from: from.Type, to: to.Type, edgeType: e.Type}
		counts[key]++
		outTotals[from.Type]++
		participating[from.Type] = true
		participating[to.Type] = true
	}

	typeCounts := make(map[string]int)
	for _, n := range byID {
		if participating[n.Type] {
			typeCounts[n.Type]++
		}
	}

	typeNames := make([]string, 0, len(participating))
	for t := range participating {
		typeNames = append(typeNames, t)
	}
	sort.Strings(typeNames)

	nodeList := make([]TypeNode, 0, len(typeNames))
	for _, t := range typeNames {
		nodeList = append(nodeList, TypeNode{Type: t, Count: typeCounts[t]})
	}

	edgeList := make([]TypeEdge, 0, len(counts))
	for k, c := range counts {
		edgeList = append(edgeList, TypeEdge{
			FromType:              k.from,
			ToType:                k.to,
			EdgeType:              k.edgeType,
			TransitionCount:       c,
			TransitionProbability: float64(c) / float64(outTotals[k.from]),
		})
	}
	sort.Slice(edgeList, func(i, j int) bool {
		a, b := edgeList[i], edgeList[j]
		if a.FromType != b.FromType {
			return a.FromType < b.FromType
		}
		if a.EdgeType != b.EdgeType {
			return a.EdgeType < b.EdgeType
		}
		return a.ToType < b.ToType
	})

	return Aggregation{Nodes: nodeList, Edges: edgeList}
}

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
