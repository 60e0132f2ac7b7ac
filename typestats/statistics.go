package typestats

import (
	"sort"

	"github.com/flowgraph/graphkit/model"
)

// Statistics aggregates basic counts, the full node-type universe (including
// orphans), the source/target type sets, and the type-quotient graph, per
// spec.md §4.9.
func Statistics(nodes []model.Node, edges []model.Edge) StatisticsResult {
	byID := nodeIndex(nodes)

	typeSet := make(map[string]bool, len(byID))
	for _, n := range byID {
		typeSet[n.Type] = true
	}
	types := make([]string, 0, len(typeSet))
	for t := range typeSet {
		types = append(types, t)
	}
	sort.Strings(types)

	hasIncoming := make(map[string]bool)
	hasOutgoing := make(map[string]bool)
	validEdgeCount := 0
	for _, e := range edges {
		from, fromOK := byID[e.From]
		to, toOK := byID[e.To]
		if !fromOK || !toOK {
			continue
		}
		validEdgeCount++
		hasOutgoing[from.Type] = true
		hasIncoming[to.Type] = true
	}

	var sourceTypes, targetTypes []string
	for _, t := range types {
		if !hasIncoming[t] {
			sourceTypes = append(sourceTypes, t)
		}
		if !hasOutgoing[t] {
			targetTypes = append(targetTypes, t)
		}
	}

	return StatisticsResult{
		NodeCount:   len(byID),
		EdgeCount:   validEdgeCount,
		Types:       types,
		SourceTypes: sourceTypes,
		TargetTypes: targetTypes,
		Aggregation: Aggregate(nodes, edges),
	}
}
