package typestats

import (
	"github.com/flowgraph/graphkit/model"
	"github.com/flowgraph/graphkit/traverse"
)

// PathStatistics runs traverse.BFS from every node whose type has no
// incoming edge in adj (a source type), and reports the longest-reaching
// run: its depth, its reachable-node count, and the root-to-deepest-node
// type sequence. BranchingFactor is the whole graph's edges-per-node ratio,
// per spec.md §4.9.
func PathStatistics(nodes []model.Node, adj *model.Adjacency) PathStatisticsResult {
	byID := nodeIndex(nodes)

	typeHasIncoming := make(map[string]bool, len(adj.NodeOrder))
	totalEdges := 0
	for _, id := range adj.NodeOrder {
		if adj.InDegree(id) > 0 {
			typeHasIncoming[byID[id].Type] = true
		}
		totalEdges += adj.OutDegree(id)
	}

	var result PathStatisticsResult
	bestDepth := -1
	for _, id := range adj.NodeOrder {
		if typeHasIncoming[byID[id].Type] {
			continue
		}
		recs := traverse.BFS(nodes, adj, id)
		if len(recs) == 0 {
			continue
		}
		deepest := recs[len(recs)-1] // BFS visits in non-decreasing depth order
		if deepest.Depth > bestDepth {
			bestDepth = deepest.Depth
			result.LongestDepth = deepest.Depth
			result.TotalReachable = len(recs) - 1 // exclude the source itself
			result.DeepestTypeChain = typeChain(recs, deepest)
		}
	}

	if len(adj.NodeOrder) > 0 {
		result.BranchingFactor = float64(totalEdges) / float64(len(adj.NodeOrder))
	}
	return result
}

// typeChain walks parent links backward from target through recs to build
// the root-to-target type sequence.
func typeChain(recs []traverse.Record, target traverse.Record) []string {
	byNodeID := make(map[string]traverse.Record, len(recs))
	for _, r := range recs {
		byNodeID[r.ID] = r
	}

	var rev []string
	cur := target
	for {
		rev = append(rev, cur.Type)
		if cur.ParentID == "" {
			break
		}
		cur = byNodeID[cur.ParentID]
	}

	chain := make([]string, len(rev))
	for i, t := range rev {
		chain[len(rev)-1-i] = t
	}
	return chain
}
