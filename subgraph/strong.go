package subgraph

import (
	"github.com/flowgraph/graphkit/connectivity"
	"github.com/flowgraph/graphkit/model"
)

// StrongOption configures StrongSubgraphs.
type StrongOption func(*strongOptions)

type strongOptions struct {
	nodeTypeSubsets [][]string
	edgeTypeSubsets [][]string
}

// WithRequiredNodeTypes adds a required-subset filter: a returned
// StrongSubgraph is kept only if at least one of its nodes has a type in
// types. Multiple calls add independent required subsets (all must match).
func WithRequiredNodeTypes(types []string) StrongOption {
	return func(o *strongOptions) { o.nodeTypeSubsets = append(o.nodeTypeSubsets, types) }
}

// WithRequiredEdgeTypes adds a required-subset filter: a returned
// StrongSubgraph is kept only if at least one of its internal edges has a
// type in types.
func WithRequiredEdgeTypes(types []string) StrongOption {
	return func(o *strongOptions) { o.edgeTypeSubsets = append(o.edgeTypeSubsets, types) }
}

// StrongSubgraphs expands every strongly connected component of adj
// (connectivity.StronglyConnected) into a full StrongSubgraph: internal
// edges, per-SCC source/target ids (no in/out edge *within the SCC*), and
// the node/edge type sets participating in it. When subset filters are
// supplied, an SCC is included only if every required subset is matched by
// at least one of its nodes (or edges), per spec.md §4.7.
func StrongSubgraphs(nodes []model.Node, adj *model.Adjacency, opts ...StrongOption) []StrongSubgraph {
	var cfg strongOptions
	for _, o := range opts {
		o(&cfg)
	}

	byID := nodeIndex(nodes)
	var out []StrongSubgraph
	for _, scc := range connectivity.StronglyConnected(adj) {
		members := make(map[string]bool, len(scc))
		for _, id := range scc {
			members[id] = true
		}
		edges := internalEdges(adj, members)

		nodeTypes := make(map[string]bool)
		for _, id := range scc {
			nodeTypes[byID[id].Type] = true
		}
		edgeTypes := make(map[string]bool)
		for _, e := range edges {
			edgeTypes[e.Type] = true
		}

		if !satisfiesSubsets(nodeTypes, cfg.nodeTypeSubsets) || !satisfiesSubsets(edgeTypes, cfg.edgeTypeSubsets) {
			continue
		}

		hasIncoming := make(map[string]bool, len(scc))
		hasOutgoing := make(map[string]bool, len(scc))
		for _, e := range edges {
			hasOutgoing[e.From] = true
			hasIncoming[e.To] = true
		}

		var sources, targets []string
		for _, id := range scc {
			if !hasIncoming[id] {
				sources = append(sources, id)
			}
			if !hasOutgoing[id] {
				targets = append(targets, id)
			}
		}

		out = append(out, StrongSubgraph{
			Nodes:       scc,
			Edges:       edges,
			SourceNodes: sources,
			TargetNodes: targets,
			NodeTypes:   nodeTypes,
			EdgeTypes:   edgeTypes,
		})
	}
	return out
}

func satisfiesSubsets(present map[string]bool, subsets [][]string) bool {
	for _, subset := range subsets {
		ok := false
		for _, t := range subset {
			if present[t] {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}
