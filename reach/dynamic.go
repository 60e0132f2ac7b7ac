package reach

import "github.com/flowgraph/graphkit/model"

// DynamicReachability computes the same closure as AncestorsDescendants but
// restricted to the subgraph of edges with Active == true, per spec.md §4.5.
func DynamicReachability(nodes []model.Node, edges []model.Edge, opts ...Option) []Closure {
	active := make([]model.Edge, 0, len(edges))
	for _, e := range edges {
		if e.Active {
			active = append(active, e)
		}
	}
	return AncestorsDescendants(model.Build(nodes, active), opts...)
}
