package reach

import (
	"golang.org/x/sync/errgroup"

	"github.com/flowgraph/graphkit/model"
)

// AncestorsDescendants computes the ancestor/descendant closure for every
// node in adj, in adj.NodeOrder. Pass WithParallel to compute closures
// node-concurrently; the default is single-threaded per spec.md §5.
//
// Complexity: O(V * (V + E)) worst case, per spec.md §5's documented bound.
func AncestorsDescendants(adj *model.Adjacency, opts ...Option) []Closure {
	var cfg options
	for _, o := range opts {
		o(&cfg)
	}

	out := make([]Closure, len(adj.NodeOrder))
	if !cfg.parallel {
		for i, id := range adj.NodeOrder {
			out[i] = closureFor(adj, id)
		}
		return out
	}

	g := new(errgroup.Group)
	for i, id := range adj.NodeOrder {
		i, id := i, id
		g.Go(func() error {
			out[i] = closureFor(adj, id)
			return nil
		})
	}
	_ = g.Wait() // closureFor never errors; Wait only synchronizes completion

	return out
}

func closureFor(adj *model.Adjacency, id string) Closure {
	descendants := dfsCollect(adj.Forward, id)
	ancestors := dfsCollect(adj.Reverse, id)
	return Closure{
		NodeID:         id,
		Ancestors:      ancestors,
		Descendants:    descendants,
		ReachableNodes: unionPreserveOrder(ancestors, descendants),
	}
}

// dfsCollect returns every node reachable from start in g (excluding start
// itself), in DFS discovery order.
func dfsCollect(g map[string][]string, start string) []string {
	visited := map[string]bool{start: true}
	var out []string
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

func unionPreserveOrder(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, x := range a {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	for _, x := range b {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	return out
}
