package connectivity

import "github.com/flowgraph/graphkit/model"

// Articulation computes the cut vertices of the undirected view of adj via
// iterative Tarjan low-link. Self-loops are ignored and parallel edges
// collapse because model.Adjacency.Undirected already does both.
//
// Complexity: O(V + E).
func Articulation(adj *model.Adjacency) []string {
	disc := make(map[string]int, len(adj.NodeOrder))
	low := make(map[string]int, len(adj.NodeOrder))
	visited := make(map[string]bool, len(adj.NodeOrder))
	cut := make(map[string]bool, len(adj.NodeOrder))
	sym := adj.Undirected()
	timer := 0

	type frame struct {
		id     string
		parent string
		idx    int
	}

	for _, root := range adj.NodeOrder {
		if visited[root] {
			continue
		}

		rootChildren := 0
		stack := []*frame{{id: root, parent: ""}}
		visited[root] = true
		disc[root] = timer
		low[root] = timer
		timer++

		for len(stack) > 0 {
			top := stack[len(stack)-1]
			nbrs := sym[top.id]

			if top.idx < len(nbrs) {
				nbr := nbrs[top.idx]
				top.idx++

				if nbr == top.parent {
					// Skip the single edge back to the DFS-tree parent;
					// Undirected() already collapsed any parallel edges to it.
					continue
				}

				if !visited[nbr] {
					visited[nbr] = true
					disc[nbr] = timer
					low[nbr] = timer
					timer++
					if top.id == root {
						rootChildren++
					}
					stack = append(stack, &frame{id: nbr, parent: top.id})
				} else if disc[nbr] < low[top.id] {
					low[top.id] = disc[nbr]
				}
				continue
			}

			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				p := stack[len(stack)-1]
				if low[top.id] < low[p.id] {
					low[p.id] = low[top.id]
				}
				if p.id != root && low[top.id] >= disc[p.id] {
					cut[p.id] = true
				}
			}
		}

		if rootChildren >= 2 {
			cut[root] = true
		}
	}

	out := make([]string, 0, len(cut))
	for _, id := range adj.NodeOrder {
		if cut[id] {
			out = append(out, id)
		}
	}
	return out
}
