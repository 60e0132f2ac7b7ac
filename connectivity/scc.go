package connectivity

import "github.com/flowgraph/graphkit/model"

// StronglyConnected computes the strongly connected components of the
// directed graph via iterative Tarjan's algorithm. The visitation order of
// roots (and therefore of the returned SCC list) is whatever the algorithm
// produces; spec.md §4.3 explicitly does not require it sorted.
//
// Complexity: O(V + E).
func StronglyConnected(adj *model.Adjacency) [][]string {
	index := make(map[string]int, len(adj.NodeOrder))
	lowlink := make(map[string]int, len(adj.NodeOrder))
	onStack := make(map[string]bool, len(adj.NodeOrder))
	var tstack []string
	var sccs [][]string
	counter := 0

	type frame struct {
		id   string
		next int // index into adj.Forward[id] of the next child to examine
	}

	for _, root := range adj.NodeOrder {
		if _, seen := index[root]; seen {
			continue
		}

		work := []*frame{{id: root}}
		index[root] = counter
		lowlink[root] = counter
		counter++
		tstack = append(tstack, root)
		onStack[root] = true

		for len(work) > 0 {
			top := work[len(work)-1]
			children := adj.Forward[top.id]

			if top.next < len(children) {
				child := children[top.next]
				top.next++

				if _, seen := index[child]; !seen {
					index[child] = counter
					lowlink[child] = counter
					counter++
					tstack = append(tstack, child)
					onStack[child] = true
					work = append(work, &frame{id: child})
				} else if onStack[child] {
					if index[child] < lowlink[top.id] {
						lowlink[top.id] = index[child]
					}
				}
				continue
			}

			// All children of top.id processed: pop and propagate low-link.
			work = work[:len(work)-1]
			if len(work) > 0 {
				parent := work[len(work)-1]
				if lowlink[top.id] < lowlink[parent.id] {
					lowlink[parent.id] = lowlink[top.id]
				}
			}

			if lowlink[top.id] == index[top.id] {
				var scc []string
				for {
					n := len(tstack) - 1
					member := tstack[n]
					tstack = tstack[:n]
					onStack[member] = false
					scc = append(scc, member)
					if member == top.id {
						break
					}
				}
				sccs = append(sccs, scc)
			}
		}
	}

	return sccs
}
