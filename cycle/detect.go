package cycle

import "github.com/flowgraph/graphkit/model"

const (
	white = 0
	gray  = 1
	black = 2
)

// DetectCycle performs a three-color DFS over the directed graph and
// returns the first back-edge cycle it finds, closed (first node repeated at
// the end), or (false, nil) if the graph is acyclic.
//
// Complexity: O(V + E).
func DetectCycle(adj *model.Adjacency) (bool, []string) {
	state := make(map[string]int, len(adj.NodeOrder))
	var path []string

	var visit func(id string) []string
	visit = func(id string) []string {
		state[id] = gray
		path = append(path, id)

		for _, nbr := range adj.Forward[id] {
			switch state[nbr] {
			case white:
				if cyc := visit(nbr); cyc != nil {
					return cyc
				}
			case gray:
				idx := indexOf(path, nbr)
				cyc := append([]string(nil), path[idx:]...)
				cyc = append(cyc, nbr)
				return cyc
			}
		}

		path = path[:len(path)-1]
		state[id] = black
		return nil
	}

	for _, root := range adj.NodeOrder {
		if state[root] == white {
			if cyc := visit(root); cyc != nil {
				return true, cyc
			}
		}
	}
	return false, nil
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}
