package connectivity

import (
	"fmt"

	"github.com/flowgraph/graphkit/model"
)

// ConnectedComponents assigns every node a component id by treating each
// directed edge as undirected (model.Adjacency.Undirected), via iterative
// DFS. Component ids are synthesized as comp_<k> with k a monotone counter
// in node-iteration order (spec.md §3).
//
// Complexity: O(V + E).
func ConnectedComponents(adj *model.Adjacency) Components {
	sym := adj.Undirected()
	visited := make(map[string]bool, len(adj.NodeOrder))
	compOf := make(map[string]string, len(adj.NodeOrder))

	var summaries []ComponentSummary
	k := 0
	for _, root := range adj.NodeOrder {
		if visited[root] {
			continue
		}
		compID := fmt.Sprintf("comp_%d", k)
		k++

		var members []string
		stack := []string{root}
		visited[root] = true
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			compOf[id] = compID
			members = append(members, id)
			for _, nbr := range sym[id] {
				if !visited[nbr] {
					visited[nbr] = true
					stack = append(stack, nbr)
				}
			}
		}

		summaries = append(summaries, ComponentSummary{ComponentID: compID, Size: len(members), Nodes: members})
	}

	assignments := make([]ComponentAssignment, 0, len(adj.NodeOrder))
	for _, id := range adj.NodeOrder {
		assignments = append(assignments, ComponentAssignment{NodeID: id, ComponentID: compOf[id]})
	}

	return Components{Assignments: assignments, Summaries: summaries}
}

// componentCount returns the number of connected components of sym with the
// single node exclude removed ("" removes nothing). Used by Bridges to
// measure the effect of a node's removal.
func componentCount(nodeOrder []string, sym map[string][]string, exclude string) int {
	visited := make(map[string]bool, len(nodeOrder))
	visited[exclude] = true
	count := 0
	for _, root := range nodeOrder {
		if visited[root] {
			continue
		}
		count++
		stack := []string{root}
		visited[root] = true
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, nbr := range sym[id] {
				if !visited[nbr] {
					visited[nbr] = true
					stack = append(stack, nbr)
				}
			}
		}
	}
	return count
}
