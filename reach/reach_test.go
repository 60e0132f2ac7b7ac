package reach

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flowgraph/graphkit/model"
)

func sampleNodesEdges() ([]model.Node, []model.Edge) {
	nodes := []model.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"}}
	edges := []model.Edge{
		{From: "A", To: "B", Active: true},
		{From: "B", To: "C", Active: true},
		{From: "A", To: "D", Active: false},
	}
	return nodes, edges
}

func closureByID(cs []Closure, id string) Closure {
	for _, c := range cs {
		if c.NodeID == id {
			return c
		}
	}
	return Closure{}
}

func TestAncestorsDescendants(t *testing.T) {
	nodes, edges := sampleNodesEdges()
	adj := model.Build(nodes, edges)
	closures := AncestorsDescendants(adj)

	b := closureByID(closures, "B")
	assert.ElementsMatch(t, []string{"A"}, b.Ancestors)
	assert.ElementsMatch(t, []string{"C"}, b.Descendants)
}

func TestAncestorsDescendants_Parallel(t *testing.T) {
	nodes, edges := sampleNodesEdges()
	adj := model.Build(nodes, edges)
	seq := AncestorsDescendants(adj)
	par := AncestorsDescendants(adj, WithParallel())

	for i := range seq {
		sort.Strings(seq[i].ReachableNodes)
		sort.Strings(par[i].ReachableNodes)
		assert.Equal(t, seq[i].NodeID, par[i].NodeID)
		assert.Equal(t, seq[i].ReachableNodes, par[i].ReachableNodes)
	}
}

func TestDynamicReachability_FiltersInactiveEdges(t *testing.T) {
	nodes, edges := sampleNodesEdges()
	closures := DynamicReachability(nodes, edges)
	a := closureByID(closures, "A")
	assert.ElementsMatch(t, []string{"B", "C"}, a.Descendants)
	assert.NotContains(t, a.Descendants, "D")
}
