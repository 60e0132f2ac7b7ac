package connectivity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flowgraph/graphkit/model"
)

func buildAdj(ids []string, pairs [][2]string) *model.Adjacency {
	nodes := make([]model.Node, len(ids))
	for i, id := range ids {
		nodes[i] = model.Node{ID: id}
	}
	edges := make([]model.Edge, len(pairs))
	for i, p := range pairs {
		edges[i] = model.Edge{From: p[0], To: p[1]}
	}
	return model.Build(nodes, edges)
}

func TestConnectedComponents(t *testing.T) {
	adj := buildAdj([]string{"A", "B", "C", "X", "Y"}, [][2]string{{"A", "B"}, {"B", "C"}, {"X", "Y"}})
	comps := ConnectedComponents(adj)
	assert.Len(t, comps.Summaries, 2)
	assert.Equal(t, "comp_0", comps.Assignments[0].ComponentID)
	assert.Equal(t, comps.Assignments[0].ComponentID, comps.Assignments[1].ComponentID)
	assert.Equal(t, comps.Assignments[0].ComponentID, comps.Assignments[2].ComponentID)
	assert.NotEqual(t, comps.Assignments[0].ComponentID, comps.Assignments[3].ComponentID)
}

func TestArticulationPoints(t *testing.T) {
	// 0-1,1-4,2-3,2-4,3-4 ⇒ {1,4}, per spec.md end-to-end scenario 4.
	adj := buildAdj([]string{"0", "1", "2", "3", "4"}, [][2]string{
		{"0", "1"}, {"1", "4"}, {"2", "3"}, {"2", "4"}, {"3", "4"},
	})
	got := Articulation(adj)
	assert.ElementsMatch(t, []string{"1", "4"}, got)
}

func TestStronglyConnected(t *testing.T) {
	adj := buildAdj([]string{"A", "B", "C", "D"}, [][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "A"}, {"C", "D"},
	})
	sccs := StronglyConnected(adj)
	var sizes []int
	for _, s := range sccs {
		sizes = append(sizes, len(s))
	}
	assert.ElementsMatch(t, []int{3, 1}, sizes)
}

func TestBridges_ReportsOnlyPositiveIncrease(t *testing.T) {
	// A-B-C chain: removing B splits into 2 components; A and C removal do not split.
	adj := buildAdj([]string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"B", "C"}})
	reports := Bridges(adj)
	assert.Len(t, reports, 1)
	assert.Equal(t, "B", reports[0].NodeID)
	assert.Equal(t, 1, reports[0].ComponentIncrease)
}
