package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_DedupAndDanglingAndDuplicateNodes(t *testing.T) {
	nodes := []Node{{ID: "A"}, {ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"}}
	edges := []Edge{
		{From: "A", To: "B", Type: "t1"},
		{From: "A", To: "B", Type: "t2"}, // parallel, collapses in Forward
		{From: "B", To: "C", Type: "t1"},
		{From: "B", To: "E", Type: "t1"}, // dangling: E absent
		{From: "F", To: "C", Type: "t1"}, // dangling: F absent
	}

	adj := Build(nodes, edges)

	require.Equal(t, []string{"A", "B", "C", "D"}, adj.NodeOrder)
	assert.Equal(t, []string{"B"}, adj.Forward["A"])
	assert.Equal(t, []string{"C"}, adj.Forward["B"])
	assert.Empty(t, adj.Forward["C"])
	assert.Equal(t, []string{"A"}, adj.Reverse["B"])
	assert.Equal(t, []string{"t1", "t2"}, adj.EdgeTypesBetween("A", "B"))
	assert.False(t, adj.HasNode("E"))
	assert.False(t, adj.HasNode("F"))
}

func TestBuild_SelfLoopsPreservedInDirectedView(t *testing.T) {
	nodes := []Node{{ID: "A"}}
	edges := []Edge{{From: "A", To: "A", Type: "loop"}}

	adj := Build(nodes, edges)

	assert.Equal(t, []string{"A"}, adj.Forward["A"])
	assert.Equal(t, []string{"A"}, adj.Reverse["A"])
}

func TestUndirected_DropsSelfLoopsAndSymmetrizes(t *testing.T) {
	nodes := []Node{{ID: "A"}, {ID: "B"}, {ID: "C"}}
	edges := []Edge{
		{From: "A", To: "B"},
		{From: "A", To: "A"}, // self-loop, dropped in undirected view
		{From: "B", To: "C"},
	}

	adj := Build(nodes, edges)
	sym := adj.Undirected()

	assert.ElementsMatch(t, []string{"B"}, sym["A"])
	assert.ElementsMatch(t, []string{"A", "C"}, sym["B"])
	assert.ElementsMatch(t, []string{"B"}, sym["C"])
}
