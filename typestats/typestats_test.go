package typestats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowgraph/graphkit/model"
)

func edgeByTypes(edges []TypeEdge, from, to string) (TypeEdge, bool) {
	for _, e := range edges {
		if e.FromType == from && e.ToType == to {
			return e, true
		}
	}
	return TypeEdge{}, false
}

func TestAggregate_ScenarioFive(t *testing.T) {
	nodes := []model.Node{
		{ID: "A", Type: "op1"}, {ID: "B", Type: "op2"},
		{ID: "C", Type: "op1"}, {ID: "D", Type: "op3"},
	}
	edges := []model.Edge{
		{From: "A", To: "B", Type: "process"},
		{From: "A", To: "C", Type: "process"},
		{From: "C", To: "B", Type: "process"},
	}

	agg := Aggregate(nodes, edges)

	require.Len(t, agg.Nodes, 2)
	for _, n := range agg.Nodes {
		switch n.Type {
		case "op1":
			assert.Equal(t, 2, n.Count)
		case "op2":
			assert.Equal(t, 1, n.Count)
		default:
			t.Fatalf("unexpected participating type %q (op3 must be excluded)", n.Type)
		}
	}

	opOp, ok := edgeByTypes(agg.Edges, "op1", "op1")
	require.True(t, ok)
	assert.Equal(t, 1, opOp.TransitionCount)
	assert.InDelta(t, 1.0/3.0, opOp.TransitionProbability, 1e-9)

	opOp2, ok := edgeByTypes(agg.Edges, "op1", "op2")
	require.True(t, ok)
	assert.Equal(t, 2, opOp2.TransitionCount)
	assert.InDelta(t, 2.0/3.0, opOp2.TransitionProbability, 1e-9)
}

func TestAggregate_EdgesOrderedLexicographically(t *testing.T) {
	nodes := []model.Node{
		{ID: "A", Type: "b"}, {ID: "B", Type: "a"}, {ID: "C", Type: "c"},
	}
	edges := []model.Edge{
		{From: "A", To: "C", Type: "z"},
		{From: "A", To: "B", Type: "a"},
	}

	agg := Aggregate(nodes, edges)
	require.Len(t, agg.Edges, 2)
	assert.Equal(t, "a", agg.Edges[0].EdgeType)
	assert.Equal(t, "z", agg.Edges[1].EdgeType)
}

func TestMissingTransitions_ScenarioEight(t *testing.T) {
	nodes := []model.Node{{ID: "A", Type: "input"}, {ID: "B", Type: "process"}}
	edges := []model.Edge{{From: "A", To: "B"}}
	expected := []Transition{{FromType: "input", ToType: "process"}, {FromType: "process", ToType: "output"}}

	missing := MissingTransitions(nodes, edges, expected)

	require.Len(t, missing, 1)
	assert.Equal(t, Transition{FromType: "process", ToType: "output"}, missing[0])
}

func TestStatistics_TypesIncludeOrphans(t *testing.T) {
	nodes := []model.Node{
		{ID: "A", Type: "op1"}, {ID: "B", Type: "op2"}, {ID: "D", Type: "op3"},
	}
	edges := []model.Edge{{From: "A", To: "B"}}

	stats := Statistics(nodes, edges)

	assert.ElementsMatch(t, []string{"op1", "op2", "op3"}, stats.Types)
	assert.Contains(t, stats.SourceTypes, "op1")
	assert.Contains(t, stats.TargetTypes, "op2")
}

func TestPathStatistics_LongestChain(t *testing.T) {
	nodes := []model.Node{
		{ID: "A", Type: "root"}, {ID: "B", Type: "mid"}, {ID: "C", Type: "leaf"},
	}
	edges := []model.Edge{{From: "A", To: "B"}, {From: "B", To: "C"}}
	adj := model.Build(nodes, edges)

	ps := PathStatistics(nodes, adj)

	assert.Equal(t, 2, ps.LongestDepth)
	assert.Equal(t, 2, ps.TotalReachable)
	assert.Equal(t, []string{"root", "mid", "leaf"}, ps.DeepestTypeChain)
}
