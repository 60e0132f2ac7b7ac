package cycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func TestKahn_Layers(t *testing.T) {
	adj := buildAdj([]string{"A", "B", "C", "D"}, [][2]string{{"A", "C"}, {"B", "C"}, {"C", "D"}})
	res := Kahn(adj)
	require.False(t, res.HasCycle)
	require.Len(t, res.Records, 4)

	byID := map[string]cycleLayerPair{}
	for _, r := range res.Records {
		byID[r.ID] = cycleLayerPair{r.Layer, r.TopoOrder}
	}
	assert.Equal(t, 0, byID["A"].layer)
	assert.Equal(t, 0, byID["B"].layer)
	assert.Equal(t, 1, byID["C"].layer)
	assert.Equal(t, 2, byID["D"].layer)
}

type cycleLayerPair struct{ layer, order int }

func TestKahn_CycleWitness(t *testing.T) {
	adj := buildAdj([]string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}})
	res := Kahn(adj)
	assert.True(t, res.HasCycle)
	assert.NotEmpty(t, res.CycleNodes)
	assert.Equal(t, res.CycleNodes[0], res.CycleNodes[len(res.CycleNodes)-1])
}

func TestDetectCycle_Acyclic(t *testing.T) {
	adj := buildAdj([]string{"A", "B"}, [][2]string{{"A", "B"}})
	has, cyc := DetectCycle(adj)
	assert.False(t, has)
	assert.Nil(t, cyc)
}
