package traverse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flowgraph/graphkit/model"
)

func sampleGraph() ([]model.Node, *model.Adjacency) {
	nodes := []model.Node{{ID: "A", Type: "root"}, {ID: "B", Type: "mid"}, {ID: "C", Type: "mid"}, {ID: "D", Type: "leaf"}}
	edges := []model.Edge{
		{From: "A", To: "B", Type: "e1"},
		{From: "A", To: "C", Type: "e1"},
		{From: "B", To: "D", Type: "e2"},
		{From: "C", To: "D", Type: "e3"},
	}
	return nodes, model.Build(nodes, edges)
}

func TestBFS_OrderDepthParent(t *testing.T) {
	nodes, adj := sampleGraph()
	recs := BFS(nodes, adj, "A")
	assert.Len(t, recs, 4)
	assert.Equal(t, "A", recs[0].ID)
	assert.Equal(t, 0, recs[0].Depth)
	assert.Equal(t, "B", recs[1].ID)
	assert.Equal(t, 1, recs[1].Depth)
	assert.Equal(t, "A", recs[1].ParentID)
	assert.Equal(t, "D", recs[3].ID)
	assert.Equal(t, 2, recs[3].Depth)
}

func TestBFS_UnknownSource(t *testing.T) {
	nodes, adj := sampleGraph()
	assert.Empty(t, BFS(nodes, adj, "ZZZ"))
}

func TestDFS_LastChildFirst(t *testing.T) {
	nodes, adj := sampleGraph()
	recs := DFS(nodes, adj, "A")
	// A pushes B then C; stack pops C first (last-child-first).
	assert.Equal(t, []string{"A", "C", "D", "B"}, idsOf(recs))
}

func TestTrackedDFS_ParentEdgeTypesAndLimit(t *testing.T) {
	nodes, adj := sampleGraph()
	recs := TrackedDFS(nodes, adj, "A", nil)
	assert.Len(t, recs, 4)
	for _, r := range recs {
		if r.ID == "D" && r.ParentID == "C" {
			assert.Equal(t, []string{"e3"}, r.ParentEdgeTypes)
		}
	}

	limit := 1
	limited := TrackedDFS(nodes, adj, "A", &limit)
	assert.Equal(t, []string{"A", "C", "B"}, idsOfTracked(limited))
}

func TestTrackedDFS_UnknownSourceIsEmptyNotError(t *testing.T) {
	nodes, adj := sampleGraph()
	assert.Empty(t, TrackedDFS(nodes, adj, "nope", nil))
}

func idsOf(recs []Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.ID
	}
	return out
}

func idsOfTracked(recs []TrackedRecord) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.ID
	}
	return out
}
