package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/flowgraph/graphkit/model"
)

func recordByID(recs []Record, id string) Record {
	for _, r := range recs {
		if r.NodeID == id {
			return r
		}
	}
	return Record{}
}

func TestBottomUp_ScenarioOne(t *testing.T) {
	nodes := []model.Node{{ID: "A", Value: 10}, {ID: "B", Value: 5}, {ID: "C", Value: 3}}
	edges := []model.Edge{{From: "A", To: "B"}, {From: "A", To: "C"}}
	adj := model.Build(nodes, edges)

	recs := BottomUp(nodes, adj)

	a := recordByID(recs, "A")
	assert.Equal(t, 18.0, a.AggregatedValue)
	assert.Equal(t, []string{"A", "C", "B"}, a.ContributingNodes)

	b := recordByID(recs, "B")
	assert.Equal(t, 5.0, b.AggregatedValue)
	assert.Equal(t, []string{"B"}, b.ContributingNodes)

	c := recordByID(recs, "C")
	assert.Equal(t, 3.0, c.AggregatedValue)
}

func TestTopDown_ScenarioTwo(t *testing.T) {
	nodes := []model.Node{{ID: "A", Value: 10}, {ID: "B", Value: 2}, {ID: "C", Value: 3}}
	edges := []model.Edge{{From: "A", To: "B"}, {From: "A", To: "C"}}
	adj := model.Build(nodes, edges)

	recs := TopDown(nodes, adj)

	assert.Equal(t, 10.0, recordByID(recs, "A").AggregatedValue)
	assert.Equal(t, 7.0, recordByID(recs, "B").AggregatedValue)
	assert.Equal(t, 8.0, recordByID(recs, "C").AggregatedValue)
}

func TestTemporalBottomUp_ScenarioThree(t *testing.T) {
	base := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	nodes := []model.Node{
		{ID: "A", StartTime: base, EndTime: base.Add(10 * time.Minute)},
		{ID: "B", StartTime: base.Add(time.Hour), EndTime: base.Add(time.Hour + 20*time.Minute)},
		{ID: "C", StartTime: base.Add(2 * time.Hour), EndTime: base.Add(2*time.Hour + 30*time.Minute)},
	}
	edges := []model.Edge{{From: "A", To: "B"}, {From: "A", To: "C"}}
	adj := model.Build(nodes, edges)

	recs := TemporalBottomUp(nodes, adj)

	assert.Equal(t, 60.0, recordByID(recs, "A").AggregatedValue)
	assert.Equal(t, 20.0, recordByID(recs, "B").AggregatedValue)
	assert.Equal(t, 30.0, recordByID(recs, "C").AggregatedValue)
}

func TestGroupBottomUp_MissingKeysDefaultZero(t *testing.T) {
	nodes := []model.Node{
		{ID: "A", Values: map[string]float64{"x": 1}},
		{ID: "B", Values: map[string]float64{"x": 2, "y": 5}},
	}
	edges := []model.Edge{{From: "A", To: "B"}}
	adj := model.Build(nodes, edges)

	recs := GroupBottomUp(nodes, adj)
	for _, r := range recs {
		if r.NodeID == "A" {
			assert.Equal(t, 3.0, r.AggregatedValues["x"])
			assert.Equal(t, 5.0, r.AggregatedValues["y"])
		}
	}
}
