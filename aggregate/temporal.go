package aggregate

import "github.com/flowgraph/graphkit/model"

// TemporalBottomUp is BottomUp with each node's value replaced by its
// start/end duration in minutes, per spec.md §4.8.
func TemporalBottomUp(nodes []model.Node, adj *model.Adjacency) []Record {
	return BottomUp(withDurationValue(nodes), adj)
}

// TemporalTopDown is TopDown with each node's value replaced by its
// start/end duration in minutes.
func TemporalTopDown(nodes []model.Node, adj *model.Adjacency) []Record {
	return TopDown(withDurationValue(nodes), adj)
}

// withDurationValue copies nodes with Value overwritten by DurationMinutes,
// so BottomUp/TopDown's value-rollup logic can be reused unchanged rather
// than duplicated for the temporal case.
func withDurationValue(nodes []model.Node) []model.Node {
	out := make([]model.Node, len(nodes))
	for i, n := range nodes {
		n.Value = n.DurationMinutes()
		out[i] = n
	}
	return out
}
