package paths

import (
	"github.com/flowgraph/graphkit/cycle"
	"github.com/flowgraph/graphkit/model"
)

// CriticalPath computes earliest-start/latest-finish schedules via a
// forward/backward pass over the DAG in topological order, then reconstructs
// the longest-duration (critical) path. nodes must carry StartTime/EndTime
// for duration; an edge's weight is ignored — CPM uses node durations only.
// If adj has a cycle, CriticalPath returns the zero CPMResult.
//
// Complexity: O(V + E).
func CriticalPath(nodes []model.Node, adj *model.Adjacency) CPMResult {
	kahn := cycle.Kahn(adj)
	if kahn.HasCycle {
		return CPMResult{}
	}

	byID := make(map[string]model.Node, len(nodes))
	for _, n := range nodes {
		if _, ok := byID[n.ID]; !ok {
			byID[n.ID] = n
		}
	}
	duration := func(id string) float64 { return byID[id].DurationMinutes() }

	order := make([]string, len(kahn.Records))
	for _, r := range kahn.Records {
		order[r.TopoOrder] = r.ID
	}

	earliestStart := make(map[string]float64, len(order))
	for _, id := range order {
		es := 0.0
		for _, pred := range adj.Reverse[id] {
			if finish := earliestStart[pred] + duration(pred); finish > es {
				es = finish
			}
		}
		earliestStart[id] = es
	}

	total := 0.0
	for _, id := range order {
		if adj.OutDegree(id) == 0 { // sink
			if finish := earliestStart[id] + duration(id); finish > total {
				total = finish
			}
		}
	}

	latestFinish := make(map[string]float64, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		if adj.OutDegree(id) == 0 {
			latestFinish[id] = total
			continue
		}
		lf := Inf
		for _, succ := range adj.Forward[id] {
			if latestStart := latestFinish[succ] - duration(succ); latestStart < lf {
				lf = latestStart
			}
		}
		latestFinish[id] = lf
	}

	// Reconstruct the critical path: start at the sink whose earliest
	// finish equals total, then follow a predecessor whose own earliest
	// finish equals the current node's earliest start.
	var end string
	for _, id := range order {
		if adj.OutDegree(id) == 0 && earliestStart[id]+duration(id) == total {
			end = id
			break
		}
	}

	var path []string
	for cur := end; cur != ""; {
		path = append([]string{cur}, path...)
		var next string
		for _, pred := range adj.Reverse[cur] {
			if earliestStart[pred]+duration(pred) == earliestStart[cur] {
				next = pred
				break
			}
		}
		cur = next
	}

	return CPMResult{
		Path:          path,
		TotalDuration: total,
		EarliestStart: earliestStart,
		LatestFinish:  latestFinish,
	}
}
