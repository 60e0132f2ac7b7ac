package paths

import (
	"container/heap"

	"github.com/flowgraph/graphkit/model"
)

// pqItem is one entry in the Dijkstra priority queue.
type pqItem struct {
	id   string
	dist float64
}

// priorityQueue is a min-heap over pqItem.dist, used with "lazy" decrease-key:
// stale entries are pushed rather than updated in place and skipped on pop
// if a fresher distance has since been recorded, matching the teacher's
// dijkstra package's approach.
type priorityQueue []pqItem

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool   { return pq[i].dist < pq[j].dist }
func (pq priorityQueue) Swap(i, j int)        { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{})  { *pq = append(*pq, x.(pqItem)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// Dijkstra computes the minimum-cost path from sourceID to targetID over
// adj's edges, costing each edge with weight(from, to) (assumed
// non-negative; negative weights are the
// caller's responsibility to avoid, since the property graph is validated
// separately). Returns the node-id sequence source..target and its total
// cost, or (nil, Inf) if target is unreachable.
//
// Complexity: O((V + E) log V).
func Dijkstra(adj *model.Adjacency, weight func(from, to string) float64, sourceID, targetID string) ([]string, float64) {
	if adj == nil || !adj.HasNode(sourceID) || !adj.HasNode(targetID) {
		return nil, Inf
	}

	dist := make(map[string]float64, len(adj.NodeOrder))
	prev := make(map[string]string, len(adj.NodeOrder))
	finalized := make(map[string]bool, len(adj.NodeOrder))
	for _, id := range adj.NodeOrder {
		dist[id] = Inf
	}
	dist[sourceID] = 0

	pq := &priorityQueue{{id: sourceID, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		top := heap.Pop(pq).(pqItem)
		if finalized[top.id] {
			continue
		}
		finalized[top.id] = true

		if top.id == targetID {
			break // early termination once target is finalized
		}

		for _, nbr := range adj.Forward[top.id] {
			if finalized[nbr] {
				continue
			}
			cand := dist[top.id] + weight(top.id, nbr)
			if cand < dist[nbr] {
				dist[nbr] = cand
				prev[nbr] = top.id
				heap.Push(pq, pqItem{id: nbr, dist: cand})
			}
		}
	}

	if dist[targetID] == Inf {
		return nil, Inf
	}

	var path []string
	for cur := targetID; ; {
		path = append(path, cur)
		p, ok := prev[cur]
		if !ok {
			break
		}
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[targetID]
}
