package validate

import "github.com/flowgraph/graphkit/model"

// ConservationResult is the output of FlowConservation: whether every node
// balances and which ones don't.
type ConservationResult struct {
	IsConserved    bool
	ViolatingNodes []string
}

// FlowConservation checks, for each node, whether
// node_value + total_inflow ≈ total_outflow + total_loss
// within tolerance 1e-3, where total_loss is the sum of
// outflow * LossPercentage over that node's outgoing edges, per spec.md
// §4.10.
func FlowConservation(nodes []model.Node, edges []model.Edge) ConservationResult {
	inflow := make(map[string]float64, len(nodes))
	outflow := make(map[string]float64, len(nodes))
	loss := make(map[string]float64, len(nodes))
	for _, e := range edges {
		outflow[e.From] += e.Volume
		inflow[e.To] += e.Volume
		loss[e.From] += e.Volume * e.LossPercentage
	}

	seen := make(map[string]bool, len(nodes))
	var violating []string
	for _, n := range nodes {
		if seen[n.ID] {
			continue
		}
		seen[n.ID] = true

		lhs := n.Value + inflow[n.ID]
		rhs := outflow[n.ID] + loss[n.ID]
		if diff := lhs - rhs; diff > tolerance || diff < -tolerance {
			violating = append(violating, n.ID)
		}
	}

	return ConservationResult{IsConserved: len(violating) == 0, ViolatingNodes: violating}
}
