package validate

import "github.com/flowgraph/graphkit/model"

// NodeFlow is the per-node inflow/outflow/loss report produced by VolumeFlow.
type NodeFlow struct {
	NodeID     string
	Inflow     float64
	Outflow    float64
	ActualLoss float64
	PureSource bool // inflow ≈ 0
	PureSink   bool // outflow ≈ 0
}

// FlowResult is the system-wide volume-flow report produced by VolumeFlow.
type FlowResult struct {
	Nodes       []NodeFlow
	TotalInput  float64
	TotalOutput float64
	TotalLoss   float64
}

// VolumeFlow computes per-node inflow/outflow from Edge.Volume and reports
// system totals: total_input is the outflow sum of pure sources (inflow ≈
// 0 within tolerance 1e-3), total_output is the inflow sum of pure sinks
// (outflow ≈ 0), and total_loss = total_input − total_output, per spec.md
// §4.10.
func VolumeFlow(nodes []model.Node, edges []model.Edge) FlowResult {
	inflow := make(map[string]float64, len(nodes))
	outflow := make(map[string]float64, len(nodes))
	for _, e := range edges {
		outflow[e.From] += e.Volume
		inflow[e.To] += e.Volume
	}

	seen := make(map[string]bool, len(nodes))
	var result FlowResult
	for _, n := range nodes {
		if seen[n.ID] {
			continue
		}
		seen[n.ID] = true

		in, out := inflow[n.ID], outflow[n.ID]
		nf := NodeFlow{
			NodeID:     n.ID,
			Inflow:     in,
			Outflow:    out,
			ActualLoss: in - out,
			PureSource: approxZero(in),
			PureSink:   approxZero(out),
		}
		result.Nodes = append(result.Nodes, nf)
		if nf.PureSource {
			result.TotalInput += out
		}
		if nf.PureSink {
			result.TotalOutput += in
		}
	}
	result.TotalLoss = result.TotalInput - result.TotalOutput
	return result
}

func approxZero(v float64) bool {
	return v > -tolerance && v < tolerance
}
