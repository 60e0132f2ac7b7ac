package model

import "time"

// Node is a labeled vertex in the property graph. Every kernel reads ID and
// Type; the remaining fields are populated only by the kernels that need
// them (Value by aggregate.BottomUp/TopDown, Values by
// aggregate.GroupBottomUp, StartTime/EndTime by the temporal aggregation and
// CPM kernels). Capacity is carried on the record but read by no kernel.
type Node struct {
	// ID uniquely identifies this node within the graph passed to a single
	// procedure call.
	ID string

	// Type is the semantic label used by subgraph extraction, type
	// aggregation, and statistics.
	Type string

	// Value is the scalar rollup/distribution quantity for aggregate.BottomUp
	// and aggregate.TopDown.
	Value float64

	// Values is the per-key rollup quantity for aggregate.GroupBottomUp.
	// Missing keys are treated as zero by the kernel, not by this type.
	Values map[string]float64

	// StartTime and EndTime bound a temporal node for
	// aggregate.TemporalBottomUp/TemporalTopDown and paths.CriticalPath.
	StartTime time.Time
	EndTime   time.Time

	// Capacity is the optional volume ceiling of the node. No kernel in this
	// module reads it; validate.VolumeFlow works from Edge.Volume only. A nil
	// Capacity means "not specified", distinct from zero.
	Capacity *float64
}

// DurationMinutes returns (EndTime - StartTime) in whole real-valued
// minutes. It is the pure function spec.md treats the host's built-in
// duration primitive as; StartTime/EndTime with no sub-minute fraction yield
// an integral result, matching spec.md's numeric semantics (§6).
func (n Node) DurationMinutes() float64 {
	return n.EndTime.Sub(n.StartTime).Minutes()
}

// Edge is an ordered, typed connection between two node ids. LossPercentage,
// Active, and Volume are read only by the kernels that need them
// (validate.FlowConservation, reach.DynamicReachability, and
// validate.VolumeFlow/FlowConservation respectively). Weight is not read by
// any kernel directly: paths.Dijkstra takes edge costs from a caller-supplied
// weight function.
type Edge struct {
	// From is the source node id.
	From string

	// To is the destination node id.
	To string

	// Type is the edge-type label used by type aggregation, subgraph
	// classification, and tracked traversal.
	Type string

	// Weight is the non-negative cost a caller can return from the weight
	// function passed to paths.Dijkstra.
	Weight float64

	// LossPercentage is the fractional loss applied to flow passing along
	// this edge, used by validate.FlowConservation.
	LossPercentage float64

	// Active restricts reach.DynamicReachability to edges with Active == true.
	Active bool

	// Volume is the flow quantity used by validate.VolumeFlow.
	Volume float64
}

// EdgeKey identifies a from→to pair irrespective of edge type, used to key
// parallel-edge grouping during adjacency construction.
type EdgeKey struct {
	From string
	To   string
}
