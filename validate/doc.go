// Package validate reports structural defects in a raw node/edge input
// (duplicate ids, duplicate edges, dangling references, orphaned nodes) and
// two flow-arithmetic checks over Edge.Volume/LossPercentage: system-wide
// volume loss and per-node conservation, per spec.md §4.10.
//
// Validate scans the raw input directly rather than consuming
// model.Adjacency, which already silently collapses duplicates and drops
// dangling edges during construction — the defects this package reports
// would otherwise be invisible by the time an Adjacency exists.
//
// The inflow/outflow bookkeeping in flow.go is grounded on the in/out-degree
// accumulation style of github.com/katalvlaran/lvlath's flow/utils.go,
// adapted from max-flow residual-capacity arithmetic to a closed-form
// conservation sum (see DESIGN.md for what of flow/ could not carry over).
package validate
