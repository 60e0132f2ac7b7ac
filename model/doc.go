// Package model defines the Node and Edge record types shared by every
// kernel in this module, and the Adjacency builder that turns a flat
// node/edge list into the forward/reverse neighbor maps every traversal,
// connectivity, path, and aggregation kernel walks.
//
// Node and Edge are plain value types: there is no node-variant hierarchy
// (core nodes vs. value nodes vs. temporal nodes). Callers populate only the
// fields a given kernel reads; the rest are left at their zero value.
//
// Adjacency is built once per procedure invocation and never mutated after
// construction — there is no incremental-edit API here, unlike a
// general-purpose graph data structure, because every kernel in this module
// receives its whole input up front and returns a value.
//
// Grounded on github.com/katalvlaran/lvlath's core package: the nested
// from→to adjacency-map shape and first-edge-wins dedup rule come from
// core/methods.go's AddEdge and core/adjacency_list.go, re-expressed over
// static slices instead of a mutex-guarded map because this module's graphs
// are immutable per call.
package model
