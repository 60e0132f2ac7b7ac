// Package subgraph extracts labeled sub-structures from a graph: backward
// genealogy from target-typed nodes, forward genealogy from source-typed
// nodes, per-SCC expansion with type-subset filters, batch network genealogy
// with external-source closure, and per-connected-component grouping, per
// spec.md §4.7.
//
// Grounded on github.com/katalvlaran/lvlath's bfs/dfs walk shape, repurposed
// from order-recording traversal to set-accumulation: walk (in common.go) is
// the same stack-based discipline as dfs/dfs.go but collects only the
// reached ids (in discovery order) instead of a Record sequence, since no
// variant here uses depth or parent trail.
package subgraph
