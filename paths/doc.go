// Package paths implements all-simple-paths enumeration, Dijkstra's
// shortest path, the critical-path method (CPM), and path membership, per
// spec.md §4.6.
//
// Grounded on github.com/katalvlaran/lvlath: AllSimplePaths reuses
// dfs/cycle.go's path-stack-as-prefix technique (push onto the current
// prefix, reject a neighbor already present, pop on backtrack) but emits
// every completed path instead of canonicalizing cycles. Dijkstra is
// dijkstra/dijkstra.go's heap-based walker, generalized from int64 to
// float64 edge weights per spec.md §3 ("weight: real") and narrowed from
// single-source-to-all to single-source-single-target with early
// termination, matching spec.md §4.6. CriticalPath is new — the teacher has
// no CPM — built on cycle.Kahn's topological layering for the forward pass.
package paths
