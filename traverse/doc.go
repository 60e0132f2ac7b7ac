// Package traverse implements the order-stable BFS, DFS, and tracked-DFS
// kernels over a model.Adjacency: breadth-first visitation with depth and
// parent tracking, depth-first visitation with the same tracking plus a
// last-child-first (LIFO) discipline, and a tracked variant that additionally
// records the set of parallel edge-type labels on the discovery edge and
// supports an inclusive depth cutoff.
//
// None of these kernels take a context or support cancellation: traversal is
// synchronous and runs to completion, matching spec.md §4.2/§5 — there is no
// suspension point to cancel.
//
// Grounded on github.com/katalvlaran/lvlath's bfs and dfs packages: the
// queue/stack shape and visited/depth/parent bookkeeping come from bfs/bfs.go
// and dfs/dfs.go, rewritten as plain functions with no walker struct. The
// teacher's functional-options hook system (OnVisit/OnDequeue/FilterNeighbor)
// is not carried over — spec.md's traversal kernels take no caller-supplied
// hooks — and TrackedDFS's inclusive depth limit is a plain limit *int
// argument rather than a WithMaxDepth option. dfs/cycle.go's three-color
// visited discipline underlies the cycle-safety of every kernel here.
package traverse
