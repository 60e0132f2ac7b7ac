// Package reach computes, per node, the set of ancestors (nodes that reach
// it) and descendants (nodes it reaches) via repeated DFS over forward and
// reverse adjacency, plus a dynamic variant restricted to edges marked
// Active, per spec.md §4.5.
//
// Grounded on github.com/katalvlaran/lvlath's dfs package: the stack-based
// visited-set traversal in dfs/dfs.go is reused directly for both the
// forward (descendants) and reverse (ancestors) walks; dfs/bfs.go's
// FilterNeighbor hook is the template for DynamicReachability's active-edge
// predicate, here applied by building a filtered model.Adjacency up front
// rather than filtering per-edge inside the walk.
//
// AncestorsDescendants accepts WithParallel to fan the per-node closure
// computation out across goroutines with golang.org/x/sync/errgroup, the
// same fan-out/fan-in shape speakeasy-api/openapi's marshaller package uses
// for independent per-field work; each goroutine writes to a pre-sized
// result slice by index so output order never depends on completion order,
// preserving spec.md §5's determinism guarantee even in parallel mode.
package reach
