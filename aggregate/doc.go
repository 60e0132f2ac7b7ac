// Package aggregate implements the hierarchical rollup/distribution kernels
// of spec.md §4.8: bottom-up value rollup, top-down value distribution,
// their temporal (duration-based) counterparts, and a per-key group rollup.
//
// None of these kernels exist in the teacher repo; they are grounded
// instead on the teacher's traversal discipline. BottomUp reuses
// traverse.DFS's last-child-first visitation directly — its contributing-node
// order is exactly that DFS's visit order, which is also the order spec.md's
// worked examples pin (scenario: A(10), B(5), C(3), edges A→B, A→C yields
// contributing_nodes {A,C,B}, matching last-child-first DFS from A). TopDown
// reuses cycle.Kahn's topological layering so every parent's value is
// finalized before any child consumes it, mirroring the teacher's
// BFSResult.Parent bookkeeping in bfs/bfs.go for per-node predecessor
// tracking. Per spec.md §9's pinned (not "fixed") behavior, TopDown
// accumulates contributions from every parent additively, without
// deduplicating a node that is reachable via more than one path.
package aggregate
