// Package connectivity implements the undirected connected-components view,
// strongly-connected components (iterative Tarjan), articulation points, and
// per-node bridge/criticality analysis described in spec.md §4.3.
//
// Grounded on github.com/katalvlaran/lvlath's dfs package: the three-color
// (White/Gray/Black) visitation discipline in dfs/cycle.go underlies the
// iterative Tarjan low-link computation here, adapted from dfs.go's
// recursive walker to an explicit stack because low-link backtracking
// (propagating a child's low-link back into its parent after the child
// frame has fully returned) cannot be expressed with the teacher's simple
// recursive visit-then-recurse shape without recursion depth bounded by
// Go's goroutine stack — Tarjan here is written iteratively so arbitrarily
// deep graphs do not risk a stack overflow, a concern the teacher's smaller
// fixture graphs never had to address.
package connectivity
