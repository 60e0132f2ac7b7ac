// Package cycle implements Kahn's layered topological sort and a
// back-edge-witness cycle detector over a model.Adjacency, per spec.md §4.4.
//
// Grounded on github.com/katalvlaran/lvlath's dfs/cycle.go: the three-color
// (White/Gray/Black) visitation state machine and back-edge-to-witness
// extraction come from there, narrowed from the teacher's full
// all-cycles-canonicalized enumeration (which also handles undirected/mixed
// graphs and trivial 2-cycles) to a single first-found witness over a
// directed-only graph, since spec.md §4.4 only needs one witness cycle, not
// an exhaustive enumeration — that exhaustive job belongs to
// paths.AllSimplePaths's sibling concern instead.
package cycle
