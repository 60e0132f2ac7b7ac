// Package typestats summarizes a graph at the type level: the type-quotient
// graph (participating types and their transition counts/probabilities),
// overall statistics (counts, type universe, source/target type sets),
// BFS-based depth/branching-factor path statistics, and missing-transition
// detection against an expected type-edge set, per spec.md §4.9.
//
// PathStatistics' BFS walk is traverse.BFS, itself grounded on
// github.com/katalvlaran/lvlath's bfs/bfs.go walker shape. Aggregate's edge
// ordering is a plain lexicographic sort.
package typestats
