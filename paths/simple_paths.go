package paths

import "github.com/flowgraph/graphkit/model"

// AllSimplePaths enumerates every simple path from start to end via DFS,
// rejecting any neighbor already present in the current prefix (cycle
// avoidance). Self-loops are filtered automatically since the source is
// always in the prefix. Paths are emitted in DFS discovery order, per
// spec.md §4.6.
//
// Complexity: O(paths * path_length), per spec.md §5's documented bound.
func AllSimplePaths(adj *model.Adjacency, start, end string) [][]string {
	if adj == nil || !adj.HasNode(start) || !adj.HasNode(end) {
		return nil
	}

	var results [][]string
	prefix := []string{start}
	inPrefix := map[string]bool{start: true}

	var walk func(cur string)
	walk = func(cur string) {
		if cur == end {
			results = append(results, append([]string(nil), prefix...))
			return
		}
		for _, nbr := range adj.Forward[cur] {
			if inPrefix[nbr] {
				continue
			}
			inPrefix[nbr] = true
			prefix = append(prefix, nbr)
			walk(nbr)
			prefix = prefix[:len(prefix)-1]
			inPrefix[nbr] = false
		}
	}
	walk(start)

	return results
}

// Membership returns, for each id in nodeIDs, the indices of paths (into the
// slice returned by AllSimplePaths) that contain it.
func Membership(nodeIDs []string, allPaths [][]string) map[string][]int {
	out := make(map[string][]int, len(nodeIDs))
	for _, id := range nodeIDs {
		out[id] = nil
	}
	for idx, p := range allPaths {
		seen := make(map[string]bool, len(p))
		for _, id := range p {
			if seen[id] {
				continue
			}
			seen[id] = true
			if _, tracked := out[id]; tracked {
				out[id] = append(out[id], idx)
			}
		}
	}
	return out
}
