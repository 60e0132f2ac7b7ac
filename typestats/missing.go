package typestats

import "github.com/flowgraph/graphkit/model"

// MissingTransitions reports which of the expected (from_type, to_type)
// pairs are not realized by any valid edge, per spec.md §4.9.
func MissingTransitions(nodes []model.Node, edges []model.Edge, expected []Transition) []Transition {
	byID := nodeIndex(nodes)

	realized := make(map[Transition]bool, len(edges))
	for _, e := range edges {
		from, fromOK := byID[e.From]
		to, toOK := byID[e.To]
		if !fromOK || !toOK {
			continue
		}
		realized[Transition{FromType: from.Type, ToType: to.Type}] = true
	}

	var missing []Transition
	for _, t := range expected {
		if !realized[t] {
			missing = append(missing, t)
		}
	}
	return missing
}
