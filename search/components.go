package search

import (
	"sort"

	"github.com/benediktwerner/WordLadder/dict"
	"github.com/benediktwerner/WordLadder/ladder"
)

// Components partitions the graph into maximal mutually-reachable sets.
// Components are ordered by their smallest member ID and members are
// sorted ascending, so the output is fully deterministic. The union of
// all components is the full WordID set and components are pairwise
// disjoint.
// Complexity: O(V+E) time, O(V) memory.
func Components(g *ladder.Graph) ([][]dict.WordID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.Len()
	seen := make([]bool, n)
	var comps [][]dict.WordID
	for id := 0; id < n; id++ {
		if seen[id] {
			continue
		}
		comps = append(comps, floodFill(g, dict.WordID(id), seen))
	}

	return comps, nil
}

// ComponentOf returns the sorted member IDs of the component containing
// id.
func ComponentOf(g *ladder.Graph, id dict.WordID) ([]dict.WordID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return floodFill(g, id, make([]bool, g.Len())), nil
}

// GroupSizes reduces a component partition to a size → count mapping
// for reporting.
func GroupSizes(comps [][]dict.WordID) map[int]int {
	sizes := make(map[int]int)
	for _, comp := range comps {
		sizes[len(comp)]++
	}

	return sizes
}

// floodFill collects the component of seed via index-scanned BFS,
// marking every reached ID in seen, and returns the members sorted
// ascending. Visit order does not affect the result set.
func floodFill(g *ladder.Graph, seed dict.WordID, seen []bool) []dict.WordID {
	queue := []dict.WordID{seed}
	seen[seed] = true

	for qi := 0; qi < len(queue); qi++ {
		for _, v := range g.Neighbors(queue[qi]) {
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	sort.Slice(queue, func(i, j int) bool { return queue[i] < queue[j] })

	return queue
}
