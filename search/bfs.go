package search

import (
	"fmt"

	"github.com/benediktwerner/WordLadder/dict"
	"github.com/benediktwerner/WordLadder/ladder"
)

// ShortestPath finds a minimum-move transformation from start to goal.
//
// The frontier is a slice scanned by index, giving strict-FIFO O(1)
// dequeues; unweighted BFS therefore yields a path with the minimum
// number of edges. The search short-circuits the moment the goal shows
// up among an expanded node's neighbors, so when several shortest paths
// exist the returned one follows the ascending-WordID tie-break of the
// neighbor records.
//
// Returns ErrWordNotFound if either word is absent (checked before any
// traversal), ErrGraphNil/ErrIndexNil for nil inputs, or the context
// error on cancellation. An unreachable goal is NOT an error: the
// result has Found == false and a nil Path.
func ShortestPath(g *ladder.Graph, idx *dict.Index, start, goal string, opts ...Option) (*PathResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if idx == nil {
		return nil, ErrIndexNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	startID, ok := idx.IDOf(start)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrWordNotFound, start)
	}
	goalID, ok := idx.IDOf(goal)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrWordNotFound, goal)
	}
	// start == goal: a one-word path with zero moves
	if startID == goalID {
		return &PathResult{Path: []string{idx.WordOf(startID)}, Found: true}, nil
	}

	n := g.Len()
	visited := make([]bool, n)
	parent := make([]dict.WordID, n)
	queue := make([]dict.WordID, 0, 64)

	visited[startID] = true
	queue = append(queue, startID)
	expanded := 0

	for qi := 0; qi < len(queue); qi++ {
		// cancellation check (once per expansion)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		u := queue[qi]
		expanded++
		o.OnVisit(expanded)

		for _, v := range g.Neighbors(u) {
			if v == goalID {
				parent[v] = u
				return &PathResult{
					Path:    rebuildPath(parent, idx, startID, goalID),
					Visited: expanded,
					Found:   true,
				}, nil
			}
			if !visited[v] {
				visited[v] = true
				parent[v] = u
				queue = append(queue, v)
			}
		}
	}

	return &PathResult{Visited: expanded, Found: false}, nil
}

// rebuildPath walks parent pointers from goal back to start, reverses,
// and maps IDs to words.
func rebuildPath(parent []dict.WordID, idx *dict.Index, start, goal dict.WordID) []string {
	ids := []dict.WordID{goal}
	for cur := goal; cur != start; {
		cur = parent[cur]
		ids = append(ids, cur)
	}

	words := make([]string, len(ids))
	for i, id := range ids {
		words[len(ids)-1-i] = idx.WordOf(id)
	}

	return words
}
