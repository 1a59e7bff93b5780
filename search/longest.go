package search

import (
	"fmt"

	"github.com/benediktwerner/WordLadder/dict"
	"github.com/benediktwerner/WordLadder/ladder"
)

// LongestPath finds the longest shortest path within the component of
// word by running a full BFS from every member and taking the maximum
// eccentricity observed - the standard unweighted diameter algorithm,
// O(V·(V+E)) over the component.
//
// Sources are scanned in ascending WordID order and, per source, the
// farthest node is the first one reached at the winning depth, so the
// reported (From, To) pair is deterministic. OnImproved fires for every
// strictly longer path found, OnProgress after every completed source.
//
// Returns ErrWordNotFound if word is absent, ErrGraphNil/ErrIndexNil
// for nil inputs, or the context error on cancellation.
func LongestPath(g *ladder.Graph, idx *dict.Index, word string, opts ...Option) (*LongestResult, error) {
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

	seed, ok := idx.IDOf(word)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrWordNotFound, word)
	}

	comp, err := ComponentOf(g, seed)
	if err != nil {
		return nil, err
	}
	total := len(comp)

	// Epoch-stamped visited marks and a shared queue avoid reallocating
	// O(V) state for every one of the V source traversals.
	ecc := &eccWalker{
		g:     g,
		mark:  make([]int, g.Len()),
		depth: make([]int, g.Len()),
		queue: make([]dict.WordID, 0, total),
	}

	best := &LongestResult{Length: -1}
	for checked, src := range comp {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		far, dist := ecc.run(src)
		if dist > best.Length {
			best.From = idx.WordOf(src)
			best.To = idx.WordOf(far)
			best.Length = dist
			o.OnImproved(best.From, best.To, best.Length)
		}
		o.OnProgress(checked+1, total)
	}
	best.Checked = total

	return best, nil
}

// eccWalker holds the reusable single-source BFS state for the
// eccentricity scan. mark[v] == epoch means v was reached in the
// current traversal.
type eccWalker struct {
	g     *ladder.Graph
	mark  []int
	depth []int
	queue []dict.WordID
	epoch int
}

// run performs one BFS from src and returns the first node reached at
// the maximum depth, together with that depth (the eccentricity of
// src).
func (w *eccWalker) run(src dict.WordID) (far dict.WordID, dist int) {
	w.epoch++
	w.queue = append(w.queue[:0], src)
	w.mark[src] = w.epoch
	w.depth[src] = 0
	far, dist = src, 0

	for qi := 0; qi < len(w.queue); qi++ {
		u := w.queue[qi]
		d := w.depth[u] + 1
		for _, v := range w.g.Neighbors(u) {
			if w.mark[v] == w.epoch {
				continue
			}
			w.mark[v] = w.epoch
			w.depth[v] = d
			w.queue = append(w.queue, v)
			if d > dist {
				far, dist = v, d
			}
		}
	}

	return far, dist
}
