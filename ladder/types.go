// Package ladder defines the adjacency Graph type, tunable options and
// sentinel errors for neighbor graph construction.
package ladder

import (
	"context"
	"errors"
	"fmt"

	"github.com/benediktwerner/WordLadder/dict"
)

// Sentinel errors for graph construction.
var (
	// ErrIndexNil is returned when a nil *dict.Index is passed to Build.
	ErrIndexNil = errors.New("ladder: index is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ladder: invalid option supplied")
)

// Graph is the full adjacency mapping WordID → neighbor WordIDs for one
// dictionary. Neighbor slices are deduplicated, sorted ascending, and
// must not be mutated by callers. A Graph is immutable once built and
// therefore safe to share across concurrent read-only traversals.
type Graph struct {
	adj [][]dict.WordID
}

// FromAdjacency wraps an adjacency table in a Graph, taking ownership
// of adj. Row i holds the ascending neighbor IDs of WordID i; a nil row
// is a valid empty record.
func FromAdjacency(adj [][]dict.WordID) *Graph {
	return &Graph{adj: adj}
}

// Len returns the number of words covered by the graph.
func (g *Graph) Len() int {
	return len(g.adj)
}

// Neighbors returns the ascending neighbor IDs of id. The returned
// slice is shared with the graph; callers must not mutate it.
func (g *Graph) Neighbors(id dict.WordID) []dict.WordID {
	return g.adj[id]
}

// NumEdges returns the number of undirected edges. Every edge appears
// in both endpoint records (symmetry holds by construction), so the
// total is half the record sum.
func (g *Graph) NumEdges() int {
	total := 0
	for _, row := range g.adj {
		total += len(row)
	}

	return total / 2
}

// Option configures Build behavior via functional arguments.
// If an Option is invalid it is recorded internally and surfaced as
// ErrOptionViolation when Build is invoked.
type Option func(*BuildOptions)

// BuildOptions holds parameters and callbacks to customize Build.
type BuildOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Workers is the number of goroutines computing bucket neighbor
	// sets. 1 (the default) runs fully sequentially.
	Workers int

	// OnProgress is called with a monotonically increasing count of
	// completed buckets. It never alters the algorithmic output.
	OnProgress func(done, total int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BuildOptions with sane defaults:
// background context, single worker, no-op progress hook.
func DefaultOptions() BuildOptions {
	return BuildOptions{
		Ctx:        context.Background(),
		Workers:    1,
		OnProgress: func(int, int) {},
		err:        nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BuildOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the number of parallel bucket workers.
//
//	n > 1: parallel build, identical output to sequential
//	n == 1: sequential build
//	n < 1: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *BuildOptions) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithProgress registers a completed-bucket counter callback.
func WithProgress(fn func(done, total int)) Option {
	return func(o *BuildOptions) {
		if fn != nil {
			o.OnProgress = fn
		}
	}
}
