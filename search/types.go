// Package search provides tunable options, result types and error
// definitions for queries over the word adjacency graph.
package search

import (
	"context"
	"errors"
)

// Sentinel errors for search execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrIndexNil is returned if a nil dictionary index is passed.
	ErrIndexNil = errors.New("search: index is nil")

	// ErrWordNotFound is returned when a query word is absent from the
	// dictionary. It is reported before any traversal starts.
	ErrWordNotFound = errors.New("search: word not found in dictionary")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Option configures query behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks shared by the query entry
// points. Hooks are observational only: they never change results.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called by ShortestPath after each node expansion with
	// the running number of expanded nodes.
	OnVisit func(visited int)

	// OnProgress is called by LongestPath after each completed source
	// BFS with the number of sources checked and the component size.
	OnProgress func(checked, total int)

	// OnImproved is called by LongestPath whenever a strictly longer
	// shortest path is discovered.
	OnImproved func(from, to string, length int)
}

// DefaultOptions returns Options with a background context and no-op
// hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnVisit:    func(int) {},
		OnProgress: func(int, int) {},
		OnImproved: func(string, string, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers the node-expansion counter hook.
func WithOnVisit(fn func(visited int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithProgress registers the completed-source counter hook.
func WithProgress(fn func(checked, total int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnProgress = fn
		}
	}
}

// WithOnImproved registers the new-longest-path hook.
func WithOnImproved(fn func(from, to string, length int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnImproved = fn
		}
	}
}

// PathResult holds the outcome of a shortest-path query.
//   - Path: the words from start to goal inclusive; nil when not Found.
//   - Visited: nodes expanded before termination.
//   - Found: whether the goal was reached. Exhausting the frontier
//     without reaching the goal is a normal outcome.
type PathResult struct {
	Path    []string
	Visited int
	Found   bool
}

// Moves returns the number of edges on the found path (0 for the
// start == goal boundary case and for not-found results).
func (r *PathResult) Moves() int {
	if !r.Found || len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}

// LongestResult holds the outcome of a longest shortest-path scan:
// the achieving (From, To) pair, its Length in moves, and the number
// of source nodes Checked.
type LongestResult struct {
	From    string
	To      string
	Length  int
	Checked int
}
