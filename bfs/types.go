// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for vertices the walk never reached.
	ErrNoPath = errors.New("bfs: vertex not reached")
)

// Option configures a walk.
// Invalid values are recorded and surfaced as ErrOptionViolation by BFS.
type Option func(*options)

type options struct {
	ctx        context.Context
	onVisit    func(id string, depth int) error
	filter     func(curr, neighbor string) bool
	maxDepth   int
	undirected bool
	err        error
}

func defaultOptions() options {
	return options{
		ctx:     context.Background(),
		onVisit: func(string, int) error { return nil },
		filter:  func(_, _ string) bool { return true },
	}
}

// WithContext sets a context checked once per dequeued vertex.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run on every visited vertex; a returned
// error stops the walk.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// WithFilterNeighbor skips neighbor when fn(curr, neighbor) is false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *options) {
		if fn != nil {
			o.filter = fn
		}
	}
}

// WithMaxDepth stops the walk past depth d. Zero means no limit.
func WithMaxDepth(d int) Option {
	return func(o *options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.maxDepth = d
	}
}

// WithUndirected follows directed edges in both directions.
func WithUndirected() Option {
	return func(o *options) { o.undirected = true }
}

// Result is the outcome of one walk.
//   - Order: vertices in visit sequence.
//   - Depth: hop count from the start.
//   - Parent: predecessor in the BFS tree (absent for the start).
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo returns the hop-shortest path start → dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("PathTo %q: %w", dest, ErrNoPath)
	}
	var path []string
	for cur, ok := dest, true; ok; cur, ok = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
