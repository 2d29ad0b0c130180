// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/relnet/core"
)

type queueItem struct {
	id    string
	depth int
}

// walker holds the mutable state of one walk.
type walker struct {
	graph    *core.Graph
	opts     options
	incoming map[string][]string // reverse neighbors; only for undirected walks of directed graphs
	visited  map[string]bool
	res      *Result
}

// BFS walks g from startID in breadth-first order.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, the
// context's error, or a wrapped OnVisit error.
//
// Complexity: O(V + E).
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("BFS %q: %w", startID, ErrStartVertexNotFound)
	}

	w := newWalker(g, o)
	if err := w.walk(startID); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// Components returns the connected components of g, weakly connected for
// directed graphs. Members are sorted; components are ordered by their
// smallest member.
//
// Complexity: O(V log V + E).
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	o.undirected = true
	w := newWalker(g, o)

	var comps [][]string
	for _, id := range g.Vertices() {
		if w.visited[id] {
			continue
		}
		from := len(w.res.Order)
		if err := w.walk(id); err != nil {
			return nil, err
		}
		comp := append([]string(nil), w.res.Order[from:]...)
		sort.Strings(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}

func newWalker(g *core.Graph, o options) *walker {
	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	if o.undirected && g.Directed() {
		w.incoming = make(map[string][]string, n)
		for _, e := range g.Edges() {
			w.incoming[e.To] = append(w.incoming[e.To], e.From)
		}
	}

	return w
}

// walk drains the queue seeded with start.
func (w *walker) walk(start string) error {
	w.visited[start] = true
	w.res.Depth[start] = 0
	queue := []queueItem{{id: start}}
	for len(queue) > 0 {
		if err := w.opts.ctx.Err(); err != nil {
			return err
		}
		item := queue[0]
		queue = queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.onVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		next := item.depth + 1
		if w.opts.maxDepth > 0 && next > w.opts.maxDepth {
			continue
		}
		nbrs, err := w.neighbors(item.id)
		if err != nil {
			return err
		}
		for _, nbr := range nbrs {
			if w.visited[nbr] || !w.opts.filter(item.id, nbr) {
				continue
			}
			w.visited[nbr] = true
			w.res.Depth[nbr] = next
			w.res.Parent[nbr] = item.id
			queue = append(queue, queueItem{id: nbr, depth: next})
		}
	}

	return nil
}

// neighbors lists the IDs reachable in one hop, sorted and deduplicated.
func (w *walker) neighbors(id string) ([]string, error) {
	out, err := w.graph.NeighborIDs(id)
	if err != nil {
		return nil, fmt.Errorf("bfs: neighbors of %q: %w", id, err)
	}
	if len(w.incoming[id]) == 0 {
		return out, nil
	}
	seen := make(map[string]struct{}, len(out)+len(w.incoming[id]))
	for _, v := range out {
		seen[v] = struct{}{}
	}
	for _, v := range w.incoming[id] {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Strings(out)

	return out, nil
}
