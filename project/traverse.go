// SPDX-License-Identifier: MIT
// Package: qlattice/project
//
// traverse.go: breadth-first hop distances and connected components.

package project

import (
	"context"
	"fmt"
	"sort"
)

// Traversal is the result of a breadth-first walk.
type Traversal struct {
	// Order lists visited IDs in visit order, by non-decreasing depth.
	Order []string
	// Depth maps each visited ID to its hop distance from the start.
	Depth map[string]int
	// Parent maps each visited ID except the start to its BFS predecessor.
	Parent map[string]string
}

// PathTo returns the hop path from the start to id, or nil if id was not
// reached.
func (t *Traversal) PathTo(id string) []string {
	if _, ok := t.Depth[id]; !ok {
		return nil
	}
	path := make([]string, t.Depth[id]+1)
	for i := len(path) - 1; i >= 0; i-- {
		path[i] = id
		id = t.Parent[id]
	}
	return path
}

type walkItem struct {
	id    string
	depth int
}

// walker holds mutable BFS state; g.mu is held for reading by the caller.
type walker struct {
	g        *Graph
	ctx      context.Context
	maxDepth int
	queue    []walkItem
	res      *Traversal
}

// BFS walks the store from start. A maxDepth > 0 stops expansion at that
// many hops. Neighbours are expanded in sorted order so the result is
// deterministic.
//
// Errors: ErrNodeNotFound for an unknown start, ctx.Err() on cancellation.
//
// Complexity: O(V + E log d) time, O(V) space.
func (g *Graph) BFS(ctx context.Context, start string, maxDepth int) (*Traversal, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[start]; !ok {
		return nil, fmt.Errorf("project.BFS: %q: %w", start, ErrNodeNotFound)
	}
	w := &walker{
		g:        g,
		ctx:      ctx,
		maxDepth: maxDepth,
		res: &Traversal{
			Depth:  make(map[string]int, len(g.nodes)),
			Parent: make(map[string]string, len(g.nodes)),
		},
	}
	w.enqueue(start, 0, "")
	if err := w.loop(); err != nil {
		return nil, err
	}
	return w.res, nil
}

func (w *walker) enqueue(id string, d int, parent string) {
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, walkItem{id: id, depth: d})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)

		if w.maxDepth > 0 && item.depth >= w.maxDepth {
			continue
		}
		for _, nb := range w.g.sortedNeighbors(item.id) {
			if _, seen := w.res.Depth[nb]; !seen {
				w.enqueue(nb, item.depth+1, item.id)
			}
		}
	}
	return nil
}

// Components returns the connected components of the store. Each component
// is sorted, and components are ordered by their smallest ID.
// Complexity: O(V log V + E).
func (g *Graph) Components() [][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	seen := make(map[string]struct{}, len(ids))
	var out [][]string
	for _, root := range ids {
		if _, ok := seen[root]; ok {
			continue
		}
		seen[root] = struct{}{}
		comp := []string{root}
		for i := 0; i < len(comp); i++ {
			for nb := range g.adjacency[comp[i]] {
				if _, ok := seen[nb]; !ok {
					seen[nb] = struct{}{}
					comp = append(comp, nb)
				}
			}
		}
		sort.Strings(comp)
		out = append(out, comp)
	}
	return out
}

// sortedNeighbors assumes g.mu is held.
func (g *Graph) sortedNeighbors(id string) []string {
	out := make([]string, 0, len(g.adjacency[id]))
	for nb := range g.adjacency[id] {
		out = append(out, nb)
	}
	sort.Strings(out)
	return out
}
