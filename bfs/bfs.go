// Package bfs provides multi-source breadth-first search over an implicit
// graph, returning unweighted shortest-path distances, parent links, and
// visit order.
package bfs

import (
	"context"
	"fmt"
)

// walker encapsulates mutable BFS state.
type walker struct {
	next     NeighborFunc
	opts     BFSOptions
	ctx      context.Context
	frontier []int
	visited  map[int]bool
	res      *Result
}

// BFS runs a level-order search from every vertex in sources at once,
// applying any number of functional Options.
// Duplicate sources are visited once.
// Returns ErrNoSources, ErrNeighborFuncNil or ErrOptionViolation for invalid
// input, ctx.Err() on cancellation, or any user-supplied hook error.
func BFS(sources []int, next NeighborFunc, opts ...Option) (*Result, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	if next == nil {
		return nil, ErrNeighborFuncNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		next:     next,
		opts:     o,
		ctx:      o.Ctx,
		frontier: make([]int, 0, len(sources)),
		visited:  make(map[int]bool, len(sources)),
		res: &Result{
			Order:  make([]int, 0, len(sources)),
			Depth:  make(map[int]int, len(sources)),
			Parent: make(map[int]int),
		},
	}

	// Seed level 0 with every source (no parents)
	for _, s := range sources {
		if !w.visited[s] {
			w.enqueue(s, 0, s, false)
		}
	}

	return w.res, w.loop()
}

// Distance returns the depth of the first vertex satisfying isTarget,
// searching from all sources simultaneously. A source that is itself a
// target yields 0. Returns ErrUnreachable when no target is reachable.
func Distance(sources []int, next NeighborFunc, isTarget func(id int) bool, opts ...Option) (int, error) {
	if isTarget == nil {
		return 0, fmt.Errorf("%w: target predicate is nil", ErrOptionViolation)
	}
	res, err := BFS(sources, next, append(opts[:len(opts):len(opts)], WithStopAt(isTarget))...)
	if err != nil {
		return 0, err
	}
	if !res.Found {
		return 0, ErrUnreachable
	}

	return res.Depth[res.Target], nil
}

// enqueue marks id visited at depth d, records its parent, calls OnEnqueue,
// and appends it to the frontier being built.
func (w *walker) enqueue(id, d, parent int, hasParent bool) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if hasParent {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.frontier = append(w.frontier, id)
}

// loop processes one frontier per iteration until it drains, a StopAt
// vertex is visited, a hook fails, or the context is cancelled.
func (w *walker) loop() error {
	for depth := 0; len(w.frontier) > 0; depth++ {
		// cancellation check (once per level)
		if err := w.ctx.Err(); err != nil {
			return err
		}

		level := w.frontier
		w.frontier = make([]int, 0, len(level))
		w.res.Levels++

		for _, id := range level {
			w.opts.OnDequeue(id, depth)
			if err := w.visit(id, depth); err != nil {
				return err
			}
			if w.opts.StopAt(id) {
				w.res.Found = true
				w.res.Target = id
				return nil
			}
			if w.opts.MaxDepth > 0 && depth+1 > w.opts.MaxDepth {
				continue
			}
			if err := w.enqueueNeighbors(id, depth); err != nil {
				return err
			}
		}
	}

	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(id, depth int) error {
	w.res.Order = append(w.res.Order, id)
	if err := w.opts.OnVisit(id, depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", id, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and enqueues each unseen neighbor
// of id into the next frontier.
func (w *walker) enqueueNeighbors(id, depth int) error {
	for _, nbr := range w.next(id) {
		if w.visited[nbr] {
			continue
		}
		if !w.opts.FilterNeighbor(id, nbr) {
			continue
		}
		w.enqueue(nbr, depth+1, id, true)
	}

	return w.ctx.Err()
}
