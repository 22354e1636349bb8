// Package bfs provides a multi-source, level-order breadth-first search over
// an implicit graph of integer vertex IDs, returning unweighted shortest-path
// distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a set of
//     sources. Every source starts at depth 0.
//   - The graph is never materialized: a NeighborFunc yields the admissible
//     successors of a vertex on demand, so any edge predicate (e.g. a climb
//     rule on an elevation grid) lives in the caller.
//   - Frontiers are processed level by level with explicit boundaries, so
//     Result.Levels and Result.Depth are exact even with many sources.
//   - Returns a Result containing:
//   - Order:  visit sequence
//   - Depth:  map from vertex → distance from the nearest source
//   - Parent: map from vertex → its predecessor in the BFS forest
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a vertex is discovered)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - WithStopAt ends the search at the first visited target.
//   - WithFilterNeighbor prunes individual edges.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Unweighted shortest paths in O(V + E) time.
//   - Multi-source distance (nearest of many starts) in a single pass,
//     instead of one search per start.
//
// Determinism
//
//	Sources are seeded in the given order and neighbors are enqueued in the
//	order the NeighborFunc returns them, so the visit sequence is fully
//	reproducible.
//
// Complexity (V = reachable vertices, E = admissible edges among them)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(sources, next,
//	    bfs.WithContext(ctx),
//	    bfs.WithStopAt(func(id int) bool { return id == goal }),
//	)
//
//	steps, err := bfs.Distance(sources, next, func(id int) bool { return id == goal })
//	if errors.Is(err, bfs.ErrUnreachable) {
//	    // no source can reach the goal
//	}
//
// Errors
//
//   - ErrNoSources        if sources is empty.
//   - ErrNeighborFuncNil  if next is nil.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ErrUnreachable      from Distance when no target is reached.
//   - Wrapped user-supplied hook errors from OnVisit.
//   - ctx.Err() when the context is cancelled.
package bfs
