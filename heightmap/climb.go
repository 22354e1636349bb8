package heightmap

import (
	"context"
	"fmt"

	"github.com/katalvlaran/advent/bfs"
)

// Climb returns the minimum number of steps from any cell in sources to the
// summit, moving only along admissible steps (see CanStep).
//
// Behavior:
//  1. Validate sources (non-empty, in bounds).
//  2. Multi-source level-order BFS seeded with every source at depth 0.
//  3. Stop when the summit is visited; its depth is the answer.
//
// Returns ErrCellOutOfRange for a bad source, a wrapped bfs.ErrUnreachable
// when the summit cannot be reached, or ctx.Err() on cancellation.
// Complexity: O(W·H·4) time, O(W·H) memory.
func (gg *Grid) Climb(ctx context.Context, sources []Cell) (int, error) {
	ids, err := gg.sourceIDs(sources)
	if err != nil {
		return 0, err
	}
	goal := gg.index(gg.end)

	steps, err := bfs.Distance(ids, gg.neighborIDs, func(id int) bool { return id == goal },
		bfs.WithContext(ctx),
	)
	if err != nil {
		return 0, fmt.Errorf("heightmap: climb to %v: %w", gg.end, err)
	}

	return steps, nil
}

// Route returns one shortest route from the nearest source to the summit,
// both ends included. len(route)-1 equals Climb(ctx, sources).
func (gg *Grid) Route(ctx context.Context, sources []Cell) ([]Cell, error) {
	ids, err := gg.sourceIDs(sources)
	if err != nil {
		return nil, err
	}
	goal := gg.index(gg.end)

	res, err := bfs.BFS(ids, gg.neighborIDs,
		bfs.WithContext(ctx),
		bfs.WithStopAt(func(id int) bool { return id == goal }),
	)
	if err != nil {
		return nil, fmt.Errorf("heightmap: route to %v: %w", gg.end, err)
	}
	if !res.Found {
		return nil, fmt.Errorf("heightmap: route to %v: %w", gg.end, bfs.ErrUnreachable)
	}
	path, err := res.PathTo(goal)
	if err != nil {
		return nil, err
	}

	route := make([]Cell, len(path))
	for i, id := range path {
		route[i] = gg.Coordinate(id)
	}
	return route, nil
}

// sourceIDs validates sources and maps them to row-major indices.
func (gg *Grid) sourceIDs(sources []Cell) ([]int, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("heightmap: %w", bfs.ErrNoSources)
	}
	ids := make([]int, len(sources))
	for i, c := range sources {
		if !gg.InBounds(c) {
			return nil, fmt.Errorf("%w: source %v in %dx%d grid", ErrCellOutOfRange, c, gg.Height, gg.Width)
		}
		ids[i] = gg.index(c)
	}
	return ids, nil
}

// ClimbFromStart parses input and returns the fewest steps from the start
// marker to the summit.
func ClimbFromStart(ctx context.Context, input string) (int, error) {
	gg, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return gg.Climb(ctx, []Cell{gg.Start()})
}

// ClimbFromLowest parses input and returns the fewest steps to the summit
// from whichever lowest-elevation cell (start marker or 'a') is nearest.
func ClimbFromLowest(ctx context.Context, input string) (int, error) {
	gg, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return gg.Climb(ctx, gg.CellsAt(MinElevation))
}
