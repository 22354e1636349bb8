// Package heightmap treats a rectangular elevation map as an implicit graph
// and finds the fewest steps needed to climb from one or many start cells to
// the summit.
//
// What:
//
//   - Grid wraps a block of single-character elevation codes: 'a'..'z' map to
//     heights 1..26, the start marker 'S' has height 1 and the summit marker
//     'E' has height 26.
//   - A step moves to an orthogonal neighbour B from A iff
//     Elevation(B) - Elevation(A) <= 1: descending any distance is allowed,
//     climbing at most one unit.
//   - Climb runs a multi-source, level-order BFS (package bfs) from every
//     given source at once and returns the depth at which the summit is
//     first reached.
//   - Route reconstructs one shortest route as a list of cells.
//
// Why:
//
//   - Single-source search answers "how far from S".
//   - Multi-source search answers "how far from the nearest lowest cell" in
//     one pass instead of one search per candidate start.
//
// Complexity:
//
//   - Parse:  O(W×H) time and memory.
//   - Climb:  O(W×H×4) time, O(W×H) memory.
//
// Errors:
//
//   - ErrEmptyGrid:       input has no rows or no columns.
//   - ErrNonRectangular:  rows have differing lengths.
//   - ErrInvalidCell:     a character outside 'a'..'z', 'S', 'E'.
//   - ErrMissingMarker:   no 'S' or no 'E'.
//   - ErrDuplicateMarker: more than one 'S' or 'E'.
//   - ErrCellOutOfRange:  a source cell lies outside the grid.
//   - bfs.ErrUnreachable: (wrapped) no source can reach the summit.
package heightmap
