// Package heightmap provides an elevation grid with a climb-limited
// neighbour relation:
//
//   - Four-connectivity (N, E, S, W)
//   - Parsing and validation of the character map
//   - Multi-source shortest climb to the summit
package heightmap

import (
	"fmt"
	"strings"
)

// Parse builds a Grid from newline-separated rows of elevation codes.
// Trailing newlines and carriage returns are ignored.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrInvalidCell, ErrMissingMarker
// or ErrDuplicateMarker, wrapped with the offending position.
// Algorithmic complexity: O(W×H) time and memory.
func Parse(text string) (*Grid, error) {
	text = strings.TrimRight(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	rows := strings.Split(text, "\n")
	h, w := len(rows), len(rows[0])
	if w == 0 {
		return nil, ErrEmptyGrid
	}

	gg := &Grid{
		Width:           w,
		Height:          h,
		codes:           make([][]byte, h),
		heights:         make([]int, w*h),
		neighborOffsets: [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}},
	}
	var haveStart, haveEnd bool
	for r, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, r, len(row), w)
		}
		gg.codes[r] = []byte(row)
		for c := 0; c < w; c++ {
			code := row[c]
			height, ok := elevation(code)
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidCell, code, r, c)
			}
			gg.heights[gg.index(Cell{r, c})] = height

			switch code {
			case StartMarker:
				if haveStart {
					return nil, fmt.Errorf("%w: second %q at (%d,%d)", ErrDuplicateMarker, code, r, c)
				}
				haveStart, gg.start = true, Cell{r, c}
			case EndMarker:
				if haveEnd {
					return nil, fmt.Errorf("%w: second %q at (%d,%d)", ErrDuplicateMarker, code, r, c)
				}
				haveEnd, gg.end = true, Cell{r, c}
			}
		}
	}
	if !haveStart {
		return nil, fmt.Errorf("%w: no %q", ErrMissingMarker, StartMarker)
	}
	if !haveEnd {
		return nil, fmt.Errorf("%w: no %q", ErrMissingMarker, EndMarker)
	}

	return gg, nil
}

// elevation decodes a single map character.
func elevation(code byte) (int, bool) {
	switch {
	case code >= 'a' && code <= 'z':
		return int(code-'a') + MinElevation, true
	case code == StartMarker:
		return MinElevation, true
	case code == EndMarker:
		return MaxElevation, true
	}
	return 0, false
}

// Start returns the cell holding the start marker.
func (gg *Grid) Start() Cell { return gg.start }

// End returns the cell holding the summit marker.
func (gg *Grid) End() Cell { return gg.end }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (gg *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < gg.Height && c.Col >= 0 && c.Col < gg.Width
}

// Elevation returns the height of c. c must be in bounds.
func (gg *Grid) Elevation(c Cell) int {
	return gg.heights[gg.index(c)]
}

// Code returns the raw map character at c. c must be in bounds.
func (gg *Grid) Code(c Cell) byte {
	return gg.codes[c.Row][c.Col]
}

// CellsAt returns every cell of the given elevation in row-major order.
// CellsAt(MinElevation) includes the start marker.
func (gg *Grid) CellsAt(height int) []Cell {
	var out []Cell
	for i, h := range gg.heights {
		if h == height {
			out = append(out, gg.Coordinate(i))
		}
	}
	return out
}

// CanStep reports whether a single move from a to b is admissible: both in
// bounds, orthogonally adjacent, and climbing at most MaxClimb.
func (gg *Grid) CanStep(a, b Cell) bool {
	if !gg.InBounds(a) || !gg.InBounds(b) {
		return false
	}
	dr, dc := b.Row-a.Row, b.Col-a.Col
	if dr*dr+dc*dc != 1 {
		return false
	}
	return gg.admissible(gg.index(a), gg.index(b))
}

// admissible applies the climb rule between two row-major indices.
func (gg *Grid) admissible(from, to int) bool {
	return gg.heights[to]-gg.heights[from] <= MaxClimb
}

// Neighbors returns the cells reachable from c in one admissible step,
// in N, E, S, W order. c must be in bounds.
func (gg *Grid) Neighbors(c Cell) []Cell {
	ids := gg.neighborIDs(gg.index(c))
	out := make([]Cell, len(ids))
	for i, id := range ids {
		out[i] = gg.Coordinate(id)
	}
	return out
}

// neighborIDs is Neighbors over row-major indices, as consumed by bfs.
func (gg *Grid) neighborIDs(id int) []int {
	c := gg.Coordinate(id)
	out := make([]int, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		n := Cell{c.Row + d[0], c.Col + d[1]}
		if !gg.InBounds(n) {
			continue
		}
		if ni := gg.index(n); gg.admissible(id, ni) {
			out = append(out, ni)
		}
	}
	return out
}

// String renders the grid back to its textual form.
func (gg *Grid) String() string {
	var sb strings.Builder
	for r, row := range gg.codes {
		if r > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(row)
	}
	return sb.String()
}

// index maps c to a row‑major index: Row*Width + Col.
// Complexity: O(1).
func (gg *Grid) index(c Cell) int {
	return c.Row*gg.Width + c.Col
}

// Coordinate converts a row‑major index back to a Cell.
// Complexity: O(1).
func (gg *Grid) Coordinate(idx int) Cell {
	return Cell{Row: idx / gg.Width, Col: idx % gg.Width}
}
