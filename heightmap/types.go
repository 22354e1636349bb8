// Package heightmap defines core types and sentinel errors
// for the heightmap package.
package heightmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for heightmap operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("heightmap: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("heightmap: all rows must have the same length")
	// ErrInvalidCell indicates a character that is not an elevation code.
	ErrInvalidCell = errors.New("heightmap: invalid elevation code")
	// ErrMissingMarker indicates the start or summit marker is absent.
	ErrMissingMarker = errors.New("heightmap: missing marker")
	// ErrDuplicateMarker indicates the start or summit marker occurs twice.
	ErrDuplicateMarker = errors.New("heightmap: duplicate marker")
	// ErrCellOutOfRange indicates a cell outside the grid bounds.
	ErrCellOutOfRange = errors.New("heightmap: cell out of range")
)

// Elevation codes and markers.
const (
	// StartMarker marks the single start cell; it has the lowest elevation.
	StartMarker = 'S'
	// EndMarker marks the summit; it has the highest elevation.
	EndMarker = 'E'

	// MinElevation is the height of 'a' and of the start marker.
	MinElevation = 1
	// MaxElevation is the height of 'z' and of the summit marker.
	MaxElevation = 26

	// MaxClimb is the largest upward step allowed between neighbours.
	MaxClimb = 1
)

// Cell addresses a grid square by 0-based row and column.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is an immutable elevation map.
// Width and Height define dimensions; codes[row][col] holds the raw input
// character and heights the decoded elevation, both row-major.
// neighborOffsets is precomputed for efficient adjacency lookups.
type Grid struct {
	Width, Height   int
	codes           [][]byte
	heights         []int
	start, end      Cell
	neighborOffsets [][2]int
}
