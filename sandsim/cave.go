package sandsim

import (
	"fmt"
	"maps"
	"strconv"
	"strings"
)

// Cave is a sparse lattice of rock and resting sand.
// Cells absent from tiles are Air; OutOfBounds is never stored.
type Cave struct {
	tiles  map[Point]Tile
	source Point

	// rock extent; minX and maxX also cover the source column
	minX, maxX   int
	minY, lowest int

	// sand extent, grown as grains come to rest
	sandMinX, sandMaxX int

	// floor is the y of the implicit rock floor, or 0 when hasFloor is false
	floor    int
	hasFloor bool

	maxUnits int
}

// ParsePaths reads one rock path per non-blank line, each a list of
// "x,y" waypoints joined by " -> ". Consecutive waypoints must be
// axis-aligned.
// Returns ErrMalformedPoint or ErrDiagonalSegment wrapped with the 1-based
// line number.
func ParsePaths(text string) ([][]Point, error) {
	var paths [][]Point
	for n, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var path []Point
		for _, field := range strings.Split(line, "->") {
			p, err := parsePoint(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", n+1, err)
			}
			if len(path) > 0 {
				if prev := path[len(path)-1]; prev.X != p.X && prev.Y != p.Y {
					return nil, fmt.Errorf("%w: line %d: %v -> %v", ErrDiagonalSegment, n+1, prev, p)
				}
			}
			path = append(path, p)
		}
		paths = append(paths, path)
	}

	return paths, nil
}

func parsePoint(s string) (Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Point{}, fmt.Errorf("%w: %q", ErrMalformedPoint, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q", ErrMalformedPoint, s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q", ErrMalformedPoint, s)
	}
	return Point{x, y}, nil
}

// NewCave materializes every rock path cell by cell.
// Returns ErrNoRock when paths hold no waypoint, ErrDiagonalSegment for a
// slanted segment, or ErrOptionViolation for a bad Option.
func NewCave(paths [][]Point, opts ...Option) (*Cave, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	c := &Cave{
		tiles:    make(map[Point]Tile),
		source:   o.Source,
		maxUnits: o.MaxUnits,
	}
	for _, path := range paths {
		for i, p := range path {
			if i == 0 {
				c.setRock(p)
				continue
			}
			if err := c.segment(path[i-1], p); err != nil {
				return nil, err
			}
		}
	}
	if len(c.tiles) == 0 {
		return nil, ErrNoRock
	}

	c.minX, c.maxX = min(c.minX, c.source.X), max(c.maxX, c.source.X)
	c.sandMinX, c.sandMaxX = c.source.X, c.source.X
	if o.FloorGap > 0 {
		c.floor, c.hasFloor = c.lowest+o.FloorGap, true
	}

	return c, nil
}

// segment marks every cell from a to b inclusive as rock.
func (c *Cave) segment(a, b Point) error {
	if a.X != b.X && a.Y != b.Y {
		return fmt.Errorf("%w: %v -> %v", ErrDiagonalSegment, a, b)
	}
	for x := min(a.X, b.X); x <= max(a.X, b.X); x++ {
		for y := min(a.Y, b.Y); y <= max(a.Y, b.Y); y++ {
			c.setRock(Point{x, y})
		}
	}
	return nil
}

func (c *Cave) setRock(p Point) {
	if len(c.tiles) == 0 {
		c.minX, c.maxX, c.minY, c.lowest = p.X, p.X, p.Y, p.Y
	}
	c.tiles[p] = Rock
	c.minX, c.maxX = min(c.minX, p.X), max(c.maxX, p.X)
	c.minY, c.lowest = min(c.minY, p.Y), max(c.lowest, p.Y)
}

// setSand marks p as resting sand. p must be Air.
func (c *Cave) setSand(p Point) {
	c.tiles[p] = Sand
	c.sandMinX, c.sandMaxX = min(c.sandMinX, p.X), max(c.sandMaxX, p.X)
}

// At classifies the cell at p.
// Without a floor, cells left of the leftmost rock, right of the rightmost
// rock or below the lowest rock are OutOfBounds. With a floor, every row at
// or below the floor is Rock and nothing is OutOfBounds.
func (c *Cave) At(p Point) Tile {
	if c.hasFloor {
		if p.Y >= c.floor {
			return Rock
		}
	} else if p.X < c.minX || p.X > c.maxX || p.Y > c.lowest {
		return OutOfBounds
	}
	if t, ok := c.tiles[p]; ok {
		return t
	}
	return Air
}

// Source returns the spawn point.
func (c *Cave) Source() Point { return c.source }

// Lowest returns the y of the lowest rock cell, excluding the floor.
func (c *Cave) Lowest() int { return c.lowest }

// Floor returns the y of the floor, and false for the bounded variant.
func (c *Cave) Floor() (int, bool) { return c.floor, c.hasFloor }

// Sand returns the number of resting grains.
func (c *Cave) Sand() int {
	n := 0
	for _, t := range c.tiles {
		if t == Sand {
			n++
		}
	}
	return n
}

// unitBudget is the number of cells a grain could come to rest in.
func (c *Cave) unitBudget() int {
	if c.maxUnits > 0 {
		return c.maxUnits
	}
	if c.hasFloor {
		// a pile under the source is a triangle of depth rows
		depth := c.floor - c.source.Y
		return max(depth*depth, 1)
	}
	return (c.maxX - c.minX + 1) * max(c.lowest-c.source.Y+1, 1)
}

// clone returns a deep copy so a Simulation never mutates its input.
func (c *Cave) clone() *Cave {
	cp := *c
	cp.tiles = maps.Clone(c.tiles)
	return &cp
}

// Render draws the cave with '#' for rock, 'o' for sand, '.' for air and
// '+' for an open source. Rows run from the topmost rock or source to the
// floor (or lowest rock); columns cover the rock, the source and all sand.
func (c *Cave) Render() string {
	left, right := min(c.minX, c.sandMinX), max(c.maxX, c.sandMaxX)
	top, bottom := min(c.minY, c.source.Y), c.lowest
	if c.hasFloor {
		bottom = c.floor
	}

	var sb strings.Builder
	for y := top; y <= bottom; y++ {
		if y > top {
			sb.WriteByte('\n')
		}
		for x := left; x <= right; x++ {
			p := Point{x, y}
			switch t := c.At(p); {
			case t == Rock:
				sb.WriteByte('#')
			case t == Sand:
				sb.WriteByte('o')
			case p == c.source:
				sb.WriteByte('+')
			default:
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
