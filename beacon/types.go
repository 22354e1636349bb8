package beacon

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/advent/internal/mathx"
)

// Sentinel errors for sensor parsing and search.
var (
	// ErrMalformedSensor indicates a line that is not a sensor report.
	ErrMalformedSensor = errors.New("beacon: malformed sensor report")

	// ErrInvalidBound indicates a negative search bound.
	ErrInvalidBound = errors.New("beacon: search bound must be >= 0")

	// ErrNoGap indicates that every point of the search square is covered.
	ErrNoGap = errors.New("beacon: no uncovered point in search area")
)

// TuningMultiplier scales x in TuningFrequency.
const TuningMultiplier = 4_000_000

// Point is a lattice position.
type Point struct {
	X, Y int
}

// String renders the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Distance returns the Manhattan distance between p and q.
func (p Point) Distance(q Point) int {
	return mathx.Manhattan(p.X, p.Y, q.X, q.Y)
}

// Sensor is a sensor position and the closest beacon it detected.
// Radius is the Manhattan distance between the two.
type Sensor struct {
	Pos, Beacon Point
	Radius      int
}

// NewSensor builds a Sensor and computes its radius.
func NewSensor(pos, beacon Point) Sensor {
	return Sensor{Pos: pos, Beacon: beacon, Radius: pos.Distance(beacon)}
}

// Covers reports whether p is no farther from the sensor than its beacon.
func (s Sensor) Covers(p Point) bool {
	return s.Pos.Distance(p) <= s.Radius
}

// Span returns the closed interval the sensor covers on row, and false when
// the row misses its diamond.
func (s Sensor) Span(row int) (Interval, bool) {
	reach := s.Radius - mathx.Abs(s.Pos.Y-row)
	if reach < 0 {
		return Interval{}, false
	}
	return Interval{Lo: s.Pos.X - reach, Hi: s.Pos.X + reach}, true
}

// Interval is the closed integer range [Lo, Hi].
type Interval struct {
	Lo, Hi int
}

// Len returns the number of integers in the interval.
func (iv Interval) Len() int {
	return iv.Hi - iv.Lo + 1
}

// Contains reports whether x lies in the interval.
func (iv Interval) Contains(x int) bool {
	return iv.Lo <= x && x <= iv.Hi
}
