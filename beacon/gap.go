package beacon

import (
	"fmt"
	"maps"
	"slices"
)

// TuningFrequency encodes p as x*4_000_000 + y in 64-bit arithmetic.
func TuningFrequency(p Point) int64 {
	return int64(p.X)*TuningMultiplier + int64(p.Y)
}

// FindGap returns the point of [0, bound]² that no sensor covers.
// Returns ErrInvalidBound for a negative bound and ErrNoGap when the square
// is fully covered.
func FindGap(sensors []Sensor, bound int) (Point, error) {
	if bound < 0 {
		return Point{}, fmt.Errorf("%w: got %d", ErrInvalidBound, bound)
	}
	if p, ok := seamGap(sensors, bound); ok {
		return p, nil
	}
	if p, ok := scanGap(sensors, bound); ok {
		return p, nil
	}
	return Point{}, fmt.Errorf("%w: bound %d, %d sensors", ErrNoGap, bound, len(sensors))
}

// seamGap intersects the diagonal lines shared by two or more diamond
// boundaries, each pushed one cell outwards.
func seamGap(sensors []Sensor, bound int) (Point, bool) {
	rising := make(map[int]int)  // y - x = c
	falling := make(map[int]int) // x + y = c
	for _, s := range sensors {
		d := s.Radius + 1
		rising[s.Pos.Y-s.Pos.X+d]++
		rising[s.Pos.Y-s.Pos.X-d]++
		falling[s.Pos.X+s.Pos.Y+d]++
		falling[s.Pos.X+s.Pos.Y-d]++
	}

	for _, a := range seams(rising) {
		for _, b := range seams(falling) {
			if (a+b)&1 != 0 {
				continue // the lines cross between lattice points
			}
			p := Point{X: (b - a) / 2, Y: (a + b) / 2}
			if inSquare(p, bound) && uncovered(sensors, p) {
				return p, true
			}
		}
	}
	return Point{}, false
}

// seams returns, in ascending order, the constants counted at least twice.
func seams(counts map[int]int) []int {
	out := slices.Sorted(maps.Keys(counts))
	return slices.DeleteFunc(out, func(c int) bool { return counts[c] < 2 })
}

// scanGap walks the rows of the square and returns the first cell outside
// every merged interval.
func scanGap(sensors []Sensor, bound int) (Point, bool) {
	for y := 0; y <= bound; y++ {
		x := 0
		for _, iv := range RowCoverage(sensors, y) {
			if iv.Hi < x {
				continue
			}
			if iv.Lo > x {
				break
			}
			x = iv.Hi + 1
		}
		if x <= bound {
			return Point{X: x, Y: y}, true
		}
	}
	return Point{}, false
}

func inSquare(p Point, bound int) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= bound && p.Y <= bound
}

func uncovered(sensors []Sensor, p Point) bool {
	for _, s := range sensors {
		if s.Covers(p) {
			return false
		}
	}
	return true
}

// LocateDistressBeacon parses input, finds the gap in [0, bound]² and
// returns it with its tuning frequency.
func LocateDistressBeacon(input string, bound int) (Point, int64, error) {
	sensors, err := ParseSensors(input)
	if err != nil {
		return Point{}, 0, err
	}
	p, err := FindGap(sensors, bound)
	if err != nil {
		return Point{}, 0, err
	}
	return p, TuningFrequency(p), nil
}
