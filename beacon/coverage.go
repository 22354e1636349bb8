package beacon

import (
	"cmp"
	"slices"
)

// Merge sorts intervals by start and fuses overlapping or adjacent ones.
// The input slice is left untouched.
func Merge(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}
	sorted := slices.Clone(intervals)
	slices.SortFunc(sorted, func(a, b Interval) int {
		if c := cmp.Compare(a.Lo, b.Lo); c != 0 {
			return c
		}
		return cmp.Compare(a.Hi, b.Hi)
	})

	merged := []Interval{sorted[0]}
	for _, iv := range sorted[1:] {
		cur := &merged[len(merged)-1]
		if iv.Lo <= cur.Hi+1 {
			cur.Hi = max(cur.Hi, iv.Hi)
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// RowCoverage returns the disjoint, sorted intervals of row covered by at
// least one sensor.
func RowCoverage(sensors []Sensor, row int) []Interval {
	spans := make([]Interval, 0, len(sensors))
	for _, s := range sensors {
		if iv, ok := s.Span(row); ok {
			spans = append(spans, iv)
		}
	}
	return Merge(spans)
}

// CoveredCount returns how many cells of row lie inside some sensor's
// diamond.
func CoveredCount(sensors []Sensor, row int) int {
	total := 0
	for _, iv := range RowCoverage(sensors, row) {
		total += iv.Len()
	}
	return total
}

// ExcludedCount returns how many cells of row cannot hold a beacon:
// the covered cells minus the distinct known beacons on that row.
func ExcludedCount(sensors []Sensor, row int) int {
	seen := make(map[Point]struct{})
	for _, s := range sensors {
		if s.Beacon.Y == row {
			seen[s.Beacon] = struct{}{}
		}
	}
	return CoveredCount(sensors, row) - len(seen)
}

// ExcludedOnRow parses input and returns ExcludedCount for row.
func ExcludedOnRow(input string, row int) (int, error) {
	sensors, err := ParseSensors(input)
	if err != nil {
		return 0, err
	}
	return ExcludedCount(sensors, row), nil
}
