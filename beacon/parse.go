package beacon

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	sensorPrefix = "Sensor at "
	beaconSep    = ": closest beacon is at "
)

// ParseSensor reads one report of the form
//
//	Sensor at x=<int>, y=<int>: closest beacon is at x=<int>, y=<int>
//
// The whole line must match; trailing text and explicit '+' signs are
// rejected.
func ParseSensor(line string) (Sensor, error) {
	line = strings.TrimSpace(line)
	rest, ok := strings.CutPrefix(line, sensorPrefix)
	if !ok {
		return Sensor{}, fmt.Errorf("%w: %q", ErrMalformedSensor, line)
	}
	sensorText, beaconText, ok := strings.Cut(rest, beaconSep)
	if !ok {
		return Sensor{}, fmt.Errorf("%w: %q", ErrMalformedSensor, line)
	}
	pos, ok := parsePoint(sensorText)
	if !ok {
		return Sensor{}, fmt.Errorf("%w: sensor position in %q", ErrMalformedSensor, line)
	}
	b, ok := parsePoint(beaconText)
	if !ok {
		return Sensor{}, fmt.Errorf("%w: beacon position in %q", ErrMalformedSensor, line)
	}
	return NewSensor(pos, b), nil
}

// parsePoint reads "x=<int>, y=<int>".
func parsePoint(s string) (Point, bool) {
	xs, ys, ok := strings.Cut(s, ", ")
	if !ok {
		return Point{}, false
	}
	xs, okx := strings.CutPrefix(xs, "x=")
	ys, oky := strings.CutPrefix(ys, "y=")
	if !okx || !oky {
		return Point{}, false
	}
	x, okx := atoi(xs)
	y, oky := atoi(ys)
	return Point{x, y}, okx && oky
}

// atoi is strconv.Atoi without the leading '+' it tolerates.
func atoi(s string) (int, bool) {
	if strings.HasPrefix(s, "+") {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

// ParseSensors reads one report per non-blank line.
// Errors carry the 1-based line number.
func ParseSensors(text string) ([]Sensor, error) {
	var sensors []Sensor
	for i, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		s, err := ParseSensor(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		sensors = append(sensors, s)
	}
	return sensors, nil
}
