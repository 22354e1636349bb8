package sandsim

import (
	"errors"
	"fmt"
)

// Sentinel errors for cave construction and simulation.
var (
	// ErrMalformedPoint indicates a waypoint that is not "x,y".
	ErrMalformedPoint = errors.New("sandsim: malformed point")

	// ErrDiagonalSegment indicates consecutive waypoints that share neither
	// an x nor a y coordinate.
	ErrDiagonalSegment = errors.New("sandsim: segment is not axis-aligned")

	// ErrNoRock indicates a cave built without any rock.
	ErrNoRock = errors.New("sandsim: cave has no rock")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("sandsim: invalid option supplied")

	// ErrNoTermination is returned by Run when the grain budget is used up
	// while the simulation is still running.
	ErrNoTermination = errors.New("sandsim: simulation did not terminate")
)

// DefaultSource is where grains enter the cave unless WithSource is given.
var DefaultSource = Point{X: 500, Y: 0}

// Point is a lattice coordinate; y grows downwards.
type Point struct {
	X, Y int
}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point {
	return Point{p.X + d.X, p.Y + d.Y}
}

// String renders the point as "x,y", the input notation.
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Tile classifies a cave cell.
type Tile uint8

const (
	// Air is an empty cell a grain may enter.
	Air Tile = iota
	// Rock is part of a ledge or the floor.
	Rock
	// Sand is a grain at rest.
	Sand
	// OutOfBounds lies outside the modeled cave; a grain reaching it escapes.
	OutOfBounds
)

// String returns the tile name.
func (t Tile) String() string {
	switch t {
	case Air:
		return "Air"
	case Rock:
		return "Rock"
	case Sand:
		return "Sand"
	case OutOfBounds:
		return "OutOfBounds"
	}
	return fmt.Sprintf("Tile(%d)", uint8(t))
}

// Status tells whether a simulation can still advance.
type Status uint8

const (
	Running Status = iota
	Terminated
)

// Reason records why a simulation terminated.
type Reason uint8

const (
	// NotTerminated is the zero Reason of a running simulation.
	NotTerminated Reason = iota
	// Escaped means a grain fell out of the modeled cave.
	Escaped
	// SourceBlocked means the source cell holds sand or rock.
	SourceBlocked
)

// String returns the reason name.
func (r Reason) String() string {
	switch r {
	case NotTerminated:
		return "NotTerminated"
	case Escaped:
		return "Escaped"
	case SourceBlocked:
		return "SourceBlocked"
	}
	return fmt.Sprintf("Reason(%d)", uint8(r))
}

// State is a snapshot of a Simulation.
// Grain is meaningful only while Falling is true.
type State struct {
	Status  Status
	Reason  Reason
	Grain   Point
	Falling bool
	Rested  int
}

// Option configures a Cave via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by NewCave.
type Option func(*Options)

// Options holds the tunables of a cave.
type Options struct {
	// Source is the cell grains spawn at.
	Source Point

	// FloorGap, if > 0, adds an unbounded rock floor FloorGap rows below
	// the lowest rock. Zero means the bounded variant.
	FloorGap int

	// MaxUnits, if > 0, caps the grains Run lets come to rest. Zero selects
	// the number of cells a grain could possibly rest in.
	MaxUnits int

	err error
}

// DefaultOptions returns the bounded variant with grains entering at
// DefaultSource and an automatic grain budget.
func DefaultOptions() Options {
	return Options{Source: DefaultSource}
}

// WithSource moves the spawn point.
func WithSource(p Point) Option {
	return func(o *Options) {
		o.Source = p
	}
}

// WithFloor enables the floor variant. gap must be positive.
func WithFloor(gap int) Option {
	return func(o *Options) {
		if gap <= 0 {
			o.err = fmt.Errorf("%w: floor gap must be > 0, got %d", ErrOptionViolation, gap)
			return
		}
		o.FloorGap = gap
	}
}

// WithMaxUnits caps the grains Run lets come to rest. n must be positive.
func WithMaxUnits(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: max units must be > 0, got %d", ErrOptionViolation, n)
			return
		}
		o.MaxUnits = n
	}
}
