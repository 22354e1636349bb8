package sandsim

import "fmt"

// moves lists the fall directions in priority order.
var moves = [3]Point{{0, 1}, {-1, 1}, {1, 1}}

// Simulation drops grains one at a time into its own copy of a cave.
type Simulation struct {
	cave  *Cave
	state State
	limit int
}

// NewSimulation returns a running simulation over a copy of c.
func NewSimulation(c *Cave) *Simulation {
	cp := c.clone()
	return &Simulation{
		cave:  cp,
		limit: cp.unitBudget(),
	}
}

// State returns the current snapshot.
func (s *Simulation) State() State { return s.state }

// Cave returns the simulation's cave, including the sand at rest so far.
func (s *Simulation) Cave() *Cave { return s.cave }

// Step advances the simulation by exactly one transition:
//
//   - no grain falling: spawn one at the source, or terminate with
//     SourceBlocked (source occupied) or Escaped (source outside the cave);
//   - grain falling: move it to the first Air cell among down, down-left,
//     down-right; terminate with Escaped if an OutOfBounds cell comes first;
//     otherwise it rests, and resting on the source terminates with
//     SourceBlocked.
//
// Step on a terminated simulation returns the state unchanged.
func (s *Simulation) Step() State {
	if s.state.Status == Terminated {
		return s.state
	}
	if !s.state.Falling {
		s.spawn()
		return s.state
	}

	g := s.state.Grain
	for _, d := range moves {
		next := g.Add(d)
		switch s.cave.At(next) {
		case Air:
			s.state.Grain = next
			return s.state
		case OutOfBounds:
			s.terminate(Escaped)
			return s.state
		}
	}

	s.cave.setSand(g)
	s.state.Rested++
	s.state.Falling = false
	if g == s.cave.source {
		s.terminate(SourceBlocked)
	}
	return s.state
}

func (s *Simulation) spawn() {
	switch s.cave.At(s.cave.source) {
	case Air:
		s.state.Grain, s.state.Falling = s.cave.source, true
	case OutOfBounds:
		s.terminate(Escaped)
	default:
		s.terminate(SourceBlocked)
	}
}

func (s *Simulation) terminate(r Reason) {
	s.state.Status, s.state.Reason, s.state.Falling = Terminated, r, false
}

// Drop runs one grain from spawn (or its current position) until it rests
// or the simulation terminates.
func (s *Simulation) Drop() State {
	st := s.Step()
	for st.Status == Running && st.Falling {
		st = s.Step()
	}
	return st
}

// Run drops grains until the simulation terminates and returns the number
// of grains at rest. It returns ErrNoTermination if the grain budget is
// exhausted first.
func (s *Simulation) Run() (int, error) {
	for s.state.Status == Running {
		if s.state.Rested >= s.limit && !s.state.Falling {
			return s.state.Rested, fmt.Errorf("%w: %d grains at rest", ErrNoTermination, s.state.Rested)
		}
		s.Drop()
	}
	return s.state.Rested, nil
}

// CountUntilEscape parses input and counts the grains that come to rest
// before the first one falls out of the bounded cave.
func CountUntilEscape(input string, opts ...Option) (int, error) {
	return simulate(input, opts)
}

// CountUntilBlocked parses input, adds a floor two rows below the lowest
// rock, and counts the grains that come to rest until the source is buried.
// A WithFloor option in opts overrides the gap.
func CountUntilBlocked(input string, opts ...Option) (int, error) {
	return simulate(input, append([]Option{WithFloor(2)}, opts...))
}

func simulate(input string, opts []Option) (int, error) {
	paths, err := ParsePaths(input)
	if err != nil {
		return 0, err
	}
	c, err := NewCave(paths, opts...)
	if err != nil {
		return 0, err
	}
	return NewSimulation(c).Run()
}
