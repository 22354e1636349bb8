package puzzle

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"time"

	"github.com/katalvlaran/advent/beacon"
	"github.com/katalvlaran/advent/heightmap"
	"github.com/katalvlaran/advent/internal/ctxlog"
	"github.com/katalvlaran/advent/packet"
	"github.com/katalvlaran/advent/sandsim"
)

// ErrUnknownPuzzle is returned for a day or task without a solver.
var ErrUnknownPuzzle = errors.New("puzzle: unknown puzzle")

// Params carries the inputs that are not part of the puzzle text.
type Params struct {
	// BeaconRow is the row ExcludedOnRow inspects (day 15, task 1).
	BeaconRow int
	// BeaconBound is the side of the search square (day 15, task 2).
	BeaconBound int
	// SandSource is where grains enter the cave (day 14).
	SandSource sandsim.Point
	// FloorGap is the distance from the lowest rock to the floor (day 14, task 2).
	FloorGap int
}

// DefaultParams returns the values used by the full-size puzzles.
func DefaultParams() Params {
	return Params{
		BeaconRow:   2_000_000,
		BeaconBound: 4_000_000,
		SandSource:  sandsim.DefaultSource,
		FloorGap:    2,
	}
}

// Key identifies one task of one day.
type Key struct {
	Day, Task int
}

// String renders the key as "day D task T".
func (k Key) String() string {
	return fmt.Sprintf("day %d task %d", k.Day, k.Task)
}

// Solver answers one task for the given input.
type Solver func(ctx context.Context, input string, p Params) (string, error)

var registry = map[Key]Solver{
	{12, 1}: func(ctx context.Context, input string, _ Params) (string, error) {
		return itoa(heightmap.ClimbFromStart(ctx, input))
	},
	{12, 2}: func(ctx context.Context, input string, _ Params) (string, error) {
		return itoa(heightmap.ClimbFromLowest(ctx, input))
	},
	{13, 1}: func(_ context.Context, input string, _ Params) (string, error) {
		return itoa(packet.CountOrdered(input))
	},
	{13, 2}: func(_ context.Context, input string, _ Params) (string, error) {
		return itoa(packet.Decode(input))
	},
	{14, 1}: func(_ context.Context, input string, p Params) (string, error) {
		return itoa(sandsim.CountUntilEscape(input, sandsim.WithSource(p.SandSource)))
	},
	{14, 2}: func(_ context.Context, input string, p Params) (string, error) {
		return itoa(sandsim.CountUntilBlocked(input, sandsim.WithSource(p.SandSource), sandsim.WithFloor(p.FloorGap)))
	},
	{15, 1}: func(_ context.Context, input string, p Params) (string, error) {
		return itoa(beacon.ExcludedOnRow(input, p.BeaconRow))
	},
	{15, 2}: func(_ context.Context, input string, p Params) (string, error) {
		_, freq, err := beacon.LocateDistressBeacon(input, p.BeaconBound)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(freq, 10), nil
	},
}

func itoa(n int, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}

// Keys returns every registered key ordered by day, then task.
func Keys() []Key {
	return slices.SortedFunc(maps.Keys(registry), func(a, b Key) int {
		if c := cmp.Compare(a.Day, b.Day); c != 0 {
			return c
		}
		return cmp.Compare(a.Task, b.Task)
	})
}

// ParseKey converts command-line day and task arguments into a registered
// Key. Returns ErrUnknownPuzzle for non-numeric or unregistered values.
func ParseKey(day, task string) (Key, error) {
	d, err := strconv.Atoi(day)
	if err != nil {
		return Key{}, fmt.Errorf("%w: day %q is not a number", ErrUnknownPuzzle, day)
	}
	t, err := strconv.Atoi(task)
	if err != nil {
		return Key{}, fmt.Errorf("%w: task %q is not a number", ErrUnknownPuzzle, task)
	}
	k := Key{Day: d, Task: t}
	if _, ok := registry[k]; !ok {
		return Key{}, fmt.Errorf("%w: %v", ErrUnknownPuzzle, k)
	}
	return k, nil
}

// Solve runs the solver registered for k on input.
// Solver errors are wrapped with the key.
func Solve(ctx context.Context, k Key, input string, p Params) (string, error) {
	solve, ok := registry[k]
	if !ok {
		return "", fmt.Errorf("%w: %v", ErrUnknownPuzzle, k)
	}

	logger := ctxlog.FromContext(ctx)
	start := time.Now()
	answer, err := solve(ctx, input, p)
	elapsed := time.Since(start)
	if err != nil {
		logger.Debug("Puzzle failed.", "day", k.Day, "task", k.Task, "elapsed", elapsed, "error", err)
		return "", fmt.Errorf("%v: %w", k, err)
	}
	logger.Debug("Puzzle solved.", "day", k.Day, "task", k.Task, "elapsed", elapsed, "answer", answer)

	return answer, nil
}
