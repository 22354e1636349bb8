package puzzle

import (
	"embed"
	"fmt"
)

//go:embed samples/*.txt
var sampleFS embed.FS

// Sample is a day's worked example with the answers of both tasks.
type Sample struct {
	Input  string
	Params Params
	Want   [2]string
}

var sampleAnswers = map[int][2]string{
	12: {"31", "29"},
	13: {"13", "140"},
	14: {"24", "93"},
	15: {"26", "56000011"},
}

// SampleFor returns the embedded example of day. The example of day 15 is
// scaled down: it inspects row 10 and searches the square [0, 20]².
func SampleFor(day int) (Sample, error) {
	want, ok := sampleAnswers[day]
	if !ok {
		return Sample{}, fmt.Errorf("%w: no sample for day %d", ErrUnknownPuzzle, day)
	}
	raw, err := sampleFS.ReadFile(fmt.Sprintf("samples/%02d.txt", day))
	if err != nil {
		return Sample{}, fmt.Errorf("puzzle: sample for day %d: %w", day, err)
	}

	p := DefaultParams()
	if day == 15 {
		p.BeaconRow, p.BeaconBound = 10, 20
	}
	return Sample{Input: string(raw), Params: p, Want: want}, nil
}
