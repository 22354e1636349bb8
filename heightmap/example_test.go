// File: heightmap/example_test.go
package heightmap_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/advent/heightmap"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Climb
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Climb compares a single-source climb from the start marker
// with a multi-source climb from every lowest cell.
//
//	Sabqponm
//	abcryxxl
//	accszExk
//	acctuvwj
//	abdefghi
//
// Complexity: O(W·H·4), Memory: O(W·H)
func ExampleGrid_Climb() {
	gg, err := heightmap.Parse("Sabqponm\nabcryxxl\naccszExk\nacctuvwj\nabdefghi")
	if err != nil {
		fmt.Println("parse:", err)
		return
	}
	ctx := context.Background()

	fromStart, _ := gg.Climb(ctx, []heightmap.Cell{gg.Start()})
	lowest := gg.CellsAt(heightmap.MinElevation)
	fromLowest, _ := gg.Climb(ctx, lowest)

	fmt.Println("summit at", gg.End())
	fmt.Println("from start:", fromStart)
	fmt.Printf("from %d lowest cells: %d\n", len(lowest), fromLowest)
	// Output:
	// summit at (2,5)
	// from start: 31
	// from 6 lowest cells: 29
}

////////////////////////////////////////////////////////////////////////////////
// Example: Route
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Route reconstructs the only admissible route on a two-row
// snake: along the top row, down at the one column where the climb is a
// single unit, then back along the bottom row to the summit.
//
//	Sabcdefghijklm
//	Ezyxwvutsrqpon
func ExampleGrid_Route() {
	gg, _ := heightmap.Parse("Sabcdefghijklm\nEzyxwvutsrqpon")

	route, err := gg.Route(context.Background(), []heightmap.Cell{gg.Start()})
	if err != nil {
		fmt.Println("route:", err)
		return
	}
	fmt.Println("steps:", len(route)-1)
	fmt.Println("turn:", route[13], "->", route[14])
	fmt.Println("last:", route[len(route)-2], "->", route[len(route)-1])
	// Output:
	// steps: 27
	// turn: (0,13) -> (1,13)
	// last: (1,1) -> (1,0)
}
