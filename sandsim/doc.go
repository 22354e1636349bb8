// Package sandsim simulates grains of sand falling into a cave of rock
// ledges.
//
// The cave is a sparse lattice: only Rock and Sand cells are stored, Air is
// the absence of an entry, and OutOfBounds is derived by Cave.At from the
// extent of the rock. Two variants are supported:
//
//   - bounded (default): a grain that would leave the rock's column range or
//     sink below the lowest rock falls into the abyss and the run ends;
//   - floor (WithFloor): an unbounded rock row lies gap rows below the lowest
//     rock, nothing is OutOfBounds, and the run ends once the source itself
//     is buried.
//
// A Simulation is an explicit state machine. Step advances one grain by one
// move, Drop runs one grain to rest, Run runs to termination:
//
//	sim := sandsim.NewSimulation(cave)
//	rested, err := sim.Run()
//
// Grains try down, then down-left, then down-right, and take the first Air
// cell. A grain with no Air below comes to rest and its cell becomes Sand;
// Sand and Rock cells never change afterwards.
package sandsim
