// Package beacon reasons about sensors that each report the nearest beacon
// by Manhattan distance.
//
// Every sensor rules out a diamond of cells: all points no farther from it
// than its beacon. Two questions are answered:
//
//   - Row coverage. On a fixed row each diamond is a closed interval; the
//     intervals are sorted and merged (overlapping or adjacent ones fuse)
//     and their widths summed. ExcludedCount also drops the known beacons
//     on that row, which are covered but obviously can hold a beacon.
//   - The gap. Exactly one point of the square [0, bound]² is outside every
//     diamond. Such a point hugs the outside of at least two diamonds, so it
//     lies where a y-x seam line crosses an x+y seam line. FindGap counts
//     the four offset boundary lines of every sensor, keeps those shared by
//     two or more sensors, intersects them pairwise and verifies candidates.
//     When no candidate verifies (a gap pinned against the search edge has
//     no seam) it falls back to a row-by-row coverage scan.
//
// Complexity:
//
//   - RowCoverage:  O(n log n) for n sensors.
//   - FindGap:      O(s² · n) for s seam constants, O(bound · n log n) for the
//     fallback scan.
package beacon
