package bfs_test

import (
	"testing"

	"github.com/katalvlaran/advent/bfs"
)

// BenchmarkBFS_Chain measures BFS on a linear chain of N vertices.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	next := chain(N)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS([]int{0}, next)
	}
}

// BenchmarkDistance_GridMultiSource runs a multi-source search on a
// 200×200 open grid from every cell of the first column to the far corner.
func BenchmarkDistance_GridMultiSource(b *testing.B) {
	const n = 200
	next := func(id int) []int {
		r, c := id/n, id%n
		out := make([]int, 0, 4)
		if c+1 < n {
			out = append(out, id+1)
		}
		if r+1 < n {
			out = append(out, id+n)
		}
		if c > 0 {
			out = append(out, id-1)
		}
		if r > 0 {
			out = append(out, id-n)
		}
		return out
	}
	sources := make([]int, 0, n)
	for r := 0; r < n; r++ {
		sources = append(sources, r*n)
	}
	goal := n*n - 1

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Distance(sources, next, func(id int) bool { return id == goal })
	}
}
