package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/bfs"
)

// chain returns a NeighborFunc for the undirected path 0–1–…–(n-1).
func chain(n int) bfs.NeighborFunc {
	return func(id int) []int {
		var out []int
		if id > 0 {
			out = append(out, id-1)
		}
		if id+1 < n {
			out = append(out, id+1)
		}
		return out
	}
}

// adjacency turns an explicit adjacency list into a NeighborFunc.
func adjacency(adj map[int][]int) bfs.NeighborFunc {
	return func(id int) []int { return adj[id] }
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, chain(3)); !errors.Is(err, bfs.ErrNoSources) {
		t.Errorf("no sources: want ErrNoSources, got %v", err)
	}
	if _, err := bfs.BFS([]int{0}, nil); !errors.Is(err, bfs.ErrNeighborFuncNil) {
		t.Errorf("nil next: want ErrNeighborFuncNil, got %v", err)
	}
	if _, err := bfs.BFS([]int{0}, chain(3), bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	if _, err := bfs.Distance([]int{0}, chain(3), nil); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("nil target: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SingleSource covers a simple chain and checks depths and order.
func TestBFS_SingleSource(t *testing.T) {
	res, err := bfs.BFS([]int{0}, chain(4))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
	for id := 0; id < 4; id++ {
		assert.Equal(t, id, res.Depth[id], "Depth[%d]", id)
	}
	assert.Equal(t, 4, res.Levels)
	assert.False(t, res.Found)
}

// TestBFS_MultiSource seeds both ends of a chain; the middle is reached
// from the nearer source.
func TestBFS_MultiSource(t *testing.T) {
	res, err := bfs.BFS([]int{0, 6}, chain(7))
	require.NoError(t, err)

	wantDepth := map[int]int{0: 0, 1: 1, 2: 2, 3: 3, 4: 2, 5: 1, 6: 0}
	assert.Equal(t, wantDepth, res.Depth)
	// both sources are on level 0, so they come first in source order
	assert.Equal(t, []int{0, 6}, res.Order[:2])
	_, hasParent := res.Parent[6]
	assert.False(t, hasParent, "sources have no parent")
	assert.Equal(t, 4, res.Levels)
}

// TestBFS_DuplicateSources ensures a repeated source is visited once.
func TestBFS_DuplicateSources(t *testing.T) {
	res, err := bfs.BFS([]int{1, 1, 1}, chain(3))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 2}, res.Order)
}

// TestBFS_LevelBoundaries checks that every vertex of depth d is visited
// before any vertex of depth d+1, even when sources fan out unevenly.
func TestBFS_LevelBoundaries(t *testing.T) {
	adj := map[int][]int{
		0: {1, 2, 3},
		1: {4},
		2: {4, 5},
		3: {6},
		7: {5},
		5: {8},
	}
	res, err := bfs.BFS([]int{0, 7}, adjacency(adj))
	require.NoError(t, err)

	prev := 0
	for _, id := range res.Order {
		d := res.Depth[id]
		assert.GreaterOrEqual(t, d, prev, "vertex %d at depth %d visited after depth %d", id, d, prev)
		prev = d
	}
	assert.Equal(t, 1, res.Depth[5], "5 is one hop from source 7")
	assert.Equal(t, 2, res.Depth[8])
}

// TestDistance covers reachable, source-is-target and unreachable cases.
func TestDistance(t *testing.T) {
	d, err := bfs.Distance([]int{0}, chain(10), func(id int) bool { return id == 9 })
	require.NoError(t, err)
	assert.Equal(t, 9, d)

	d, err = bfs.Distance([]int{0, 8}, chain(10), func(id int) bool { return id == 9 })
	require.NoError(t, err)
	assert.Equal(t, 1, d, "nearest source wins")

	d, err = bfs.Distance([]int{4}, chain(10), func(id int) bool { return id == 4 })
	require.NoError(t, err)
	assert.Equal(t, 0, d)

	disconnected := adjacency(map[int][]int{0: {1}, 1: {0}, 2: {3}})
	_, err = bfs.Distance([]int{0}, disconnected, func(id int) bool { return id == 3 })
	assert.ErrorIs(t, err, bfs.ErrUnreachable)
}

// TestBFS_StopAt verifies the search ends at the first matching vertex.
func TestBFS_StopAt(t *testing.T) {
	res, err := bfs.BFS([]int{0}, chain(100), bfs.WithStopAt(func(id int) bool { return id == 3 }))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 3, res.Target)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
}

// TestBFS_MaxDepth verifies WithMaxDepth behavior for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	if res, _ := bfs.BFS([]int{0}, chain(3), bfs.WithMaxDepth(1)); !reflect.DeepEqual(res.Order, []int{0, 1}) {
		t.Errorf("MaxDepth=1: got %v; want [0 1]", res.Order)
	}
	if res, _ := bfs.BFS([]int{0}, chain(3), bfs.WithMaxDepth(0)); !reflect.DeepEqual(res.Order, []int{0, 1, 2}) {
		t.Errorf("MaxDepth=0: got %v; want [0 1 2]", res.Order)
	}
	if res, _ := bfs.BFS([]int{0}, chain(3), bfs.WithMaxDepth(10)); !reflect.DeepEqual(res.Order, []int{0, 1, 2}) {
		t.Errorf("MaxDepth=10: got %v; want [0 1 2]", res.Order)
	}
}

// TestBFS_FilterNeighbor shows how filtering prunes certain edges.
func TestBFS_FilterNeighbor(t *testing.T) {
	res, _ := bfs.BFS([]int{0}, chain(5),
		bfs.WithFilterNeighbor(func(curr, nbr int) bool {
			return !(curr == 1 && nbr == 2)
		}),
	)
	if want := []int{0, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("FilterNeighbor: got %v; want %v", res.Order, want)
	}
}

// TestBFS_Hooks asserts that hooks fire in the expected sequence and count.
func TestBFS_Hooks(t *testing.T) {
	var enq, deq, vis []string
	makeEntry := func(prefix string, id, d int) string {
		return prefix + ":" + strconv.Itoa(id) + "@" + strconv.Itoa(d)
	}

	_, err := bfs.BFS(
		[]int{0}, chain(3),
		bfs.WithOnEnqueue(func(id, d int) { enq = append(enq, makeEntry("e", id, d)) }),
		bfs.WithOnDequeue(func(id, d int) { deq = append(deq, makeEntry("d", id, d)) }),
		bfs.WithOnVisit(func(id, d int) error { vis = append(vis, makeEntry("v", id, d)); return nil }),
	)
	require.NoError(t, err)

	wantDepths := []string{"0@0", "1@1", "2@2"}
	require.Len(t, enq, 3)
	for i, suffix := range wantDepths {
		if !strings.HasSuffix(enq[i], suffix) {
			t.Errorf("OnEnqueue[%d] = %q, want suffix %q", i, enq[i], suffix)
		}
		if !strings.HasSuffix(deq[i], suffix) {
			t.Errorf("OnDequeue[%d] = %q, want suffix %q", i, deq[i], suffix)
		}
		if !strings.HasSuffix(vis[i], suffix) {
			t.Errorf("OnVisit[%d] = %q, want suffix %q", i, vis[i], suffix)
		}
	}
}

// TestBFS_OnVisitError ensures a hook error aborts and is wrapped.
func TestBFS_OnVisitError(t *testing.T) {
	boom := errors.New("boom")
	_, err := bfs.BFS([]int{0}, chain(5), bfs.WithOnVisit(func(id, _ int) error {
		if id == 2 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "at 2")
}

// TestBFS_PathTo covers both trivial (source→source) and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	res, err := bfs.BFS([]int{0, 9}, chain(10))
	require.NoError(t, err)

	path, err := res.PathTo(7)
	require.NoError(t, err)
	assert.Equal(t, []int{9, 8, 7}, path)

	path, err = res.PathTo(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path)

	_, err = res.PathTo(42)
	if err == nil || !strings.Contains(err.Error(), "no path") {
		t.Errorf("PathTo unreachable: expected error, got %v", err)
	}
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	if _, err := bfs.BFS([]int{0}, chain(100), bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}
