package mathx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbs(t *testing.T) {
	assert.Equal(t, 3, Abs(-3))
	assert.Equal(t, 3, Abs(3))
	assert.Equal(t, 0, Abs(0))
	assert.Equal(t, int8(127), Abs(int8(-127)))
	assert.Equal(t, int64(math.MinInt64), Abs(int64(math.MinInt64)))
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 9, Manhattan(8, 7, 2, 10))
	assert.Equal(t, 0, Manhattan(4, 4, 4, 4))
	assert.Equal(t, int64(6_000_000), Manhattan[int64](-2_000_000, 2_000_000, 2_000_000, 0))
	assert.Equal(t, int64(8_000_000), Manhattan[int64](-2_000_000, 2_000_000, 2_000_000, -2_000_000))
	assert.Equal(t, int64(8_000_000), Manhattan[int64](0, 0, 4_000_000, 4_000_000))
	assert.Equal(t, Manhattan(1, 2, 3, 4), Manhattan(3, 4, 1, 2))
}
