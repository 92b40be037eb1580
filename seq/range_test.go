package seq

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRange(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3, 4}, Range(5))
	assert.Equal(t, []int{0, -1, -2}, Range(-3))
	assert.Equal(t, []int{0}, Range(1))
	assert.Equal(t, []int{0}, Range(-1))
	assert.Equal(t, []uint8{0, 1, 2}, Range(uint8(3)))

	empty := Range(0)
	require.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestBetween(t *testing.T) {
	assert.Equal(t, []int{2, 3, 4, 5}, Between(2, 5))
	assert.Equal(t, []int{5, 4, 3, 2}, Between(5, 2))
	assert.Equal(t, []int{-5, -4, -3, -2}, Between(-5, -2))
	assert.Equal(t, []int{-2, -1, 0, 1}, Between(-2, 1))
	assert.Equal(t, []int{7}, Between(7, 7))
	assert.Equal(t, []uint{3, 2, 1, 0}, Between(uint(3), 0))
}

func TestBetweenLength(t *testing.T) {
	for start := -6; start <= 6; start++ {
		for stop := -6; stop <= 6; stop++ {
			got := Between(start, stop)
			want := stop - start
			if want < 0 {
				want = -want
			}
			assert.Len(t, got, want+1, "Between(%d, %d)", start, stop)
			assert.Equal(t, uint64(want+1), Len(start, stop))
			assert.Equal(t, start, got[0])
			assert.Equal(t, stop, got[len(got)-1])
		}
	}
}

func TestBetweenTypeLimits(t *testing.T) {
	full := Between[int8](math.MinInt8, math.MaxInt8)
	assert.Len(t, full, 256)
	assert.Equal(t, int8(math.MaxInt8), full[255])
	assert.Equal(t, uint64(256), Len[int8](math.MinInt8, math.MaxInt8))

	down := Between[uint8](math.MaxUint8, 0)
	assert.Len(t, down, 256)
	assert.Equal(t, uint8(0), down[255])

	top := Between[int64](math.MaxInt64-2, math.MaxInt64)
	assert.Equal(t, []int64{math.MaxInt64 - 2, math.MaxInt64 - 1, math.MaxInt64}, top)

	bottom := Between[int64](math.MinInt64+1, math.MinInt64)
	assert.Equal(t, []int64{math.MinInt64 + 1, math.MinInt64}, bottom)

	assert.Equal(t, []int8{0, -1}, Range[int8](-2))
	assert.Len(t, Range[int8](math.MinInt8), 128)
}

func TestRangeSeqMatchesRange(t *testing.T) {
	for n := -10; n <= 10; n++ {
		assert.Equal(t, Range(n), collectAll(RangeSeq(n)), "n=%d", n)
	}
}

func TestBetweenSeqEarlyStop(t *testing.T) {
	var got []int
	for v := range BetweenSeq(10, 0) {
		if v == 7 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{10, 9, 8}, got)
}

func TestRangeFeedsPredicates(t *testing.T) {
	assert.True(t, ContainsSeq(BetweenSeq(1, 1000), 999))
	assert.False(t, ContainsSeq(RangeSeq(-5), 1))
	assert.True(t, HaveCommonElementSeq(RangeSeq(10), BetweenSeq(9, 20)))
}

func collectAll[T Integer](s func(func(T) bool)) []T {
	out := []T{}
	for v := range s {
		out = append(out, v)
	}
	return out
}

func TestCollectAllHelper(t *testing.T) {
	assert.True(t, slices.Equal([]int{0, 1}, collectAll(RangeSeq(2))))
}
