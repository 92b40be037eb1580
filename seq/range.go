package seq

import "iter"

// Integer is the set of integer types a range can be built from.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Range returns |n| integers starting at 0 and stepping toward n, which is
// excluded: [0 1 .. n-1] for n > 0, [0 -1 .. n+1] for n < 0, and an empty
// slice for n == 0.
func Range[T Integer](n T) []T {
	if n == 0 {
		return []T{}
	}
	return collect(RangeSeq(n), Len(0, n)-1)
}

// Between returns the integers from start to stop inclusive, stepping by +1
// when stop >= start and by -1 otherwise. The result always holds
// |stop-start|+1 elements and never steps past stop, even at the limits of T.
func Between[T Integer](start, stop T) []T {
	return collect(BetweenSeq(start, stop), Len(start, stop))
}

// RangeSeq is the lazy form of [Range].
func RangeSeq[T Integer](n T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n == 0 {
			return
		}
		// n is excluded, so the last element is one step short of it.
		last := n - 1
		if n < 0 {
			last = n + 1
		}
		for v := range BetweenSeq(0, last) {
			if !yield(v) {
				return
			}
		}
	}
}

// BetweenSeq is the lazy form of [Between].
func BetweenSeq[T Integer](start, stop T) iter.Seq[T] {
	return func(yield func(T) bool) {
		up := stop >= start
		for v := start; ; {
			if !yield(v) || v == stop {
				return
			}
			if up {
				v++
			} else {
				v--
			}
		}
	}
}

// Len returns the number of elements [Between] produces for start and stop.
// The count is exact for every T; it wraps to 0 only for the full 64-bit
// range, whose size 2^64 does not fit in a uint64.
func Len[T Integer](start, stop T) uint64 {
	// Sign extension keeps the 64-bit difference exact modulo 2^64.
	if stop >= start {
		return uint64(stop) - uint64(start) + 1
	}
	return uint64(start) - uint64(stop) + 1
}

func collect[T Integer](s iter.Seq[T], n uint64) []T {
	out := make([]T, 0, n)
	for v := range s {
		out = append(out, v)
	}
	return out
}
