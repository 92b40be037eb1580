package seq

import "iter"

// setThreshold is the largest len(a)*len(b) compared pairwise by
// [HaveCommonElement]; larger inputs go through a temporary set.
const setThreshold = 64

// Contains reports whether some element of s equals v. It stops at the
// first match and is false for an empty s.
func Contains[S ~[]T, T comparable](s S, v T) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}

// ContainsSeq reports whether s yields an element equal to v. Iteration
// stops at the first match.
func ContainsSeq[T comparable](s iter.Seq[T], v T) bool {
	for e := range s {
		if e == v {
			return true
		}
	}
	return false
}

// HaveCommonElement reports whether some element of a equals some element
// of b. It is false when either is empty.
//
// Small inputs are compared pairwise; larger ones index the shorter input
// in a temporary set. Both strategies give the same answer, including for
// NaN, which never equals anything.
func HaveCommonElement[S1 ~[]T, S2 ~[]T, T comparable](a S1, b S2) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	if len(a)*len(b) <= setThreshold {
		for _, x := range a {
			if Contains(b, x) {
				return true
			}
		}
		return false
	}

	small, large := []T(a), []T(b)
	if len(small) > len(large) {
		small, large = large, small
	}
	set := make(map[T]struct{}, len(small))
	for _, x := range small {
		set[x] = struct{}{}
	}
	for _, x := range large {
		if _, ok := set[x]; ok {
			return true
		}
	}
	return false
}

// HaveCommonElementSeq is [HaveCommonElement] for iterators. b is drained
// once into a set; a is consumed until the first common element.
func HaveCommonElementSeq[T comparable](a, b iter.Seq[T]) bool {
	set := make(map[T]struct{})
	for x := range b {
		set[x] = struct{}{}
	}
	if len(set) == 0 {
		return false
	}
	for x := range a {
		if _, ok := set[x]; ok {
			return true
		}
	}
	return false
}
