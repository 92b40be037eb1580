package codepoint

// Wide is the set of wide code unit types: UTF-16 units and UTF-32 runes.
type Wide interface {
	~uint16 | ~int32 | ~uint32
}

// Narrow is the set of narrow code unit types.
type Narrow interface {
	~uint8 | ~int8
}

// Domain is the largest unit value both alphabets represent with the same
// single unit.
const Domain = 0x7F

// WideInDomain reports whether w converts to a narrow unit.
// Negative runes are out of domain.
func WideInDomain[W Wide](w W) bool {
	// Signed values sign-extend, so negatives land far above Domain.
	return uint64(w) <= Domain
}

// NarrowInDomain reports whether n converts to a wide unit.
func NarrowInDomain[N Narrow](n N) bool {
	return uint64(n) <= Domain
}

// ToNarrow converts one wide code unit to its narrow unit.
// It returns a [*RangeError] when w lies outside the 7-bit domain.
func ToNarrow[W Wide](w W) (byte, error) {
	if !WideInDomain(w) {
		return 0, &RangeError{Unit: int64(w), Dir: WideToNarrow}
	}
	return byte(w), nil
}

// ToWide converts one narrow code unit to the wide unit type W.
// It returns a [*RangeError] when b lies outside the 7-bit domain.
//
//	u, err := codepoint.ToWide[uint16]('a')
func ToWide[W Wide](b byte) (W, error) {
	if !NarrowInDomain(b) {
		return 0, &RangeError{Unit: int64(b), Dir: NarrowToWide}
	}
	return W(b), nil
}

// MustToNarrow is like [ToNarrow] but panics with the [*RangeError].
// Use it where an out-of-domain unit is a programming error, such as
// package-level tables.
func MustToNarrow[W Wide](w W) byte {
	b, err := ToNarrow(w)
	if err != nil {
		panic(err)
	}
	return b
}

// MustToWide is like [ToWide] but panics with the [*RangeError].
func MustToWide[W Wide](b byte) W {
	w, err := ToWide[W](b)
	if err != nil {
		panic(err)
	}
	return w
}
