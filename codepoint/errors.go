package codepoint

import (
	"errors"
	"fmt"
)

// ErrEncodingRange is matched by every [*RangeError] through [errors.Is].
var ErrEncodingRange = errors.New("codepoint: unit outside the convertible domain")

// Direction names the conversion that rejected a unit.
type Direction int

const (
	// WideToNarrow is the direction of [ToNarrow].
	WideToNarrow Direction = iota

	// NarrowToWide is the direction of [ToWide].
	NarrowToWide
)

func (d Direction) String() string {
	switch d {
	case WideToNarrow:
		return "wide to narrow"
	case NarrowToWide:
		return "narrow to wide"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// RangeError reports a code unit outside the 7-bit domain shared by the
// wide and narrow alphabets. Converters return it exactly as the bridge
// built it.
type RangeError struct {
	// Unit is the rejected unit value, sign-preserved.
	Unit int64

	// Dir is the conversion that was attempted.
	Dir Direction
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("codepoint: unit %#x outside 0x00-%#x (%s)", e.Unit, Domain, e.Dir)
}

// Is reports whether target is [ErrEncodingRange].
func (e *RangeError) Is(target error) bool {
	return target == ErrEncodingRange
}

// IsRangeError extracts the first [*RangeError] from err's chain.
// Returns false if err is nil or carries no RangeError.
func IsRangeError(err error) (*RangeError, bool) {
	if err == nil {
		return nil, false
	}

	var re *RangeError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
