package textconv

import "unsafe"

// Unit is the set of code unit types a zero-terminated literal may hold.
type Unit interface {
	~uint8 | ~uint16 | ~int32 | ~uint32
}

// Len returns the number of units before the first zero unit at p.
// A nil pointer and a pointer to a zero unit both have length 0.
//
// p must point into memory that contains a zero unit; Len reads until it
// finds one.
func Len[U Unit](p *U) int {
	if p == nil {
		return 0
	}
	var zero U
	n := 0
	for ptr := unsafe.Pointer(p); *(*U)(ptr) != 0; n++ {
		ptr = unsafe.Add(ptr, unsafe.Sizeof(zero))
	}
	return n
}

// units returns the units before the terminator as a slice sharing p's
// memory.
func units[U Unit](p *U) []U {
	n := Len(p)
	if n == 0 {
		return nil
	}
	return unsafe.Slice(p, n)
}

// CString returns a zero-terminated copy of s. An embedded NUL ends the
// literal early when it is measured with [Len].
func CString(s string) *byte {
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return &buf[0]
}

// WCString returns a zero-terminated wide copy of s, converting each
// narrow unit through the bridge.
func WCString(s string) (*uint16, error) {
	buf := make([]uint16, 0, len(s)+1)
	buf, err := widen(buf, s)
	if err != nil {
		return nil, err
	}
	buf = append(buf, 0)
	return &buf[0], nil
}
