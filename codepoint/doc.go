// Package codepoint converts single code units between the wide alphabet
// (UTF-16 units or UTF-32 runes) and the narrow alphabet (bytes).
//
// Every string-level conversion in [github.com/baxromumarov/toolkit/textconv]
// is built from [ToNarrow] and [ToWide].
//
// # Domain
//
// Only the 7-bit range shared by both alphabets, 0x00 through [Domain],
// converts. A unit outside that range is rejected with a [*RangeError];
// units are never truncated or replaced:
//
//	b, err := codepoint.ToNarrow(uint16('A')) // 'A', nil
//	_, err = codepoint.ToNarrow(uint16(0xE9)) // err matches ErrEncodingRange
//	w, err := codepoint.ToWide[uint16]('z')   // 'z', nil
//
// # Constant Evaluation
//
// Go cannot evaluate function calls in constant expressions. The functions
// here are pure, allocation-free and inlinable, so package-level variables
// built from them (see [MustToNarrow] and [MustToWide]) are computed once
// during package initialisation and never touch a formatting facility.
package codepoint
