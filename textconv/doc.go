// Package textconv converts printable values to narrow text (Go strings of
// single-byte units) and to wide text (UTF-16 units, []uint16).
//
// The converter accepts a closed set of value shapes, each a small named
// type implementing [Convertible]:
//
//   - scalars: [Char] (narrow) and [WChar] (wide)
//   - zero-terminated literals: [CStr] and [WCStr], built with [Lit] and [WLit]
//   - views and owned strings: [Str], [Bytes], [WStr] and [Runes]
//   - paths: [Path], the only shape whose output is wrapped in double quotes
//   - renderable values: [Formatted], built with [Format] or [FormatWith]
//
// Every unit crosses alphabets through [codepoint.ToNarrow] and
// [codepoint.ToWide], so the supported domain is 7-bit ASCII. An
// out-of-domain unit fails the whole conversion with the bridge's
// [*codepoint.RangeError], returned unwrapped.
//
// # Static and Runtime Entry Points
//
// Go has no constant evaluation of function calls, so the dual
// compile-time/runtime contract is split in two:
//
//   - [ToNarrow] and [ToWide] accept only the [Static] shapes. They never
//     reach a formatting facility or reflection; passing a [Formatted]
//     value is a compile error, not a silent runtime fallback.
//   - [Narrow] and [Wide] accept any [Convertible], including renderable
//     values, and are runtime only.
//
// Results of the static path are deterministic functions of their inputs,
// which makes them safe in package-level variable initialisers:
//
//	var banner = textconv.MustWide(textconv.Str("ready"))
//
// Same-alphabet conversions (narrow to narrow, wide to wide) copy their
// input without consulting the bridge.
package textconv
