package textconv

import (
	"path/filepath"
	"slices"
	"unicode/utf16"

	"github.com/baxromumarov/toolkit/codepoint"
)

// Quote surrounds the converted form of a [Path].
const Quote = '"'

// Convertible is implemented by every value shape the converter accepts.
// Both methods append the converted units to dst and return the extended
// slice; on error the returned slice must not be used.
type Convertible interface {
	AppendNarrow(dst []byte) ([]byte, error)
	AppendWide(dst []uint16) ([]uint16, error)
}

// Static is the set of shapes converted without a formatting facility:
// scalars, literals, views, owned strings and paths.
type Static interface {
	Char | WChar | CStr | WCStr | Str | Bytes | WStr | Runes | Path
	Convertible
}

// Char is a single narrow unit.
type Char byte

func (c Char) AppendNarrow(dst []byte) ([]byte, error) {
	return append(dst, byte(c)), nil
}

func (c Char) AppendWide(dst []uint16) ([]uint16, error) {
	w, err := codepoint.ToWide[uint16](byte(c))
	if err != nil {
		return nil, err
	}
	return append(dst, w), nil
}

// WChar is a single wide (UTF-16) unit.
type WChar uint16

func (c WChar) AppendNarrow(dst []byte) ([]byte, error) {
	b, err := codepoint.ToNarrow(uint16(c))
	if err != nil {
		return nil, err
	}
	return append(dst, b), nil
}

func (c WChar) AppendWide(dst []uint16) ([]uint16, error) {
	return append(dst, uint16(c)), nil
}

// CStr is a zero-terminated narrow literal. The terminator is not part of
// the converted text.
type CStr struct {
	p *byte
}

// Lit wraps a zero-terminated narrow literal. A nil p is the empty literal.
func Lit(p *byte) CStr { return CStr{p: p} }

func (c CStr) AppendNarrow(dst []byte) ([]byte, error) {
	return append(dst, units(c.p)...), nil
}

func (c CStr) AppendWide(dst []uint16) ([]uint16, error) {
	return widen(dst, units(c.p))
}

// WCStr is a zero-terminated wide literal.
type WCStr struct {
	p *uint16
}

// WLit wraps a zero-terminated wide literal. A nil p is the empty literal.
func WLit(p *uint16) WCStr { return WCStr{p: p} }

func (c WCStr) AppendNarrow(dst []byte) ([]byte, error) {
	return narrow(dst, units(c.p))
}

func (c WCStr) AppendWide(dst []uint16) ([]uint16, error) {
	return append(dst, units(c.p)...), nil
}

// Str is narrow text held in a string, whether it views another string or
// owns its storage.
type Str string

func (s Str) AppendNarrow(dst []byte) ([]byte, error) {
	return append(dst, s...), nil
}

func (s Str) AppendWide(dst []uint16) ([]uint16, error) {
	return widen(dst, s)
}

// Bytes is narrow text held in a byte slice.
type Bytes []byte

func (b Bytes) AppendNarrow(dst []byte) ([]byte, error) {
	return append(dst, b...), nil
}

func (b Bytes) AppendWide(dst []uint16) ([]uint16, error) {
	return widen(dst, b)
}

// WStr is wide text held in a slice of UTF-16 units.
type WStr []uint16

func (w WStr) AppendNarrow(dst []byte) ([]byte, error) {
	return narrow(dst, w)
}

func (w WStr) AppendWide(dst []uint16) ([]uint16, error) {
	return append(dst, w...), nil
}

// Runes is wide text held as UTF-32 units.
type Runes []rune

func (r Runes) AppendNarrow(dst []byte) ([]byte, error) {
	return narrow(dst, r)
}

// AppendWide re-encodes the runes as UTF-16. Both sides are wide, so no
// unit is range checked; invalid runes become U+FFFD.
func (r Runes) AppendWide(dst []uint16) ([]uint16, error) {
	dst = slices.Grow(dst, len(r))
	for _, u := range r {
		dst = utf16.AppendRune(dst, u)
	}
	return dst, nil
}

// Path is a filesystem path. Its converted form is quoted:
// Path(`C:\tmp`) becomes "C:\tmp" including both quote characters.
type Path string

// PathOf joins elem with [filepath.Join].
func PathOf(elem ...string) Path {
	return Path(filepath.Join(elem...))
}

func (p Path) AppendNarrow(dst []byte) ([]byte, error) {
	dst = slices.Grow(dst, len(p)+2)
	dst = append(dst, Quote)
	dst = append(dst, p...)
	return append(dst, Quote), nil
}

func (p Path) AppendWide(dst []uint16) ([]uint16, error) {
	dst = slices.Grow(dst, len(p)+2)
	dst = append(dst, Quote)
	dst, err := widen(dst, p)
	if err != nil {
		return nil, err
	}
	return append(dst, Quote), nil
}

// widen maps the bridge over narrow units.
func widen[S ~string | ~[]byte](dst []uint16, s S) ([]uint16, error) {
	dst = slices.Grow(dst, len(s))
	for i := 0; i < len(s); i++ {
		w, err := codepoint.ToWide[uint16](s[i])
		if err != nil {
			return nil, err
		}
		dst = append(dst, w)
	}
	return dst, nil
}

// narrow maps the bridge over wide units.
func narrow[W codepoint.Wide](dst []byte, s []W) ([]byte, error) {
	dst = slices.Grow(dst, len(s))
	for _, u := range s {
		b, err := codepoint.ToNarrow(u)
		if err != nil {
			return nil, err
		}
		dst = append(dst, b)
	}
	return dst, nil
}
