package textconv

import "fmt"

// ToNarrow converts a static shape to narrow text.
//
//	s, err := textconv.ToNarrow(textconv.WStr{'h', 'i'}) // "hi", nil
func ToNarrow[V Static](v V) (string, error) {
	return toNarrow(v)
}

// ToWide converts a static shape to wide text. The result is never nil,
// even for empty input.
func ToWide[V Static](v V) ([]uint16, error) {
	return toWide(v)
}

// Narrow converts any [Convertible], including renderable values, to
// narrow text. It is the runtime counterpart of [ToNarrow].
//
//	s, _ := textconv.Narrow(textconv.Format(42)) // "42"
func Narrow[V Convertible](v V) (string, error) {
	return toNarrow(v)
}

// Wide converts any [Convertible] to wide text.
func Wide[V Convertible](v V) ([]uint16, error) {
	return toWide(v)
}

// MustNarrow is like [Narrow] but panics on error.
func MustNarrow[V Convertible](v V) string {
	s, err := toNarrow(v)
	if err != nil {
		panic(err)
	}
	return s
}

// MustWide is like [Wide] but panics on error.
func MustWide[V Convertible](v V) []uint16 {
	w, err := toWide(v)
	if err != nil {
		panic(err)
	}
	return w
}

func toNarrow[V Convertible](v V) (string, error) {
	b, err := v.AppendNarrow(nil)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func toWide[V Convertible](v V) ([]uint16, error) {
	w, err := v.AppendWide([]uint16{})
	if err != nil {
		return nil, err
	}
	return w, nil
}

// Formatter renders an arbitrary value to narrow text.
type Formatter func(v any) string

// DefaultFormatter renders v with [fmt.Sprint].
func DefaultFormatter(v any) string {
	return fmt.Sprint(v)
}

// Formatted is a renderable value: a number, a [fmt.Stringer], or anything
// else its [Formatter] can print. It is converted only by the runtime entry
// points [Narrow] and [Wide].
type Formatted[T any] struct {
	v T
	f Formatter
}

// Format wraps v for rendering with [DefaultFormatter].
func Format[T any](v T) Formatted[T] {
	return Formatted[T]{v: v}
}

// FormatWith wraps v for rendering with f. A nil f means [DefaultFormatter].
func FormatWith[T any](v T, f Formatter) Formatted[T] {
	return Formatted[T]{v: v, f: f}
}

// String returns the narrow rendering of the value.
func (f Formatted[T]) String() string {
	if f.f == nil {
		return DefaultFormatter(f.v)
	}
	return f.f(f.v)
}

func (f Formatted[T]) AppendNarrow(dst []byte) ([]byte, error) {
	return append(dst, f.String()...), nil
}

// AppendWide renders the value to narrow text first, then widens it unit by
// unit like a literal.
func (f Formatted[T]) AppendWide(dst []uint16) ([]uint16, error) {
	return widen(dst, f.String())
}
