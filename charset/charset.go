// Package charset transcodes wide (UTF-16) text to and from named narrow
// charsets such as ISO-8859-1, Windows-1252 and UTF-8.
//
// The codepoint bridge stops at 7-bit ASCII. This package covers text
// beyond that domain by routing it through [golang.org/x/text] encoders,
// so callers can fall back to it when a conversion fails with
// codepoint.ErrEncodingRange:
//
//	cs, _ := charset.Lookup("latin1")
//	b, err := cs.Encode(wide) // é becomes 0xE9
package charset

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUnknownCharset is returned by [Lookup] for names it cannot resolve.
var ErrUnknownCharset = errors.New("charset: unknown charset")

// ErrOddLength is returned by [DecodeUTF16LE] for input with a trailing
// half unit.
var ErrOddLength = errors.New("charset: odd number of bytes in UTF-16 input")

// utf16le converts between UTF-8 and the little-endian byte form of wide
// text. Wide text carries no byte order mark.
var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// Charset is a named narrow encoding.
type Charset struct {
	name string
	enc  encoding.Encoding
}

// Predefined charsets.
var (
	Latin1      = &Charset{name: "ISO-8859-1", enc: charmap.ISO8859_1}
	Windows1252 = &Charset{name: "windows-1252", enc: charmap.Windows1252}
	UTF8        = &Charset{name: "UTF-8", enc: unicode.UTF8}
)

// Lookup resolves an IANA charset name or alias, case-insensitively. The
// returned charset is named by its preferred MIME name.
func Lookup(name string) (*Charset, error) {
	enc, err := ianaindex.IANA.Encoding(strings.TrimSpace(name))
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, name)
	}

	canonical, err := ianaindex.MIME.Name(enc)
	if err != nil {
		canonical = name
	}
	return &Charset{name: canonical, enc: enc}, nil
}

// Name returns the charset's canonical name.
func (c *Charset) Name() string {
	return c.name
}

// Encode converts wide text to bytes in the charset. Text the charset
// cannot represent is an error, never a substitution. Unpaired surrogates
// decode as U+FFFD first.
func (c *Charset) Encode(wide []uint16) ([]byte, error) {
	t := transform.Chain(utf16le.NewDecoder(), c.enc.NewEncoder())
	out, _, err := transform.Bytes(t, EncodeUTF16LE(wide))
	if err != nil {
		return nil, fmt.Errorf("charset: encode %s: %w", c.name, err)
	}
	return out, nil
}

// Decode converts bytes in the charset to wide text.
func (c *Charset) Decode(narrow []byte) ([]uint16, error) {
	t := transform.Chain(c.enc.NewDecoder(), utf16le.NewEncoder())
	le, _, err := transform.Bytes(t, narrow)
	if err != nil {
		return nil, fmt.Errorf("charset: decode %s: %w", c.name, err)
	}
	return DecodeUTF16LE(le)
}

// EncodeUTF16LE returns the little-endian byte form of wide text, as
// written to files and wire formats that carry UTF-16.
func EncodeUTF16LE(wide []uint16) []byte {
	out := make([]byte, 0, 2*len(wide))
	for _, u := range wide {
		out = binary.LittleEndian.AppendUint16(out, u)
	}
	return out
}

// DecodeUTF16LE is the inverse of [EncodeUTF16LE].
func DecodeUTF16LE(b []byte) ([]uint16, error) {
	if len(b)%2 != 0 {
		return nil, ErrOddLength
	}
	out := make([]uint16, len(b)/2)
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
	return out, nil
}
