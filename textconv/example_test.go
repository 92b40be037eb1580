package textconv_test

import (
	"fmt"

	"github.com/baxromumarov/toolkit/codepoint"
	"github.com/baxromumarov/toolkit/textconv"
)

func ExampleToWide() {
	w, err := textconv.ToWide(textconv.Str("Go"))
	fmt.Println(w, err)
	// Output: [71 111] <nil>
}

func ExampleToNarrow() {
	s, err := textconv.ToNarrow(textconv.WStr{'o', 'k'})
	fmt.Println(s, err)
	// Output: ok <nil>
}

func ExampleToNarrow_path() {
	s, _ := textconv.ToNarrow(textconv.Path("/var/log"))
	fmt.Println(s)
	// Output: "/var/log"
}

func ExampleNarrow() {
	s, _ := textconv.Narrow(textconv.Format(3.25))
	fmt.Println(s)
	// Output: 3.25
}

func ExampleToNarrow_outOfDomain() {
	_, err := textconv.ToNarrow(textconv.WChar(0xE9))
	re, ok := codepoint.IsRangeError(err)
	fmt.Println(ok, re.Unit)
	// Output: true 233
}
