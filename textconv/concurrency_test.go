package textconv

import (
	"fmt"
	"testing"

	"github.com/sourcegraph/conc/iter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestConcurrentConversions(t *testing.T) {
	var g errgroup.Group
	for i := 0; i < 64; i++ {
		g.Go(func() error {
			s := fmt.Sprintf("worker-%d", i)
			w, err := ToWide(Str(s))
			if err != nil {
				return err
			}
			n, err := ToNarrow(WStr(w))
			if err != nil {
				return err
			}
			if n != s {
				return fmt.Errorf("round trip: got %q, want %q", n, s)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestConcurrentFormatted(t *testing.T) {
	inputs := make([]int, 256)
	for i := range inputs {
		inputs[i] = i * 3
	}

	got := iter.Map(inputs, func(v *int) string {
		return MustNarrow(Format(*v))
	})

	for i, s := range got {
		assert.Equal(t, fmt.Sprint(inputs[i]), s)
	}
}
