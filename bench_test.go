package toolkit_test

import (
	"errors"
	"testing"

	"github.com/baxromumarov/toolkit"
)

// BenchmarkRetryFirstSuccess measures executor overhead when the
// operation succeeds immediately, compared to a direct call.
func BenchmarkRetryFirstSuccess(b *testing.B) {
	op := func() (int, error) { return 1, nil }

	b.Run("direct", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = op()
		}
	})

	b.Run("retry", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = toolkit.Retry(op, 3, 0)
		}
	})
}

// BenchmarkRetryExhaustion measures a full run of failing attempts with
// no pause.
func BenchmarkRetryExhaustion(b *testing.B) {
	errFail := errors.New("fail")
	op := func() (int, error) { return 0, errFail }

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = toolkit.Retry(op, 5, 0)
	}
}
