package toolkit

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/pool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// Concurrent executors share nothing: each keeps its own attempt count.
func TestRetryConcurrentCallsAreIndependent(t *testing.T) {
	var g errgroup.Group
	var total atomic.Int64

	for i := 1; i <= 32; i++ {
		g.Go(func() error {
			var calls int
			v, err := Retry(func() (int, error) {
				calls++
				total.Add(1)
				if calls < 3 {
					return 0, errors.New("transient")
				}
				return i, nil
			}, 3, time.Millisecond)
			if err != nil {
				return err
			}
			if v != i || calls != 3 {
				return errors.New("attempts leaked between goroutines")
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
	assert.Equal(t, int64(32*3), total.Load())
}

// A pause blocks only its own goroutine.
func TestRetryPauseDoesNotBlockOthers(t *testing.T) {
	var wg conc.WaitGroup
	fastDone := make(chan struct{})

	wg.Go(func() {
		_ = Do(func() error { return errors.New("slow") }, 2, 200*time.Millisecond)
	})
	wg.Go(func() {
		_ = Do(func() error { return nil }, 1, 0)
		close(fastDone)
	})

	select {
	case <-fastDone:
	case <-time.After(100 * time.Millisecond):
		t.Fatal("fast retry was blocked by another goroutine's pause")
	}
	wg.Wait()
}

func TestRetryResultsFromPool(t *testing.T) {
	p := pool.NewWithResults[int]().WithErrors().WithMaxGoroutines(4)
	for i := 0; i < 16; i++ {
		p.Go(func() (int, error) {
			return Retry(func() (int, error) { return i * i, nil }, 1, 0)
		})
	}

	got, err := p.Wait()
	require.NoError(t, err)
	assert.Len(t, got, 16)

	sum := 0
	for _, v := range got {
		sum += v
	}
	assert.Equal(t, 1240, sum)
}
