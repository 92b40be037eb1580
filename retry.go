package toolkit

import (
	"context"
	"time"
)

// Retry calls op until it succeeds or maxAttempts attempts have failed,
// pausing delay between attempts. A success returns at once without
// pausing. After the final failure Retry returns op's last error unchanged:
// no wrapping, so errors.Is and == comparisons against it hold.
//
// A panic in op counts as a failed attempt. If the final attempt panicked,
// the original panic value is re-raised, or returned as a [*PanicError]
// when [WithPanicAsError] is set.
//
// A delay of zero retries immediately without calling the pause function.
// Retry cannot be cancelled; use [RetryContext] for that.
//
// Retry panics if op is nil, maxAttempts < 1 or delay < 0.
//
//	body, err := toolkit.Retry(func() ([]byte, error) {
//	    return fetch(url)
//	}, 3, 200*time.Millisecond)
func Retry[T any](op func() (T, error), maxAttempts int, delay time.Duration, opts ...Option) (T, error) {
	if op == nil {
		panic("toolkit: Retry requires non-nil op")
	}
	validate("Retry", maxAttempts, delay)

	cfg := newConfig(opts)
	var zero T

	for attempt := 1; ; attempt++ {
		v, pe, err := call(op)
		if pe == nil && err == nil {
			return v, nil
		}
		if attempt == maxAttempts {
			return zero, cfg.final(pe, err)
		}
		cfg.retrying(attempt, maxAttempts, delay, pe, err)
		if delay > 0 {
			cfg.pause(delay)
		}
	}
}

// Do is [Retry] for operations that return only an error.
func Do(op func() error, maxAttempts int, delay time.Duration, opts ...Option) error {
	if op == nil {
		panic("toolkit: Do requires non-nil op")
	}
	_, err := Retry(func() (struct{}, error) {
		return struct{}{}, op()
	}, maxAttempts, delay, opts...)
	return err
}

// RetryContext is [Retry] with cancellation. op receives ctx. No attempt
// starts once ctx is done, and a pause is cut short by cancellation; in
// both cases RetryContext returns ctx.Err(). The pause is a timer, so
// [WithPause] does not apply.
//
// RetryContext panics if op is nil, maxAttempts < 1 or delay < 0.
func RetryContext[T any](
	ctx context.Context,
	op func(ctx context.Context) (T, error),
	maxAttempts int,
	delay time.Duration,
	opts ...Option,
) (T, error) {
	if op == nil {
		panic("toolkit: RetryContext requires non-nil op")
	}
	validate("RetryContext", maxAttempts, delay)

	cfg := newConfig(opts)
	var zero T

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		v, pe, err := call(func() (T, error) { return op(ctx) })
		if pe == nil && err == nil {
			return v, nil
		}
		if attempt == maxAttempts {
			return zero, cfg.final(pe, err)
		}
		cfg.retrying(attempt, maxAttempts, delay, pe, err)
		if delay > 0 {
			if err := sleepContext(ctx, delay); err != nil {
				return zero, err
			}
		}
	}
}

func validate(fn string, maxAttempts int, delay time.Duration) {
	if maxAttempts < 1 {
		panic("toolkit: " + fn + " requires maxAttempts >= 1")
	}
	if delay < 0 {
		panic("toolkit: " + fn + " requires delay >= 0")
	}
}

// call runs op, converting a panic into a *PanicError.
func call[T any](op func() (T, error)) (v T, pe *PanicError, err error) {
	defer func() {
		if r := recover(); r != nil {
			pe = newPanicError(r)
		}
	}()
	v, err = op()
	return v, nil, err
}

// final turns the last failure into Retry's result, re-raising panics
// unless they are configured as errors.
func (c *config) final(pe *PanicError, err error) error {
	if pe == nil {
		return err
	}
	if c.panicAsErr {
		return pe
	}
	panic(pe.Value)
}

func (c *config) retrying(attempt, maxAttempts int, delay time.Duration, pe *PanicError, err error) {
	if c.onRetry == nil {
		return
	}
	if pe != nil {
		err = pe
	}
	c.onRetry(AttemptInfo{
		Attempt:     attempt,
		MaxAttempts: maxAttempts,
		Err:         err,
		Delay:       delay,
	})
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
