package toolkit

import "time"

// AttemptInfo describes a failed attempt that is about to be retried.
// It is passed to the hook registered via [WithOnRetry].
type AttemptInfo struct {
	// Attempt is the 1-based number of the attempt that failed.
	Attempt int

	// MaxAttempts is the bound passed to the executor.
	MaxAttempts int

	// Err is the attempt's error, or a [*PanicError] if it panicked.
	Err error

	// Delay is the pause before the next attempt.
	Delay time.Duration
}

type config struct {
	pause      func(time.Duration)
	onRetry    func(AttemptInfo)
	panicAsErr bool
}

// Option configures [Retry], [Do] and [RetryContext].
type Option func(*config)

func defaultConfig() config {
	return config{
		pause: time.Sleep,
	}
}

func newConfig(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithPause replaces the function that blocks between attempts. The default
// is [time.Sleep]. fn must block the calling goroutine for at least d.
// It panics if fn is nil.
func WithPause(fn func(d time.Duration)) Option {
	if fn == nil {
		panic("toolkit: WithPause requires non-nil func")
	}
	return func(c *config) {
		c.pause = fn
	}
}

// WithOnRetry registers a hook invoked after each failed attempt that will
// be retried, before the pause. It is not called for the final failure.
// The hook runs on the caller's goroutine.
func WithOnRetry(fn func(AttemptInfo)) Option {
	return func(c *config) {
		c.onRetry = fn
	}
}

// WithPanicAsError returns a final-attempt panic as a [*PanicError]
// instead of re-raising the original panic value.
func WithPanicAsError() Option {
	return func(c *config) {
		c.panicAsErr = true
	}
}
