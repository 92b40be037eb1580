// Package toolkit provides a generic retry executor and is the root of a
// small set of generic utility packages.
//
// # Retrying Operations
//
// [Retry] invokes a zero-argument fallible operation, pausing a fixed delay
// between failed attempts, up to a bound:
//
//	v, err := toolkit.Retry(func() (int, error) {
//	    return readCounter()
//	}, 3, 100*time.Millisecond)
//
// A success returns immediately. After the last failed attempt the
// operation's own error is returned unchanged, so callers compare it with
// errors.Is or == exactly as if they had called the operation directly.
// [Do] covers operations that return only an error.
//
// Panics count as failures. The final attempt's panic is re-raised with
// its original value, or returned as a [*PanicError] with
// [WithPanicAsError]. Use [IsPanicError] and [PanicValue] to inspect it.
//
// # Options
//
//   - [WithPause]: replace the function that blocks between attempts
//     (default [time.Sleep]).
//   - [WithOnRetry]: observe each failed attempt that will be retried via
//     [AttemptInfo]. The executor itself never logs.
//   - [WithPanicAsError]: return final panics as errors.
//
// # Cancellation
//
// [Retry] and [Do] run to completion: success or attempt exhaustion.
// [RetryContext] additionally stops when its context is done, including
// in the middle of a pause.
//
// # Concurrency
//
// The executor keeps its attempt counter on the caller's stack. Concurrent
// calls share nothing and need no synchronisation; a pause blocks only the
// calling goroutine.
//
// # Subpackages
//
//   - [github.com/baxromumarov/toolkit/codepoint]: single code unit
//     conversion between the wide and narrow alphabets.
//   - [github.com/baxromumarov/toolkit/textconv]: narrow and wide conversion
//     of characters, literals, strings, paths and renderable values.
//   - [github.com/baxromumarov/toolkit/seq]: containment and intersection
//     predicates over slices and iterators, and integer ranges.
//   - [github.com/baxromumarov/toolkit/charset]: lossless transcoding of
//     wide text to and from named charsets beyond the 7-bit domain.
package toolkit
