package toolkit

import (
	"errors"
	"fmt"
	"runtime"
)

// PanicError wraps a value recovered from a panicking operation together
// with the goroutine stack trace captured at the point of the panic.
//
// Retry hooks always see a panicking attempt as a *PanicError. The final
// attempt's panic is re-raised with its original value unless
// [WithPanicAsError] is set.
type PanicError struct {
	// Value is the original value passed to panic().
	Value any

	// Stack is the goroutine stack trace at the point of panic.
	Stack string
}

// Error returns a human-readable representation of the panic,
// including the value and the full stack trace.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v\n\n%s", e.Value, e.Stack)
}

// Unwrap returns the panic value if it is an error, so errors.Is sees
// through panic(err).
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

func newPanicError(v any) *PanicError {
	// runtime.Stack truncates if the buffer is too small.
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	return &PanicError{
		Value: v,
		Stack: string(buf[:n]),
	}
}

// IsPanicError reports whether err (or any error in its chain) is a
// [*PanicError].
func IsPanicError(err error) bool {
	if err == nil {
		return false
	}
	var pe *PanicError
	return errors.As(err, &pe)
}

// PanicValue extracts the recovered value from the first [*PanicError] in
// err's chain. Returns false if there is none.
func PanicValue(err error) (any, bool) {
	if err == nil {
		return nil, false
	}

	var pe *PanicError
	if errors.As(err, &pe) {
		return pe.Value, true
	}
	return nil, false
}
