package task

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"time"
)

// Backoff is the delay curve applied between faulted attempts: exponential in
// the attempt number, capped at Max. With Jitter left at zero the curve is
// non-decreasing; a positive Jitter randomizes each delay by up to that
// fraction in either direction.
type Backoff struct {
	// Initial is the delay after the first fault.
	Initial time.Duration
	// Max caps every delay.
	Max time.Duration
	// Factor is the per-attempt multiplier (default 2).
	Factor float64
	// Jitter randomizes delays by +/- this fraction (0 to 1, default 0).
	Jitter float64
}

// DefaultBackoff returns the default curve: 100ms initial, doubling, capped
// at 5s, no jitter.
func DefaultBackoff() Backoff {
	return Backoff{
		Initial: 100 * time.Millisecond,
		Max:     5 * time.Second,
		Factor:  2.0,
	}
}

// Delay returns the wait before re-attempting after the given faulted attempt
// (1-based).
func (b Backoff) Delay(attempt int) time.Duration {
	initial := b.Initial
	if initial <= 0 {
		initial = 100 * time.Millisecond
	}
	max := b.Max
	if max <= 0 {
		max = 5 * time.Second
	}
	factor := b.Factor
	if factor <= 0 {
		factor = 2.0
	}
	if attempt < 1 {
		attempt = 1
	}

	d := float64(initial) * math.Pow(factor, float64(attempt-1))
	if b.Jitter > 0 {
		span := d * b.Jitter
		d += (rand.Float64()*2 - 1) * span
	}
	if d > float64(max) {
		d = float64(max)
	}
	if d < 0 {
		d = float64(initial)
	}
	return time.Duration(d)
}

// sleep waits for d or until ctx ends, whichever comes first.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// PanicError wraps a panic recovered at the task boundary, together with the
// goroutine stack captured at the point of recovery. It is a fault like any
// other: counted against the retry bound, never re-raised.
type PanicError struct {
	// Value is the original value passed to panic().
	Value any
	// Stack is the goroutine stack trace.
	Stack string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

func newPanicError(v any) *PanicError {
	// runtime.Stack truncates gracefully if the buffer is too small.
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	return &PanicError{Value: v, Stack: string(buf[:n])}
}
