package pipeline

import (
	"context"

	"github.com/neopipe/neopipe/result"
)

// Future is the handle of an asynchronous pipeline run started with Start.
// The run proceeds on its own goroutine; the caller may do other work and
// collect the outcome later. Abandoning a Future does not stop the run: the
// underlying work continues to completion.
type Future struct {
	done chan struct{}
	out  result.Value
}

// Start launches Run on its own goroutine and returns immediately.
func (p *Pipeline) Start(ctx context.Context, in result.Value) *Future {
	f := &Future{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.out = p.Run(ctx, in)
	}()
	return f
}

// Wait blocks until the run completes and returns its Result. Wait may be
// called any number of times and from multiple goroutines.
func (f *Future) Wait() result.Value {
	<-f.done
	return f.out
}

// Done returns a channel that is closed when the run completes.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// TraceFuture is the handle of an asynchronous traced run started with
// StartTrace.
type TraceFuture struct {
	done  chan struct{}
	out   result.Value
	trace result.Trace
}

// StartTrace launches RunTrace on its own goroutine and returns immediately.
func (p *Pipeline) StartTrace(ctx context.Context, in result.Value) *TraceFuture {
	f := &TraceFuture{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.out, f.trace = p.RunTrace(ctx, in)
	}()
	return f
}

// Wait blocks until the run completes and returns its Result and Trace.
func (f *TraceFuture) Wait() (result.Value, result.Trace) {
	<-f.done
	return f.out, f.trace
}

// Done returns a channel that is closed when the run completes.
func (f *TraceFuture) Done() <-chan struct{} {
	return f.done
}
