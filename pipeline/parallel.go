package pipeline

import (
	"context"
	"fmt"
	"sync"

	"github.com/neopipe/neopipe/result"
)

// Unit is anything the parallel executor can drive: both *Pipeline and
// *task.Task satisfy it.
type Unit interface {
	Name() string
	Run(ctx context.Context, in result.Value) result.Value
	RunTrace(ctx context.Context, in result.Value) (result.Value, result.Trace)
}

// ShapeMismatchError reports a units/inputs length mismatch at batch entry.
// It is returned before any unit runs.
type ShapeMismatchError struct {
	Units  int
	Inputs int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("shape mismatch: %d unit(s) but %d input(s)", e.Units, e.Inputs)
}

// ParallelOption configures a RunParallel call.
type ParallelOption func(*parallelOptions)

type parallelOptions struct {
	maxWorkers int
}

// WithMaxWorkers bounds how many units run concurrently (0 = one goroutine
// per unit).
func WithMaxWorkers(n int) ParallelOption {
	return func(o *parallelOptions) { o.maxWorkers = n }
}

// RunParallel runs each (unit, input) pair as an independent concurrent run
// and aggregates the outcomes:
//
//   - len(units) != len(inputs) fails fast with Err(*ShapeMismatchError)
//     before any unit runs;
//   - the result list preserves submission order regardless of completion
//     order;
//   - if any run yields Err the whole batch is that Err (all-or-nothing);
//     sibling runs already in flight complete and are discarded. When several
//     runs fail, the Err of the earliest failing unit in submission order is
//     surfaced.
//
// Runs share no mutable state; the executor joins every run before
// returning. There is no cancellation propagation beyond the caller's ctx
// being passed to each unit.
func RunParallel(ctx context.Context, units []Unit, inputs []result.Value, opts ...ParallelOption) result.Result[[]result.PipelineResult, error] {
	if len(units) != len(inputs) {
		return result.Err[[]result.PipelineResult](&ShapeMismatchError{Units: len(units), Inputs: len(inputs)})
	}
	outs := runAll(ctx, units, inputs, false, options(opts))
	return collect(units, outs)
}

// RunParallelTrace is RunParallel plus a BatchTrace holding one per-unit
// trace in submission order. Traces cover the steps that actually executed,
// so a failing run's partial progress stays observable even though the batch
// result is Err.
func RunParallelTrace(ctx context.Context, units []Unit, inputs []result.Value, opts ...ParallelOption) (result.Result[[]result.PipelineResult, error], result.BatchTrace) {
	if len(units) != len(inputs) {
		return result.Err[[]result.PipelineResult](&ShapeMismatchError{Units: len(units), Inputs: len(inputs)}), result.BatchTrace{}
	}
	outs := runAll(ctx, units, inputs, true, options(opts))
	batch := result.BatchTrace{Pipelines: make([]result.PipelineTrace, len(units))}
	for i, o := range outs {
		batch.Pipelines[i] = result.PipelineTrace{Name: units[i].Name(), Steps: o.trace}
	}
	return collect(units, outs), batch
}

func options(opts []ParallelOption) parallelOptions {
	var o parallelOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type runOutcome struct {
	out   result.Value
	trace result.Trace
}

// runAll drives one goroutine per unit (optionally bounded by a semaphore)
// and joins them all.
func runAll(ctx context.Context, units []Unit, inputs []result.Value, withTrace bool, o parallelOptions) []runOutcome {
	outs := make([]runOutcome, len(units))

	var sem chan struct{}
	if o.maxWorkers > 0 && o.maxWorkers < len(units) {
		sem = make(chan struct{}, o.maxWorkers)
	}

	var wg sync.WaitGroup
	for i := range units {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if sem != nil {
				sem <- struct{}{}
				defer func() { <-sem }()
			}
			if withTrace {
				out, trace := units[i].RunTrace(ctx, inputs[i])
				outs[i] = runOutcome{out: out, trace: trace}
			} else {
				outs[i] = runOutcome{out: units[i].Run(ctx, inputs[i])}
			}
		}(i)
	}
	wg.Wait()
	return outs
}

func collect(units []Unit, outs []runOutcome) result.Result[[]result.PipelineResult, error] {
	results := make([]result.PipelineResult, len(units))
	for i, o := range outs {
		if failure, isErr := o.out.Err(); isErr {
			return result.Err[[]result.PipelineResult](failure)
		}
		results[i] = result.PipelineResult{Name: units[i].Name(), Value: o.out.Unwrap()}
	}
	return result.Ok(results)
}

// RunEach runs every registered task concurrently against its positionally
// matching input (task i gets inputs[i]); tasks are independent here, not
// chained. The Ok payload is the ordered list of unwrapped outputs; any
// task-level Err fails the whole call with that Err. A length mismatch fails
// fast with Err(*ShapeMismatchError) before any task runs.
func (p *Pipeline) RunEach(ctx context.Context, inputs []result.Value) result.Result[[]any, error] {
	if len(inputs) != len(p.tasks) {
		return result.Err[[]any](&ShapeMismatchError{Units: len(p.tasks), Inputs: len(inputs)})
	}

	outs := make([]result.Value, len(p.tasks))
	var wg sync.WaitGroup
	for i := range p.tasks {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outs[i] = p.tasks[i].Invoke(ctx, inputs[i])
		}(i)
	}
	wg.Wait()

	values := make([]any, len(outs))
	for i, out := range outs {
		if failure, isErr := out.Err(); isErr {
			return result.Err[[]any](failure)
		}
		values[i] = out.Unwrap()
	}
	return result.Ok(values)
}
