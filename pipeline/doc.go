// Package pipeline composes retry-wrapped tasks into ordered runs that
// propagate a Result instead of raising failures. A Pipeline feeds an input
// Result through its tasks in order (each task's output is the next task's
// input) and short-circuits on the first Err; RunTrace additionally records
// every executed step. Building is explicit — FromTasks or incremental
// Append* calls on a caller-held value; there is no process-wide pipeline
// registry.
//
//	p := pipeline.New("ingest").
//	    AppendFunc(task.Source(loadUsers), task.WithRetries(3)).
//	    AppendFunc(task.FilterSlice(isActive))
//	out := p.Run(ctx, result.Ok[any](nil))
//
// RunParallel drives independent (unit, input) pairs concurrently — units are
// pipelines or bare tasks — and aggregates an all-or-nothing batch Result
// whose order matches submission order. Start/StartTrace return future
// handles for callers that do not want to block on a single run.
//
// Optional observers receive before/after hooks per run and per task;
// LogObserver adapts them to zerolog. Tracing itself is built on the same
// hooks.
package pipeline
