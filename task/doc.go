// Package task wraps units of work with uniform retry, backoff and failure
// semantics. A Task owns exactly one body (a Work function or a Runner
// object) and an attempt bound; Invoke feeds a result.Value through the body,
// retrying faults (returned errors and recovered panics) with exponential
// backoff and converting exhaustion into an Err carrying *TaskError. A
// returned Err Result is a deliberate business failure and is never retried;
// an Err input is propagated without invoking the body at all.
//
// Bodies are written against the erased result.Value pipe; the generic
// helpers (Transform, Validate, MapSlice, ...) recover static typing at the
// task boundary:
//
//	double := task.FromFunc(
//	    task.Transform(func(ctx context.Context, n int) (int, error) { return n * 2, nil }),
//	    task.WithName("double"), task.WithRetries(2))
//	out := double.Invoke(ctx, result.Ok[any](21)) // Ok(42)
package task
