package task

import (
	"context"
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/neopipe/neopipe/result"
)

// Work is a function-based task body. It receives the previous step's Result
// (always Ok when called through Task.Invoke; Err inputs are propagated
// without reaching the body) and returns the next Result. A non-nil error is
// a fault: the attempt failed and the task may retry it. A returned Err
// Result is a deliberate business failure and is never retried.
type Work func(ctx context.Context, in result.Value) (result.Value, error)

// Runner is the object form of a task body, for task logic that carries its
// own state or dependencies. Execute follows the same fault/Err contract as
// Work.
type Runner interface {
	Execute(ctx context.Context, in result.Value) (result.Value, error)
}

// Task wraps one unit of work with retry, backoff, identity and logging. A
// Task is stateless between invocations; the same instance may be invoked
// from concurrent pipeline runs as long as the wrapped work is reentrant.
type Task struct {
	id      uuid.UUID
	name    string
	retries int
	backoff Backoff
	logger  zerolog.Logger
	work    Work
}

// Option configures a Task at construction time.
type Option func(*Task)

// WithName overrides the derived task name.
func WithName(name string) Option {
	return func(t *Task) { t.name = name }
}

// WithRetries sets the attempt bound r >= 1. Values below 1 are clamped to 1.
func WithRetries(r int) Option {
	return func(t *Task) {
		if r < 1 {
			r = 1
		}
		t.retries = r
	}
}

// WithBackoff sets the delay curve applied between faulted attempts.
func WithBackoff(b Backoff) Option {
	return func(t *Task) { t.backoff = b }
}

// WithLogger sets the logger for attempt/outcome events. The default is a
// no-op logger.
func WithLogger(l zerolog.Logger) Option {
	return func(t *Task) { t.logger = l }
}

// FromFunc builds a Task around a function body. The task name is derived
// from the function's symbol name unless WithName is given.
func FromFunc(work Work, opts ...Option) *Task {
	t := newTask(opts...)
	t.work = work
	if t.name == "" {
		t.name = funcName(work)
	}
	if t.name == "" {
		t.name = "task-" + shortID(t.id)
	}
	return t
}

// FromRunner builds a Task around a Runner. The task name is derived from the
// runner's type name unless WithName is given.
func FromRunner(r Runner, opts ...Option) *Task {
	t := newTask(opts...)
	t.work = r.Execute
	if t.name == "" {
		t.name = runnerName(r)
	}
	if t.name == "" {
		t.name = "task-" + shortID(t.id)
	}
	return t
}

func newTask(opts ...Option) *Task {
	t := &Task{
		id:      uuid.New(),
		retries: 1,
		backoff: DefaultBackoff(),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ID returns the task's generated unique id.
func (t *Task) ID() uuid.UUID { return t.id }

// Name returns the task's human-readable name.
func (t *Task) Name() string { return t.name }

// Retries returns the attempt bound.
func (t *Task) Retries() int { return t.retries }

// TaskError is the terminal failure returned (inside an Err Result) after
// every attempt faulted. It is a value, never a raised fault.
type TaskError struct {
	Task     string
	ID       uuid.UUID
	Attempts int
	Cause    error
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("task %s failed after %d attempt(s): %v", e.Task, e.Attempts, e.Cause)
}

func (e *TaskError) Unwrap() error { return e.Cause }

// Invoke runs the wrapped work with retry semantics:
//
//   - an Err input is returned unchanged without invoking the work (retries
//     apply to faults raised while executing, not to already-failed inputs);
//   - a fault (returned error or recovered panic) fails the attempt; after
//     the backoff delay the work is attempted again, up to the retry bound;
//   - a returned Err Result is a business failure and is returned as-is;
//   - after exhausting attempts, an Err wrapping *TaskError is returned.
//
// Faults never escape Invoke.
func (t *Task) Invoke(ctx context.Context, in result.Value) result.Value {
	if in.IsErr() {
		return in
	}

	log := t.logger.With().Str("task", t.name).Str("task_id", t.id.String()).Logger()

	var last error
	attempts := 0
	for attempt := 1; attempt <= t.retries; attempt++ {
		attempts = attempt
		log.Debug().Int("attempt", attempt).Msg("task attempt")

		out, err := t.attempt(ctx, in)
		if err == nil {
			if failure, isErr := out.Err(); isErr {
				log.Warn().Int("attempt", attempt).AnErr("failure", failure).Msg("task returned Err")
			} else {
				log.Debug().Int("attempt", attempt).Msg("task succeeded")
			}
			return out
		}

		last = err
		log.Error().Int("attempt", attempt).Err(err).Msg("task fault")

		if attempt == t.retries {
			break
		}
		if waitErr := sleep(ctx, t.backoff.Delay(attempt)); waitErr != nil {
			// Context ended during backoff; stop retrying.
			last = fmt.Errorf("%w (after fault: %v)", waitErr, last)
			break
		}
	}

	return result.Err[any](&TaskError{Task: t.name, ID: t.id, Attempts: attempts, Cause: last})
}

// Run is Invoke under the name the pipeline package's Unit interface expects,
// so a bare Task can be submitted to the parallel executor.
func (t *Task) Run(ctx context.Context, in result.Value) result.Value {
	return t.Invoke(ctx, in)
}

// RunTrace invokes the task and returns the two-step trace of the run: the
// input recorded under the task's name, then the invocation's output.
func (t *Task) RunTrace(ctx context.Context, in result.Value) (result.Value, result.Trace) {
	trace := result.Trace{{Name: t.name, Result: in}}
	out := t.Invoke(ctx, in)
	trace = append(trace, result.Step{Name: t.name, Result: out})
	return out, trace
}

// attempt runs the body once, converting a panic into a fault.
func (t *Task) attempt(ctx context.Context, in result.Value) (out result.Value, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = newPanicError(rec)
		}
	}()
	return t.work(ctx, in)
}

func (t *Task) String() string {
	return fmt.Sprintf("%s (ID=%s)", t.name, t.id)
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}

// funcName derives a task name from the function's symbol, e.g.
// "github.com/acme/app/ingest.loadUsers" becomes "loadUsers".
func funcName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return ""
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return ""
	}
	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}

func runnerName(r Runner) string {
	typ := reflect.TypeOf(r)
	for typ != nil && typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ == nil {
		return ""
	}
	return typ.Name()
}
