package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/neopipe/neopipe/result"
	"github.com/neopipe/neopipe/task"
)

// Pipeline is an ordered sequence of tasks. Insertion order is execution
// order. A Pipeline is built once and may be run any number of times; running
// never mutates the task list, so concurrent runs of the same Pipeline are
// safe as long as the task bodies are reentrant. Callers must not append
// tasks while a run is in flight.
type Pipeline struct {
	name      string
	id        uuid.UUID
	tasks     []*task.Task
	logger    zerolog.Logger
	observers []Observer
}

// Option configures a Pipeline at construction time.
type Option func(*Pipeline)

// WithLogger sets the logger for run start/finish events. The default is a
// no-op logger.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// WithObserver attaches an observer to every run of the pipeline.
func WithObserver(o Observer) Option {
	return func(p *Pipeline) { p.observers = append(p.observers, o) }
}

// New creates an empty pipeline. An empty name is replaced with a unique
// synthesized one; parallel result and trace reporting is keyed by name, so
// every pipeline needs one.
func New(name string, opts ...Option) *Pipeline {
	p := &Pipeline{
		id:     uuid.New(),
		logger: zerolog.Nop(),
		name:   name,
	}
	if p.name == "" {
		p.name = "pipeline-" + p.id.String()[:8]
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FromTasks creates a pipeline from an ordered task list in one step.
func FromTasks(tasks []*task.Task, name string, opts ...Option) *Pipeline {
	p := New(name, opts...)
	for _, t := range tasks {
		p.Append(t)
	}
	return p
}

// Append adds a pre-built task to the end of the sequence. It returns the
// pipeline for chaining.
func (p *Pipeline) Append(t *task.Task) *Pipeline {
	p.tasks = append(p.tasks, t)
	return p
}

// AppendFunc wraps a bare function body into a task and appends it.
func (p *Pipeline) AppendFunc(work task.Work, opts ...task.Option) *Pipeline {
	return p.Append(task.FromFunc(work, opts...))
}

// AppendRunner wraps a Runner into a task and appends it.
func (p *Pipeline) AppendRunner(r task.Runner, opts ...task.Option) *Pipeline {
	return p.Append(task.FromRunner(r, opts...))
}

// Name returns the pipeline's name.
func (p *Pipeline) Name() string { return p.name }

// ID returns the pipeline's generated unique id.
func (p *Pipeline) ID() uuid.UUID { return p.id }

// Len returns the number of tasks.
func (p *Pipeline) Len() int { return len(p.tasks) }

// Tasks returns a copy of the task list in execution order.
func (p *Pipeline) Tasks() []*task.Task {
	out := make([]*task.Task, len(p.tasks))
	copy(out, p.tasks)
	return out
}

func (p *Pipeline) String() string {
	names := make([]string, len(p.tasks))
	for i, t := range p.tasks {
		names[i] = t.Name()
	}
	return fmt.Sprintf("%s [%s]", p.name, strings.Join(names, " | "))
}

// Run feeds in through the tasks in order: each task's output Result is the
// next task's input. The first Err short-circuits the run; remaining tasks
// are not invoked and the Err is the pipeline's result. An empty pipeline
// returns the input unchanged. Ordinary task failures never surface as
// panics; callers observe only the returned Result.
func (p *Pipeline) Run(ctx context.Context, in result.Value) result.Value {
	return p.run(ctx, in, p.observer(nil))
}

// RunTrace is Run plus the ordered trace of the run: the initial input
// recorded under the pipeline's name, then one step per executed task. On
// failure the trace ends at the failing step.
func (p *Pipeline) RunTrace(ctx context.Context, in result.Value) (result.Value, result.Trace) {
	collector := &traceCollector{}
	out := p.run(ctx, in, p.observer(collector))
	return out, collector.trace
}

// observer combines the pipeline's registered observers with an optional
// per-run extra.
func (p *Pipeline) observer(extra Observer) Observer {
	all := p.observers
	if extra != nil {
		all = append(append([]Observer{}, p.observers...), extra)
	}
	switch len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	default:
		return MultiObserver(all...)
	}
}

func (p *Pipeline) run(ctx context.Context, in result.Value, obs Observer) result.Value {
	runID := uuid.New().String()
	start := time.Now()
	log := p.logger.With().Str("pipeline", p.name).Str("run_id", runID).Logger()

	if obs != nil {
		obs.BeforePipeline(ctx, runID, p.name, in)
	}
	log.Info().Int("tasks", len(p.tasks)).Msg("pipeline start")

	out := in
	for i, tk := range p.tasks {
		log.Debug().Int("step", i+1).Int("of", len(p.tasks)).Str("task", tk.Name()).Msg("pipeline step")
		if obs != nil {
			obs.BeforeTask(ctx, runID, i, tk.Name(), out)
		}
		stepStart := time.Now()
		out = tk.Invoke(ctx, out)
		if obs != nil {
			obs.AfterTask(ctx, runID, i, tk.Name(), out, time.Since(stepStart))
		}
		if failure, isErr := out.Err(); isErr {
			log.Error().Str("task", tk.Name()).AnErr("failure", failure).Msg("pipeline failed")
			break
		}
	}

	if out.IsOk() {
		log.Info().Dur("elapsed", time.Since(start)).Msg("pipeline completed")
	}
	if obs != nil {
		obs.AfterPipeline(ctx, runID, out, time.Since(start))
	}
	return out
}
