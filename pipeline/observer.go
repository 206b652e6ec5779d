package pipeline

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/neopipe/neopipe/result"
)

// Observer receives hooks around pipeline and task execution, identified by a
// per-run UUID. Hooks are notification-only: they cannot alter the Result
// flowing through the run. Implementations must be safe for concurrent use
// when the pipeline is run from multiple goroutines.
type Observer interface {
	BeforePipeline(ctx context.Context, runID, name string, input result.Value)
	AfterPipeline(ctx context.Context, runID string, out result.Value, elapsed time.Duration)
	BeforeTask(ctx context.Context, runID string, index int, taskName string, in result.Value)
	AfterTask(ctx context.Context, runID string, index int, taskName string, out result.Value, elapsed time.Duration)
}

// MultiObserver combines observers; each hook fans out in order.
func MultiObserver(obs ...Observer) Observer {
	return multiObserver(obs)
}

type multiObserver []Observer

func (m multiObserver) BeforePipeline(ctx context.Context, runID, name string, input result.Value) {
	for _, o := range m {
		o.BeforePipeline(ctx, runID, name, input)
	}
}

func (m multiObserver) AfterPipeline(ctx context.Context, runID string, out result.Value, elapsed time.Duration) {
	for _, o := range m {
		o.AfterPipeline(ctx, runID, out, elapsed)
	}
}

func (m multiObserver) BeforeTask(ctx context.Context, runID string, index int, taskName string, in result.Value) {
	for _, o := range m {
		o.BeforeTask(ctx, runID, index, taskName, in)
	}
}

func (m multiObserver) AfterTask(ctx context.Context, runID string, index int, taskName string, out result.Value, elapsed time.Duration) {
	for _, o := range m {
		o.AfterTask(ctx, runID, index, taskName, out, elapsed)
	}
}

// LogObserver logs every hook through a zerolog logger.
type LogObserver struct {
	Logger zerolog.Logger
}

func (l LogObserver) BeforePipeline(ctx context.Context, runID, name string, input result.Value) {
	l.Logger.Info().Str("run_id", runID).Str("pipeline", name).Stringer("input", input).Msg("run start")
}

func (l LogObserver) AfterPipeline(ctx context.Context, runID string, out result.Value, elapsed time.Duration) {
	evt := l.Logger.Info()
	if out.IsErr() {
		evt = l.Logger.Error()
	}
	evt.Str("run_id", runID).Stringer("result", out).Dur("elapsed", elapsed).Msg("run finished")
}

func (l LogObserver) BeforeTask(ctx context.Context, runID string, index int, taskName string, in result.Value) {
	l.Logger.Debug().Str("run_id", runID).Int("step", index).Str("task", taskName).Msg("step start")
}

func (l LogObserver) AfterTask(ctx context.Context, runID string, index int, taskName string, out result.Value, elapsed time.Duration) {
	l.Logger.Debug().Str("run_id", runID).Int("step", index).Str("task", taskName).Stringer("result", out).Dur("elapsed", elapsed).Msg("step finished")
}

// traceCollector builds the result.Trace for one run: the input under the
// pipeline's name, then each executed task's output. One collector serves a
// single run.
type traceCollector struct {
	trace result.Trace
}

func (c *traceCollector) BeforePipeline(ctx context.Context, runID, name string, input result.Value) {
	c.trace = append(c.trace, result.Step{Name: name, Result: input})
}

func (c *traceCollector) AfterPipeline(ctx context.Context, runID string, out result.Value, elapsed time.Duration) {
}

func (c *traceCollector) BeforeTask(ctx context.Context, runID string, index int, taskName string, in result.Value) {
}

func (c *traceCollector) AfterTask(ctx context.Context, runID string, index int, taskName string, out result.Value, elapsed time.Duration) {
	c.trace = append(c.trace, result.Step{Name: taskName, Result: out})
}
