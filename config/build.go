package config

import (
	"fmt"

	"github.com/neopipe/neopipe/pipeline"
	"github.com/neopipe/neopipe/task"
)

// BuildOptions configures how a pipeline is built from config.
type BuildOptions struct {
	// Observer is attached to every built pipeline when non-nil.
	Observer pipeline.Observer

	// PipelineOptions are applied to every built pipeline (logger etc.).
	PipelineOptions []pipeline.Option
}

// BuildPipeline builds a pipeline.Pipeline from config and registry. Task
// names in config must be registered. Per-task retries and backoff from the
// config are applied when set.
func BuildPipeline(reg *Registry, cfg *PipelineConfig, opts *BuildOptions) (*pipeline.Pipeline, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	tasks := make([]*task.Task, 0, len(cfg.Tasks))
	for i, ref := range cfg.Tasks {
		if ref.Name == "" {
			return nil, fmt.Errorf("task %d: name required", i)
		}
		work, ok := reg.Get(ref.Name)
		if !ok {
			return nil, fmt.Errorf("task %d: %q not in registry", i, ref.Name)
		}
		tasks = append(tasks, buildTask(work, ref))
	}
	return pipeline.FromTasks(tasks, cfg.Name, pipelineOptions(opts)...), nil
}

func pipelineOptions(opts *BuildOptions) []pipeline.Option {
	if opts == nil {
		return nil
	}
	out := append([]pipeline.Option(nil), opts.PipelineOptions...)
	if opts.Observer != nil {
		out = append(out, pipeline.WithObserver(opts.Observer))
	}
	return out
}

func buildTask(work task.Work, ref TaskRef) *task.Task {
	taskOpts := []task.Option{task.WithName(ref.Name)}
	if ref.Retries > 0 {
		taskOpts = append(taskOpts, task.WithRetries(ref.Retries))
	}
	if !ref.Backoff.isZero() {
		taskOpts = append(taskOpts, task.WithBackoff(task.Backoff{
			Initial: ref.Backoff.Initial.Duration(),
			Max:     ref.Backoff.Max.Duration(),
			Factor:  ref.Backoff.Factor,
			Jitter:  ref.Backoff.Jitter,
		}))
	}
	return task.FromFunc(work, taskOpts...)
}

// BuildAllPipelines builds a pipeline.Pipeline for each entry in multi. Keys are pipeline names.
// If a pipeline config's Name is empty, the map key is used as the pipeline name.
func BuildAllPipelines(reg *Registry, multi *MultiPipelineConfig, opts *BuildOptions) (map[string]*pipeline.Pipeline, error) {
	if multi == nil {
		return nil, fmt.Errorf("MultiPipelineConfig is nil")
	}
	out := make(map[string]*pipeline.Pipeline, len(multi.Pipelines))
	for name, cfg := range multi.Pipelines {
		if cfg.Name == "" {
			cfg.Name = name
		}
		p, err := BuildPipeline(reg, &cfg, opts)
		if err != nil {
			return nil, fmt.Errorf("pipeline %q: %w", name, err)
		}
		out[name] = p
	}
	return out, nil
}
