package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// PipelineConfig is the root structure for a pipeline definition (e.g. from YAML).
type PipelineConfig struct {
	Name  string    `yaml:"name"`
	Tasks []TaskRef `yaml:"tasks"`
}

// TaskRef is a single task entry: either a plain name or name + options.
// In YAML, a task can be written as:
//   - fetch
//   - name: parse
//     retries: 3
//     backoff:
//       initial: 200ms
//       max: 5s
type TaskRef struct {
	Name string `yaml:"name"`

	// Retries is the total attempt bound (default 1, no retrying).
	Retries int `yaml:"retries"`

	// Backoff tunes the wait between fault retries. Zero fields fall back to
	// the package defaults.
	Backoff BackoffRef `yaml:"backoff"`
}

// BackoffRef mirrors task.Backoff for YAML decoding.
type BackoffRef struct {
	Initial Duration `yaml:"initial"`
	Max     Duration `yaml:"max"`
	Factor  float64  `yaml:"factor"`
	Jitter  float64  `yaml:"jitter"`
}

func (b BackoffRef) isZero() bool {
	return b.Initial == 0 && b.Max == 0 && b.Factor == 0 && b.Jitter == 0
}

// UnmarshalYAML allows a task to be a string (task name only) or a struct.
func (t *TaskRef) UnmarshalYAML(value *yaml.Node) error {
	var nameOnly string
	if err := value.Decode(&nameOnly); err == nil {
		t.Name = nameOnly
		return nil
	}
	type raw TaskRef
	return value.Decode((*raw)(t))
}

// Duration is a time.Duration that unmarshals from YAML strings (e.g. "200ms", "5s").
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Duration returns the standard time.Duration.
func (d Duration) Duration() time.Duration { return time.Duration(d) }

// ParsePipelineConfig parses YAML bytes into a single PipelineConfig.
func ParsePipelineConfig(data []byte) (*PipelineConfig, error) {
	var cfg PipelineConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MultiPipelineConfig is the root structure for a file that defines multiple pipelines.
// Top-level key is "pipelines"; each value is a pipeline (name + tasks).
type MultiPipelineConfig struct {
	Pipelines map[string]PipelineConfig `yaml:"pipelines"`
}

// ParseMultiPipelineConfig parses YAML bytes that contain a "pipelines" map from name to pipeline config.
// Example YAML:
//
//	pipelines:
//	  ingest:
//	    tasks: [fetch, parse]
//	  notify:
//	    tasks: [validate, send]
func ParseMultiPipelineConfig(data []byte) (*MultiPipelineConfig, error) {
	var cfg MultiPipelineConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
