// Package config provides a task registry and human-readable pipeline configuration.
//
// Register work functions by name, then define pipelines in YAML (or structs)
// that reference those names and optional modifiers (retries, backoff):
//
//	name: ingest
//	tasks:
//	  - fetch
//	  - name: parse
//	    retries: 5
//	    backoff:
//	      initial: 200ms
//	      max: 5s
//	  - validate
//
// Build a pipeline with BuildPipeline(registry, config, opts), or a whole set
// from one file with ParseMultiPipelineConfig + BuildAllPipelines.
package config
