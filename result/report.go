package result

// Value is the Result type that flows between pipeline tasks: the value side
// is erased to any (tasks change the value type step to step) and the error
// side is Go's error. Typed adapters in the task package recover static types
// at the task boundary.
type Value = Result[any, error]

// Step is one recorded execution step: the name of the task that produced the
// Result (or the pipeline's own name for the initial input).
type Step struct {
	Name   string
	Result Value
}

// Trace is the ordered record of one pipeline run: the initial input under
// the pipeline's name, then one Step per executed task. On failure it ends at
// the failing step.
type Trace []Step

// PipelineTrace pairs a pipeline's name with the Trace of one of its runs.
type PipelineTrace struct {
	Name  string
	Steps Trace
}

// BatchTrace aggregates one PipelineTrace per unit of a parallel batch, in
// submission order.
type BatchTrace struct {
	Pipelines []PipelineTrace
}

// PipelineResult pairs a pipeline's name with the unwrapped final value of a
// successful run in a parallel batch.
type PipelineResult struct {
	Name  string
	Value any
}
