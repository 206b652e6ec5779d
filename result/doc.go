// Package result provides a Rust-style Result container for railway-oriented
// pipelines: a value is either Ok(T) or Err(E), and combinators (Map, AndThen,
// MapErr, Match) transform the Ok side while an Err propagates untouched.
//
// Task and pipeline code flows result.Value (value erased to any, error side
// fixed to Go's error); the fully generic Result[T, E] is available for typed
// use at the edges. Unwrap on an Err panics with *UnwrapError: that is caller
// misuse, not a failure mode the engine converts back into a Result.
package result
