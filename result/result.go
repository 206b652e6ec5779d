package result

import (
	"encoding/json"
	"fmt"
)

// Result is a tagged success/failure container: exactly one of Ok(T) or Err(E)
// is populated. Results are immutable after construction; transformations
// (Map, AndThen, ...) build new values. Because Go methods cannot introduce
// type parameters, transforming combinators are package functions.
type Result[T, E any] struct {
	ok    bool
	value T
	err   E
}

// UnwrapError is the panic value when Unwrap or Expect is called on an Err.
// Calling Unwrap on an Err is API misuse, not a business outcome, so it is
// deliberately not representable as a Result.
type UnwrapError struct {
	Msg string
	Err any
}

func (e *UnwrapError) Error() string {
	return fmt.Sprintf("%s: %v", e.Msg, e.Err)
}

// OkOf creates an Ok Result with an explicit error type.
func OkOf[T, E any](value T) Result[T, E] {
	return Result[T, E]{ok: true, value: value}
}

// ErrOf creates an Err Result with an explicit error type.
func ErrOf[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// Ok creates a successful Result carrying value. The error side is Go's error
// type, which is what tasks and pipelines flow.
func Ok[T any](value T) Result[T, error] {
	return OkOf[T, error](value)
}

// Err creates a failed Result carrying err.
func Err[T any](err error) Result[T, error] {
	return ErrOf[T, error](err)
}

// Errorf creates a failed Result from a format string, like fmt.Errorf.
func Errorf[T any](format string, args ...any) Result[T, error] {
	return Err[T](fmt.Errorf(format, args...))
}

// IsOk reports whether the Result is the Ok variant.
func (r Result[T, E]) IsOk() bool { return r.ok }

// IsErr reports whether the Result is the Err variant.
func (r Result[T, E]) IsErr() bool { return !r.ok }

// Value returns the Ok value and true, or the zero T and false on Err.
func (r Result[T, E]) Value() (T, bool) {
	return r.value, r.ok
}

// Err returns the error value and true, or the zero E and false on Ok.
func (r Result[T, E]) Err() (E, bool) {
	if r.ok {
		var zero E
		return zero, false
	}
	return r.err, true
}

// Unwrap returns the Ok value. It panics with *UnwrapError if the Result is
// Err; never call it on a Result you have not checked.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(&UnwrapError{Msg: "called Unwrap on Err", Err: r.err})
	}
	return r.value
}

// Expect is Unwrap with a caller-supplied panic message.
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		panic(&UnwrapError{Msg: msg, Err: r.err})
	}
	return r.value
}

// UnwrapOr returns the Ok value, or def on Err.
func (r Result[T, E]) UnwrapOr(def T) T {
	if !r.ok {
		return def
	}
	return r.value
}

// UnwrapOrElse returns the Ok value, or fn(err) on Err.
func (r Result[T, E]) UnwrapOrElse(fn func(E) T) T {
	if !r.ok {
		return fn(r.err)
	}
	return r.value
}

// UnwrapErr returns the error value. It panics with *UnwrapError on Ok.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic(&UnwrapError{Msg: "called UnwrapErr on Ok", Err: r.value})
	}
	return r.err
}

// String renders Ok(value) or Err(err).
func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// MarshalJSON serializes the populated variant only: {"ok": value} or
// {"err": "..."} (errors render via fmt since most error types are not
// JSON-marshalable).
func (r Result[T, E]) MarshalJSON() ([]byte, error) {
	if r.ok {
		return json.Marshal(map[string]any{"ok": r.value})
	}
	return json.Marshal(map[string]any{"err": fmt.Sprintf("%v", r.err)})
}
