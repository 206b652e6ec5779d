package result

import "context"

// Map applies fn to the Ok value and returns a new Result; an Err passes
// through untouched.
func Map[T, U, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	if !r.ok {
		return ErrOf[U, E](r.err)
	}
	return OkOf[U, E](fn(r.value))
}

// MapCtx is Map for transformations that may block: fn receives a context and
// is awaited before the new Result is built. An Err passes through without
// calling fn.
func MapCtx[T, U, E any](ctx context.Context, r Result[T, E], fn func(context.Context, T) U) Result[U, E] {
	if !r.ok {
		return ErrOf[U, E](r.err)
	}
	return OkOf[U, E](fn(ctx, r.value))
}

// MapErr applies fn to the error value and returns a new Result; an Ok passes
// through untouched.
func MapErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.ok {
		return OkOf[T, F](r.value)
	}
	return ErrOf[T, F](fn(r.err))
}

// MapErrCtx is MapErr for transformations that may block.
func MapErrCtx[T, E, F any](ctx context.Context, r Result[T, E], fn func(context.Context, E) F) Result[T, F] {
	if r.ok {
		return OkOf[T, F](r.value)
	}
	return ErrOf[T, F](fn(ctx, r.err))
}

// AndThen chains a Result-returning fn onto the Ok value (monadic bind). An
// Err short-circuits: fn is not called and the Err is returned as-is.
func AndThen[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return ErrOf[U, E](r.err)
	}
	return fn(r.value)
}

// AndThenCtx is AndThen for chained operations that may block.
func AndThenCtx[T, U, E any](ctx context.Context, r Result[T, E], fn func(context.Context, T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return ErrOf[U, E](r.err)
	}
	return fn(ctx, r.value)
}

// Match dispatches to okFn or errFn depending on the variant and returns the
// handler's value.
func Match[T, E, U any](r Result[T, E], okFn func(T) U, errFn func(E) U) U {
	if r.ok {
		return okFn(r.value)
	}
	return errFn(r.err)
}
