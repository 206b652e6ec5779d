// Typed task bodies for common patterns, so callers rarely hand-write type
// assertions against the erased result.Value pipe.

package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/neopipe/neopipe/result"
)

// Transform returns a Work that converts the previous task's Ok value (type
// A) to B. A returned error is a fault and is retried per the task's policy.
// A nil Ok value (e.g. a seed of result.Ok[any](nil)) is passed to convert as
// A's zero value.
func Transform[A, B any](convert func(ctx context.Context, a A) (B, error)) Work {
	return func(ctx context.Context, in result.Value) (result.Value, error) {
		a, err := valueAs[A](in)
		if err != nil {
			return result.Value{}, fmt.Errorf("transform: %w", err)
		}
		b, err := convert(ctx, a)
		if err != nil {
			return result.Value{}, err
		}
		return result.Ok[any](b), nil
	}
}

// TransformResult is Transform for bodies that can fail deliberately: the
// inner Result's Err becomes the task's business failure (terminal, not
// retried).
func TransformResult[A, B any](convert func(ctx context.Context, a A) result.Result[B, error]) Work {
	return func(ctx context.Context, in result.Value) (result.Value, error) {
		a, err := valueAs[A](in)
		if err != nil {
			return result.Value{}, fmt.Errorf("transform: %w", err)
		}
		r := convert(ctx, a)
		if e, isErr := r.Err(); isErr {
			return result.Err[any](e), nil
		}
		return result.Ok[any](r.Unwrap()), nil
	}
}

// Source returns a Work that ignores its input and produces a fresh value.
// Useful as the first task of a pipeline seeded with result.Ok[any](nil).
func Source[B any](produce func(ctx context.Context) (B, error)) Work {
	return func(ctx context.Context, _ result.Value) (result.Value, error) {
		b, err := produce(ctx)
		if err != nil {
			return result.Value{}, err
		}
		return result.Ok[any](b), nil
	}
}

// Validate returns a Work that passes the value through only if predicate(v)
// is true; otherwise it returns a business Err carrying errMsg (terminal, not
// retried).
func Validate[A any](predicate func(A) bool, errMsg string) Work {
	return func(ctx context.Context, in result.Value) (result.Value, error) {
		a, err := valueAs[A](in)
		if err != nil {
			return result.Value{}, fmt.Errorf("validate: %w", err)
		}
		if !predicate(a) {
			if errMsg == "" {
				errMsg = "validation failed"
			}
			return result.Err[any](errors.New(errMsg)), nil
		}
		return in, nil
	}
}

// Tap returns a Work that calls fn with the Ok value and passes the input
// through unchanged. Use for logging, metrics, or side effects.
func Tap(fn func(ctx context.Context, v any)) Work {
	return func(ctx context.Context, in result.Value) (result.Value, error) {
		v, _ := in.Value()
		fn(ctx, v)
		return in, nil
	}
}

// Constant returns a Work that ignores its input and always outputs value.
func Constant(value any) Work {
	return func(ctx context.Context, _ result.Value) (result.Value, error) {
		return result.Ok[any](value), nil
	}
}

// MapSlice returns a Work that converts []A to []B element-wise.
func MapSlice[A, B any](convert func(ctx context.Context, a A) (B, error)) Work {
	return func(ctx context.Context, in result.Value) (result.Value, error) {
		slice, err := valueAs[[]A](in)
		if err != nil {
			return result.Value{}, fmt.Errorf("mapslice: %w", err)
		}
		out := make([]B, 0, len(slice))
		for i, a := range slice {
			b, err := convert(ctx, a)
			if err != nil {
				return result.Value{}, fmt.Errorf("mapslice[%d]: %w", i, err)
			}
			out = append(out, b)
		}
		return result.Ok[any](out), nil
	}
}

// FilterSlice returns a Work that keeps only the elements of []A for which
// keep(a) is true.
func FilterSlice[A any](keep func(A) bool) Work {
	return func(ctx context.Context, in result.Value) (result.Value, error) {
		slice, err := valueAs[[]A](in)
		if err != nil {
			return result.Value{}, fmt.Errorf("filterslice: %w", err)
		}
		out := make([]A, 0, len(slice))
		for _, a := range slice {
			if keep(a) {
				out = append(out, a)
			}
		}
		return result.Ok[any](out), nil
	}
}

// valueAs extracts the Ok value as type A. A nil Ok value yields A's zero
// value; any other type mismatch is a fault.
func valueAs[A any](in result.Value) (A, error) {
	var zero A
	v, ok := in.Value()
	if !ok {
		// Task.Invoke never passes an Err to the body; direct callers get a fault.
		e, _ := in.Err()
		return zero, fmt.Errorf("expected Ok input, got Err(%v)", e)
	}
	if v == nil {
		return zero, nil
	}
	a, ok := v.(A)
	if !ok {
		return zero, fmt.Errorf("expected %T, got %T", zero, v)
	}
	return a, nil
}
