package httptask

import (
	"context"
	"fmt"
	"reflect"

	"github.com/neopipe/neopipe/result"
	"github.com/neopipe/neopipe/task"
)

// Expect returns a task body that runs the predicate on the input value. A
// predicate error becomes a business failure (terminal Err, not retried);
// otherwise the input passes through unchanged. Use after ParseJSON to verify
// the decoded result (e.g. check a status field or required keys).
func Expect(predicate func(interface{}) error) task.Work {
	if predicate == nil {
		panic("httptask.Expect: predicate must not be nil")
	}
	return func(ctx context.Context, in result.Value) (result.Value, error) {
		v, _ := in.Value()
		if err := predicate(v); err != nil {
			return result.Err[any](fmt.Errorf("expect: %w", err)), nil
		}
		return in, nil
	}
}

// ExpectEqual returns a task body that checks the input equals expected using
// reflect.DeepEqual. Works for primitives, slices, and maps (e.g. parsed
// JSON).
func ExpectEqual(expected interface{}) task.Work {
	return Expect(func(v interface{}) error {
		if !reflect.DeepEqual(v, expected) {
			return fmt.Errorf("got %v, want %v", v, expected)
		}
		return nil
	})
}
