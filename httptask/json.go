package httptask

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/neopipe/neopipe/result"
	"github.com/neopipe/neopipe/task"
)

// ParseJSON returns a task body that unmarshals the input from JSON. Input
// must be []byte or string (response body). Output is the decoded value
// (e.g. map[string]interface{} for objects).
func ParseJSON() task.Work {
	return func(ctx context.Context, in result.Value) (result.Value, error) {
		raw, err := rawBytes("parsejson", in)
		if err != nil {
			return result.Value{}, err
		}
		var out interface{}
		if err := json.Unmarshal(raw, &out); err != nil {
			return result.Value{}, fmt.Errorf("parsejson: %w", err)
		}
		return result.Ok[any](out), nil
	}
}

// ParseJSONTo returns a task body that unmarshals the input from JSON into a
// value of type T. Input must be []byte or string. Output is *T.
func ParseJSONTo[T any]() task.Work {
	return func(ctx context.Context, in result.Value) (result.Value, error) {
		raw, err := rawBytes("parsejsonto", in)
		if err != nil {
			return result.Value{}, err
		}
		var out T
		if err := json.Unmarshal(raw, &out); err != nil {
			return result.Value{}, fmt.Errorf("parsejsonto: %w", err)
		}
		return result.Ok[any](&out), nil
	}
}

func rawBytes(op string, in result.Value) ([]byte, error) {
	v, _ := in.Value()
	switch b := v.(type) {
	case []byte:
		return b, nil
	case string:
		return []byte(b), nil
	default:
		return nil, fmt.Errorf("%s: input must be []byte or string, got %T", op, v)
	}
}
