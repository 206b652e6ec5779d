package httptask

import (
	"context"
	"fmt"
	"testing"

	"github.com/neopipe/neopipe/result"
)

func TestExpect_Pass(t *testing.T) {
	work := Expect(func(v interface{}) error { return nil })
	out, err := work(context.Background(), result.Ok[any]("anything"))
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := out.Value(); v != "anything" {
		t.Errorf("input should pass through: got %v", out)
	}
}

func TestExpect_FailIsBusinessErr(t *testing.T) {
	work := Expect(func(v interface{}) error { return fmt.Errorf("bad value %v", v) })
	out, err := work(context.Background(), result.Ok[any](7))
	if err != nil {
		t.Fatalf("predicate failure must not be a fault: %v", err)
	}
	if e, isErr := out.Err(); !isErr || e.Error() != "expect: bad value 7" {
		t.Errorf("got %v", out)
	}
}

func TestExpect_NilPredicatePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expect(nil) should panic")
		}
	}()
	Expect(nil)
}

func TestExpectEqual(t *testing.T) {
	work := ExpectEqual(map[string]interface{}{"a": float64(1)})
	out, err := work(context.Background(), result.Ok[any](map[string]interface{}{"a": float64(1)}))
	if err != nil {
		t.Fatal(err)
	}
	if !out.IsOk() {
		t.Errorf("got %v", out)
	}

	out, err = work(context.Background(), result.Ok[any](map[string]interface{}{"a": float64(2)}))
	if err != nil {
		t.Fatal(err)
	}
	if !out.IsErr() {
		t.Errorf("mismatch should be Err: got %v", out)
	}
}
