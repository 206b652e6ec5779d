package httptask

import (
	"context"
	"testing"

	"github.com/neopipe/neopipe/result"
)

func TestParseJSON_Object(t *testing.T) {
	work := ParseJSON()
	out, err := work(context.Background(), result.Ok[any]([]byte(`{"a":1,"b":"x"}`)))
	if err != nil {
		t.Fatal(err)
	}
	v, _ := out.Value()
	m, ok := v.(map[string]interface{})
	if !ok {
		t.Fatalf("expected map, got %T", v)
	}
	if m["a"].(float64) != 1 || m["b"] != "x" {
		t.Errorf("got %v", m)
	}
}

func TestParseJSON_StringInput(t *testing.T) {
	work := ParseJSON()
	out, err := work(context.Background(), result.Ok[any](`[1,2,3]`))
	if err != nil {
		t.Fatal(err)
	}
	v, _ := out.Value()
	if arr, ok := v.([]interface{}); !ok || len(arr) != 3 {
		t.Errorf("got %v", v)
	}
}

func TestParseJSON_BadInputType(t *testing.T) {
	work := ParseJSON()
	if _, err := work(context.Background(), result.Ok[any](42)); err == nil {
		t.Fatal("expected fault for non-bytes input")
	}
}

func TestParseJSON_Invalid(t *testing.T) {
	work := ParseJSON()
	if _, err := work(context.Background(), result.Ok[any]([]byte("{"))); err == nil {
		t.Fatal("expected fault for invalid JSON")
	}
}

func TestParseJSONTo_Struct(t *testing.T) {
	type status struct {
		Status  string `json:"status"`
		Version int    `json:"version"`
	}
	work := ParseJSONTo[status]()
	out, err := work(context.Background(), result.Ok[any]([]byte(`{"status":"ok","version":2}`)))
	if err != nil {
		t.Fatal(err)
	}
	v, _ := out.Value()
	s, ok := v.(*status)
	if !ok {
		t.Fatalf("expected *status, got %T", v)
	}
	if s.Status != "ok" || s.Version != 2 {
		t.Errorf("got %+v", s)
	}
}
