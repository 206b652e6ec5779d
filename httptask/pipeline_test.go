package httptask

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/neopipe/neopipe/pipeline"
	"github.com/neopipe/neopipe/result"
	"github.com/neopipe/neopipe/task"
)

// Full pipeline: GET -> ParseJSON -> Expect (pass).
func TestPipeline_GET_ParseJSON_Expect(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","version":1}`))
	}))
	defer ts.Close()

	p := pipeline.New("http-check").
		AppendFunc(Get(nil, ts.URL)).
		AppendFunc(ParseJSON()).
		AppendFunc(Expect(func(v interface{}) error {
			m, ok := v.(map[string]interface{})
			if !ok {
				return fmt.Errorf("expected map")
			}
			if m["status"] != "ok" {
				return fmt.Errorf("status is %v", m["status"])
			}
			return nil
		}))

	out := p.Run(context.Background(), result.Ok[any](nil))
	v, ok := out.Value()
	if !ok {
		t.Fatalf("got %v", out)
	}
	m := v.(map[string]interface{})
	if m["status"] != "ok" || m["version"].(float64) != 1 {
		t.Errorf("unexpected result: %v", v)
	}
}

func TestPipeline_GET_ParseJSON_Expect_Fail(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"error"}`))
	}))
	defer ts.Close()

	p := pipeline.New("http-check").
		AppendFunc(Get(nil, ts.URL)).
		AppendFunc(ParseJSON()).
		AppendFunc(Expect(func(v interface{}) error {
			m, ok := v.(map[string]interface{})
			if !ok {
				return fmt.Errorf("expected map")
			}
			if s, _ := m["status"].(string); s != "ok" {
				return fmt.Errorf("unexpected status: %v", m["status"])
			}
			return nil
		}))

	out := p.Run(context.Background(), result.Ok[any](nil))
	if !out.IsErr() {
		t.Fatalf("expected Err when Expect fails, got %v", out)
	}
}

// A transient 500 is a fault, so a retrying task recovers once the server does.
func TestPipeline_GET_RetriesTransientFailure(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`"recovered"`))
	}))
	defer ts.Close()

	p := pipeline.New("flaky-api").
		AppendFunc(Get(nil, ts.URL),
			task.WithRetries(5),
			task.WithBackoff(task.Backoff{Initial: time.Nanosecond, Max: time.Nanosecond, Factor: 1})).
		AppendFunc(ParseJSON())

	out := p.Run(context.Background(), result.Ok[any](nil))
	if v, _ := out.Value(); v != "recovered" {
		t.Fatalf("got %v", out)
	}
	if n := atomic.LoadInt32(&hits); n != 3 {
		t.Errorf("server hits: got %d, want 3", n)
	}
}

// An Expect failure is terminal: the task must not retry it.
func TestPipeline_ExpectFailureNotRetried(t *testing.T) {
	calls := 0
	p := pipeline.New("no-retry").
		AppendFunc(func(ctx context.Context, in result.Value) (result.Value, error) {
			calls++
			return Expect(func(interface{}) error { return errors.New("wrong shape") })(ctx, in)
		}, task.WithRetries(5))

	out := p.Run(context.Background(), result.Ok[any]("payload"))
	if !out.IsErr() {
		t.Fatalf("got %v", out)
	}
	if calls != 1 {
		t.Errorf("business failure retried: %d calls", calls)
	}
}
