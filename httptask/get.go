package httptask

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/neopipe/neopipe/task"
)

// Get returns a task body that performs an HTTP GET to the fixed url and
// outputs the response body as []byte. The run context is used for the
// request (timeout and cancellation). Transport errors and non-2xx statuses
// are faults, so a task built from Get retries per its retry policy. If
// client is nil, http.DefaultClient is used.
func Get(client *http.Client, url string) task.Work {
	if client == nil {
		client = http.DefaultClient
	}
	return task.Source(func(ctx context.Context) ([]byte, error) {
		return get(ctx, client, "http get", url)
	})
}

// Fetch returns a task body that performs an HTTP GET to the URL from the
// previous task's output. Input must be a string URL; output is the response
// body as []byte. If client is nil, http.DefaultClient is used.
func Fetch(client *http.Client) task.Work {
	if client == nil {
		client = http.DefaultClient
	}
	return task.Transform(func(ctx context.Context, url string) ([]byte, error) {
		return get(ctx, client, "http fetch", url)
	})
}

func get(ctx context.Context, client *http.Client, op, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: new request: %w", op, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", op, url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%s %q: status %d", op, url, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %q: read body: %w", op, url, err)
	}
	return body, nil
}
