// Package httptask provides task bodies for HTTP requests and response
// handling.
//
// Use Get or Fetch to perform a GET request, ParseJSON to unmarshal the
// response body, and Expect to verify the parsed result. Transport errors
// are faults (retried per the task's policy); a failed Expect is a business
// failure and ends the run immediately.
//
// Example pipeline: GET url → ParseJSON → Expect(predicate)
//
//	p := pipeline.New("check-api").
//	    AppendFunc(httptask.Get(nil, "https://api.example.com/status"), task.WithRetries(3)).
//	    AppendFunc(httptask.ParseJSON()).
//	    AppendFunc(httptask.Expect(func(v interface{}) error {
//	        m, _ := v.(map[string]interface{})
//	        if m["status"] != "ok" {
//	            return fmt.Errorf("unexpected status")
//	        }
//	        return nil
//	    }))
//	out := p.Run(ctx, result.Ok[any](nil))
package httptask
