// Package httputil fetches remote graph files.
//
// [Client.Get] downloads a URL with retries: network errors, 5xx responses
// and 429 rate limits are retried with exponential backoff, other failures
// are returned at once. Response bodies are capped at [MaxBodySize].
//
//	c := httputil.NewClient()
//	data, err := c.Get(ctx, "https://example.com/graph.json")
//
// The retry loop itself is exposed as [Backoff.Do] for callers that wrap
// their own transient operations in [RetryableError].
package httputil
