package httputil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/matzehuels/graphsvg/pkg/errors"
)

func testClient() *Client {
	return &Client{HTTP: &http.Client{Timeout: 5 * time.Second}, Backoff: Backoff{Attempts: 3, Delay: time.Millisecond}}
}

func TestGetRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"vertices": []}`))
	}))
	defer srv.Close()

	data, err := testClient().Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(data) != `{"vertices": []}` {
		t.Errorf("Get() = %q", data)
	}
	if calls.Load() != 3 {
		t.Errorf("calls = %d, want 3", calls.Load())
	}
}

func TestGetGivesUp(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := testClient().Get(context.Background(), srv.URL); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Get() error = %v, want INVALID_INPUT", err)
	}
	if calls.Load() != 3 {
		t.Errorf("calls = %d, want 3", calls.Load())
	}
}

func TestGetNotFoundIsFinal(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if _, err := testClient().Get(context.Background(), srv.URL); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Get() error = %v, want NOT_FOUND", err)
	}
	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1", calls.Load())
	}
}

func TestGetCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := testClient().Get(ctx, srv.URL); err != context.Canceled {
		t.Errorf("Get() error = %v, want context.Canceled", err)
	}
}

func TestBackoffDo(t *testing.T) {
	b := Backoff{Attempts: 4, Delay: time.Millisecond}

	calls := 0
	plain := errors.New(errors.ErrCodeInternal, "plain")
	if err := b.Do(context.Background(), func() error { calls++; return plain }); err != plain || calls != 1 {
		t.Errorf("non-retryable: err = %v, calls = %d", err, calls)
	}

	calls = 0
	err := b.Do(context.Background(), func() error {
		calls++
		if calls < 2 {
			return &RetryableError{Err: plain}
		}
		return nil
	})
	if err != nil || calls != 2 {
		t.Errorf("retryable: err = %v, calls = %d", err, calls)
	}

	calls = 0
	(Backoff{}).Do(context.Background(), func() error { calls++; return &RetryableError{Err: plain} })
	if calls != 1 {
		t.Errorf("zero Backoff calls = %d, want 1", calls)
	}
}

func TestIsURL(t *testing.T) {
	for path, want := range map[string]bool{
		"https://example.com/g.json": true,
		"http://localhost:8080/g":    true,
		"graph.json":                 false,
		"-":                          false,
		"ftp://example.com/g.json":   false,
	} {
		if got := IsURL(path); got != want {
			t.Errorf("IsURL(%q) = %v, want %v", path, got, want)
		}
	}
}
