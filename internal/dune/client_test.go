package dune

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	t.Run("default configuration", func(t *testing.T) {
		client := NewClient("https://api.dune.com/api/v1", "test-key")

		if client.baseURL != "https://api.dune.com/api/v1" {
			t.Errorf("baseURL = %q, want %q", client.baseURL, "https://api.dune.com/api/v1")
		}
		if client.apiKey != "test-key" {
			t.Errorf("apiKey = %q, want %q", client.apiKey, "test-key")
		}
		if client.userAgent != "kalshi-dune-pipeline" {
			t.Errorf("userAgent = %q, want %q", client.userAgent, "kalshi-dune-pipeline")
		}
		if client.httpClient.Timeout != 60*time.Second {
			t.Errorf("timeout = %v, want %v", client.httpClient.Timeout, 60*time.Second)
		}
		if client.maxRetries != 3 {
			t.Errorf("maxRetries = %d, want 3", client.maxRetries)
		}
		if client.retryBackoff != time.Second {
			t.Errorf("retryBackoff = %v, want %v", client.retryBackoff, time.Second)
		}
		if client.logger == nil {
			t.Error("logger should not be nil")
		}
	})

	t.Run("with options", func(t *testing.T) {
		hc := &http.Client{Timeout: 5 * time.Second}
		client := NewClient("https://example.com", "key",
			WithHTTPClient(hc),
			WithTimeout(10*time.Second),
			WithRetries(5, 2*time.Second),
			WithUserAgent("custom-agent"),
		)

		if client.httpClient != hc {
			t.Error("httpClient not set")
		}
		if client.httpClient.Timeout != 10*time.Second {
			t.Errorf("timeout = %v, want %v", client.httpClient.Timeout, 10*time.Second)
		}
		if client.maxRetries != 5 {
			t.Errorf("maxRetries = %d, want 5", client.maxRetries)
		}
		if client.retryBackoff != 2*time.Second {
			t.Errorf("retryBackoff = %v, want %v", client.retryBackoff, 2*time.Second)
		}
		if client.userAgent != "custom-agent" {
			t.Errorf("userAgent = %q, want %q", client.userAgent, "custom-agent")
		}
	})
}

func TestAPIError(t *testing.T) {
	t.Run("error message", func(t *testing.T) {
		err := &APIError{StatusCode: 400, Message: "Bad Request"}
		want := "dune api error 400: Bad Request"
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})

	t.Run("retryable status codes", func(t *testing.T) {
		tests := []struct {
			code      int
			retryable bool
		}{
			{400, false},
			{401, false},
			{409, false},
			{429, true},
			{500, true},
			{502, true},
			{503, true},
		}

		for _, tt := range tests {
			err := &APIError{StatusCode: tt.code}
			if got := err.IsRetryable(); got != tt.retryable {
				t.Errorf("IsRetryable() for %d = %v, want %v", tt.code, got, tt.retryable)
			}
		}
	})
}

func TestEnsureTable(t *testing.T) {
	req := CreateTableRequest{
		Namespace:   "ghost_in_the_code",
		TableName:   "kalshi_events",
		Description: EventsTableDescription,
		IsPrivate:   false,
		Schema:      EventsSchema(),
	}

	t.Run("creates table", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("method = %q, want POST", r.Method)
			}
			if r.URL.Path != "/table/create" {
				t.Errorf("path = %q, want /table/create", r.URL.Path)
			}
			if got := r.Header.Get("X-DUNE-API-KEY"); got != "test-key" {
				t.Errorf("X-DUNE-API-KEY = %q, want %q", got, "test-key")
			}
			if got := r.Header.Get("Content-Type"); got != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", got)
			}

			var payload CreateTableRequest
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				t.Fatalf("decode payload: %v", err)
			}
			if payload.Namespace != "ghost_in_the_code" {
				t.Errorf("namespace = %q, want ghost_in_the_code", payload.Namespace)
			}
			if payload.TableName != "kalshi_events" {
				t.Errorf("table_name = %q, want kalshi_events", payload.TableName)
			}
			if payload.IsPrivate {
				t.Error("is_private should be false")
			}
			if len(payload.Schema) != 13 {
				t.Errorf("schema has %d columns, want 13", len(payload.Schema))
			}
			if payload.Schema[0].Name != "event_ticker" || payload.Schema[0].Nullable {
				t.Errorf("schema[0] = %+v, want required event_ticker", payload.Schema[0])
			}

			json.NewEncoder(w).Encode(CreateTableResponse{
				Namespace: "ghost_in_the_code",
				TableName: "kalshi_events",
				FullName:  "dune.ghost_in_the_code.kalshi_events",
			})
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-key")
		created, err := client.EnsureTable(context.Background(), req)
		if err != nil {
			t.Fatalf("EnsureTable() error = %v", err)
		}
		if !created {
			t.Error("created = false, want true")
		}
	})

	t.Run("conflict means table already exists", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"error":"table already exists"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-key", WithRetries(3, time.Millisecond))
		created, err := client.EnsureTable(context.Background(), req)
		if err != nil {
			t.Fatalf("EnsureTable() error = %v", err)
		}
		if created {
			t.Error("created = true, want false")
		}
		if calls.Load() != 1 {
			t.Errorf("server called %d times, want 1 (conflict must not retry)", calls.Load())
		}
	})

	t.Run("fails on bad request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"invalid schema"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-key")
		_, err := client.EnsureTable(context.Background(), req)
		if err == nil {
			t.Fatal("expected error, got nil")
		}

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("error type = %T, want *APIError", err)
		}
		if apiErr.StatusCode != 400 {
			t.Errorf("status = %d, want 400", apiErr.StatusCode)
		}
	})
}

func TestClearTable(t *testing.T) {
	t.Run("clears table", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("method = %q, want POST", r.Method)
			}
			wantPath := "/table/ghost_in_the_code/kalshi_events/clear"
			if r.URL.Path != wantPath {
				t.Errorf("path = %q, want %q", r.URL.Path, wantPath)
			}
			if got := r.Header.Get("Content-Type"); got != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", got)
			}

			body, _ := io.ReadAll(r.Body)
			if string(body) != "{}" {
				t.Errorf("body = %q, want {}", body)
			}

			w.Write([]byte(`{"message":"Table cleared"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-key")
		if err := client.ClearTable(context.Background(), "ghost_in_the_code", "kalshi_events"); err != nil {
			t.Fatalf("ClearTable() error = %v", err)
		}
	})

	t.Run("fails after retries on server error", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-key", WithRetries(2, time.Millisecond))
		err := client.ClearTable(context.Background(), "ghost_in_the_code", "kalshi_events")
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if calls.Load() != 3 {
			t.Errorf("server called %d times, want 3", calls.Load())
		}

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("error type = %T, want *APIError in chain", err)
		}
		if apiErr.StatusCode != 500 {
			t.Errorf("status = %d, want 500", apiErr.StatusCode)
		}
	})
}

func TestInsertCSV(t *testing.T) {
	csvData := []byte("event_ticker,title\nFED-25DEC,Fed decision\n")

	t.Run("inserts rows", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wantPath := "/table/ghost_in_the_code/kalshi_events/insert"
			if r.URL.Path != wantPath {
				t.Errorf("path = %q, want %q", r.URL.Path, wantPath)
			}
			if got := r.Header.Get("Content-Type"); got != "text/csv" {
				t.Errorf("Content-Type = %q, want text/csv", got)
			}
			if got := r.Header.Get("X-DUNE-API-KEY"); got != "test-key" {
				t.Errorf("X-DUNE-API-KEY = %q, want %q", got, "test-key")
			}

			body, _ := io.ReadAll(r.Body)
			if string(body) != string(csvData) {
				t.Errorf("body = %q, want %q", body, csvData)
			}

			w.Write([]byte(`{"rows_written":1,"bytes_written":45}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-key")
		result, err := client.InsertCSV(context.Background(), "ghost_in_the_code", "kalshi_events", csvData)
		if err != nil {
			t.Fatalf("InsertCSV() error = %v", err)
		}
		if result.RowsWritten != 1 {
			t.Errorf("rows_written = %d, want 1", result.RowsWritten)
		}
		if result.BytesWritten != 45 {
			t.Errorf("bytes_written = %d, want 45", result.BytesWritten)
		}
	})

	t.Run("resends full body on retry", func(t *testing.T) {
		var mu sync.Mutex
		var bodies []string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			mu.Lock()
			bodies = append(bodies, string(body))
			n := len(bodies)
			mu.Unlock()

			if n == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.Write([]byte(`{"rows_written":1,"bytes_written":45}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-key", WithRetries(2, time.Millisecond))
		result, err := client.InsertCSV(context.Background(), "ghost_in_the_code", "kalshi_events", csvData)
		if err != nil {
			t.Fatalf("InsertCSV() error = %v", err)
		}
		if result.RowsWritten != 1 {
			t.Errorf("rows_written = %d, want 1", result.RowsWritten)
		}

		mu.Lock()
		defer mu.Unlock()
		if len(bodies) != 2 {
			t.Fatalf("server called %d times, want 2", len(bodies))
		}
		for i, body := range bodies {
			if body != string(csvData) {
				t.Errorf("attempt %d body = %q, want %q", i+1, body, csvData)
			}
		}
	})

	t.Run("does not retry client error", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-key", WithRetries(3, time.Millisecond))
		_, err := client.InsertCSV(context.Background(), "ghost_in_the_code", "kalshi_events", csvData)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if calls.Load() != 1 {
			t.Errorf("server called %d times, want 1", calls.Load())
		}
	})
}

func TestTablePath(t *testing.T) {
	tests := []struct {
		namespace string
		table     string
		action    string
		want      string
	}{
		{"ghost_in_the_code", "kalshi_events", "clear", "/table/ghost_in_the_code/kalshi_events/clear"},
		{"ghost_in_the_code", "kalshi_markets", "insert", "/table/ghost_in_the_code/kalshi_markets/insert"},
		{"my ns", "t", "clear", "/table/my%20ns/t/clear"},
	}

	for _, tt := range tests {
		if got := tablePath(tt.namespace, tt.table, tt.action); got != tt.want {
			t.Errorf("tablePath(%q, %q, %q) = %q, want %q", tt.namespace, tt.table, tt.action, got, tt.want)
		}
	}
}
