package deezer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/lei/deezer-web/pkg/logger"
)

// recordingServer captures every request URI it receives
type recordingServer struct {
	mu   sync.Mutex
	uris []string
	srv  *httptest.Server
}

func newRecordingServer(t *testing.T, status int, body string) *recordingServer {
	t.Helper()
	rs := &recordingServer{}
	rs.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rs.mu.Lock()
		rs.uris = append(rs.uris, r.URL.RequestURI())
		rs.mu.Unlock()
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(rs.srv.Close)
	return rs
}

func newTestClient(baseURL string, timeout time.Duration) *Client {
	return NewClient(baseURL, timeout, logger.NewNop())
}

func TestFetchNormalizesEndpoint(t *testing.T) {
	endpoints := []string{
		"chart/0",
		"/chart/0",
		"  chart/0  ",
		"\t/chart/0\n",
	}

	for _, endpoint := range endpoints {
		t.Run(endpoint, func(t *testing.T) {
			rs := newRecordingServer(t, http.StatusOK, `{"data":[]}`)
			client := newTestClient(rs.srv.URL, time.Second)

			res := client.Fetch(context.Background(), endpoint)
			if !res.Found() {
				t.Fatalf("Fetch(%q) returned Absent, want payload", endpoint)
			}
			if len(rs.uris) != 1 || rs.uris[0] != "/chart/0" {
				t.Errorf("Fetch(%q) requested %v, want [/chart/0]", endpoint, rs.uris)
			}
		})
	}
}

func TestFetchKeepsQueryString(t *testing.T) {
	rs := newRecordingServer(t, http.StatusOK, `{"data":[]}`)
	client := newTestClient(rs.srv.URL, time.Second)

	client.Fetch(context.Background(), "search/track?q=abc&limit=10")

	if len(rs.uris) != 1 || rs.uris[0] != "/search/track?q=abc&limit=10" {
		t.Errorf("requested %v, want [/search/track?q=abc&limit=10]", rs.uris)
	}
}

func TestFetchSuccessPassesPayloadThrough(t *testing.T) {
	rs := newRecordingServer(t, http.StatusOK,
		`{"id":302127,"title":"Discovery","fans":1234567}`)
	client := newTestClient(rs.srv.URL, time.Second)

	res := client.Fetch(context.Background(), "album/302127")
	if !res.Found() {
		t.Fatal("Fetch() returned Absent, want payload")
	}

	payload, ok := res.Data().(map[string]any)
	if !ok {
		t.Fatalf("Data() = %T, want map", res.Data())
	}
	if got := payload["title"]; got != "Discovery" {
		t.Errorf("payload title = %v, want Discovery", got)
	}
	// Numbers survive as json.Number so they render verbatim
	if got, ok := payload["id"].(json.Number); !ok || got.String() != "302127" {
		t.Errorf("payload id = %v (%T), want json.Number 302127", payload["id"], payload["id"])
	}
}

func TestFetchArrayPayload(t *testing.T) {
	rs := newRecordingServer(t, http.StatusOK, `[{"id":1},{"id":2}]`)
	client := newTestClient(rs.srv.URL, time.Second)

	res := client.Fetch(context.Background(), "whatever")
	if !res.Found() {
		t.Fatal("Fetch() returned Absent for a valid array body")
	}
	if _, ok := res.Data().([]any); !ok {
		t.Fatalf("Data() = %T, want slice", res.Data())
	}
}

func TestFetchNon200IsAbsent(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"not found", http.StatusNotFound, `{"data":[]}`},
		{"server error", http.StatusInternalServerError, `{"data":[]}`},
		{"teapot with valid body", http.StatusTeapot, `{"id":1}`},
		{"accepted", http.StatusAccepted, `{"id":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := newRecordingServer(t, tt.status, tt.body)
			client := newTestClient(rs.srv.URL, time.Second)

			if res := client.Fetch(context.Background(), "track/1"); res.Found() {
				t.Errorf("Fetch() with status %d returned payload, want Absent", tt.status)
			}
		})
	}
}

func TestFetchUpstreamErrorIsAbsent(t *testing.T) {
	rs := newRecordingServer(t, http.StatusOK,
		`{"error":{"type":"DataException","message":"no data","code":800}}`)
	client := newTestClient(rs.srv.URL, time.Second)

	if res := client.Fetch(context.Background(), "track/0"); res.Found() {
		t.Error("Fetch() returned payload for an upstream error object, want Absent")
	}
}

func TestFetchUndecodableBodyIsAbsent(t *testing.T) {
	rs := newRecordingServer(t, http.StatusOK, `<html>not json</html>`)
	client := newTestClient(rs.srv.URL, time.Second)

	if res := client.Fetch(context.Background(), "chart/0"); res.Found() {
		t.Error("Fetch() returned payload for an undecodable body, want Absent")
	}
}

func TestFetchConnectionRefusedIsAbsent(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close() // nothing listens here anymore

	client := newTestClient(url, time.Second)
	if res := client.Fetch(context.Background(), "chart/0"); res.Found() {
		t.Error("Fetch() returned payload despite refused connection, want Absent")
	}
}

func TestFetchTimeoutIsAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(500 * time.Millisecond):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 50*time.Millisecond)
	if res := client.Fetch(context.Background(), "chart/0"); res.Found() {
		t.Error("Fetch() returned payload despite timeout, want Absent")
	}
}

func TestResultLen(t *testing.T) {
	tests := []struct {
		name string
		res  Result
		want int
	}{
		{"absent", Absent(), 0},
		{"no data key", Found(map[string]any{"id": "1"}), 0},
		{"data not a list", Found(map[string]any{"data": "x"}), 0},
		{"two items", Found(map[string]any{"data": []any{1, 2}}), 2},
		{"array payload", Found([]any{1, 2, 3}), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.res.Len(); got != tt.want {
				t.Errorf("Len() = %d, want %d", got, tt.want)
			}
		})
	}
}
