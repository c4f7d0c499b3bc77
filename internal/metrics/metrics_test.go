package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestObservationsAppearInExposition(t *testing.T) {
	ObserveRequest("/track/{id}", http.StatusOK, 12*time.Millisecond)
	ObserveUpstream(OutcomeOK, 40*time.Millisecond)
	ObserveUpstream(OutcomeBadStatus, 5*time.Millisecond)

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("exposition status = %d, want %d", w.Code, http.StatusOK)
	}

	body := w.Body.String()
	for _, want := range []string{
		"deezer_web_http_requests_total",
		"deezer_web_http_request_duration_seconds",
		"deezer_web_upstream_requests_total",
		`outcome="bad_status"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("exposition missing %q", want)
		}
	}
}
