// Package deezer provides a minimal client for the public Deezer catalog
// API. It issues GET requests only and normalizes every failure class
// (transport, non-200 status, undecodable body, upstream-reported error)
// into the single Absent result, so callers never branch on error causes.
package deezer

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/lei/deezer-web/internal/metrics"
	"github.com/lei/deezer-web/pkg/logger"
)

// Client handles HTTP communication with the Deezer API
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger
}

// NewClient creates a new Deezer API client. The timeout bounds connect and
// read combined for each request.
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     log,
	}
}

// Fetch performs a GET against the given relative endpoint and returns the
// decoded payload or Absent. The endpoint may carry its own query string and
// is normalized first: surrounding whitespace is trimmed and one leading
// slash is stripped before joining to the base URL.
//
// Fetch never returns an error. A payload that decodes but carries a
// top-level "error" key is discarded like any transport failure.
func (c *Client) Fetch(ctx context.Context, endpoint string) Result {
	endpoint = strings.TrimSpace(endpoint)
	endpoint = strings.TrimPrefix(endpoint, "/")
	url := c.baseURL + "/" + endpoint

	c.logger.Debug("upstream request", "url", url)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Warn("upstream request invalid", "url", url, "error", err)
		metrics.ObserveUpstream(metrics.OutcomeTransportError, time.Since(start))
		return Absent()
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("upstream request failed", "url", url, "error", err)
		metrics.ObserveUpstream(metrics.OutcomeTransportError, time.Since(start))
		return Absent()
	}
	defer resp.Body.Close()

	c.logger.Debug("upstream response", "url", url, "status", resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("upstream non-200 status", "url", url, "status", resp.StatusCode)
		metrics.ObserveUpstream(metrics.OutcomeBadStatus, time.Since(start))
		return Absent()
	}

	// UseNumber keeps ids and counts as json.Number so templates print them
	// verbatim instead of float64 scientific notation
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		c.logger.Warn("upstream body not decodable", "url", url, "error", err)
		metrics.ObserveUpstream(metrics.OutcomeDecodeError, time.Since(start))
		return Absent()
	}

	// A 200 with an error object is how Deezer reports application errors
	if m, ok := payload.(map[string]any); ok {
		if apiErr, ok := m["error"]; ok {
			c.logger.Warn("upstream reported error", "url", url, "error", apiErr)
			metrics.ObserveUpstream(metrics.OutcomeUpstreamError, time.Since(start))
			return Absent()
		}
	}

	res := Found(payload)
	c.logger.Debug("upstream request successful", "url", url, "items", res.Len())
	metrics.ObserveUpstream(metrics.OutcomeOK, time.Since(start))
	return res
}
