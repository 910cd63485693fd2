// Package tradingecon fetches country indicator records from a
// Trading-Economics-style HTTP API. It is the core's fetcher collaborator:
// all transport concerns (timeouts, auth, tolerant decoding, caching) live
// here, and failures are surfaced as errors for the service layer to
// translate into "no records".
package tradingecon

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/econlens/country-compare/internal/domain"
	"github.com/econlens/country-compare/internal/observability"
)

// Client implements domain.IndicatorSource against the country endpoint.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates an indicator API client.
func NewClient(baseURL, apiKey string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		metrics: metrics,
		logger:  logger,
	}
}

// FetchIndicators retrieves the raw indicator records for one country.
// Malformed or null array entries are skipped rather than failing the whole
// response; a non-200 status or undecodable body is an error.
func (c *Client) FetchIndicators(ctx context.Context, country string) ([]domain.RawIndicatorRecord, error) {
	u := fmt.Sprintf("%s/country/%s", c.baseURL, url.PathEscape(country))
	params := url.Values{
		"c": {c.apiKey},
		"f": {"json"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.FetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.FetchRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("fetch indicators for %q: %w", country, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metrics.FetchRequests.WithLabelValues("error").Inc()
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("indicator API error: status %d: %s", resp.StatusCode, body)
	}

	records, err := decodeRecords(resp.Body, c.logger)
	if err != nil {
		c.metrics.FetchRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("decode response for %q: %w", country, err)
	}

	if len(records) == 0 {
		c.metrics.FetchRequests.WithLabelValues("empty").Inc()
		return records, nil
	}
	c.metrics.FetchRequests.WithLabelValues("success").Inc()
	return records, nil
}

// decodeRecords decodes the response array entry by entry so a single null
// or malformed element doesn't discard an otherwise usable payload.
func decodeRecords(r io.Reader, logger *slog.Logger) ([]domain.RawIndicatorRecord, error) {
	var entries []json.RawMessage
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, err
	}

	records := make([]domain.RawIndicatorRecord, 0, len(entries))
	for i, entry := range entries {
		if string(entry) == "null" {
			continue
		}
		var rec domain.RawIndicatorRecord
		if err := json.Unmarshal(entry, &rec); err != nil {
			logger.Debug("skipping malformed record", "index", i, "error", err)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}
