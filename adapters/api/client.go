package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"nicegauss/domain/dist"
	"nicegauss/internal"
	apperrors "nicegauss/internal/errors"
)

// DefaultBaseURL is the public nice-numbers data service.
const DefaultBaseURL = "https://data.nicenumbers.net"

// Client fetches per-base niceness summaries from the data service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *internal.Logger
}

// NewClient creates a new data service client. An empty baseURL falls back to
// the public service; a zero timeout falls back to 30 seconds.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        internal.DefaultLogger,
	}
}

// FetchBases retrieves every base summary, ordered by base ascending. Records
// that fail boundary validation (unsearched bases publish no distribution or
// a zero stdev) are skipped with a warning; the fetch fails only when the
// service is unreachable, responds badly, or yields no usable base at all.
func (c *Client) FetchBases(ctx context.Context) ([]*dist.BaseSummary, error) {
	endpoint := fmt.Sprintf("%s/bases?%s", c.baseURL, url.Values{"order": {"id.asc"}}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to build bases request")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.ExternalServiceError("bases", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to read bases response")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.ExternalServiceError("bases",
			fmt.Errorf("status %d: %s", resp.StatusCode, truncate(body, 200)))
	}

	var records []baseRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, apperrors.Wrap(err, "failed to parse bases response")
	}

	summaries := make([]*dist.BaseSummary, 0, len(records))
	for _, rec := range records {
		summary, err := rec.toDomain()
		if err != nil {
			c.log.Warn("skipping base %d: %v", rec.ID, err)
			continue
		}
		summaries = append(summaries, summary)
	}

	c.log.Info("fetched %d bases (%d usable) in %s", len(records), len(summaries), time.Since(start).Round(time.Millisecond))

	if len(summaries) == 0 {
		return nil, apperrors.ExternalServiceError("bases", fmt.Errorf("no usable base summaries in response"))
	}

	return summaries, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
