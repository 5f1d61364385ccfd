package source

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/time/rate"
)

// HTTPSource fetches the document from an HTTP(S) endpoint.
//
// Community catalogs are served from shared raw-file hosts, so refreshes
// are rate-limited by default to stay polite toward them.
type HTTPSource struct {
	url     string
	client  *http.Client
	limiter *rate.Limiter
}

// HTTPOption configures an HTTPSource.
type HTTPOption func(*HTTPSource)

// WithHTTPClient sets the http.Client used for fetches.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(s *HTTPSource) {
		if c != nil {
			s.client = c
		}
	}
}

// WithRateLimit overrides the refresh rate limit.
func WithRateLimit(r rate.Limit, burst int) HTTPOption {
	return func(s *HTTPSource) {
		s.limiter = rate.NewLimiter(r, burst)
	}
}

// NewHTTPSource creates a source fetching from the given URL.
// The default limit is one request per 10 seconds with a burst of 1.
func NewHTTPSource(url string, optFns ...HTTPOption) *HTTPSource {
	s := &HTTPSource{
		url:     url,
		client:  http.DefaultClient,
		limiter: rate.NewLimiter(rate.Limit(0.1), 1),
	}
	for _, fn := range optFns {
		fn(s)
	}
	return s
}

// Fetch performs a rate-limited GET of the document.
func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, s.url)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("fetch %s: unexpected status %s", s.url, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// Name identifies the source.
func (s *HTTPSource) Name() string { return s.url }
