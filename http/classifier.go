// Package http provides the live-fetching heuristic classifier. It pulls a
// candidate URL's response body over plain HTTP and hands the content to a
// detector; no JavaScript rendering is involved at this stage.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/showscout"
)

// DefaultFetchTimeout bounds the one-shot classification fetch.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Classifier implements showscout.Classifier at compile time.
var _ showscout.Classifier = (*Classifier)(nil)

// Classifier fetches a URL and runs content detection on the response.
// Each candidate gets a single best-effort attempt; a failure is returned
// for the caller to log and count as a no-match.
type Classifier struct {
	client   *http.Client
	detector showscout.SiteDetector
	limiter  showscout.HostLimiter
	timeout  time.Duration
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithTimeout sets the per-fetch timeout.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Classifier) {
		c.timeout = d
	}
}

// WithLimiter throttles fetches per host.
func WithLimiter(l showscout.HostLimiter) Option {
	return func(c *Classifier) {
		c.limiter = l
	}
}

// NewClassifier creates a Classifier using the given detector.
func NewClassifier(detector showscout.SiteDetector, opts ...Option) *Classifier {
	c := &Classifier{
		detector: detector,
		timeout:  DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.client = &http.Client{Timeout: c.timeout}
	return c
}

// Classify fetches the URL and reports whether the response content carries
// Astro markers.
func (c *Classifier) Classify(ctx context.Context, rawURL string) (bool, error) {
	if c.limiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			return false, showscout.Errorf(showscout.EINVALID, "invalid URL %q: %v", rawURL, err)
		}
		if err := c.limiter.Wait(ctx, u.Host); err != nil {
			return false, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return false, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, showscout.Errorf(showscout.EINTERNAL, "HTTP %d for %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, err
	}

	return c.detector.IsAstro(string(body), rawURL), nil
}
