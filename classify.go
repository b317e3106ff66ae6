package showscout

import "context"

// SiteDetector identifies Astro-built pages from raw HTML content.
// Detection is a pure function of the content: no fetching, no mutation.
type SiteDetector interface {
	// IsAstro reports whether the page content carries any Astro marker.
	// pageURL is used to resolve relative asset references.
	IsAstro(html, pageURL string) bool

	// IsStarlight reports whether the page declares the Starlight docs
	// theme via its generator meta tag. Independent of IsAstro.
	IsStarlight(html string) bool
}

// HostLimiter throttles outbound requests per host. Classification hits
// arbitrary third-party hosts, so politeness is enforced at the host level.
type HostLimiter interface {
	// Wait blocks until the limit allows a request to the host, or the
	// context is canceled.
	Wait(ctx context.Context, host string) error
}

// Classifier decides whether a live URL serves an Astro-built page.
type Classifier interface {
	// Classify fetches the URL and runs detection on the response body.
	// A transport failure returns (false, err); callers treat the error
	// as a logged no-match, never as fatal — one unreachable candidate
	// must not abort the batch.
	Classify(ctx context.Context, url string) (bool, error)
}
