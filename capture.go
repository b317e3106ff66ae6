package showscout

import "context"

// Capture holds the observable results of rendering one site.
type Capture struct {
	Title      string
	Starlight  bool
	Screenshot []byte // raw PNG buffer
}

// Capturer renders an accepted URL in a browser and screenshots it.
// Implementations own a browser session shared across captures; each
// Capture call must open an isolated page context and release it on
// every exit path.
type Capturer interface {
	// Capture navigates to the URL, waits for the page to visually
	// settle, reads the title, probes for the Starlight sub-theme, and
	// takes a full-page screenshot. Any failure aborts only this URL.
	Capture(ctx context.Context, url string) (*Capture, error)

	// Close releases the browser session. Must be called exactly once,
	// after all captures complete.
	Close() error
}

// ImageEncoder persists screenshot variants for a captured site.
type ImageEncoder interface {
	// WriteVariants re-encodes a raw screenshot into a high-density
	// variant and a standard-density variant capped at half its width,
	// both keyed by hostname under the image directory. It returns the
	// path of the standard-density variant for use in the entry record.
	// No variant path is returned unless both writes succeed.
	WriteVariants(screenshot []byte, hostname string) (string, error)
}
