package rod

import (
	"context"
	"strings"

	"github.com/fwojciec/showscout"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Fixed viewport so screenshots are visually comparable across sites.
const (
	viewportWidth  = 1280
	viewportHeight = 720
	deviceScale    = 1.4
)

// settleScript waits for client-side animations to finish before the
// screenshot is taken: a fixed delay, a next-paint yield, then an
// idle-callback yield with a bounded timeout. This is a heuristic grace
// period, not a correctness guarantee.
const settleScript = `() => new Promise((resolve) => {
	setTimeout(() => {
		requestAnimationFrame(() => {
			if (typeof requestIdleCallback === 'function') {
				requestIdleCallback(() => resolve(), { timeout: 2000 });
			} else {
				setTimeout(resolve, 2000);
			}
		});
	}, 1500);
})`

// Ensure Capturer implements showscout.Capturer at compile time.
var _ showscout.Capturer = (*Capturer)(nil)

// Capturer renders accepted URLs one page at a time on a shared browser
// session and takes full-page screenshots.
type Capturer struct {
	manager *BrowserManager
}

// NewCapturer launches a browser session for the run. Close must be called
// exactly once, after all captures complete.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewCapturer(opts ...ManagerOption) (*Capturer, error) {
	manager, err := NewBrowserManager(opts...)
	if err != nil {
		return nil, err
	}
	return &Capturer{manager: manager}, nil
}

// Capture opens an isolated page context, navigates to the URL, waits for
// the page to settle, reads the title, probes for the Starlight sub-theme,
// and takes a full-page screenshot. The page context is released on every
// exit path; a failure aborts only this URL.
func (c *Capturer) Capture(ctx context.Context, url string) (*showscout.Capture, error) {
	page, err := c.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	defer page.Close()
	c.manager.PageOpened()

	page = page.Context(ctx)

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             viewportWidth,
		Height:            viewportHeight,
		DeviceScaleFactor: deviceScale,
	}); err != nil {
		return nil, err
	}

	if err := page.Navigate(url); err != nil {
		return nil, err
	}
	if err := page.WaitLoad(); err != nil {
		return nil, err
	}
	if _, err := page.Evaluate(rod.Eval(settleScript).ByPromise()); err != nil {
		return nil, err
	}

	info, err := page.Info()
	if err != nil {
		return nil, err
	}

	starlight, err := hasStarlightGenerator(page)
	if err != nil {
		return nil, err
	}

	screenshot, err := page.Screenshot(true, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return nil, err
	}

	return &showscout.Capture{
		Title:      info.Title,
		Starlight:  starlight,
		Screenshot: screenshot,
	}, nil
}

// Close releases the browser session.
func (c *Capturer) Close() error {
	return c.manager.Close()
}

// hasStarlightGenerator checks every generator meta element on the live
// page for the Starlight theme's name prefix.
func hasStarlightGenerator(page *rod.Page) (bool, error) {
	elements, err := page.Elements(`meta[name="generator"]`)
	if err != nil {
		return false, err
	}
	for _, el := range elements {
		content, err := el.Attribute("content")
		if err != nil {
			return false, err
		}
		if content != nil && strings.HasPrefix(*content, "Starlight") {
			return true, nil
		}
	}
	return false, nil
}
