package mock

import (
	"context"

	"github.com/fwojciec/showscout"
)

var _ showscout.Capturer = (*Capturer)(nil)

// Capturer is a mock implementation of showscout.Capturer.
type Capturer struct {
	CaptureFn func(ctx context.Context, url string) (*showscout.Capture, error)
	CloseFn   func() error
}

func (c *Capturer) Capture(ctx context.Context, url string) (*showscout.Capture, error) {
	return c.CaptureFn(ctx, url)
}

func (c *Capturer) Close() error {
	return c.CloseFn()
}
