package mock

import (
	"context"

	"github.com/fwojciec/showscout"
)

var _ showscout.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of showscout.Classifier.
type Classifier struct {
	ClassifyFn func(ctx context.Context, url string) (bool, error)
}

func (c *Classifier) Classify(ctx context.Context, url string) (bool, error) {
	return c.ClassifyFn(ctx, url)
}

var _ showscout.SiteDetector = (*SiteDetector)(nil)

// SiteDetector is a mock implementation of showscout.SiteDetector.
type SiteDetector struct {
	IsAstroFn     func(html, pageURL string) bool
	IsStarlightFn func(html string) bool
}

func (d *SiteDetector) IsAstro(html, pageURL string) bool {
	return d.IsAstroFn(html, pageURL)
}

func (d *SiteDetector) IsStarlight(html string) bool {
	return d.IsStarlightFn(html)
}
