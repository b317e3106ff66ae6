// Package slog provides logging decorators for the domain interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/showscout"
)

// Ensure LoggingClassifier implements showscout.Classifier.
var _ showscout.Classifier = (*LoggingClassifier)(nil)

// LoggingClassifier wraps a Classifier with per-candidate logging.
type LoggingClassifier struct {
	next   showscout.Classifier
	logger *slog.Logger
}

// NewLoggingClassifier creates a new LoggingClassifier.
func NewLoggingClassifier(next showscout.Classifier, logger *slog.Logger) *LoggingClassifier {
	return &LoggingClassifier{next: next, logger: logger}
}

// Classify delegates to the wrapped classifier and logs the outcome.
func (c *LoggingClassifier) Classify(ctx context.Context, url string) (match bool, err error) {
	defer func(begin time.Time) {
		c.logger.Info("classify",
			"url", url,
			"match", match,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Classify(ctx, url)
}
