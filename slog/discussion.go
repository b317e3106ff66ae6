package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/showscout"
)

// Ensure LoggingDiscussionService implements showscout.DiscussionService.
var _ showscout.DiscussionService = (*LoggingDiscussionService)(nil)

// LoggingDiscussionService wraps a DiscussionService with fetch logging.
type LoggingDiscussionService struct {
	next   showscout.DiscussionService
	logger *slog.Logger
}

// NewLoggingDiscussionService creates a new LoggingDiscussionService.
func NewLoggingDiscussionService(next showscout.DiscussionService, logger *slog.Logger) *LoggingDiscussionService {
	return &LoggingDiscussionService{next: next, logger: logger}
}

// FetchAllCommentsHTML delegates to the wrapped service and logs the operation.
func (s *LoggingDiscussionService) FetchAllCommentsHTML(ctx context.Context, org, repo string, number int) (html string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("discussion fetch",
			"org", org,
			"repo", repo,
			"number", number,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchAllCommentsHTML(ctx, org, repo, number)
}
