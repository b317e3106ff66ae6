// Package mock provides function-field mock implementations of the domain
// interfaces for use in tests.
package mock

import (
	"context"

	"github.com/fwojciec/showscout"
)

var _ showscout.DiscussionService = (*DiscussionService)(nil)

// DiscussionService is a mock implementation of showscout.DiscussionService.
type DiscussionService struct {
	FetchAllCommentsHTMLFn func(ctx context.Context, org, repo string, number int) (string, error)
}

func (s *DiscussionService) FetchAllCommentsHTML(ctx context.Context, org, repo string, number int) (string, error) {
	return s.FetchAllCommentsHTMLFn(ctx, org, repo, number)
}
