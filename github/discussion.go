// Package github fetches rendered discussion content from the GitHub
// GraphQL API.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/showscout"
)

// DefaultPageSize is the number of comments requested per page.
const DefaultPageSize = 100

// DefaultTimeout bounds a single GraphQL request.
const DefaultTimeout = 30 * time.Second

const defaultEndpoint = "https://api.github.com/graphql"

const discussionQuery = `query($org: String!, $repo: String!, $number: Int!, $pageSize: Int!, $cursor: String) {
  repository(owner: $org, name: $repo) {
    discussion(number: $number) {
      bodyHTML
      comments(first: $pageSize, after: $cursor) {
        pageInfo {
          endCursor
          hasNextPage
        }
        nodes {
          bodyHTML
        }
      }
    }
  }
}`

// Ensure DiscussionService implements showscout.DiscussionService at compile time.
var _ showscout.DiscussionService = (*DiscussionService)(nil)

// DiscussionService pages through a GitHub discussion's rendered content.
// Failures are returned to the caller: a partial candidate set would
// silently under-report, so nothing here is retried or swallowed.
type DiscussionService struct {
	client   *http.Client
	endpoint string
	token    string
	pageSize int
}

// Option configures a DiscussionService.
type Option func(*DiscussionService)

// WithEndpoint overrides the GraphQL endpoint. Used in tests.
func WithEndpoint(endpoint string) Option {
	return func(s *DiscussionService) {
		s.endpoint = endpoint
	}
}

// WithPageSize overrides the comments-per-page request size.
func WithPageSize(n int) Option {
	return func(s *DiscussionService) {
		s.pageSize = n
	}
}

// NewDiscussionService creates a DiscussionService authenticating with the
// given bearer token.
func NewDiscussionService(token string, opts ...Option) *DiscussionService {
	s := &DiscussionService{
		endpoint: defaultEndpoint,
		token:    token,
		pageSize: DefaultPageSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.client = &http.Client{Timeout: DefaultTimeout}
	return s
}

// FetchAllCommentsHTML returns the discussion's root post HTML followed by
// every comment's HTML in server order, concatenated into one blob. Pages
// are fetched strictly sequentially since each request depends on the
// previous page's end cursor.
func (s *DiscussionService) FetchAllCommentsHTML(ctx context.Context, org, repo string, number int) (string, error) {
	var b strings.Builder
	var cursor *string

	for {
		page, err := s.fetchPage(ctx, org, repo, number, cursor)
		if err != nil {
			return "", err
		}

		// The root post is a content source of the same kind as a comment;
		// it leads the blob so downstream extraction sees it first.
		if cursor == nil {
			b.WriteString(page.BodyHTML)
			b.WriteString("\n")
		}
		for _, node := range page.Comments.Nodes {
			b.WriteString(node.BodyHTML)
			b.WriteString("\n")
		}

		if !page.Comments.PageInfo.HasNextPage {
			break
		}
		cursor = &page.Comments.PageInfo.EndCursor
	}

	return b.String(), nil
}

type discussionPage struct {
	BodyHTML string `json:"bodyHTML"`
	Comments struct {
		PageInfo struct {
			EndCursor   string `json:"endCursor"`
			HasNextPage bool   `json:"hasNextPage"`
		} `json:"pageInfo"`
		Nodes []struct {
			BodyHTML string `json:"bodyHTML"`
		} `json:"nodes"`
	} `json:"comments"`
}

type graphQLResponse struct {
	Data struct {
		Repository struct {
			Discussion *discussionPage `json:"discussion"`
		} `json:"repository"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func (s *DiscussionService) fetchPage(ctx context.Context, org, repo string, number int, cursor *string) (*discussionPage, error) {
	payload, err := json.Marshal(map[string]any{
		"query": discussionQuery,
		"variables": map[string]any{
			"org":      org,
			"repo":     repo,
			"number":   number,
			"pageSize": s.pageSize,
			"cursor":   cursor,
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("discussion query: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, showscout.Errorf(showscout.EUNAUTHORIZED, "GitHub API rejected the token (HTTP %d)", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, showscout.Errorf(showscout.EINTERNAL, "GitHub API returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var gr graphQLResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return nil, fmt.Errorf("decoding discussion response: %w", err)
	}
	if len(gr.Errors) > 0 {
		return nil, showscout.Errorf(showscout.EINTERNAL, "GraphQL error: %s", gr.Errors[0].Message)
	}
	if gr.Data.Repository.Discussion == nil {
		return nil, showscout.Errorf(showscout.ENOTFOUND, "discussion %s/%s#%d not found", org, repo, number)
	}

	return gr.Data.Repository.Discussion, nil
}
