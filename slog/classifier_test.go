package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/showscout/mock"
	shslog "github.com/fwojciec/showscout/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingClassifier_Classify(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	next := &mock.Classifier{
		ClassifyFn: func(ctx context.Context, url string) (bool, error) {
			return true, nil
		},
	}

	c := shslog.NewLoggingClassifier(next, logger)
	match, err := c.Classify(context.Background(), "https://example.com")
	require.NoError(t, err)
	assert.True(t, match)

	out := buf.String()
	assert.Contains(t, out, "classify")
	assert.Contains(t, out, "https://example.com")
	assert.Contains(t, out, "match=true")
}

func TestLoggingDiscussionService_FetchAllCommentsHTML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	next := &mock.DiscussionService{
		FetchAllCommentsHTMLFn: func(ctx context.Context, org, repo string, number int) (string, error) {
			return "<p>body</p>", nil
		},
	}

	s := shslog.NewLoggingDiscussionService(next, logger)
	html, err := s.FetchAllCommentsHTML(context.Background(), "org", "repo", 7)
	require.NoError(t, err)
	assert.Equal(t, "<p>body</p>", html)

	out := buf.String()
	assert.Contains(t, out, "discussion fetch")
	assert.Contains(t, out, "number=7")
}
