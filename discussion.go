package showscout

import "context"

// DiscussionService retrieves the rendered content of a GitHub discussion.
type DiscussionService interface {
	// FetchAllCommentsHTML pages through a discussion and returns its root
	// post's rendered HTML followed by every comment's rendered HTML, in
	// server order, concatenated into one blob. Any transport or
	// authorization failure is returned as an error: a partial candidate
	// set would silently under-report, so the caller must treat failure
	// as fatal for the run.
	FetchAllCommentsHTML(ctx context.Context, org, repo string, number int) (string, error)
}

// LinkExtractor produces candidate URLs from rendered discussion HTML.
type LinkExtractor interface {
	// ExtractLinks returns every absolute hyperlink target in the HTML,
	// deduplicated by exact string, in first-occurrence order. Malformed
	// markup is tolerated; extraction never fails on bad input.
	ExtractLinks(html string) ([]string, error)
}
