package scan_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/fwojciec/showscout/scan"
	"github.com/stretchr/testify/assert"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFilterCandidates(t *testing.T) {
	t.Parallel()

	t.Run("drops denied and known origins", func(t *testing.T) {
		t.Parallel()

		urls := []string{
			"https://denied.example.com/page",
			"https://known.example.com/page",
			"https://fresh.example.com/page",
		}
		deny := map[string]bool{"https://denied.example.com": true}
		known := map[string]bool{"https://known.example.com": true}

		kept := scan.FilterCandidates(urls, deny, known, discardLogger())
		assert.Equal(t, []string{"https://fresh.example.com/page"}, kept)
	})

	t.Run("matches on origin, not full URL", func(t *testing.T) {
		t.Parallel()

		urls := []string{"https://known.example.com/a", "https://known.example.com/b"}
		known := map[string]bool{"https://known.example.com": true}

		kept := scan.FilterCandidates(urls, nil, known, discardLogger())
		assert.Empty(t, kept)
	})

	t.Run("drops invalid URLs without raising", func(t *testing.T) {
		t.Parallel()

		urls := []string{"::not-a-url::", "relative/path", "https://ok.example.com"}

		kept := scan.FilterCandidates(urls, nil, nil, discardLogger())
		assert.Equal(t, []string{"https://ok.example.com"}, kept)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		urls := []string{
			"https://a.example.com",
			"https://denied.example.com",
			"https://b.example.com/x",
		}
		deny := map[string]bool{"https://denied.example.com": true}
		known := map[string]bool{}

		once := scan.FilterCandidates(urls, deny, known, discardLogger())
		twice := scan.FilterCandidates(once, deny, known, discardLogger())
		assert.Equal(t, once, twice)
	})
}

func TestDenySet(t *testing.T) {
	t.Parallel()

	deny := scan.DenySet(scan.DefaultDenyOrigins, []string{"https://extra.example.com"})
	assert.True(t, deny["https://github.com"])
	assert.True(t, deny["https://extra.example.com"])
	assert.False(t, deny["https://fresh.example.com"])
}
