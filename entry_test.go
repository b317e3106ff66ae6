package showscout_test

import (
	"testing"

	"github.com/fwojciec/showscout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrigin(t *testing.T) {
	t.Parallel()

	t.Run("reduces URL to scheme and host", func(t *testing.T) {
		t.Parallel()

		origin, err := showscout.Origin("https://example.com/some/path?q=1")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", origin)
	})

	t.Run("keeps an explicit port", func(t *testing.T) {
		t.Parallel()

		origin, err := showscout.Origin("http://example.com:8080/path")
		require.NoError(t, err)
		assert.Equal(t, "http://example.com:8080", origin)
	})

	t.Run("rejects a URL without an origin", func(t *testing.T) {
		t.Parallel()

		_, err := showscout.Origin("not a url")
		require.Error(t, err)
		assert.Equal(t, showscout.EINVALID, showscout.ErrorCode(err))
	})
}

func TestKnownOrigins(t *testing.T) {
	t.Parallel()

	entries := []*showscout.Entry{
		{URL: "https://example.com/landing"},
		{URL: "https://example.com/other"},
		{URL: "https://docs.example.org"},
		{URL: "::broken::"},
	}

	origins := showscout.KnownOrigins(entries)

	assert.Equal(t, map[string]bool{
		"https://example.com":      true,
		"https://docs.example.org": true,
	}, origins)
}

func TestEntry_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires URL", func(t *testing.T) {
		t.Parallel()

		e := &showscout.Entry{Image: "/images/showcase/example.com.jpg"}
		err := e.Validate()
		assert.Equal(t, showscout.EINVALID, showscout.ErrorCode(err))
	})

	t.Run("requires image path", func(t *testing.T) {
		t.Parallel()

		e := &showscout.Entry{URL: "https://example.com"}
		err := e.Validate()
		assert.Equal(t, showscout.EINVALID, showscout.ErrorCode(err))
	})
}
