package goquery_test

import (
	"testing"

	"github.com/fwojciec/showscout"
	"github.com/fwojciec/showscout/goquery"
	"github.com/stretchr/testify/assert"
)

// Ensure Detector implements showscout.SiteDetector at compile time.
var _ showscout.SiteDetector = (*goquery.Detector)(nil)

func TestDetector_IsAstro(t *testing.T) {
	t.Parallel()

	t.Run("detects scoped-style marker attribute with arbitrary hash", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Site</title></head>
<body>
<div data-astro-cid-j7pv25f6 class="hero">Welcome</div>
</body>
</html>`

		d := goquery.NewDetector()
		assert.True(t, d.IsAstro(html, "https://example.com"))
	})

	t.Run("detects generator meta tag with version suffix", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><meta name="generator" content="Astro v3"></head>
<body><p>Nothing else here.</p></body>
</html>`

		d := goquery.NewDetector()
		assert.True(t, d.IsAstro(html, "https://example.com"))
	})

	t.Run("generator prefix match is case-sensitive", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta name="generator" content="astro v3"></head><body></body></html>`

		d := goquery.NewDetector()
		assert.False(t, d.IsAstro(html, "https://example.com"))
	})

	t.Run("detects island custom element", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><astro-island component-url="/c.js"></astro-island></body></html>`

		d := goquery.NewDetector()
		assert.True(t, d.IsAstro(html, "https://example.com"))
	})

	t.Run("detects scoped class prefix", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main class="wrapper astro-ZNPAN3VW"></main></body></html>`

		d := goquery.NewDetector()
		assert.True(t, d.IsAstro(html, "https://example.com"))
	})

	t.Run("detects prefetch data attribute", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><a href="/about" data-astro-prefetch>About</a></body></html>`

		d := goquery.NewDetector()
		assert.True(t, d.IsAstro(html, "https://example.com"))
	})

	t.Run("detects view-transitions fallback meta tag", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta name="astro-view-transitions-fallback" content="animate"></head><body></body></html>`

		d := goquery.NewDetector()
		assert.True(t, d.IsAstro(html, "https://example.com"))
	})

	t.Run("detects assets directory as only signal", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><img src="/_astro/x.abcd1234.png" alt=""></body></html>`

		d := goquery.NewDetector()
		assert.True(t, d.IsAstro(html, "https://example.com"))
	})

	t.Run("detects assets directory via relative reference", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><link rel="stylesheet" href="_astro/index.css"></head><body></body></html>`

		d := goquery.NewDetector()
		assert.True(t, d.IsAstro(html, "https://example.com/"))
	})

	t.Run("detects hashed hoisted script", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><script src="/hoisted.8a31c6f2.js"></script></head><body></body></html>`

		d := goquery.NewDetector()
		assert.True(t, d.IsAstro(html, "https://example.com"))
	})

	t.Run("detects legacy hashed asset with known extension", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><link rel="stylesheet" href="/assets/site.1a2b3c4d.css"></head><body></body></html>`

		d := goquery.NewDetector()
		assert.True(t, d.IsAstro(html, "https://example.com"))
	})

	t.Run("ignores hashed asset with unknown extension", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><link rel="manifest" href="/assets/site.1a2b3c4d.json"></head><body></body></html>`

		d := goquery.NewDetector()
		assert.False(t, d.IsAstro(html, "https://example.com"))
	})

	t.Run("returns false for a plain document", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Plain</title><meta name="generator" content="Hugo 0.120"></head>
<body><img src="/images/logo.png"><a href="/about">About</a></body>
</html>`

		d := goquery.NewDetector()
		assert.False(t, d.IsAstro(html, "https://example.com"))
	})

	t.Run("returns false for empty content", func(t *testing.T) {
		t.Parallel()

		d := goquery.NewDetector()
		assert.False(t, d.IsAstro("", "https://example.com"))
	})
}

func TestDetector_IsStarlight(t *testing.T) {
	t.Parallel()

	t.Run("detects Starlight generator meta", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<meta name="generator" content="Astro v4.2">
<meta name="generator" content="Starlight v0.15.0">
</head><body></body></html>`

		d := goquery.NewDetector()
		assert.True(t, d.IsStarlight(html))
	})

	t.Run("plain Astro page is not Starlight", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta name="generator" content="Astro v4.2"></head><body></body></html>`

		d := goquery.NewDetector()
		assert.False(t, d.IsStarlight(html))
	})
}
