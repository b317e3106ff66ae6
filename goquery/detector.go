package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/showscout"
)

// Ensure Detector implements showscout.SiteDetector at compile time.
var _ showscout.SiteDetector = (*Detector)(nil)

// scopedStyleAttr matches Astro's per-component scoped-style marker
// attribute. The suffix is a content hash, so only the prefix is fixed.
var scopedStyleAttr = regexp.MustCompile(`\bdata-astro-cid-[0-9a-zA-Z]+`)

// hoistedScript matches the hashed filename Astro emits for hoisted
// inline scripts.
var hoistedScript = regexp.MustCompile(`(^|/)hoisted\.[0-9a-zA-Z]+\.js$`)

// legacyHashedAsset matches the pre-v2 build output naming scheme for
// processed assets.
var legacyHashedAsset = regexp.MustCompile(`\.[0-9a-f]{8}\.(css|js|png|jpe?g|webp|avif)$`)

// markerSelectors are DOM signals unique to Astro output: the client-side
// island element, the scoped class prefix, hydration/icon/navigation data
// attributes, and the view-transitions fallback meta tag.
var markerSelectors = []string{
	"astro-island",
	`[class*="astro-"]`,
	"[astro-script]",
	"[astro-icon]",
	"[data-astro-prefetch]",
	"[data-astro-reload]",
	"[data-astro-history]",
	`meta[name="astro-view-transitions-fallback"]`,
}

// pageContent is the shared value the detector's checks evaluate against.
// The document is parsed lazily so the raw-text check runs before any DOM
// cost is paid, and parsed at most once.
type pageContent struct {
	raw  string
	base *url.URL
	doc  *goquery.Document
}

func (p *pageContent) document() *goquery.Document {
	if p.doc == nil {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(p.raw))
		if err != nil {
			// goquery's parser is permissive; treat the pathological case
			// as an empty document so checks degrade to no-match.
			doc, _ = goquery.NewDocumentFromReader(strings.NewReader(""))
		}
		p.doc = doc
	}
	return p.doc
}

// check is one detection signal. Checks are evaluated in order and the
// first match wins.
type check func(*pageContent) bool

// Detector identifies Astro-built pages from observable response content.
// Detection is heuristic and best-effort: false negatives are acceptable,
// and no check has side effects.
type Detector struct {
	checks []check
}

// NewDetector creates a Detector with the standard ordered signal checks:
// scoped-style attribute (raw text), generator meta tag, DOM marker
// selectors, then static-asset path conventions.
func NewDetector() *Detector {
	return &Detector{
		checks: []check{
			hasScopedStyleAttr,
			hasAstroGenerator,
			hasMarkerSelector,
			hasAstroAssetPath,
		},
	}
}

// IsAstro reports whether the page content carries any Astro marker.
// pageURL resolves relative asset references; an unparsable pageURL only
// disables resolution, it does not fail detection.
func (d *Detector) IsAstro(html, pageURL string) bool {
	base, err := url.Parse(pageURL)
	if err != nil {
		base = nil
	}
	page := &pageContent{raw: html, base: base}
	for _, c := range d.checks {
		if c(page) {
			return true
		}
	}
	return false
}

// IsStarlight reports whether the page declares the Starlight docs theme.
// This is an independent signal: it neither requires nor implies IsAstro.
func (d *Detector) IsStarlight(html string) bool {
	page := &pageContent{raw: html}
	return hasGeneratorPrefix(page.document(), "Starlight")
}

func hasScopedStyleAttr(p *pageContent) bool {
	return scopedStyleAttr.MatchString(p.raw)
}

func hasAstroGenerator(p *pageContent) bool {
	return hasGeneratorPrefix(p.document(), "Astro")
}

// hasGeneratorPrefix checks meta generator tags for a case-sensitive
// name prefix, e.g. content="Astro v3.1.0".
func hasGeneratorPrefix(doc *goquery.Document, prefix string) bool {
	found := false
	doc.Find(`meta[name="generator"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if content, exists := sel.Attr("content"); exists && strings.HasPrefix(content, prefix) {
			found = true
			return false
		}
		return true
	})
	return found
}

func hasMarkerSelector(p *pageContent) bool {
	doc := p.document()
	for _, selector := range markerSelectors {
		if doc.Find(selector).Length() > 0 {
			return true
		}
	}
	return false
}

// hasAstroAssetPath checks every href/src for Astro's build output
// conventions: the /_astro/ assets directory, hashed hoisted scripts, or
// legacy hashed asset filenames.
func hasAstroAssetPath(p *pageContent) bool {
	found := false
	p.document().Find("[href], [src]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		for _, attr := range []string{"href", "src"} {
			ref, exists := sel.Attr(attr)
			if !exists || ref == "" {
				continue
			}
			if isAstroAssetPath(p.base, ref) {
				found = true
				return false
			}
		}
		return true
	})
	return found
}

func isAstroAssetPath(base *url.URL, ref string) bool {
	u, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return false
	}
	if base != nil {
		u = base.ResolveReference(u)
	}
	path := u.Path
	return strings.HasPrefix(path, "/_astro/") ||
		hoistedScript.MatchString(path) ||
		legacyHashedAsset.MatchString(path)
}
