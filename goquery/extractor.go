// Package goquery provides HTML-level implementations: candidate link
// extraction from rendered discussion content and Astro marker detection.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/showscout"
)

// Ensure Extractor implements showscout.LinkExtractor at compile time.
var _ showscout.LinkExtractor = (*Extractor)(nil)

// Extractor pulls candidate URLs out of rendered discussion HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractLinks parses the HTML and returns every absolute http(s) hyperlink
// target, deduplicated by exact string, in first-occurrence order. GitHub
// renders comment links with absolute hrefs, so relative targets are
// dropped rather than resolved. Malformed markup is tolerated; the parse
// is best-effort and never fatal.
func (e *Extractor) ExtractLinks(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, showscout.Errorf(showscout.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []string

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}

		u, err := url.Parse(href)
		if err != nil {
			return
		}
		if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
			return
		}

		if seen[href] {
			return
		}
		seen[href] = true
		links = append(links, href)
	})

	return links, nil
}
