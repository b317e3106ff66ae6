package scan

import (
	"fmt"
	"net/url"
	"strings"
)

// CapturedSite identifies one successfully captured site.
type CapturedSite struct {
	URL   string
	Title string
}

// Report accumulates the outcome of one run. The four lists are disjoint:
// every candidate that survives filtering lands in Accepted or Rejected,
// and every accepted URL lands in Captured or Failed.
type Report struct {
	Accepted []string
	Rejected []string
	Captured []CapturedSite
	Failed   []string
}

// Summary renders the run outcome as a change-description document suitable
// for a pull-request body. Each section is omitted entirely when its list
// is empty.
func (r *Report) Summary() string {
	var sections []string

	if len(r.Captured) > 0 {
		var b strings.Builder
		b.WriteString("## Sites added\n\n")
		for _, site := range r.Captured {
			fmt.Fprintf(&b, "- [%s](%s)\n", site.Title, site.URL)
		}
		sections = append(sections, b.String())
	}

	if len(r.Failed) > 0 {
		var b strings.Builder
		b.WriteString("## Failed captures\n\nThese looked like Astro sites but could not be captured; follow up manually.\n\n")
		for _, u := range r.Failed {
			fmt.Fprintf(&b, "- %s\n", u)
		}
		sections = append(sections, b.String())
	}

	if len(r.Rejected) > 0 {
		short := make([]string, len(r.Rejected))
		for i, u := range r.Rejected {
			short[i] = shortLink(u)
		}
		sections = append(sections,
			"## Did not match\n\nThese did not look like Astro sites; review manually.\n\n"+
				strings.Join(short, ", ")+"\n")
	}

	return strings.Join(sections, "\n")
}

// shortLink strips the scheme and trailing slash for the compact non-match
// listing.
func shortLink(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return strings.TrimSuffix(u.Host+u.Path, "/")
}
