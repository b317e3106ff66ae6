// Package scan orchestrates one showcase discovery run: discussion fetch,
// candidate extraction and filtering, per-URL classification, and the
// per-site capture workflow.
package scan

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/fwojciec/showscout"
)

// Scanner runs the discovery-and-classification pipeline. All stages are
// strictly sequential: discussion pages depend on each other's cursors,
// classification keeps load on third-party hosts predictable, and capture
// shares one browser session so failures stay attributable to one URL.
type Scanner struct {
	Discussions showscout.DiscussionService
	Extractor   showscout.LinkExtractor
	Classifier  showscout.Classifier
	Capturer    showscout.Capturer
	Images      showscout.ImageEncoder
	Entries     showscout.EntryStore
	Logger      *slog.Logger

	// Discussion coordinates.
	Org        string
	Repo       string
	Discussion int

	// Deny is the process-lifetime set of excluded origins.
	Deny map[string]bool

	// DryRun classifies candidates but skips capture and persistence.
	DryRun bool

	// Now returns the entry timestamp. Defaults to time.Now.
	Now func() time.Time
}

// Run executes one scan. Only discussion retrieval is fatal: a partial
// candidate set would silently under-report, while every per-candidate
// failure is recorded in the report and the run continues.
func (s *Scanner) Run(ctx context.Context) (*Report, error) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	entries, err := s.Entries.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading existing entries: %w", err)
	}
	known := showscout.KnownOrigins(entries)

	html, err := s.Discussions.FetchAllCommentsHTML(ctx, s.Org, s.Repo, s.Discussion)
	if err != nil {
		return nil, fmt.Errorf("fetching discussion %s/%s#%d: %w", s.Org, s.Repo, s.Discussion, err)
	}

	urls, err := s.Extractor.ExtractLinks(html)
	if err != nil {
		return nil, fmt.Errorf("extracting candidates: %w", err)
	}

	candidates := FilterCandidates(urls, s.Deny, known, logger)
	logger.Info("candidates filtered",
		"extracted", len(urls),
		"known", len(known),
		"remaining", len(candidates),
	)

	report := &Report{}
	for _, u := range candidates {
		ok, err := s.Classifier.Classify(ctx, u)
		if err != nil {
			// Best-effort check: an unreachable candidate is a no-match,
			// never a run failure.
			logger.Warn("classification failed", "url", u, "err", err)
		}
		if ok {
			report.Accepted = append(report.Accepted, u)
		} else {
			report.Rejected = append(report.Rejected, u)
		}
	}

	if s.DryRun {
		return report, nil
	}

	seenHosts := make(map[string]bool)
	for _, u := range report.Accepted {
		s.captureOne(ctx, u, report, seenHosts, logger)
	}

	return report, nil
}

// captureOne drives capture and persistence for a single accepted URL.
// Any failure records the URL as failed and returns; the next URL is
// unaffected.
func (s *Scanner) captureOne(ctx context.Context, rawURL string, report *Report, seenHosts map[string]bool, logger *slog.Logger) {
	capture, err := s.Capturer.Capture(ctx, rawURL)
	if err != nil {
		logger.Warn("capture failed", "url", rawURL, "err", err)
		report.Failed = append(report.Failed, rawURL)
		return
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		logger.Warn("capture succeeded but URL has no hostname", "url", rawURL)
		report.Failed = append(report.Failed, rawURL)
		return
	}
	hostname := u.Hostname()

	// Records are keyed by hostname, so a second URL on the same host
	// replaces the first. Known limitation; surfaced in the log.
	if seenHosts[hostname] {
		logger.Warn("hostname collision, overwriting earlier record", "hostname", hostname, "url", rawURL)
	}
	seenHosts[hostname] = true

	imagePath, err := s.Images.WriteVariants(capture.Screenshot, hostname)
	if err != nil {
		logger.Warn("writing image variants failed", "url", rawURL, "err", err)
		report.Failed = append(report.Failed, rawURL)
		return
	}

	title := capture.Title
	if title == "" {
		title = hostname
	}

	now := s.Now
	if now == nil {
		now = time.Now
	}

	entry := &showscout.Entry{
		Title:     title,
		Image:     imagePath,
		URL:       rawURL,
		DateAdded: now(),
	}
	if capture.Starlight {
		entry.Categories = []string{"starlight"}
	}

	if err := s.Entries.CreateEntry(ctx, entry); err != nil {
		logger.Warn("writing entry record failed", "url", rawURL, "err", err)
		report.Failed = append(report.Failed, rawURL)
		return
	}

	logger.Info("site captured", "url", rawURL, "title", title, "starlight", capture.Starlight)
	report.Captured = append(report.Captured, CapturedSite{URL: rawURL, Title: title})
}
