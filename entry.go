package showscout

import (
	"context"
	"net/url"
	"time"
)

// Entry represents a persisted showcase record for one site. Entries are
// keyed by the site's hostname and are created exactly once; this system
// never edits or removes an existing entry. The set of stored entries is
// the durable dedup ledger across runs — there is no other database.
type Entry struct {
	Title      string    `yaml:"title"`
	Image      string    `yaml:"image"`
	URL        string    `yaml:"url"`
	DateAdded  time.Time `yaml:"dateAdded"`
	Categories []string  `yaml:"categories,omitempty"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *Entry) Validate() error {
	if e.URL == "" {
		return Errorf(EINVALID, "entry URL required")
	}
	if e.Image == "" {
		return Errorf(EINVALID, "entry image path required")
	}
	return nil
}

// EntryStore reads and appends showcase entries in a content directory.
type EntryStore interface {
	// ListEntries reads every persisted entry. Files that do not parse as
	// entry records are skipped, not reported as errors.
	ListEntries(ctx context.Context) ([]*Entry, error)

	// CreateEntry persists a new entry keyed by the hostname of its URL.
	// An existing record for the same hostname is overwritten.
	CreateEntry(ctx context.Context, entry *Entry) error
}

// Origin reduces a URL to its scheme+host identity, the unit used for
// dedup and deny-list decisions. Two paths on the same origin are one
// decision unit.
func Origin(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", Errorf(EINVALID, "URL %q has no origin", rawURL)
	}
	return u.Scheme + "://" + u.Host, nil
}

// KnownOrigins reduces stored entries to the set of their URL origins.
// Entries whose stored URL no longer parses are ignored.
func KnownOrigins(entries []*Entry) map[string]bool {
	origins := make(map[string]bool, len(entries))
	for _, e := range entries {
		origin, err := Origin(e.URL)
		if err != nil {
			continue
		}
		origins[origin] = true
	}
	return origins
}
