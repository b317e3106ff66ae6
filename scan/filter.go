package scan

import (
	"log/slog"

	"github.com/fwojciec/showscout"
)

// FilterCandidates drops every candidate whose origin is in the deny list
// or already known from persisted entries. A candidate that does not parse
// as a URL is dropped with a warning; bad input never aborts the run.
// Filtering an already-filtered list with the same sets is a no-op.
func FilterCandidates(urls []string, deny, known map[string]bool, logger *slog.Logger) []string {
	var kept []string
	for _, u := range urls {
		origin, err := showscout.Origin(u)
		if err != nil {
			logger.Warn("dropping unparsable candidate", "url", u, "err", err)
			continue
		}
		if deny[origin] || known[origin] {
			continue
		}
		kept = append(kept, u)
	}
	return kept
}
