// Package showscout discovers candidate websites from a GitHub discussion,
// decides which of them are built with Astro, and records qualifying new
// sites as showcase entries (screenshot variants plus a frontmatter
// metadata file). It runs as a periodic batch job, not a service.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, fs/).
package showscout
