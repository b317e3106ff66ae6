// Package fs provides file-based storage for showcase entries. Each entry
// is one markdown file whose YAML frontmatter holds the entry fields; the
// directory of files is the only durable ledger across runs.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/showscout"
	"gopkg.in/yaml.v3"
)

const frontmatterDelimiter = "---"

// Ensure Store implements showscout.EntryStore at compile time.
var _ showscout.EntryStore = (*Store)(nil)

// Store reads and appends hostname-keyed entry records in a directory.
type Store struct {
	dir string
}

// NewStore creates a Store over the given content directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// ListEntries reads every markdown record in the content directory. Files
// without the .md suffix or with headers that do not parse are skipped;
// only the directory read itself can fail. A missing directory reads as
// empty, so a first run against a fresh checkout works.
func (s *Store) ListEntries(ctx context.Context) ([]*showscout.Entry, error) {
	files, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []*showscout.Entry
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".md") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, f.Name()))
		if err != nil {
			continue
		}
		entry, err := ParseEntry(data)
		if err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// CreateEntry writes a new record named by the hostname of the entry's
// URL. An existing record for the same hostname is overwritten; there is
// no merge.
func (s *Store) CreateEntry(ctx context.Context, entry *showscout.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	u, err := url.Parse(entry.URL)
	if err != nil || u.Hostname() == "" {
		return showscout.Errorf(showscout.EINVALID, "entry URL %q has no hostname", entry.URL)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	content, err := FormatEntry(entry)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, u.Hostname()+".md"), []byte(content), 0644)
}

// FormatEntry renders an entry as a frontmatter-only markdown file.
func FormatEntry(entry *showscout.Entry) (string, error) {
	header, err := yaml.Marshal(entry)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(frontmatterDelimiter)
	b.WriteString("\n")
	b.Write(header)
	b.WriteString(frontmatterDelimiter)
	b.WriteString("\n")
	return b.String(), nil
}

// ParseEntry reads an entry back from a frontmatter markdown file.
func ParseEntry(data []byte) (*showscout.Entry, error) {
	content := string(data)
	if !strings.HasPrefix(content, frontmatterDelimiter+"\n") {
		return nil, showscout.Errorf(showscout.EINVALID, "missing frontmatter header")
	}

	rest := strings.TrimPrefix(content, frontmatterDelimiter+"\n")
	end := strings.Index(rest, "\n"+frontmatterDelimiter)
	if end < 0 {
		return nil, showscout.Errorf(showscout.EINVALID, "unterminated frontmatter header")
	}

	var entry showscout.Entry
	if err := yaml.Unmarshal([]byte(rest[:end+1]), &entry); err != nil {
		return nil, showscout.Errorf(showscout.EINVALID, "invalid frontmatter: %v", err)
	}
	return &entry, nil
}
