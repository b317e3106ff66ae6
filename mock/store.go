package mock

import (
	"context"

	"github.com/fwojciec/showscout"
)

var _ showscout.EntryStore = (*EntryStore)(nil)

// EntryStore is a mock implementation of showscout.EntryStore.
type EntryStore struct {
	ListEntriesFn func(ctx context.Context) ([]*showscout.Entry, error)
	CreateEntryFn func(ctx context.Context, entry *showscout.Entry) error
}

func (s *EntryStore) ListEntries(ctx context.Context) ([]*showscout.Entry, error) {
	return s.ListEntriesFn(ctx)
}

func (s *EntryStore) CreateEntry(ctx context.Context, entry *showscout.Entry) error {
	return s.CreateEntryFn(ctx, entry)
}
