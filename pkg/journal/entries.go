package journal

import (
	"context"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/entry"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/store"
)

// EntryStore is the ordered in-memory entry collection. Every mutation is
// written through to persistence before it returns. Ids that do not exist
// are silently ignored.
type EntryStore struct {
	p       store.Persistence
	entries []*entry.Entry
}

func newEntryStore(p store.Persistence, entries []*entry.Entry) *EntryStore {
	if entries == nil {
		entries = []*entry.Entry{}
	}
	return &EntryStore{p: p, entries: entries}
}

// Save replaces the entry with the same id in place, or prepends e when the
// id is new.
func (s *EntryStore) Save(ctx context.Context, e *entry.Entry) error {
	cp := e.Clone()
	if i := s.index(e.ID); i >= 0 {
		s.entries[i] = cp
	} else {
		s.entries = append([]*entry.Entry{cp}, s.entries...)
	}
	return s.flush(ctx)
}

// Delete removes the entry with id. It reports false, without writing, when
// no such entry exists.
func (s *EntryStore) Delete(ctx context.Context, id string) (bool, error) {
	i := s.index(id)
	if i < 0 {
		return false, nil
	}
	s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
	return true, s.flush(ctx)
}

// ToggleFavorite flips the favorite flag and returns the updated entry.
func (s *EntryStore) ToggleFavorite(ctx context.Context, id string) (*entry.Entry, bool, error) {
	return s.Update(ctx, id, func(e *entry.Entry) {
		e.IsFavorite = !e.IsFavorite
	})
}

// Update applies fn to the stored entry with id and persists the result.
func (s *EntryStore) Update(ctx context.Context, id string, fn func(*entry.Entry)) (*entry.Entry, bool, error) {
	i := s.index(id)
	if i < 0 {
		return nil, false, nil
	}
	fn(s.entries[i])
	return s.entries[i].Clone(), true, s.flush(ctx)
}

// All returns a copy of the collection in storage order.
func (s *EntryStore) All() []*entry.Entry {
	out := make([]*entry.Entry, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Clone()
	}
	return out
}

func (s *EntryStore) Get(id string) (*entry.Entry, bool) {
	if i := s.index(id); i >= 0 {
		return s.entries[i].Clone(), true
	}
	return nil, false
}

func (s *EntryStore) Len() int {
	return len(s.entries)
}

func (s *EntryStore) index(id string) int {
	if id == "" {
		return -1
	}
	for i, e := range s.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// flush overwrites the stored collection. On failure the in-memory state
// keeps the mutation so the next successful write catches up.
func (s *EntryStore) flush(ctx context.Context) error {
	return s.p.StoreEntries(ctx, s.entries)
}
