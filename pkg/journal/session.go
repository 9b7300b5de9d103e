// Package journal owns the in-memory journal state for one process: the
// entry collection and the profile, both mirrored to persistence.
package journal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/store"
)

// Session is the application-session context. It is opened once and handed
// to whatever needs the stores.
type Session struct {
	Entries *EntryStore
	Profile *ProfileStore

	persistence store.Persistence
}

// Open reads both keys once. Missing keys yield an empty collection and no
// profile; undecodable keys are an error.
func Open(ctx context.Context, p store.Persistence) (*Session, error) {
	if p == nil {
		return nil, errors.New("journal: no persistence configured")
	}
	s := &Session{persistence: p}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload discards in-memory state and reads persistence again.
func (s *Session) Reload(ctx context.Context) error {
	entries, err := s.persistence.LoadEntries(ctx)
	if err != nil {
		return fmt.Errorf("journal: loading entries: %w", err)
	}
	pr, err := s.persistence.LoadProfile(ctx)
	if err != nil {
		return fmt.Errorf("journal: loading profile: %w", err)
	}
	s.Entries = newEntryStore(s.persistence, entries)
	s.Profile = &ProfileStore{p: s.persistence, current: pr}
	slog.Debug("journal: session loaded", "entries", len(entries), "onboarded", pr != nil)
	return nil
}

// Onboarded reports whether a profile exists.
func (s *Session) Onboarded() bool {
	_, ok := s.Profile.Get()
	return ok
}

// Reset erases all journal data, in memory and on disk.
func (s *Session) Reset(ctx context.Context) error {
	if err := s.persistence.Reset(ctx); err != nil {
		return fmt.Errorf("journal: reset: %w", err)
	}
	s.Entries = newEntryStore(s.persistence, nil)
	s.Profile = &ProfileStore{p: s.persistence}
	return nil
}

// Watch forwards storage change notifications, for views that follow
// writes made by other processes.
func (s *Session) Watch(ctx context.Context) (<-chan store.Event, error) {
	return s.persistence.Watch(ctx)
}
