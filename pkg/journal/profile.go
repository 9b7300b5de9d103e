package journal

import (
	"context"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/profile"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/store"
)

// ProfileStore holds the single user profile, absent until onboarding.
type ProfileStore struct {
	p       store.Persistence
	current *profile.Profile
}

func (s *ProfileStore) Get() (profile.Profile, bool) {
	if s.current == nil {
		return profile.Profile{}, false
	}
	return *s.current, true
}

// Set replaces the profile wholesale and persists it. Callers merge partial
// edits themselves.
func (s *ProfileStore) Set(ctx context.Context, pr profile.Profile) error {
	s.current = &pr
	return s.p.StoreProfile(ctx, pr)
}
