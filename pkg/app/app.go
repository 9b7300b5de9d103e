package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/entry"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/export"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/heatmap"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/insight"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/journal"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/lock"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/profile"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/query"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/store"
)

// Service provides the journal operations shared by the CLI and the MCP
// server. It wraps the session stores and the assistant so both surfaces
// apply the same rules.
type Service struct {
	Session   *journal.Session
	Assistant *insight.Assistant
	WeekStart time.Weekday

	// Now and NewID are replaced in tests.
	Now   func() time.Time
	NewID func() string
}

var (
	ErrNotOnboarded     = errors.New("app: journal is not set up, run `journal init`")
	ErrAlreadyOnboarded = errors.New("app: journal is already set up")
	ErrEntryNotFound    = errors.New("app: entry not found")
	ErrNothingToExport  = errors.New(export.EmptyMessage)
)

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

func (s *Service) assistant() *insight.Assistant {
	if s.Assistant == nil {
		s.Assistant = insight.New(nil, 0, nil)
	}
	return s.Assistant
}

func (s *Service) session() (*journal.Session, error) {
	if s.Session == nil {
		return nil, errors.New("app: no session configured")
	}
	return s.Session, nil
}

// Profile returns the onboarded profile.
func (s *Service) Profile() (profile.Profile, error) {
	sess, err := s.session()
	if err != nil {
		return profile.Profile{}, err
	}
	p, ok := sess.Profile.Get()
	if !ok {
		return profile.Profile{}, ErrNotOnboarded
	}
	return p, nil
}

// Compose saves a draft as a new entry when id is empty, or over the entry
// with id. A blank draft is not saved and reports false.
func (s *Service) Compose(ctx context.Context, id string, d entry.Draft) (*entry.Entry, bool, error) {
	sess, err := s.session()
	if err != nil {
		return nil, false, err
	}
	var existing *entry.Entry
	if id != "" {
		var ok bool
		if existing, ok = sess.Entries.Get(id); !ok {
			return nil, false, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
		}
	}
	if d.Blank() {
		return nil, false, nil
	}
	if existing == nil {
		id = s.newID()
	}
	e := d.Build(existing, id, s.now())
	if err := sess.Entries.Save(ctx, e); err != nil {
		return e, true, err
	}
	return e, true, nil
}

func (s *Service) Entry(id string) (*entry.Entry, error) {
	sess, err := s.session()
	if err != nil {
		return nil, err
	}
	e, ok := sess.Entries.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	return e, nil
}

// Delete removes an entry permanently.
func (s *Service) Delete(ctx context.Context, id string) error {
	sess, err := s.session()
	if err != nil {
		return err
	}
	ok, err := sess.Entries.Delete(ctx, id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	return err
}

func (s *Service) ToggleFavorite(ctx context.Context, id string) (*entry.Entry, error) {
	sess, err := s.session()
	if err != nil {
		return nil, err
	}
	e, ok, err := sess.Entries.ToggleFavorite(ctx, id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	return e, err
}

// Timeline lists entries newest first, optionally favorites only.
func (s *Service) Timeline(favoritesOnly bool) []*entry.Entry {
	return s.Search(query.Criteria{FavoritesOnly: favoritesOnly})
}

func (s *Service) Search(c query.Criteria) []*entry.Entry {
	sess, err := s.session()
	if err != nil {
		return []*entry.Entry{}
	}
	return query.Filter(sess.Entries.All(), c)
}

// History is the activity heatmap plus the total number of memories, which
// counts every entry, not only those inside the window.
type History struct {
	Grid  heatmap.Grid
	Total int
}

func (s *Service) History(now time.Time) History {
	sess, err := s.session()
	if err != nil {
		return History{Grid: heatmap.Build(nil, now, s.WeekStart)}
	}
	all := sess.Entries.All()
	return History{
		Grid:  heatmap.Build(all, now, s.WeekStart),
		Total: len(all),
	}
}

// Onboard creates the profile. The PIN, when given, must be four digits.
func (s *Service) Onboard(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	sess, err := s.session()
	if err != nil {
		return profile.Profile{}, err
	}
	if sess.Onboarded() {
		return profile.Profile{}, ErrAlreadyOnboarded
	}
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return profile.Profile{}, errors.New("app: name is required")
	}
	if err := profile.ValidatePin(p.SecurityPin); err != nil {
		return profile.Profile{}, err
	}
	if p.Theme == "" {
		p.Theme = profile.ThemeLight
	}
	p.JoinedAt = entry.NewTimestamp(s.now())
	if err := sess.Profile.Set(ctx, p); err != nil {
		return p, err
	}
	return p, nil
}

func (s *Service) UpdateProfile(ctx context.Context, patch profile.Patch) (profile.Profile, error) {
	current, err := s.Profile()
	if err != nil {
		return profile.Profile{}, err
	}
	if patch.Empty() {
		return current, nil
	}
	next := current.Merge(patch)
	if strings.TrimSpace(next.Name) == "" {
		return current, errors.New("app: name is required")
	}
	if err := s.Session.Profile.Set(ctx, next); err != nil {
		return next, err
	}
	return next, nil
}

// Gate returns a launch gate for the stored PIN. Without a profile or a PIN
// the gate is already unlocked.
func (s *Service) Gate() *lock.Gate {
	p, err := s.Profile()
	if err != nil {
		return lock.NewGate("")
	}
	return lock.NewGate(p.SecurityPin)
}

// ChangePin starts a PIN change flow that writes the profile once the new
// PIN is confirmed.
func (s *Service) ChangePin(ctx context.Context) (*lock.ChangeFlow, error) {
	current, err := s.Profile()
	if err != nil {
		return nil, err
	}
	return lock.NewChangeFlow(current.SecurityPin, func(pin string) error {
		p, err := s.Profile()
		if err != nil {
			return err
		}
		p.SecurityPin = pin
		return s.Session.Profile.Set(ctx, p)
	}), nil
}

// ClearPin removes the PIN after checking the current one.
func (s *Service) ClearPin(ctx context.Context, current string) error {
	p, err := s.Profile()
	if err != nil {
		return err
	}
	if !p.HasPin() {
		return nil
	}
	if current != p.SecurityPin {
		return lock.ErrIncorrectPin
	}
	p.SecurityPin = ""
	return s.Session.Profile.Set(ctx, p)
}

// Insight reflects on the most recent entries.
func (s *Service) Insight(ctx context.Context) insight.Result[insight.Insight] {
	name := ""
	if p, err := s.Profile(); err == nil {
		name = p.Name
	}
	recent := query.Recent(s.Timeline(false), insight.RecentLimit)
	return s.assistant().Insight(ctx, name, recent)
}

// Enhance rewrites the content of an entry. With apply set, a successful
// rewrite is saved over the entry's content.
func (s *Service) Enhance(ctx context.Context, id string, mode insight.Mode, apply bool) (insight.Result[string], *entry.Entry, error) {
	e, err := s.Entry(id)
	if err != nil {
		return insight.Result[string]{}, nil, err
	}
	res := s.assistant().Enhance(ctx, e.Content, mode)
	if !apply || res.Fallback || res.Value == e.Content {
		return res, e, nil
	}
	updated, _, err := s.Session.Entries.Update(ctx, id, func(x *entry.Entry) {
		x.Content = res.Value
	})
	return res, updated, err
}

// Summarize stores a one-sentence summary on the entry. A fallback leaves
// the entry untouched.
func (s *Service) Summarize(ctx context.Context, id string) (insight.Result[string], *entry.Entry, error) {
	e, err := s.Entry(id)
	if err != nil {
		return insight.Result[string]{}, nil, err
	}
	res := s.assistant().Summarize(ctx, e.Content)
	if res.Fallback || res.Value == "" {
		return res, e, nil
	}
	updated, _, err := s.Session.Entries.Update(ctx, id, func(x *entry.Entry) {
		x.AISummary = res.Value
	})
	return res, updated, err
}

// SuggestTags returns suggested tags the entry does not already carry. With
// apply set they are added to the entry.
func (s *Service) SuggestTags(ctx context.Context, id string, apply bool) (insight.Result[[]string], *entry.Entry, error) {
	e, err := s.Entry(id)
	if err != nil {
		return insight.Result[[]string]{}, nil, err
	}
	res := s.assistant().Tags(ctx, e.Content)
	res.Value = lo.Without(res.Value, e.Tags...)
	if !apply || len(res.Value) == 0 {
		return res, e, nil
	}
	updated, _, err := s.Session.Entries.Update(ctx, id, func(x *entry.Entry) {
		for _, t := range res.Value {
			x.AddTag(t)
		}
	})
	return res, updated, err
}

// AssistDraft fills in a summary and merges suggested tags into a draft
// before it is saved.
func (s *Service) AssistDraft(ctx context.Context, d *entry.Draft, summarize, suggestTags bool) []error {
	var errs []error
	if summarize {
		res := s.assistant().Summarize(ctx, d.Content)
		if res.Fallback {
			errs = append(errs, res.Reason)
		} else if res.Value != "" {
			d.AISummary = res.Value
		}
	}
	if suggestTags {
		res := s.assistant().Tags(ctx, d.Content)
		if res.Fallback {
			errs = append(errs, res.Reason)
		}
		d.Tags = lo.Uniq(append(d.Tags, res.Value...))
	}
	return errs
}

// ExportEntries selects the entries a range covers, oldest first.
func (s *Service) ExportEntries(r export.Range) ([]*entry.Entry, error) {
	sess, err := s.session()
	if err != nil {
		return nil, err
	}
	selected := export.Select(sess.Entries.All(), r)
	if len(selected) == 0 {
		return nil, ErrNothingToExport
	}
	return selected, nil
}

// Export writes the selected entries with f. Nothing is written when the
// selection is empty.
func (s *Service) Export(ctx context.Context, w io.Writer, f export.Formatter, r export.Range) (int, error) {
	owner, err := s.Profile()
	if err != nil {
		return 0, err
	}
	selected, err := s.ExportEntries(r)
	if err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := f.Format(w, owner, selected, s.now()); err != nil {
		return 0, fmt.Errorf("app: export %s: %w", f.Name(), err)
	}
	return len(selected), nil
}

// Reset erases every entry and the profile.
func (s *Service) Reset(ctx context.Context) error {
	sess, err := s.session()
	if err != nil {
		return err
	}
	return sess.Reset(ctx)
}

// Reload picks up writes made by another process.
func (s *Service) Reload(ctx context.Context) error {
	sess, err := s.session()
	if err != nil {
		return err
	}
	return sess.Reload(ctx)
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	sess, err := s.session()
	if err != nil {
		return nil, err
	}
	return sess.Watch(ctx)
}
