// Package mcp provides the Model Context Protocol server integration for the
// journal.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/app"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/entry"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/heatmap"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/mood"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/profile"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/query"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/timeutil"
)

// Service serializes MCP calls onto the journal service. Every call reloads
// the journal first so writes made by the CLI are visible.
type Service struct {
	mu  sync.Mutex
	app *app.Service
	now func() time.Time
}

// DefaultLimit caps list and search results when the caller gives none.
const DefaultLimit = 20

// EntryDTO is a transport-friendly projection of an entry. Images are
// reported by count only.
type EntryDTO struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Date        string   `json:"date"`
	DateUnix    int64    `json:"dateUnix"`
	Mood        string   `json:"mood"`
	MoodMeaning string   `json:"moodMeaning"`
	Tags        []string `json:"tags"`
	Location    string   `json:"location,omitempty"`
	IsFavorite  bool     `json:"isFavorite"`
	AISummary   string   `json:"aiSummary,omitempty"`
	ImageCount  int      `json:"imageCount"`
}

// CreateEntryOptions captures the parameters used to create a new entry.
type CreateEntryOptions struct {
	Title    string
	Content  string
	Mood     string
	Tags     []string
	Location string
	Date     string
}

// SearchOptions mirrors the search view filters.
type SearchOptions struct {
	Query         string
	Mood          string
	From          string
	To            string
	FavoritesOnly bool
	Limit         int
}

// HistoryDTO summarizes the activity heatmap. Days lists only active days.
type HistoryDTO struct {
	Start         string   `json:"start"`
	End           string   `json:"end"`
	TotalMemories int      `json:"totalMemories"`
	InWindow      int      `json:"inWindow"`
	ActiveDays    int      `json:"activeDays"`
	CurrentStreak int      `json:"currentStreak"`
	LongestStreak int      `json:"longestStreak"`
	Days          []DayDTO `json:"days"`
}

type DayDTO struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Level int    `json:"level"`
}

type InsightDTO struct {
	Text     string `json:"text"`
	Type     string `json:"type"`
	Fallback bool   `json:"fallback"`
}

// NewService wraps svc for concurrent MCP use.
func NewService(svc *app.Service) *Service {
	return &Service{app: svc, now: time.Now}
}

func (s *Service) begin(ctx context.Context) (func(), error) {
	if s.app == nil {
		return nil, errors.New("journal service is not configured")
	}
	s.mu.Lock()
	if err := s.app.Reload(ctx); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	return s.mu.Unlock, nil
}

// ListEntries returns the timeline, newest first.
func (s *Service) ListEntries(ctx context.Context, favoritesOnly bool, limit int) ([]EntryDTO, error) {
	done, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer done()
	return toDTOs(limited(s.app.Timeline(favoritesOnly), limit)), nil
}

func (s *Service) SearchEntries(ctx context.Context, opts SearchOptions) ([]EntryDTO, error) {
	c, err := s.criteria(opts)
	if err != nil {
		return nil, err
	}
	done, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer done()
	return toDTOs(limited(s.app.Search(c), opts.Limit)), nil
}

func (s *Service) criteria(opts SearchOptions) (query.Criteria, error) {
	c := query.Criteria{Text: strings.TrimSpace(opts.Query), FavoritesOnly: opts.FavoritesOnly}
	m, err := mood.ForAlias(opts.Mood)
	if err != nil {
		return c, err
	}
	c.Mood = m
	now := s.now()
	for _, b := range []struct {
		raw string
		dst **time.Time
	}{{opts.From, &c.From}, {opts.To, &c.To}} {
		if strings.TrimSpace(b.raw) == "" {
			continue
		}
		t, err := timeutil.ParseDate(b.raw, now)
		if err != nil {
			return c, err
		}
		*b.dst = &t
	}
	return c, nil
}

func (s *Service) EntryByID(ctx context.Context, id string) (EntryDTO, error) {
	done, err := s.begin(ctx)
	if err != nil {
		return EntryDTO{}, err
	}
	defer done()
	e, err := s.app.Entry(strings.TrimSpace(id))
	if err != nil {
		return EntryDTO{}, err
	}
	return toDTO(e), nil
}

// CreateEntry saves a new entry. Title and content may not both be blank.
func (s *Service) CreateEntry(ctx context.Context, opts CreateEntryOptions) (EntryDTO, error) {
	m, err := mood.ForAlias(opts.Mood)
	if err != nil {
		return EntryDTO{}, err
	}
	d := entry.Draft{
		Title:    opts.Title,
		Content:  opts.Content,
		Mood:     m,
		Tags:     opts.Tags,
		Location: opts.Location,
	}
	if strings.TrimSpace(opts.Date) != "" {
		when, err := entry.ParseTime(opts.Date)
		if err != nil {
			return EntryDTO{}, fmt.Errorf("invalid date: %w", err)
		}
		d.Date = &when
	}

	done, err := s.begin(ctx)
	if err != nil {
		return EntryDTO{}, err
	}
	defer done()
	e, saved, err := s.app.Compose(ctx, "", d)
	if err != nil {
		return EntryDTO{}, err
	}
	if !saved {
		return EntryDTO{}, errors.New("entry needs a title or content")
	}
	return toDTO(e), nil
}

func (s *Service) ToggleFavorite(ctx context.Context, id string) (EntryDTO, error) {
	done, err := s.begin(ctx)
	if err != nil {
		return EntryDTO{}, err
	}
	defer done()
	e, err := s.app.ToggleFavorite(ctx, id)
	if err != nil {
		return EntryDTO{}, err
	}
	return toDTO(e), nil
}

func (s *Service) DeleteEntry(ctx context.Context, id string) error {
	done, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer done()
	return s.app.Delete(ctx, id)
}

func (s *Service) History(ctx context.Context) (HistoryDTO, error) {
	done, err := s.begin(ctx)
	if err != nil {
		return HistoryDTO{}, err
	}
	defer done()
	h := s.app.History(s.now())
	g := h.Grid
	days := lo.FilterMap(g.Days, func(d heatmap.Day, _ int) (DayDTO, bool) {
		return DayDTO{Date: d.Date.Format(timeutil.LayoutDay), Count: d.Count, Level: d.Level()}, d.Count > 0
	})
	return HistoryDTO{
		Start:         g.Start().Format(timeutil.LayoutDay),
		End:           g.End().Format(timeutil.LayoutDay),
		TotalMemories: h.Total,
		InWindow:      g.Total(),
		ActiveDays:    g.ActiveDays(),
		CurrentStreak: g.CurrentStreak(),
		LongestStreak: g.LongestStreak(),
		Days:          days,
	}, nil
}

func (s *Service) Insight(ctx context.Context) (InsightDTO, error) {
	done, err := s.begin(ctx)
	if err != nil {
		return InsightDTO{}, err
	}
	defer done()
	res := s.app.Insight(ctx)
	return InsightDTO{Text: res.Value.Text, Type: string(res.Value.Type), Fallback: res.Fallback}, nil
}

// Profile returns the profile without its PIN.
func (s *Service) Profile(ctx context.Context) (profile.Profile, error) {
	done, err := s.begin(ctx)
	if err != nil {
		return profile.Profile{}, err
	}
	defer done()
	p, err := s.app.Profile()
	if err != nil {
		return profile.Profile{}, err
	}
	return p.Public(), nil
}

func limited(entries []*entry.Entry, limit int) []*entry.Entry {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit < len(entries) {
		return entries[:limit]
	}
	return entries
}

func toDTOs(entries []*entry.Entry) []EntryDTO {
	return lo.Map(entries, func(e *entry.Entry, _ int) EntryDTO { return toDTO(e) })
}

func toDTO(e *entry.Entry) EntryDTO {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	return EntryDTO{
		ID:          e.ID,
		Title:       e.Title,
		Content:     e.Content,
		Date:        entry.FormatTime(e.Date.Time),
		DateUnix:    e.Date.Unix(),
		Mood:        e.Mood.String(),
		MoodMeaning: e.Mood.Meaning(),
		Tags:        tags,
		Location:    e.Location,
		IsFavorite:  e.IsFavorite,
		AISummary:   e.AISummary,
		ImageCount:  len(e.Images),
	}
}
