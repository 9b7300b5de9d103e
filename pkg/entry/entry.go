package entry

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/mood"
)

const (
	// UntitledTitle replaces a blank title at save time.
	UntitledTitle = "Untitled Entry"
	// MaxImages is the number of images the editor accepts per entry.
	MaxImages = 3
)

type Entry struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Date       Timestamp `json:"date"`
	Mood       mood.Mood `json:"mood"`
	Tags       []string  `json:"tags"`
	Images     []string  `json:"images,omitempty"`
	Location   string    `json:"location,omitempty"`
	IsFavorite bool      `json:"isFavorite,omitempty"`
	AISummary  string    `json:"aiSummary,omitempty"`
}

// Clone returns a deep copy so callers can hand out snapshots.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	cp := *e
	cp.Tags = append(make([]string, 0, len(e.Tags)), e.Tags...)
	if e.Images != nil {
		cp.Images = append([]string(nil), e.Images...)
	}
	return &cp
}

// AddTag appends tag unless it is blank or already present. It reports
// whether the tag list changed.
func (e *Entry) AddTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" || lo.Contains(e.Tags, tag) {
		return false
	}
	e.Tags = append(e.Tags, tag)
	return true
}

func (e *Entry) RemoveTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	if !lo.Contains(e.Tags, tag) {
		return false
	}
	e.Tags = lo.Without(e.Tags, tag)
	return true
}

// Excerpt returns the first n runes of the content on a single line.
func (e *Entry) Excerpt(n int) string {
	flat := strings.Join(strings.Fields(e.Content), " ")
	r := []rune(flat)
	if len(r) <= n {
		return flat
	}
	return strings.TrimSpace(string(r[:n])) + "…"
}

func (e *Entry) String() string {
	return fmt.Sprintf("%s %s  %s", e.Date.Local().Format(layoutISO), e.Mood, e.Title)
}

// Draft is the editor state before it becomes an entry.
type Draft struct {
	Title    string
	Content  string
	Mood     mood.Mood
	Tags     []string
	Images   []string
	Location string
	// Date backfills the timestamp of a new entry. Ignored for edits.
	Date      *time.Time
	AISummary string
}

// Blank reports whether the draft has neither title nor content. Blank
// drafts are never saved.
func (d Draft) Blank() bool {
	return strings.TrimSpace(d.Title) == "" && strings.TrimSpace(d.Content) == ""
}

// Build turns the draft into the entry to save. existing is the entry being
// edited, or nil; id is used only for new entries. The id, date and
// favorite flag of an existing entry are kept.
func (d Draft) Build(existing *Entry, id string, now time.Time) *Entry {
	e := &Entry{
		ID:       id,
		Title:    strings.TrimSpace(d.Title),
		Content:  d.Content,
		Mood:     d.Mood,
		Tags:     []string{},
		Location: strings.TrimSpace(d.Location),
	}
	if e.Title == "" {
		e.Title = UntitledTitle
	}
	if e.Mood == "" || e.Mood == mood.Any {
		e.Mood = mood.Neutral
	}
	for _, t := range d.Tags {
		e.AddTag(t)
	}
	if len(d.Images) > 0 {
		e.Images = append([]string(nil), d.Images...)
	}

	switch {
	case existing != nil:
		e.ID = existing.ID
		e.Date = existing.Date
		e.IsFavorite = existing.IsFavorite
		e.AISummary = existing.AISummary
	case d.Date != nil:
		e.Date = Timestamp{Time: *d.Date}
	default:
		e.Date = Timestamp{Time: now}
	}
	if d.AISummary != "" {
		e.AISummary = d.AISummary
	}
	return e
}

// DraftOf seeds an editor draft from an existing entry.
func DraftOf(e *Entry) Draft {
	return Draft{
		Title:    e.Title,
		Content:  e.Content,
		Mood:     e.Mood,
		Tags:     append([]string(nil), e.Tags...),
		Images:   append([]string(nil), e.Images...),
		Location: e.Location,
	}
}

// DataURL encodes an image payload the way entries store attachments.
func DataURL(contentType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
}
