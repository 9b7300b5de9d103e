package entry

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/mood"
)

func TestDraftBlank(t *testing.T) {
	if !(Draft{Title: "  ", Content: "\n"}).Blank() {
		t.Fatalf("whitespace-only draft should be blank")
	}
	if (Draft{Content: "x"}).Blank() {
		t.Fatalf("draft with content is not blank")
	}
}

func TestBuildNewEntryDefaults(t *testing.T) {
	now := time.Date(2024, time.March, 3, 10, 0, 0, 0, time.UTC)
	e := Draft{Content: "rainy walk", Tags: []string{" walk", "walk", "", "rain"}}.Build(nil, "id-1", now)

	if e.ID != "id-1" {
		t.Fatalf("expected id-1, got %q", e.ID)
	}
	if e.Title != UntitledTitle {
		t.Fatalf("expected default title, got %q", e.Title)
	}
	if e.Mood != mood.Neutral {
		t.Fatalf("expected neutral mood, got %q", e.Mood)
	}
	if !e.Date.Equal(now) {
		t.Fatalf("expected date %v, got %v", now, e.Date)
	}
	if strings.Join(e.Tags, ",") != "walk,rain" {
		t.Fatalf("unexpected tags %v", e.Tags)
	}
}

func TestBuildBackfillDate(t *testing.T) {
	now := time.Date(2024, time.March, 3, 10, 0, 0, 0, time.UTC)
	then := now.AddDate(0, 0, -10)
	e := Draft{Title: "old", Date: &then}.Build(nil, "id-1", now)
	if !e.Date.Equal(then) {
		t.Fatalf("expected backfilled date, got %v", e.Date)
	}
}

func TestBuildEditKeepsIdentity(t *testing.T) {
	created := time.Date(2024, time.January, 1, 8, 0, 0, 0, time.UTC)
	existing := &Entry{
		ID:         "keep",
		Title:      "before",
		Date:       Timestamp{Time: created},
		IsFavorite: true,
		AISummary:  "a summary",
	}
	later := created.AddDate(0, 1, 0)
	e := Draft{Title: "after", Mood: mood.Great, Date: &later}.Build(existing, "ignored", later)

	if e.ID != "keep" {
		t.Fatalf("expected id kept, got %q", e.ID)
	}
	if !e.Date.Equal(created) {
		t.Fatalf("expected original date, got %v", e.Date)
	}
	if !e.IsFavorite {
		t.Fatalf("expected favorite carried over")
	}
	if e.AISummary != "a summary" {
		t.Fatalf("expected summary carried over, got %q", e.AISummary)
	}
	if e.Title != "after" || e.Mood != mood.Great {
		t.Fatalf("expected edited fields, got %+v", e)
	}
}

func TestAddTag(t *testing.T) {
	e := &Entry{}
	if !e.AddTag(" gratitude ") {
		t.Fatalf("expected tag added")
	}
	if e.AddTag("gratitude") {
		t.Fatalf("duplicate tag should be ignored")
	}
	if e.AddTag("   ") {
		t.Fatalf("blank tag should be ignored")
	}
	if !e.RemoveTag("gratitude") || len(e.Tags) != 0 {
		t.Fatalf("expected tag removed, got %v", e.Tags)
	}
}

func TestCloneIsDeep(t *testing.T) {
	e := &Entry{ID: "a", Tags: []string{"x"}, Images: []string{"data:"}}
	cp := e.Clone()
	cp.Tags[0] = "y"
	cp.Images[0] = "other"
	if e.Tags[0] != "x" || e.Images[0] != "data:" {
		t.Fatalf("clone shares backing arrays")
	}
}

func TestTimestampStoredForm(t *testing.T) {
	ts := Timestamp{Time: time.Date(2024, time.May, 9, 14, 30, 5, 123456789, time.UTC)}
	b, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2024-05-09T14:30:05.123Z"` {
		t.Fatalf("unexpected form %s", b)
	}
}

func TestEntryDecodesStoredJSON(t *testing.T) {
	raw := `{"id":"1","title":"T","content":"C","date":"2024-05-09T14:30:05.123Z","mood":"✨","tags":["a"],"isFavorite":true}`
	var e Entry
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if e.Mood != mood.Inspired || !e.IsFavorite || e.Date.Year() != 2024 {
		t.Fatalf("unexpected decode %+v", e)
	}
}

func TestParseTimeDateOnly(t *testing.T) {
	got, err := ParseTime("2024-02-29")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Hour() != 0 || got.Day() != 29 {
		t.Fatalf("expected local midnight, got %v", got)
	}
}

func TestExcerpt(t *testing.T) {
	e := &Entry{Content: "one two\nthree four"}
	if got := e.Excerpt(7); got != "one two…" {
		t.Fatalf("unexpected excerpt %q", got)
	}
	if got := e.Excerpt(100); got != "one two three four" {
		t.Fatalf("unexpected excerpt %q", got)
	}
}
