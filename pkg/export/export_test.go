package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/entry"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/mood"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/profile"
)

func at(id string, d time.Time) *entry.Entry {
	return &entry.Entry{
		ID:      id,
		Title:   "Entry " + id,
		Content: "Line one.\n\nLine two is a little longer than the first.",
		Date:    entry.Timestamp{Time: d},
		Mood:    mood.Good,
		Tags:    []string{},
	}
}

func day(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.Local)
}

func TestSelectWholeDaysOldestFirst(t *testing.T) {
	entries := []*entry.Entry{
		at("c", day(2024, time.May, 3, 23)),
		at("b", day(2024, time.May, 2, 12)),
		at("a", day(2024, time.May, 1, 0)),
		at("z", day(2024, time.April, 30, 23)),
	}
	from := day(2024, time.May, 1, 15)
	to := day(2024, time.May, 3, 0)

	got := Select(entries, Range{From: &from, To: &to})
	require.Len(t, got, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestSelectUsesLocalCalendarDays(t *testing.T) {
	// UTC-5: local midnight on May 1 is 05:00 UTC.
	east := time.FixedZone("UTC-5", -5*60*60)
	early := time.Date(2024, time.May, 1, 1, 0, 0, 0, east)
	before := time.Date(2024, time.April, 30, 23, 30, 0, 0, east)
	late := time.Date(2024, time.May, 2, 23, 30, 0, 0, east)
	entries := []*entry.Entry{
		at("late", late.UTC()),
		at("early", early.UTC()),
		at("before", before.UTC()),
	}

	from := time.Date(2024, time.May, 1, 12, 0, 0, 0, east)
	to := time.Date(2024, time.May, 2, 0, 0, 0, 0, east)
	got := Select(entries, Range{From: &from, To: &to})

	var ids []string
	for _, e := range got {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"early", "late"}, ids)
}

func TestSelectNeedsBothEnds(t *testing.T) {
	entries := []*entry.Entry{at("b", day(2024, time.May, 2, 12)), at("a", day(2023, time.May, 1, 0))}
	from := day(2024, time.May, 1, 0)

	got := Select(entries, Range{From: &from})
	require.Len(t, got, 2, "a half-open range exports everything")
	assert.Equal(t, "a", got[0].ID)
}

func TestFileName(t *testing.T) {
	now := time.Date(2024, time.July, 4, 10, 0, 0, 0, time.UTC)
	got := FileName(profile.Profile{Name: "Ana  Maria Silva"}, "pdf", now)
	assert.Equal(t, "Journal_Ana_Maria_Silva_2024-07-04.pdf", got)
}

func TestMeta(t *testing.T) {
	e := at("a", time.Now())
	assert.Equal(t, "Good | Unknown Location", Meta(e))
	e.Location = "Porto"
	e.Mood = mood.Inspired
	assert.Equal(t, "Inspired | Porto", Meta(e))
}

func TestPDFFormat(t *testing.T) {
	var entries []*entry.Entry
	start := day(2024, time.January, 1, 9)
	for i := 0; i < 40; i++ {
		e := at(string(rune('a'+i%26)), start.AddDate(0, 0, i))
		e.Content = strings.Repeat("A long day with many thoughts worth keeping. ", 20)
		entries = append(entries, e)
	}

	var buf bytes.Buffer
	err := PDF{}.Format(&buf, profile.Profile{Name: "Ana"}, entries, time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))

	doc := render(profile.Profile{Name: "Ana"}, entries)
	assert.Greater(t, doc.pdf.PageCount(), 3, "long content must flow onto more pages")
}

func TestJSONFormatHidesPin(t *testing.T) {
	var buf bytes.Buffer
	owner := profile.Profile{Name: "Ana", SecurityPin: "1234"}
	entries := []*entry.Entry{at("b", day(2024, time.May, 2, 12)), at("a", day(2024, time.May, 1, 0))}

	require.NoError(t, JSON{}.Format(&buf, owner, entries, time.Now()))
	assert.NotContains(t, buf.String(), "1234")

	var out struct {
		Count   int            `json:"count"`
		Entries []*entry.Entry `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, 2, out.Count)
	assert.Equal(t, "a", out.Entries[0].ID)
}

func TestForName(t *testing.T) {
	f, err := ForName("")
	require.NoError(t, err)
	assert.Equal(t, "pdf", f.Name())
	f, err = ForName("JSON")
	require.NoError(t, err)
	assert.Equal(t, "json", f.Ext())
	_, err = ForName("docx")
	assert.Error(t, err)
}
