package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/entry"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/export"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/insight"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/journal"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/lock"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/mood"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/profile"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/query"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/store/storetest"
)

var fixedNow = time.Date(2024, time.March, 10, 9, 30, 0, 0, time.Local)

type scriptedDriver struct {
	replies map[insight.Format]string
	err     error
	calls   []insight.Request
}

func (d *scriptedDriver) Name() string { return "scripted" }

func (d *scriptedDriver) Generate(_ context.Context, req insight.Request) (string, error) {
	d.calls = append(d.calls, req)
	if d.err != nil {
		return "", d.err
	}
	return d.replies[req.Format], nil
}

func newService(t *testing.T, mem *storetest.Memory, d insight.Driver) *Service {
	t.Helper()
	sess, err := journal.Open(context.Background(), mem)
	require.NoError(t, err)
	n := 0
	return &Service{
		Session:   sess,
		Assistant: insight.New(d, time.Second, nil),
		Now:       func() time.Time { return fixedNow },
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
	}
}

func onboarded(pin string) *profile.Profile {
	return &profile.Profile{
		Name:        "Ana",
		Theme:       profile.ThemeLight,
		JoinedAt:    entry.NewTimestamp(fixedNow.AddDate(0, -1, 0)),
		SecurityPin: pin,
	}
}

func stored(id string, daysAgo int, m mood.Mood, tags ...string) *entry.Entry {
	if tags == nil {
		tags = []string{}
	}
	return &entry.Entry{
		ID:      id,
		Title:   "entry " + id,
		Content: "content of " + id,
		Date:    entry.NewTimestamp(fixedNow.AddDate(0, 0, -daysAgo)),
		Mood:    m,
		Tags:    tags,
	}
}

func ids(entries []*entry.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestComposeNewEntry(t *testing.T) {
	mem := storetest.NewMemory().Seed(onboarded(""))
	svc := newService(t, mem, nil)

	e, saved, err := svc.Compose(context.Background(), "", entry.Draft{Content: "rainy walk", Tags: []string{"Walk"}})
	require.NoError(t, err)
	require.True(t, saved)
	assert.Equal(t, "id-1", e.ID)
	assert.Equal(t, entry.UntitledTitle, e.Title)
	assert.Equal(t, mood.Neutral, e.Mood)
	assert.True(t, e.Date.Equal(fixedNow))
	assert.Equal(t, 1, mem.Writes)

	got, err := svc.Entry("id-1")
	require.NoError(t, err)
	assert.Equal(t, "rainy walk", got.Content)
}

func TestComposeBlankDraftIsNotSaved(t *testing.T) {
	mem := storetest.NewMemory().Seed(onboarded(""))
	svc := newService(t, mem, nil)

	e, saved, err := svc.Compose(context.Background(), "", entry.Draft{Title: "  ", Content: "\n"})
	require.NoError(t, err)
	assert.False(t, saved)
	assert.Nil(t, e)
	assert.Equal(t, 0, mem.Writes)
}

func TestComposeEditKeepsIdentity(t *testing.T) {
	orig := stored("a", 3, mood.Good, "park")
	orig.IsFavorite = true
	orig.AISummary = "a walk"
	svc := newService(t, storetest.NewMemory().Seed(onboarded(""), orig), nil)

	e, saved, err := svc.Compose(context.Background(), "a", entry.Draft{Title: "Edited", Content: "new words", Mood: mood.Down})
	require.NoError(t, err)
	require.True(t, saved)
	assert.Equal(t, "a", e.ID)
	assert.True(t, e.Date.Equal(orig.Date.Time))
	assert.True(t, e.IsFavorite)
	assert.Equal(t, "a walk", e.AISummary)
	assert.Equal(t, mood.Down, e.Mood)
	assert.Len(t, svc.Timeline(false), 1)
}

func TestComposeUnknownID(t *testing.T) {
	svc := newService(t, storetest.NewMemory().Seed(onboarded("")), nil)
	_, _, err := svc.Compose(context.Background(), "missing", entry.Draft{Content: "x"})
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestComposeWriteFailureKeepsEntryInMemory(t *testing.T) {
	mem := storetest.NewMemory().Seed(onboarded(""))
	svc := newService(t, mem, nil)
	mem.FailWrites = errors.New("disk full")

	_, saved, err := svc.Compose(context.Background(), "", entry.Draft{Content: "still here"})
	require.Error(t, err)
	assert.True(t, saved)
	assert.Len(t, svc.Timeline(false), 1)
}

func TestDeleteAndToggleFavorite(t *testing.T) {
	mem := storetest.NewMemory().Seed(onboarded(""), stored("a", 0, mood.Good), stored("b", 1, mood.Good))
	svc := newService(t, mem, nil)
	ctx := context.Background()

	e, err := svc.ToggleFavorite(ctx, "b")
	require.NoError(t, err)
	assert.True(t, e.IsFavorite)
	assert.Equal(t, []string{"b"}, ids(svc.Timeline(true)))

	require.NoError(t, svc.Delete(ctx, "a"))
	assert.Equal(t, []string{"b"}, ids(svc.Timeline(false)))

	writes := mem.Writes
	assert.ErrorIs(t, svc.Delete(ctx, "a"), ErrEntryNotFound)
	_, err = svc.ToggleFavorite(ctx, "zzz")
	assert.ErrorIs(t, err, ErrEntryNotFound)
	assert.Equal(t, writes, mem.Writes, "unknown ids must not write")
	assert.Equal(t, []string{"b"}, ids(svc.Timeline(false)))
}

func TestTimelineNewestFirst(t *testing.T) {
	svc := newService(t, storetest.NewMemory().Seed(onboarded(""),
		stored("old", 10, mood.Good), stored("new", 0, mood.Good), stored("mid", 5, mood.Good)), nil)
	assert.Equal(t, []string{"new", "mid", "old"}, ids(svc.Timeline(false)))
}

func TestSearchCombinesCriteria(t *testing.T) {
	svc := newService(t, storetest.NewMemory().Seed(onboarded(""),
		stored("a", 0, mood.Great, "beach"), stored("b", 1, mood.Down, "beach"), stored("c", 2, mood.Great, "work")), nil)

	got := svc.Search(query.Criteria{Text: "BEACH", Mood: mood.Great})
	assert.Equal(t, []string{"a"}, ids(got))
}

func TestHistoryCountsEveryEntry(t *testing.T) {
	svc := newService(t, storetest.NewMemory().Seed(onboarded(""),
		stored("a", 0, mood.Good), stored("b", 0, mood.Good), stored("c", 400, mood.Good)), nil)

	h := svc.History(fixedNow)
	assert.Equal(t, 3, h.Total)
	assert.Equal(t, 2, h.Grid.Total())
	assert.Equal(t, time.Sunday, h.Grid.Start().Weekday())
}

func TestOnboard(t *testing.T) {
	mem := storetest.NewMemory()
	svc := newService(t, mem, nil)
	ctx := context.Background()

	_, err := svc.Profile()
	require.ErrorIs(t, err, ErrNotOnboarded)

	_, err = svc.Onboard(ctx, profile.Profile{Name: "Ana", SecurityPin: "12"})
	require.ErrorIs(t, err, profile.ErrInvalidPin)

	_, err = svc.Onboard(ctx, profile.Profile{Name: "   "})
	require.Error(t, err)

	p, err := svc.Onboard(ctx, profile.Profile{Name: " Ana ", SecurityPin: "1234"})
	require.NoError(t, err)
	assert.Equal(t, "Ana", p.Name)
	assert.Equal(t, profile.ThemeLight, p.Theme)
	assert.True(t, p.JoinedAt.Equal(fixedNow))

	_, err = svc.Onboard(ctx, profile.Profile{Name: "Bo"})
	assert.ErrorIs(t, err, ErrAlreadyOnboarded)
}

func TestUpdateProfile(t *testing.T) {
	svc := newService(t, storetest.NewMemory().Seed(onboarded("1234")), nil)
	bio := "writer"
	p, err := svc.UpdateProfile(context.Background(), profile.Patch{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "writer", p.Bio)
	assert.Equal(t, "1234", p.SecurityPin)

	empty := ""
	_, err = svc.UpdateProfile(context.Background(), profile.Patch{Name: &empty})
	assert.Error(t, err)
}

func TestUpdateProfileNotOnboarded(t *testing.T) {
	svc := newService(t, storetest.NewMemory(), nil)
	bio := "writer"
	_, err := svc.UpdateProfile(context.Background(), profile.Patch{Bio: &bio})
	assert.ErrorIs(t, err, ErrNotOnboarded)
}

func TestGate(t *testing.T) {
	assert.Equal(t, lock.Unlocked, newService(t, storetest.NewMemory(), nil).Gate().State())
	assert.Equal(t, lock.Unlocked, newService(t, storetest.NewMemory().Seed(onboarded("")), nil).Gate().State())

	g := newService(t, storetest.NewMemory().Seed(onboarded("4321")), nil).Gate()
	require.Equal(t, lock.Locked, g.State())
	assert.Equal(t, lock.Accepted, g.Enter("4321"))
}

func TestChangePinWritesProfile(t *testing.T) {
	mem := storetest.NewMemory().Seed(onboarded("1234"))
	svc := newService(t, mem, nil)

	flow, err := svc.ChangePin(context.Background())
	require.NoError(t, err)
	_, err = flow.Enter("1234")
	require.NoError(t, err)
	_, err = flow.Enter("9876")
	require.NoError(t, err)
	out, err := flow.Enter("9876")
	require.NoError(t, err)
	assert.Equal(t, lock.Accepted, out)
	assert.Equal(t, lock.Done, flow.Step())

	p, err := svc.Profile()
	require.NoError(t, err)
	assert.Equal(t, "9876", p.SecurityPin)
	raw, _ := mem.Raw("journal_user")
	assert.Contains(t, string(raw), `"securityPin":"9876"`)
}

func TestClearPin(t *testing.T) {
	svc := newService(t, storetest.NewMemory().Seed(onboarded("1234")), nil)
	ctx := context.Background()
	assert.ErrorIs(t, svc.ClearPin(ctx, "0000"), lock.ErrIncorrectPin)
	require.NoError(t, svc.ClearPin(ctx, "1234"))
	p, _ := svc.Profile()
	assert.False(t, p.HasPin())
}

func TestInsightUsesFiveMostRecent(t *testing.T) {
	d := &scriptedDriver{replies: map[insight.Format]string{
		insight.FormatInsight: `{"text":"You have been outside a lot.","type":"observation"}`,
	}}
	var seeded []*entry.Entry
	for i := 0; i < 7; i++ {
		seeded = append(seeded, stored(fmt.Sprintf("e%d", i), i, mood.Good))
	}
	svc := newService(t, storetest.NewMemory().Seed(onboarded(""), seeded...), d)

	res := svc.Insight(context.Background())
	require.False(t, res.Fallback)
	assert.Equal(t, insight.Observation, res.Value.Type)
	require.Len(t, d.calls, 1)
	assert.Contains(t, d.calls[0].Prompt, "Ana")
	assert.Contains(t, d.calls[0].Prompt, "entry e4")
	assert.NotContains(t, d.calls[0].Prompt, "entry e5")
}

func TestInsightWithoutEntriesFallsBack(t *testing.T) {
	d := &scriptedDriver{}
	svc := newService(t, storetest.NewMemory().Seed(onboarded("")), d)
	res := svc.Insight(context.Background())
	assert.True(t, res.Fallback)
	assert.Equal(t, insight.FallbackInsight, res.Value)
	assert.Empty(t, d.calls)
}

func TestEnhanceApply(t *testing.T) {
	d := &scriptedDriver{replies: map[insight.Format]string{insight.FormatText: "Polished words."}}
	svc := newService(t, storetest.NewMemory().Seed(onboarded(""), stored("a", 0, mood.Good)), d)
	ctx := context.Background()

	res, e, err := svc.Enhance(ctx, "a", insight.ModeGrammar, false)
	require.NoError(t, err)
	assert.Equal(t, "Polished words.", res.Value)
	assert.Equal(t, "content of a", e.Content)

	_, e, err = svc.Enhance(ctx, "a", insight.ModeGrammar, true)
	require.NoError(t, err)
	assert.Equal(t, "Polished words.", e.Content)
	got, _ := svc.Entry("a")
	assert.Equal(t, "Polished words.", got.Content)
}

func TestEnhanceFallbackDoesNotApply(t *testing.T) {
	d := &scriptedDriver{err: errors.New("quota")}
	mem := storetest.NewMemory().Seed(onboarded(""), stored("a", 0, mood.Good))
	svc := newService(t, mem, d)

	res, e, err := svc.Enhance(context.Background(), "a", insight.ModeExpand, true)
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.Equal(t, "content of a", e.Content)
	assert.Equal(t, 0, mem.Writes)
}

func TestSummarizeStoresSummary(t *testing.T) {
	d := &scriptedDriver{replies: map[insight.Format]string{insight.FormatText: " A quiet day. "}}
	svc := newService(t, storetest.NewMemory().Seed(onboarded(""), stored("a", 0, mood.Good)), d)

	res, e, err := svc.Summarize(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "A quiet day.", res.Value)
	assert.Equal(t, "A quiet day.", e.AISummary)
}

func TestSuggestTagsSkipsExisting(t *testing.T) {
	d := &scriptedDriver{replies: map[insight.Format]string{insight.FormatTags: `["Beach","sun","family"]`}}
	svc := newService(t, storetest.NewMemory().Seed(onboarded(""), stored("a", 0, mood.Good, "beach")), d)

	res, e, err := svc.SuggestTags(context.Background(), "a", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"sun", "family"}, res.Value)
	assert.Equal(t, []string{"beach", "sun", "family"}, e.Tags)
}

func TestAssistDraft(t *testing.T) {
	d := &scriptedDriver{replies: map[insight.Format]string{
		insight.FormatText: "Short.",
		insight.FormatTags: `{"tags":["calm","home"]}`,
	}}
	svc := newService(t, storetest.NewMemory().Seed(onboarded("")), d)
	draft := entry.Draft{Content: "stayed in", Tags: []string{"home"}}

	errs := svc.AssistDraft(context.Background(), &draft, true, true)
	assert.Empty(t, errs)
	assert.Equal(t, "Short.", draft.AISummary)
	assert.Equal(t, []string{"home", "calm"}, draft.Tags)
}

type countingFormatter struct {
	calls int
	got   []*entry.Entry
}

func (f *countingFormatter) Name() string { return "count" }
func (f *countingFormatter) Ext() string  { return "txt" }

func (f *countingFormatter) Format(w io.Writer, owner profile.Profile, entries []*entry.Entry, _ time.Time) error {
	f.calls++
	f.got = entries
	_, err := io.WriteString(w, owner.Name)
	return err
}

func TestExportEmptySelection(t *testing.T) {
	svc := newService(t, storetest.NewMemory().Seed(onboarded("")), nil)
	f := &countingFormatter{}
	var buf bytes.Buffer

	_, err := svc.Export(context.Background(), &buf, f, export.Range{})
	assert.ErrorIs(t, err, ErrNothingToExport)
	assert.Equal(t, 0, f.calls)
	assert.Zero(t, buf.Len())
}

func TestExportRangeOldestFirst(t *testing.T) {
	svc := newService(t, storetest.NewMemory().Seed(onboarded(""),
		stored("a", 0, mood.Good), stored("b", 2, mood.Good), stored("c", 20, mood.Good)), nil)
	from := fixedNow.AddDate(0, 0, -5)
	to := fixedNow
	f := &countingFormatter{}
	var buf bytes.Buffer

	n, err := svc.Export(context.Background(), &buf, f, export.Range{From: &from, To: &to})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"b", "a"}, ids(f.got))
	assert.Equal(t, "Ana", buf.String())
}

func TestReset(t *testing.T) {
	mem := storetest.NewMemory().Seed(onboarded(""), stored("a", 0, mood.Good))
	svc := newService(t, mem, nil)

	require.NoError(t, svc.Reset(context.Background()))
	assert.Empty(t, svc.Timeline(false))
	_, err := svc.Profile()
	assert.ErrorIs(t, err, ErrNotOnboarded)
	_, ok := mem.Raw("journal_entries")
	assert.False(t, ok)
}

func TestReportGroupsByMood(t *testing.T) {
	svc := newService(t, storetest.NewMemory().Seed(onboarded(""),
		stored("a", 0, mood.Down, "work"),
		stored("b", 1, mood.Great, "work", "run"),
		stored("c", 2, mood.Great, "run"),
		stored("d", 40, mood.Great)), nil)

	r, err := svc.Report(fixedNow, fixedNow.AddDate(0, 0, -7))
	require.NoError(t, err)
	assert.True(t, r.Since.Before(r.Until))
	assert.Equal(t, 3, r.Total)
	require.Len(t, r.Sections, 2)
	assert.Equal(t, mood.Great, r.Sections[0].Mood)
	assert.Equal(t, []string{"b", "c"}, ids(r.Sections[0].Entries))
	assert.Equal(t, mood.Down, r.Sections[1].Mood)
	assert.Equal(t, []string{"run", "work"}, r.TopTags(5))
	assert.Equal(t, []string{"run"}, r.TopTags(1))
}

func TestNoSession(t *testing.T) {
	svc := &Service{}
	_, err := svc.Entry("x")
	assert.Error(t, err)
	assert.Empty(t, svc.Timeline(false))
	assert.True(t, strings.HasPrefix(ErrNotOnboarded.Error(), "app:"))
}
