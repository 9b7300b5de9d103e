package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/entry"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/mood"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/profile"
)

func TestPersistenceMissingKeys(t *testing.T) {
	p, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx := context.Background()

	entries, err := p.LoadEntries(ctx)
	if err != nil {
		t.Fatalf("load entries: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
	pr, err := p.LoadProfile(ctx)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if pr != nil {
		t.Fatalf("expected no profile, got %+v", pr)
	}
}

func TestPersistenceRoundTripKeepsOrder(t *testing.T) {
	base := t.TempDir()
	p, err := Open(base)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx := context.Background()
	when := time.Date(2024, time.April, 2, 9, 0, 0, 0, time.UTC)

	in := []*entry.Entry{
		{ID: "b", Title: "second", Date: entry.Timestamp{Time: when}, Mood: mood.Good, Tags: []string{"x"}},
		{ID: "a", Title: "first", Date: entry.Timestamp{Time: when.Add(-time.Hour)}, Mood: mood.Down},
	}
	if err := p.StoreEntries(ctx, in); err != nil {
		t.Fatalf("store: %v", err)
	}

	// A fresh handle must read from disk, not from the diskv cache.
	p2, err := Open(base)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	out, err := p2.LoadEntries(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 2 || out[0].ID != "b" || out[1].ID != "a" {
		t.Fatalf("unexpected order %+v", out)
	}
	if out[1].Tags == nil {
		t.Fatalf("expected empty tag list, got nil")
	}
	if !out[0].Date.Equal(when) {
		t.Fatalf("expected %v, got %v", when, out[0].Date)
	}
	if _, err := os.Stat(filepath.Join(base, KeyEntries)); err != nil {
		t.Fatalf("expected flat key file: %v", err)
	}
}

func TestPersistenceProfileAndReset(t *testing.T) {
	p, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx := context.Background()

	want := profile.Profile{Name: "Ana", Email: "ana@example.com", SecurityPin: "4321"}
	if err := p.StoreProfile(ctx, want); err != nil {
		t.Fatalf("store profile: %v", err)
	}
	got, err := p.LoadProfile(ctx)
	if err != nil || got == nil {
		t.Fatalf("load profile: %v %v", got, err)
	}
	if got.Name != "Ana" || got.SecurityPin != "4321" || got.Theme != profile.ThemeLight {
		t.Fatalf("unexpected profile %+v", got)
	}

	if err := p.StoreEntries(ctx, []*entry.Entry{{ID: "1"}}); err != nil {
		t.Fatalf("store entries: %v", err)
	}
	if err := p.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if got, _ := p.LoadProfile(ctx); got != nil {
		t.Fatalf("expected profile erased")
	}
	if list, _ := p.LoadEntries(ctx); len(list) != 0 {
		t.Fatalf("expected entries erased")
	}
	// Reset on an empty store is a no-op.
	if err := p.Reset(ctx); err != nil {
		t.Fatalf("second reset: %v", err)
	}
}

func TestPersistenceCorruptEntries(t *testing.T) {
	base := t.TempDir()
	if err := os.WriteFile(filepath.Join(base, KeyEntries), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	p, err := Open(base)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := p.LoadEntries(context.Background()); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestParseWeekday(t *testing.T) {
	for in, want := range map[string]time.Weekday{"": time.Sunday, "Monday": time.Monday, "sat": time.Saturday} {
		got, err := ParseWeekday(in)
		if err != nil || got != want {
			t.Fatalf("ParseWeekday(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseWeekday("someday"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestPersistenceSeesWritesFromOtherHandles(t *testing.T) {
	base := t.TempDir()
	ctx := context.Background()
	a, err := Open(base)
	if err != nil {
		t.Fatalf("open a: %v", err)
	}
	b, err := Open(base)
	if err != nil {
		t.Fatalf("open b: %v", err)
	}

	first := &entry.Entry{ID: "a", Title: "first", Mood: mood.Good, Tags: []string{}, Date: entry.NewTimestamp(time.Now())}
	if err := a.StoreEntries(ctx, []*entry.Entry{first}); err != nil {
		t.Fatalf("store a: %v", err)
	}
	if _, err := a.LoadEntries(ctx); err != nil {
		t.Fatalf("load a: %v", err)
	}

	second := &entry.Entry{ID: "b", Title: "second", Mood: mood.Great, Tags: []string{}, Date: entry.NewTimestamp(time.Now())}
	if err := b.StoreEntries(ctx, []*entry.Entry{second, first}); err != nil {
		t.Fatalf("store b: %v", err)
	}

	got, err := a.LoadEntries(ctx)
	if err != nil {
		t.Fatalf("reload a: %v", err)
	}
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "a" {
		t.Fatalf("expected [b a] after the other handle wrote, got %d entries", len(got))
	}
}
