package timeutil

import (
	"testing"
	"time"
)

func TestParseWindowDefault(t *testing.T) {
	dur, label, err := ParseWindow("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := 28 * day; dur != want {
		t.Fatalf("expected %v, got %v", want, dur)
	}
	if label != "4w" {
		t.Fatalf("expected label 4w, got %s", label)
	}
}

func TestParseWindowComposite(t *testing.T) {
	dur, label, err := ParseWindow("1y2mo3d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := (365 + 60 + 3) * day; dur != want {
		t.Fatalf("expected %v, got %v", want, dur)
	}
	if label != "1y2mo3d" {
		t.Fatalf("unexpected label: %s", label)
	}
}

func TestParseWindowInvalid(t *testing.T) {
	for _, in := range []string{"noop", "3h", "0d"} {
		if _, _, err := ParseWindow(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestDayBounds(t *testing.T) {
	loc := time.FixedZone("X", 3*3600)
	ts := time.Date(2024, time.March, 10, 15, 4, 5, 0, loc)

	start := StartOfDay(ts)
	if !start.Equal(time.Date(2024, time.March, 10, 0, 0, 0, 0, loc)) {
		t.Fatalf("unexpected start %v", start)
	}
	end := EndOfDay(ts)
	if end.Day() != 10 || end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Fatalf("unexpected end %v", end)
	}
	if !end.Add(time.Nanosecond).Equal(start.AddDate(0, 0, 1)) {
		t.Fatalf("end should abut next day")
	}
}

func TestParseDate(t *testing.T) {
	now := time.Date(2024, time.March, 10, 15, 0, 0, 0, time.UTC)
	got, err := ParseDate("yesterday", now)
	if err != nil || got.Day() != 9 || got.Hour() != 0 {
		t.Fatalf("unexpected yesterday %v %v", got, err)
	}
	got, err = ParseDate("2024-01-31", now)
	if err != nil || got.Month() != time.January || got.Day() != 31 {
		t.Fatalf("unexpected date %v %v", got, err)
	}
	if _, err := ParseDate("31/01/2024", now); err == nil {
		t.Fatalf("expected error")
	}
}

func TestSince(t *testing.T) {
	now := time.Date(2024, time.March, 10, 15, 0, 0, 0, time.UTC)
	got := Since(now, 7*day)
	if !got.Equal(time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected since %v", got)
	}
}
