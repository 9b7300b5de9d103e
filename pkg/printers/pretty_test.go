package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/entry"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/heatmap"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/insight"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/mood"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/profile"
)

func init() {
	color.NoColor = true
}

func sample() *entry.Entry {
	return &entry.Entry{
		ID:         "abc",
		Title:      "Beach day",
		Content:    strings.Repeat("waves and sand ", 20),
		Date:       entry.NewTimestamp(time.Date(2024, time.May, 4, 15, 0, 0, 0, time.Local)),
		Mood:       mood.Great,
		Tags:       []string{"beach", "family"},
		IsFavorite: true,
		AISummary:  "A sunny family outing.",
	}
}

func TestTimeline(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{ShowID: true, Out: &buf}
	pp.Timeline(sample())

	got := buf.String()
	for _, want := range []string{"abc", "May 04 2024", "🥰", "Beach day", "★", "#beach #family", "…"} {
		if !strings.Contains(got, want) {
			t.Fatalf("timeline missing %q:\n%s", want, got)
		}
	}
}

func TestTimelineEmpty(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Timeline()
	if !strings.Contains(buf.String(), "no entries yet") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestEntryWrapsContent(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf, Width: 40}
	pp.Entry(sample())

	got := buf.String()
	if !strings.Contains(got, "Saturday, May 4, 2024") || !strings.Contains(got, "A sunny family outing.") {
		t.Fatalf("detail missing header or summary:\n%s", got)
	}
	for _, line := range strings.Split(got, "\n") {
		if strings.HasPrefix(line, "waves") && len(line) > 40 {
			t.Fatalf("line not wrapped: %q", line)
		}
	}
}

func TestProfileMasksPin(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Profile(profile.Profile{Name: "Ana", Theme: profile.ThemeDark, SecurityPin: "1234"}, 12)

	got := buf.String()
	if strings.Contains(got, "1234") {
		t.Fatalf("pin leaked:\n%s", got)
	}
	if !strings.Contains(got, "●●●●") || !strings.Contains(got, "12") {
		t.Fatalf("unexpected profile:\n%s", got)
	}
}

func TestInsightMarksFallback(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Insight(insight.Result[insight.Insight]{Value: insight.FallbackInsight, Fallback: true})
	if !strings.Contains(buf.String(), "(offline)") {
		t.Fatalf("fallback not marked:\n%s", buf.String())
	}
}

func TestHeatmap(t *testing.T) {
	today := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.Local)
	entries := []*entry.Entry{
		{ID: "a", Date: entry.NewTimestamp(today)},
		{ID: "b", Date: entry.NewTimestamp(today.AddDate(0, 0, -1))},
	}
	g := heatmap.Build(entries, today, time.Sunday)

	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Heatmap(g, 9)

	got := buf.String()
	lines := strings.Split(got, "\n")
	if !strings.Contains(lines[2], "Mon") {
		t.Fatalf("expected Monday label on the second weekday row, got %q", lines[2])
	}
	for _, want := range []string{"Less", "More", "Total memories", "9", "Current streak"} {
		if !strings.Contains(got, want) {
			t.Fatalf("heatmap missing %q:\n%s", want, got)
		}
	}
	if strings.Count(got, cell) != 2+3 {
		t.Fatalf("expected two filled days plus legend cells:\n%s", got)
	}
}

func TestLevelColorsRamp(t *testing.T) {
	colors := LevelColors()
	if len(colors) != 4 {
		t.Fatalf("expected 4 colors, got %d", len(colors))
	}
	seen := map[string]bool{}
	for _, c := range colors {
		if seen[c] {
			t.Fatalf("duplicate color %s in %v", c, colors)
		}
		seen[c] = true
	}
}

func TestMonthLabels(t *testing.T) {
	start := time.Date(2024, time.January, 28, 0, 0, 0, 0, time.UTC)
	var weeks [][]heatmap.Day
	for i := 0; i < 6; i++ {
		weeks = append(weeks, []heatmap.Day{{Date: start.AddDate(0, 0, 7*i)}})
	}
	got := monthLabels(weeks)
	if !strings.HasPrefix(got, "Jan") || !strings.Contains(got, "Feb") {
		t.Fatalf("unexpected labels %q", got)
	}
}
