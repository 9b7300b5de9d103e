package mood

import (
	"encoding/json"
	"testing"
)

func TestForAlias(t *testing.T) {
	tests := map[string]Mood{
		"great":    Great,
		"HAPPY":    Great,
		"🙂":        Good,
		" meh ":    Neutral,
		"Stressed": Stressed,
		"spark":    Inspired,
		"all":      Any,
		"":         Any,
	}
	for in, want := range tests {
		got, err := ForAlias(in)
		if err != nil {
			t.Fatalf("ForAlias(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ForAlias(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestForAliasUnknown(t *testing.T) {
	if _, err := ForAlias("ecstatic"); err == nil {
		t.Fatalf("expected error for unknown mood")
	}
}

func TestAllMatchesGlyphTable(t *testing.T) {
	all := All()
	if len(all) != 7 {
		t.Fatalf("expected 7 moods, got %d", len(all))
	}
	for _, m := range all {
		if !m.Valid() {
			t.Fatalf("mood %q should be valid", m)
		}
	}
	if Any.Valid() {
		t.Fatalf("Any is a filter sentinel, not a mood")
	}
}

func TestUnmarshalEmptyDefaultsNeutral(t *testing.T) {
	var m Mood
	if err := json.Unmarshal([]byte(`""`), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m != Neutral {
		t.Fatalf("expected neutral, got %q", m)
	}
}

func TestMeaning(t *testing.T) {
	if got := Down.Meaning(); got != "Down" {
		t.Fatalf("unexpected meaning %q", got)
	}
}
