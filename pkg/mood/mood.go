package mood

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Mood is stored as its emoji symbol so journals written by other clients
// load unchanged.
type Mood string

const (
	Great    Mood = "🥰"
	Good     Mood = "🙂"
	Neutral  Mood = "😐"
	Down     Mood = "😔"
	Stressed Mood = "😫"
	Angry    Mood = "😡"
	Inspired Mood = "✨"

	// Any disables mood filtering.
	Any Mood = "ALL"
)

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
	Aliases []string
}

func DefaultGlyphs() []Glyph {
	return []Glyph{{
		Key:     "great",
		Symbol:  string(Great),
		Meaning: "Great",
		Aliases: []string{"happy", "love"},
	}, {
		Key:     "good",
		Symbol:  string(Good),
		Meaning: "Good",
		Aliases: []string{"ok", "fine"},
	}, {
		Key:     "neutral",
		Symbol:  string(Neutral),
		Meaning: "Neutral",
		Aliases: []string{"meh"},
	}, {
		Key:     "down",
		Symbol:  string(Down),
		Meaning: "Down",
		Aliases: []string{"sad", "low"},
	}, {
		Key:     "stressed",
		Symbol:  string(Stressed),
		Meaning: "Stressed",
		Aliases: []string{"tired", "anxious"},
	}, {
		Key:     "angry",
		Symbol:  string(Angry),
		Meaning: "Angry",
		Aliases: []string{"mad"},
	}, {
		Key:     "inspired",
		Symbol:  string(Inspired),
		Meaning: "Inspired",
		Aliases: []string{"creative", "spark"},
	}}
}

// All lists the moods in picker order.
func All() []Mood {
	glyphs := DefaultGlyphs()
	out := make([]Mood, 0, len(glyphs))
	for _, g := range glyphs {
		out = append(out, Mood(g.Symbol))
	}
	return out
}

func (g Glyph) String() string {
	return g.Symbol
}

// Glyph returns the table row for m. Unknown moods yield a glyph carrying the
// raw value as both symbol and meaning.
func (m Mood) Glyph() Glyph {
	for _, g := range DefaultGlyphs() {
		if g.Symbol == string(m) {
			return g
		}
	}
	if m == Any {
		return Glyph{Key: "all", Symbol: "", Meaning: "All moods"}
	}
	return Glyph{Key: string(m), Symbol: string(m), Meaning: string(m)}
}

func (m Mood) String() string {
	return string(m)
}

func (m Mood) Meaning() string {
	return m.Glyph().Meaning
}

// Valid reports whether m is one of the enumerated moods.
func (m Mood) Valid() bool {
	for _, g := range DefaultGlyphs() {
		if g.Symbol == string(m) {
			return true
		}
	}
	return false
}

// ForAlias resolves a key, alias, meaning or symbol to a Mood. "all", "any"
// and "" map to Any.
func ForAlias(alias string) (Mood, error) {
	a := strings.ToLower(strings.TrimSpace(alias))
	switch a {
	case "", "all", "any", strings.ToLower(string(Any)):
		return Any, nil
	}
	for _, g := range DefaultGlyphs() {
		if a == g.Key || a == g.Symbol || a == strings.ToLower(g.Meaning) {
			return Mood(g.Symbol), nil
		}
		for _, al := range g.Aliases {
			if a == al {
				return Mood(g.Symbol), nil
			}
		}
	}
	return "", fmt.Errorf("unknown mood %q", alias)
}

func (m *Mood) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*m = Neutral
		return nil
	}
	*m = Mood(s)
	return nil
}
