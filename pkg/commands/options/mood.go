package options

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/mood"
)

// MoodValue is a pflag.Value accepting mood keys, aliases or symbols.
type MoodValue struct {
	Mood *mood.Mood
}

var _ pflag.Value = (*MoodValue)(nil)

func (v *MoodValue) String() string {
	if v.Mood == nil || *v.Mood == "" {
		return ""
	}
	return v.Mood.Glyph().Key
}

func (v *MoodValue) Set(s string) error {
	m, err := mood.ForAlias(s)
	if err != nil {
		return err
	}
	*v.Mood = m
	return nil
}

func (v *MoodValue) Type() string {
	return "mood"
}

// MoodUsage lists the accepted mood keys for flag help.
func MoodUsage() string {
	keys := make([]string, 0, 7)
	for _, g := range mood.DefaultGlyphs() {
		keys = append(keys, g.Key)
	}
	return strings.Join(keys, ", ")
}

// MoodCompletions feeds shell completion for mood flags.
func MoodCompletions() []string {
	out := make([]string, 0, 7)
	for _, g := range mood.DefaultGlyphs() {
		out = append(out, g.Key+"\t"+g.Symbol+" "+g.Meaning)
	}
	return out
}
