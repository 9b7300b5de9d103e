package theme

import (
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/profile"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Pad    PadTheme
	Footer FooterTheme
}

// PadTheme styles the PIN pad.
type PadTheme struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Dots     lipgloss.Style
	Error    lipgloss.Style
	Key      lipgloss.Style
}

// FooterTheme groups styles used by the bottom help line.
type FooterTheme struct {
	Help lipgloss.Style
}

type palette struct {
	accent, text, muted, danger, border string
}

var (
	light = palette{accent: "#4f46e5", text: "#18181b", muted: "#71717a", danger: "#dc2626", border: "#d4d4d8"}
	dark  = palette{accent: "#818cf8", text: "#f4f4f5", muted: "#a1a1aa", danger: "#f87171", border: "#3f3f46"}
)

// Default returns the light theme.
func Default() Theme {
	return build(light)
}

// For picks the theme matching a profile preference. System follows the
// terminal background as reported by the caller.
func For(t profile.Theme, darkBackground bool) Theme {
	switch t {
	case profile.ThemeDark:
		return build(dark)
	case profile.ThemeSystem:
		if darkBackground {
			return build(dark)
		}
	}
	return build(light)
}

func build(p palette) Theme {
	return Theme{
		Pad: PadTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(p.border)).
				Padding(1, 4),
			Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.text)),
			Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted)),
			Dots:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.accent)),
			Error:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.danger)),
			Key: lipgloss.NewStyle().
				Foreground(lipgloss.Color(p.text)).
				Padding(0, 1),
		},
		Footer: FooterTheme{
			Help: lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted)),
		},
	}
}
