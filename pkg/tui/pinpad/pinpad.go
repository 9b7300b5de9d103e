// Package pinpad is the terminal PIN pad: it unlocks the launch gate and
// drives the PIN change flow.
package pinpad

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/lock"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/profile"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/tui/theme"
)

// ErrAborted is returned by Run when the pad was dismissed.
var ErrAborted = errors.New("pinpad: cancelled")

type keyMap struct {
	Delete key.Binding
	Submit key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Delete: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
	}
}

// clearMsg fires ClearDelay after a rejected PIN.
type clearMsg struct{}

func clearAfterDelay() tea.Cmd {
	return tea.Tick(lock.ClearDelay, func(time.Time) tea.Msg { return clearMsg{} })
}

// Model is either an unlock pad around a Gate or a change pad around a
// ChangeFlow.
type Model struct {
	gate *lock.Gate
	flow *lock.ChangeFlow

	name    string
	status  string
	waiting bool
	aborted bool

	keys  keyMap
	theme theme.Theme
}

// NewUnlock returns a pad that quits once g unlocks.
func NewUnlock(g *lock.Gate, name string, th theme.Theme) *Model {
	return &Model{gate: g, name: name, keys: defaultKeys(), theme: th}
}

// NewChange returns a pad that quits once f reaches Done.
func NewChange(f *lock.ChangeFlow, th theme.Theme) *Model {
	return &Model{flow: f, keys: defaultKeys(), theme: th}
}

// Done reports whether the pad finished successfully.
func (m *Model) Done() bool {
	if m.gate != nil {
		return m.gate.State() == lock.Unlocked
	}
	return m.flow.Step() == lock.Done
}

func (m *Model) Aborted() bool { return m.aborted }

func (m *Model) Init() tea.Cmd {
	if m.Done() {
		return tea.Quit
	}
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clearMsg:
		m.waiting = false
		if m.gate != nil {
			m.gate.Clear()
		}
		return m, nil
	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.aborted = true
			return m, tea.Quit
		case m.waiting:
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			m.backspace()
			return m, nil
		case key.Matches(msg, m.keys.Submit):
			return m, m.submit()
		}
		if s := msg.String(); len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
			return m, m.press(rune(s[0]))
		}
	}
	return m, nil
}

func (m *Model) backspace() {
	if m.gate != nil {
		m.gate.Backspace()
		return
	}
	in := m.flow.Input()
	if in != "" {
		m.flow.SetInput(in[:len(in)-1])
	}
}

func (m *Model) press(d rune) tea.Cmd {
	if m.gate != nil {
		m.status = ""
		switch m.gate.Press(d) {
		case lock.Accepted:
			return tea.Quit
		case lock.Rejected:
			m.status = lock.ErrIncorrectPin.Error()
			m.waiting = true
			return clearAfterDelay()
		}
		return nil
	}
	m.flow.SetInput(m.flow.Input() + string(d))
	if len(m.flow.Input()) < profile.PinLength {
		return nil
	}
	return m.submit()
}

func (m *Model) submit() tea.Cmd {
	if m.gate != nil {
		return nil
	}
	out, err := m.flow.Submit()
	m.status = ""
	if err != nil {
		m.status = err.Error()
	}
	if out == lock.Accepted && m.flow.Step() == lock.Done {
		return tea.Quit
	}
	return nil
}

func (m *Model) View() string {
	pad := m.theme.Pad
	var title, subtitle string
	var filled int
	if m.gate != nil {
		title = "Welcome back"
		if m.name != "" {
			title += ", " + m.name
		}
		subtitle = "Enter your PIN"
		filled = m.gate.Len()
	} else {
		title = "Change PIN"
		subtitle = m.flow.Step().String()
		filled = len(m.flow.Input())
	}

	lines := []string{
		pad.Title.Render(title),
		pad.Subtitle.Render(subtitle),
		"",
		pad.Dots.Render(spaced(lock.Mask(filled))),
		"",
		keypad(pad.Key),
	}
	if m.status != "" {
		lines = append(lines, "", pad.Error.Render(m.status))
	}
	body := pad.Frame.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
	return body + "\n" + m.theme.Footer.Help.Render(m.helpLine()) + "\n"
}

func (m *Model) helpLine() string {
	parts := make([]string, 0, 3)
	for _, b := range []key.Binding{m.keys.Delete, m.keys.Submit, m.keys.Quit} {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}

func keypad(style lipgloss.Style) string {
	rows := [][]string{{"1", "2", "3"}, {"4", "5", "6"}, {"7", "8", "9"}, {" ", "0", "⌫"}}
	out := make([]string, len(rows))
	for i, r := range rows {
		cells := make([]string, len(r))
		for j, c := range r {
			cells[j] = style.Render(c)
		}
		out[i] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return lipgloss.JoinVertical(lipgloss.Center, out...)
}

// Run shows the pad until it finishes or is dismissed.
func Run(m *Model) error {
	if m.Done() {
		return nil
	}
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	if m.aborted || !m.Done() {
		return ErrAborted
	}
	return nil
}
