// Package prompt asks for values on the terminal with promptui.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/mood"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/profile"
)

// Prompter reads answers from In and draws on Out. Zero values use the
// process stdin and stdout.
type Prompter struct {
	In  io.Reader
	Out io.Writer
}

var textTemplates = &promptui.PromptTemplates{
	Prompt:  "{{ . }}: ",
	Valid:   "{{ . | green }}: ",
	Invalid: "{{ . | red }}: ",
	Success: "{{ . | bold }}: ",
}

func (p Prompter) stdin() io.ReadCloser {
	if p.In == nil {
		return io.NopCloser(os.Stdin)
	}
	return io.NopCloser(p.In)
}

func (p Prompter) stdout() io.WriteCloser {
	if p.Out == nil {
		return NopCloser(os.Stdout)
	}
	return NopCloser(p.Out)
}

// Text asks for a line of text. An empty answer yields def.
func (p Prompter) Text(label, def string, validate func(string) error) (string, error) {
	pr := promptui.Prompt{
		Label:     label,
		Default:   def,
		AllowEdit: true,
		Templates: textTemplates,
		Stdin:     p.stdin(),
		Stdout:    p.stdout(),
	}
	if validate != nil {
		pr.Validate = validate
	}
	result, err := pr.Run()
	if err != nil {
		return "", err
	}
	result = strings.TrimSpace(result)
	if result == "" {
		result = def
	}
	return result, nil
}

// Secret asks for a value without echoing it.
func (p Prompter) Secret(label string, validate func(string) error) (string, error) {
	pr := promptui.Prompt{
		Label:       label,
		Mask:        '●',
		HideEntered: true,
		Templates:   textTemplates,
		Validate:    validate,
		Stdin:       p.stdin(),
		Stdout:      p.stdout(),
	}
	return pr.Run()
}

// Confirm asks a yes/no question. "n" or an empty answer is false.
func (p Prompter) Confirm(label string) (bool, error) {
	pr := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     p.stdin(),
		Stdout:    p.stdout(),
	}
	result, err := pr.Run()
	if errors.Is(err, promptui.ErrAbort) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return ParseBool(strings.TrimSpace(result))
}

// Mood shows the mood picker with def preselected.
func (p Prompter) Mood(def mood.Mood) (mood.Mood, error) {
	glyphs := mood.DefaultGlyphs()
	cursor := 0
	for i, g := range glyphs {
		if g.Symbol == string(def) {
			cursor = i
		}
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Symbol }} {{ .Meaning | bold }}",
		Inactive: "   {{ .Symbol }} {{ .Meaning }}",
		Selected: "{{ .Symbol }} {{ .Meaning | bold }}",
		Details: `
aliases: {{ range .Aliases }}{{ . }} {{ end }}`,
	}

	searcher := func(input string, index int) bool {
		g := glyphs[index]
		input = strings.ToLower(strings.TrimSpace(input))
		if strings.Contains(g.Key, input) {
			return true
		}
		for _, a := range g.Aliases {
			if strings.Contains(a, input) {
				return true
			}
		}
		return false
	}

	sel := promptui.Select{
		HideHelp:  true,
		Label:     "Mood",
		Items:     glyphs,
		Templates: templates,
		Size:      len(glyphs),
		CursorPos: cursor,
		Searcher:  searcher,
		Stdin:     p.stdin(),
		Stdout:    p.stdout(),
	}
	i, _, err := sel.Run()
	if err != nil {
		return "", err
	}
	return mood.Mood(glyphs[i].Symbol), nil
}

// Theme shows the theme picker.
func (p Prompter) Theme(def profile.Theme) (profile.Theme, error) {
	themes := []profile.Theme{profile.ThemeLight, profile.ThemeDark, profile.ThemeSystem}
	cursor := 0
	for i, t := range themes {
		if t == def {
			cursor = i
		}
	}
	sel := promptui.Select{
		HideHelp:  true,
		Label:     "Theme",
		Items:     themes,
		CursorPos: cursor,
		Stdin:     p.stdin(),
		Stdout:    p.stdout(),
	}
	i, _, err := sel.Run()
	if err != nil {
		return "", err
	}
	return themes[i], nil
}

// NewPin asks for a PIN and its confirmation. Skipping the first question
// leaves the journal unlocked.
func (p Prompter) NewPin() (string, error) {
	pin, err := p.Secret("PIN (4 digits, blank for none)", profile.ValidatePin)
	if err != nil || pin == "" {
		return "", err
	}
	confirm, err := p.Secret("Confirm PIN", func(s string) error {
		if s != pin {
			return errors.New("PINs do not match")
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return confirm, nil
}

// Required rejects blank answers.
func Required(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

// Email accepts blank or something shaped like an address.
func Email(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	at := strings.Index(s, "@")
	if at < 1 || at == len(s)-1 || strings.ContainsAny(s, " \t") {
		return fmt.Errorf("%q is not an email address", s)
	}
	return nil
}

// ParseBool is strconv.ParseBool with the addition of Yes/No parsing.
func ParseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "y", "Y", "yes", "YES", "Yes":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "n", "N", "no", "NO", "No":
		return false, nil
	}
	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// NopCloser returns a WriteCloser with a no-op Close method wrapping w.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopWriteCloser{w}
}
