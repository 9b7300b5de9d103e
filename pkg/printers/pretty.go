package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/entry"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/insight"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/lock"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/profile"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/timeutil"
)

type PrettyPrint struct {
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer
	// Width is the wrap width for entry content. Zero means 80.
	Width int
}

const excerptLength = 100

var (
	spacing = strings.Repeat(" ", len("00000000-0000-0000-0000-000000000000  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) width() int {
	if pp.Width <= 0 {
		return 80
	}
	return pp.Width
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " memory")
	default:
		_, _ = c.Fprintln(pp.out(), " memories")
	}
}

// Timeline prints one card per entry: date, mood and title, an excerpt and
// the tags.
func (pp *PrettyPrint) Timeline(entries ...*entry.Entry) {
	w := pp.out()
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(w, " no entries yet\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	d := color.New(color.Faint)
	b := color.New(color.Bold)
	star := color.New(color.FgYellow)
	tag := color.New(color.FgCyan)
	pad := ""
	if pp.ShowID {
		pad = spacing
	}

	for _, e := range entries {
		if pp.ShowID {
			_, _ = y.Fprint(w, e.ID)
			_, _ = y.Fprint(w, strings.Repeat(" ", max(2, len(spacing)-len(e.ID))))
		}
		_, _ = d.Fprintf(w, "%s  ", e.Date.Local().Format("Jan 02 2006"))
		_, _ = fmt.Fprintf(w, "%s ", e.Mood.String())
		_, _ = b.Fprint(w, e.Title)
		if e.IsFavorite {
			_, _ = star.Fprint(w, " ★")
		}
		_, _ = fmt.Fprintln(w)

		if ex := e.Excerpt(excerptLength); ex != "" {
			_, _ = d.Fprintf(w, "%s%s\n", pad, ex)
		}
		if len(e.Tags) > 0 {
			_, _ = tag.Fprintf(w, "%s%s\n", pad, hashTags(e.Tags))
		}
		_, _ = fmt.Fprintln(w)
	}
}

// Entry prints the full detail view of one entry.
func (pp *PrettyPrint) Entry(e *entry.Entry) {
	w := pp.out()
	t := color.New(color.Bold, color.Underline)
	d := color.New(color.Faint)
	i := color.New(color.Italic, color.FgMagenta)
	tag := color.New(color.FgCyan)

	_, _ = t.Fprintln(w, e.Title)
	_, _ = d.Fprintln(w, e.Date.Local().Format(timeutil.LayoutLong+" · 3:04 PM"))

	meta := []string{fmt.Sprintf("%s %s", e.Mood.String(), e.Mood.Meaning())}
	if e.Location != "" {
		meta = append(meta, "📍 "+e.Location)
	}
	if e.IsFavorite {
		meta = append(meta, "★ favorite")
	}
	if len(e.Images) > 0 {
		meta = append(meta, fmt.Sprintf("%d image(s)", len(e.Images)))
	}
	_, _ = d.Fprintln(w, strings.Join(meta, "  ·  "))
	if pp.ShowID {
		_, _ = d.Fprintln(w, e.ID)
	}
	_, _ = fmt.Fprintln(w)

	if e.AISummary != "" {
		_, _ = i.Fprintln(w, indent.String(wordwrap.String("✨ "+e.AISummary, pp.width()-2), 2))
		_, _ = fmt.Fprintln(w)
	}

	_, _ = fmt.Fprintln(w, wordwrap.String(e.Content, pp.width()))
	if len(e.Tags) > 0 {
		_, _ = fmt.Fprintln(w)
		_, _ = tag.Fprintln(w, hashTags(e.Tags))
	}
	_, _ = fmt.Fprintln(w)
}

// Profile prints the profile as a two-column table.
func (pp *PrettyPrint) Profile(p profile.Profile, memories int) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.Wrap = true
	tbl.MaxColWidth = uint(pp.width() - 12)

	pin := "not set"
	if p.HasPin() {
		pin = lock.Mask(profile.PinLength)
	}
	tbl.AddRow("Name", p.Name)
	tbl.AddRow("Email", orDash(p.Email))
	tbl.AddRow("Bio", orDash(p.Bio))
	tbl.AddRow("Location", orDash(p.Location))
	tbl.AddRow("Theme", string(p.Theme))
	tbl.AddRow("Joined", p.JoinedAt.Local().Format(timeutil.LayoutLong))
	tbl.AddRow("PIN", pin)
	tbl.AddRow("Memories", memories)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

func (pp *PrettyPrint) Insight(res insight.Result[insight.Insight]) {
	w := pp.out()
	label := color.New(color.Bold, color.FgMagenta)
	d := color.New(color.Faint, color.Italic)

	_, _ = label.Fprintf(w, "✨ Daily insight · %s\n", res.Value.Type)
	_, _ = fmt.Fprintln(w, wordwrap.String(res.Value.Text, pp.width()))
	if res.Fallback {
		_, _ = d.Fprintln(w, "(offline)")
	}
	_, _ = fmt.Fprintln(w)
}

// Suggestions lists suggested tags, or says there are none.
func (pp *PrettyPrint) Suggestions(tags []string, applied bool) {
	w := pp.out()
	if len(tags) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprintln(w, "no new tags suggested")
		return
	}
	verb := "suggested"
	if applied {
		verb = "added"
	}
	_, _ = color.New(color.Faint).Fprintf(w, "%s: ", verb)
	_, _ = color.New(color.FgCyan).Fprintln(w, hashTags(tags))
}

// Notice prints a one-line status message.
func (pp *PrettyPrint) Notice(format string, args ...any) {
	_, _ = color.New(color.FgGreen).Fprintf(pp.out(), format+"\n", args...)
}

// Warn prints a degraded-result message.
func (pp *PrettyPrint) Warn(format string, args ...any) {
	_, _ = color.New(color.FgYellow, color.Faint).Fprintf(pp.out(), format+"\n", args...)
}

func hashTags(tags []string) string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = "#" + t
	}
	return strings.Join(out, " ")
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
