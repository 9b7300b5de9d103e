package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/entry"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/profile"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/timeutil"
)

const (
	margin     = 20.0
	lineHeight = 6.0
	fontFamily = "Times"
)

// PDF lays entries out as a printed diary: a title page, then one block per
// entry, oldest first.
type PDF struct{}

func (PDF) Name() string { return "pdf" }
func (PDF) Ext() string  { return "pdf" }

func (PDF) Format(w io.Writer, owner profile.Profile, entries []*entry.Entry, _ time.Time) error {
	doc := render(owner, entries)
	if err := doc.pdf.Error(); err != nil {
		return fmt.Errorf("export: building pdf: %w", err)
	}
	if err := doc.pdf.Output(w); err != nil {
		return fmt.Errorf("export: writing pdf: %w", err)
	}
	return nil
}

func render(owner profile.Profile, entries []*entry.Entry) *diary {
	doc := newDiary()
	doc.titlePage(owner.Name, len(entries))

	sorted := Chronological(entries)
	doc.pdf.AddPage()
	doc.y = margin
	for i, e := range sorted {
		doc.entry(e)
		if i < len(sorted)-1 {
			doc.separator()
		}
	}
	return doc
}

type diary struct {
	pdf          *fpdf.Fpdf
	tr           func(string) string
	upper        cases.Caser
	pageW, pageH float64
	y            float64
}

func newDiary() *diary {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, margin)
	pdf.SetCreator("journal", true)
	w, h := pdf.GetPageSize()
	return &diary{
		pdf:   pdf,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
		upper: cases.Upper(language.Und),
		pageW: w,
		pageH: h,
		y:     margin,
	}
}

func (d *diary) centered(text string, y float64) {
	s := d.tr(text)
	d.pdf.Text((d.pageW-d.pdf.GetStringWidth(s))/2, y, s)
}

func (d *diary) titlePage(name string, count int) {
	d.pdf.AddPage()
	top := d.pageH / 3

	d.pdf.SetFont(fontFamily, "B", 28)
	d.centered("The Journal", top)
	d.pdf.SetFont(fontFamily, "", 16)
	d.centered("of", top+15)
	d.pdf.SetFont(fontFamily, "B", 32)
	d.centered(name, top+35)
	d.pdf.SetFont(fontFamily, "I", 12)
	d.centered(fmt.Sprintf("%d Memories inside", count), top+50)
}

// breakFor starts a new page when height would run into the bottom margin.
func (d *diary) breakFor(height float64) {
	if d.y+height > d.pageH-margin {
		d.pdf.AddPage()
		d.y = margin
	}
}

func (d *diary) line(text string) {
	d.pdf.Text(margin, d.y, d.tr(text))
}

func (d *diary) entry(e *entry.Entry) {
	d.breakFor(20)
	d.pdf.SetFont(fontFamily, "B", 14)
	d.line(e.Date.Local().Format(timeutil.LayoutLong))
	d.y += 7

	d.breakFor(10)
	d.pdf.SetFont(fontFamily, "I", 10)
	d.pdf.SetTextColor(100, 100, 100)
	d.line(Meta(e))
	d.pdf.SetTextColor(0, 0, 0)
	d.y += 10

	d.breakFor(10)
	d.pdf.SetFont(fontFamily, "B", 12)
	d.line(d.upper.String(e.Title))
	d.y += 8

	d.pdf.SetFont(fontFamily, "", 11)
	for _, l := range d.wrap(e.Content) {
		d.breakFor(lineHeight)
		d.pdf.Text(margin, d.y, l)
		d.y += lineHeight
	}
	d.y += 10
}

// wrap splits content into lines that fit the text column, keeping blank
// lines between paragraphs. Lines are returned already translated.
func (d *diary) wrap(content string) []string {
	width := d.pageW - 2*margin
	var out []string
	for _, para := range strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n") {
		para = d.tr(strings.TrimRight(para, " \t"))
		if para == "" {
			out = append(out, "")
			continue
		}
		out = append(out, d.pdf.SplitText(para, width)...)
	}
	return out
}

func (d *diary) separator() {
	d.breakFor(15)
	d.pdf.SetDrawColor(200, 200, 200)
	d.pdf.Line(margin+50, d.y, d.pageW-margin-50, d.y)
	d.y += 15
}

// Meta is the "mood | location" line under an entry's date. Core PDF fonts
// cannot draw emoji, so the mood is named.
func Meta(e *entry.Entry) string {
	loc := e.Location
	if loc == "" {
		loc = "Unknown Location"
	}
	return fmt.Sprintf("%s | %s", e.Mood.Meaning(), loc)
}
