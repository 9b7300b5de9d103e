// Package export renders a selection of entries into a shareable document.
package export

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/entry"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/profile"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/query"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/timeutil"
)

// EmptyMessage is shown instead of exporting an empty selection.
const EmptyMessage = "No entries found in the selected range to export."

// Formatter writes a document for owner containing entries.
type Formatter interface {
	Name() string
	Ext() string
	Format(w io.Writer, owner profile.Profile, entries []*entry.Entry, now time.Time) error
}

// ForName picks a formatter by name.
func ForName(name string) (Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "pdf":
		return PDF{}, nil
	case "json":
		return JSON{}, nil
	default:
		return nil, fmt.Errorf("unknown export format %q (expected pdf or json)", name)
	}
}

// Range selects entries by calendar day. It only applies when both ends are
// set; otherwise every entry is exported.
type Range struct {
	From *time.Time
	To   *time.Time
}

func (r Range) Custom() bool {
	return r.From != nil && r.To != nil
}

// Select returns the entries inside r, oldest first.
func Select(entries []*entry.Entry, r Range) []*entry.Entry {
	selected := entries
	if r.Custom() {
		from := timeutil.StartOfDay(*r.From)
		to := timeutil.EndOfDay(*r.To)
		selected = query.InRange(entries, &from, &to)
	}
	return Chronological(selected)
}

// Chronological returns a copy sorted oldest first for reading order.
func Chronological(entries []*entry.Entry) []*entry.Entry {
	out := append([]*entry.Entry(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date.Time)
	})
	return out
}

var whitespace = regexp.MustCompile(`\s+`)

// FileName is Journal_<name>_<YYYY-MM-DD>.<ext>, with whitespace runs in the
// name replaced by underscores.
func FileName(owner profile.Profile, ext string, now time.Time) string {
	name := whitespace.ReplaceAllString(strings.TrimSpace(owner.Name), "_")
	return fmt.Sprintf("Journal_%s_%s.%s", name, now.UTC().Format(timeutil.LayoutDay), ext)
}
