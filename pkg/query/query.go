// Package query filters and orders entry snapshots for the timeline and
// search views. Nothing here mutates its input.
package query

import (
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"
	"golang.org/x/text/cases"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/entry"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/mood"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/timeutil"
)

// Criteria are combined with AND. Zero values disable a criterion.
type Criteria struct {
	Text string
	// Mood matches exactly; "" and mood.Any match every mood.
	Mood mood.Mood
	// From and To are calendar days, inclusive, in their own locations.
	From          *time.Time
	To            *time.Time
	FavoritesOnly bool
}

// Empty reports whether c would match everything.
func (c Criteria) Empty() bool {
	return strings.TrimSpace(c.Text) == "" &&
		(c.Mood == "" || c.Mood == mood.Any) &&
		c.From == nil && c.To == nil && !c.FavoritesOnly
}

var folder = cases.Fold()

func fold(s string) string {
	return folder.String(s)
}

// SortByDate returns a copy ordered newest first. Equal dates keep their
// relative order.
func SortByDate(entries []*entry.Entry) []*entry.Entry {
	out := append([]*entry.Entry(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date.Time)
	})
	return out
}

// Filter sorts by date descending, then keeps entries matching every
// criterion.
func Filter(entries []*entry.Entry, c Criteria) []*entry.Entry {
	sorted := SortByDate(entries)
	match := c.matcher()
	return lo.Filter(sorted, func(e *entry.Entry, _ int) bool {
		return match(e)
	})
}

// Favorites is the favorites-only timeline.
func Favorites(entries []*entry.Entry) []*entry.Entry {
	return Filter(entries, Criteria{FavoritesOnly: true})
}

// Recent returns the n most recent entries.
func Recent(entries []*entry.Entry, n int) []*entry.Entry {
	sorted := SortByDate(entries)
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// InRange keeps entries dated within [from, to] without the day rounding
// Filter applies. Either bound may be nil.
func InRange(entries []*entry.Entry, from, to *time.Time) []*entry.Entry {
	return lo.Filter(entries, func(e *entry.Entry, _ int) bool {
		if from != nil && e.Date.Before(*from) {
			return false
		}
		if to != nil && e.Date.After(*to) {
			return false
		}
		return true
	})
}

func (c Criteria) matcher() func(*entry.Entry) bool {
	needle := fold(strings.TrimSpace(c.Text))
	var start, end time.Time
	if c.From != nil {
		start = timeutil.StartOfDay(*c.From)
	}
	if c.To != nil {
		end = timeutil.EndOfDay(*c.To)
	}

	return func(e *entry.Entry) bool {
		if needle != "" && !containsText(e, needle) {
			return false
		}
		if c.Mood != "" && c.Mood != mood.Any && e.Mood != c.Mood {
			return false
		}
		if c.From != nil && e.Date.Before(start) {
			return false
		}
		if c.To != nil && e.Date.After(end) {
			return false
		}
		if c.FavoritesOnly && !e.IsFavorite {
			return false
		}
		return true
	}
}

func containsText(e *entry.Entry, needle string) bool {
	if strings.Contains(fold(e.Title), needle) || strings.Contains(fold(e.Content), needle) {
		return true
	}
	return lo.SomeBy(e.Tags, func(tag string) bool {
		return strings.Contains(fold(tag), needle)
	})
}
