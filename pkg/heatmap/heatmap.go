// Package heatmap buckets entries into the calendar-day grid shown by the
// history view.
package heatmap

import (
	"time"

	"github.com/samber/lo"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/entry"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/timeutil"
)

// WindowDays is the minimum number of days the grid covers.
const WindowDays = 365

// Intensity levels for rendering a day cell.
const (
	LevelNone = iota
	LevelLow
	LevelMedium
	LevelHigh
)

type Day struct {
	Date  time.Time
	Count int
}

// Level maps an entry count to an intensity level.
func Level(count int) int {
	switch {
	case count <= 0:
		return LevelNone
	case count == 1:
		return LevelLow
	case count == 2:
		return LevelMedium
	default:
		return LevelHigh
	}
}

func (d Day) Level() int {
	return Level(d.Count)
}

type Grid struct {
	Days         []Day
	FirstWeekday time.Weekday
}

// Build returns one Day per calendar day from the first weekday on or before
// today-364 through today, in today's location. Entries outside the window
// are ignored.
func Build(entries []*entry.Entry, today time.Time, firstWeekday time.Weekday) Grid {
	end := timeutil.StartOfDay(today)
	start := timeutil.AddDays(end, -(WindowDays - 1))
	for start.Weekday() != firstWeekday {
		start = timeutil.AddDays(start, -1)
	}

	loc := today.Location()
	buckets := lo.CountValuesBy(entries, func(e *entry.Entry) string {
		return e.Date.In(loc).Format(timeutil.LayoutDay)
	})

	days := make([]Day, 0, WindowDays+7)
	for d := start; !d.After(end); d = timeutil.AddDays(d, 1) {
		days = append(days, Day{Date: d, Count: buckets[d.Format(timeutil.LayoutDay)]})
	}
	return Grid{Days: days, FirstWeekday: firstWeekday}
}

func (g Grid) Start() time.Time {
	if len(g.Days) == 0 {
		return time.Time{}
	}
	return g.Days[0].Date
}

func (g Grid) End() time.Time {
	if len(g.Days) == 0 {
		return time.Time{}
	}
	return g.Days[len(g.Days)-1].Date
}

// Total is the number of entries inside the window.
func (g Grid) Total() int {
	return lo.SumBy(g.Days, func(d Day) int { return d.Count })
}

// ActiveDays counts days with at least one entry.
func (g Grid) ActiveDays() int {
	return lo.CountBy(g.Days, func(d Day) bool { return d.Count > 0 })
}

// CurrentStreak counts consecutive active days ending today. An empty today
// does not break a streak that ran through yesterday.
func (g Grid) CurrentStreak() int {
	i := len(g.Days) - 1
	if i >= 0 && g.Days[i].Count == 0 {
		i--
	}
	streak := 0
	for ; i >= 0 && g.Days[i].Count > 0; i-- {
		streak++
	}
	return streak
}

// LongestStreak is the longest run of consecutive active days in the window.
func (g Grid) LongestStreak() int {
	best, run := 0, 0
	for _, d := range g.Days {
		if d.Count == 0 {
			run = 0
			continue
		}
		run++
		best = max(best, run)
	}
	return best
}

// Weeks splits the grid into columns of seven days. The last column may be
// short.
func (g Grid) Weeks() [][]Day {
	return lo.Chunk(g.Days, 7)
}
