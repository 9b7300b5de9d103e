package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/heatmap"
)

const (
	cell      = "■"
	emptyCell = "·"

	// Blend endpoints for the intensity ramp.
	rampLow  = "#c7d2fe"
	rampHigh = "#3730a3"
	rampNone = "#3f3f46"
)

// LevelColors returns the hex color of each intensity level, from none to
// high.
func LevelColors() []string {
	lo, _ := colorful.Hex(rampLow)
	hi, _ := colorful.Hex(rampHigh)
	out := []string{rampNone}
	for i := heatmap.LevelLow; i <= heatmap.LevelHigh; i++ {
		t := float64(i-heatmap.LevelLow) / float64(heatmap.LevelHigh-heatmap.LevelLow)
		out = append(out, lo.BlendLab(hi, t).Clamped().Hex())
	}
	return out
}

// Heatmap draws the activity grid: one row per weekday, one column per
// week, month labels on top, then the legend and totals.
func (pp *PrettyPrint) Heatmap(g heatmap.Grid, memories int) {
	w := pp.out()
	o := termenv.NewOutput(w)
	colors := LevelColors()
	paint := func(level int, s string) string {
		return o.String(s).Foreground(o.Color(colors[level])).String()
	}

	weeks := g.Weeks()
	_, _ = fmt.Fprintln(w, "    "+monthLabels(weeks))

	for row := 0; row < 7; row++ {
		day := (g.FirstWeekday + time.Weekday(row)) % 7
		label := "   "
		if row%2 == 1 {
			label = day.String()[:3]
		}
		var b strings.Builder
		b.WriteString(label + " ")
		for _, week := range weeks {
			if row >= len(week) {
				b.WriteString(" ")
				continue
			}
			d := week[row]
			if d.Count == 0 {
				b.WriteString(paint(heatmap.LevelNone, emptyCell))
			} else {
				b.WriteString(paint(d.Level(), cell))
			}
		}
		_, _ = fmt.Fprintln(w, b.String())
	}

	var legend strings.Builder
	legend.WriteString("    Less ")
	legend.WriteString(paint(heatmap.LevelNone, emptyCell))
	for lvl := heatmap.LevelLow; lvl <= heatmap.LevelHigh; lvl++ {
		legend.WriteString(paint(lvl, cell))
	}
	legend.WriteString(" More")
	_, _ = fmt.Fprintln(w, legend.String())
	_, _ = fmt.Fprintln(w)

	b := color.New(color.Bold)
	d := color.New(color.Faint)
	stat := func(name string, v int) {
		_, _ = d.Fprintf(w, "%-16s", name)
		_, _ = b.Fprintf(w, "%d\n", v)
	}
	stat("Total memories", memories)
	stat("In this window", g.Total())
	stat("Active days", g.ActiveDays())
	stat("Current streak", g.CurrentStreak())
	stat("Longest streak", g.LongestStreak())
	_, _ = fmt.Fprintln(w)
}

// monthLabels places a three-letter month name over the first week column
// that starts in a new month.
func monthLabels(weeks [][]heatmap.Day) string {
	line := make([]rune, len(weeks)+3)
	for i := range line {
		line[i] = ' '
	}
	last := time.Month(0)
	next := 0
	for i, week := range weeks {
		if len(week) == 0 {
			continue
		}
		m := week[0].Date.Month()
		if m == last || i < next {
			continue
		}
		last = m
		copy(line[i:], []rune(m.String()[:3]))
		next = i + 4
	}
	return strings.TrimRight(string(line), " ")
}
