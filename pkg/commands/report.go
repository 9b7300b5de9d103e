package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/app"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/entry"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/printers"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/timeutil"
)

func addReport(topLevel *cobra.Command) {
	var last string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Display recent entries grouped by mood",
		Long: `Report lists the entries written within the specified time window, grouped
by mood, with counts of favorites and the most used tags.

Examples:
  journal report
  journal report --last 3d
  journal report --last 1w2d`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			duration, label, err := timeutil.ParseWindow(last)
			if err != nil {
				return output.HandleError(err)
			}
			until := env.now()
			since := timeutil.Since(until, duration)

			result, err := env.service.Report(since, until)
			if err != nil {
				return output.HandleError(err)
			}
			if output.JSON {
				return printers.JSON(cmd.OutOrStdout(), reportView(result, label))
			}
			renderReport(cmd.OutOrStdout(), result, label)
			return nil
		},
	}

	cmd.Flags().StringVar(&last, "last", timeutil.DefaultWindow, "time window to include (for example 3d, 1w)")
	topLevel.AddCommand(cmd)
}

func renderReport(w io.Writer, result app.ReportResult, label string) {
	since := result.Since.Local().Format("2006-01-02 15:04")
	until := result.Until.Local().Format("2006-01-02 15:04")
	_, _ = fmt.Fprintf(w, "Report · last %s (%s → %s)\n", label, since, until)

	if result.Total == 0 {
		_, _ = fmt.Fprintln(w, "  No entries found in this window.")
		_, _ = fmt.Fprintln(w)
		return
	}

	heading := color.New(color.Bold)
	faint := color.New(color.Faint)
	for _, section := range result.Sections {
		g := section.Mood.Glyph()
		_, _ = heading.Fprintf(w, "\n%s %s (%d)\n", g.Symbol, g.Meaning, len(section.Entries))
		for _, e := range section.Entries {
			star := " "
			if e.IsFavorite {
				star = "♥"
			}
			title := e.Title
			if strings.TrimSpace(title) == "" {
				title = entry.UntitledTitle
			}
			_, _ = fmt.Fprintf(w, "  %s %s  %s\n", star, faint.Sprint(e.Date.Local().Format("Jan 2 15:04")), title)
		}
	}

	_, _ = fmt.Fprintf(w, "\n%d entries, %d favorites", result.Total, result.Favorites)
	if top := result.TopTags(5); len(top) > 0 {
		_, _ = fmt.Fprintf(w, ", top tags: #%s", strings.Join(top, " #"))
	}
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w)
}

type reportSection struct {
	Mood    string         `json:"mood"`
	Entries []*entry.Entry `json:"entries"`
}

type reportJSON struct {
	Window    string          `json:"window"`
	Since     string          `json:"since"`
	Until     string          `json:"until"`
	Total     int             `json:"total"`
	Favorites int             `json:"favorites"`
	Tags      map[string]int  `json:"tags"`
	Sections  []reportSection `json:"sections"`
}

func reportView(result app.ReportResult, label string) reportJSON {
	v := reportJSON{
		Window:    label,
		Since:     entry.FormatTime(result.Since),
		Until:     entry.FormatTime(result.Until),
		Total:     result.Total,
		Favorites: result.Favorites,
		Tags:      result.Tags,
		Sections:  make([]reportSection, 0, len(result.Sections)),
	}
	for _, s := range result.Sections {
		v.Sections = append(v.Sections, reportSection{Mood: s.Mood.Glyph().Key, Entries: s.Entries})
	}
	return v
}
