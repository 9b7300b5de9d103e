// Package options defines shared flag helpers for CLI commands.
package options

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/mood"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/query"
)

// FilterOptions captures the search filters shared by list and search.
type FilterOptions struct {
	Mood      mood.Mood
	Favorites bool
	Limit     int
	Range     RangeOptions
}

// AddFavoritesArg registers --favorites.
func AddFavoritesArg(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().BoolVarP(&o.Favorites, "favorites", "f", false,
		"Only show favorite entries.")
	cmd.Flags().IntVarP(&o.Limit, "limit", "n", 0,
		"Show at most this many entries (0 for all).")
}

// AddFilterArgs wires the full set of search filters on the provided command.
func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	o.Mood = mood.Any
	AddFavoritesArg(cmd, o)
	cmd.Flags().VarP(&MoodValue{Mood: &o.Mood}, "mood", "m",
		"Only show entries with this mood, one of: "+MoodUsage()+", all.")
	AddRangeArgs(cmd, &o.Range)

	_ = cmd.RegisterFlagCompletionFunc("mood", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return append(MoodCompletions(), "all"), cobra.ShellCompDirectiveNoFileComp
	})
}

// Criteria builds the query for text and the flags.
func (o *FilterOptions) Criteria(text []string, now time.Time) (query.Criteria, error) {
	from, to, err := o.Range.Get(now)
	if err != nil {
		return query.Criteria{}, err
	}
	m := o.Mood
	if m == "" {
		m = mood.Any
	}
	return query.Criteria{
		Text:          strings.TrimSpace(strings.Join(text, " ")),
		Mood:          m,
		From:          from,
		To:            to,
		FavoritesOnly: o.Favorites,
	}, nil
}
