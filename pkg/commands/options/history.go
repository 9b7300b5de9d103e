package options

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/store"
)

// HistoryOptions configures the history heatmap.
type HistoryOptions struct {
	Watch     bool
	WeekStart string
}

func AddHistoryArgs(cmd *cobra.Command, o *HistoryOptions) {
	cmd.Flags().BoolVarP(&o.Watch, "watch", "w", false,
		"Keep running and redraw when the journal changes.")
	cmd.Flags().StringVar(&o.WeekStart, "week-start", "",
		"First day of each heatmap column (default from config, sunday).")
}

// GetWeekStart returns the flag value, or fallback when unset.
func (o *HistoryOptions) GetWeekStart(fallback time.Weekday) (time.Weekday, error) {
	if o.WeekStart == "" {
		return fallback, nil
	}
	return store.ParseWeekday(o.WeekStart)
}
