package options

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/timeutil"
)

// RangeOptions selects whole calendar days.
type RangeOptions struct {
	From string
	To   string
}

func AddRangeArgs(cmd *cobra.Command, o *RangeOptions) {
	cmd.Flags().StringVar(&o.From, "from", "",
		`First day to include, example: --from="2024-02-01" or --from=yesterday.`)
	cmd.Flags().StringVar(&o.To, "to", "",
		`Last day to include, example: --to="2024-02-28" or --to=today.`)
}

// Get parses the bounds relative to now. Unset bounds are nil.
func (o *RangeOptions) Get(now time.Time) (from, to *time.Time, err error) {
	if o.From != "" {
		t, err := parseDay(o.From, now)
		if err != nil {
			return nil, nil, err
		}
		from = &t
	}
	if o.To != "" {
		t, err := parseDay(o.To, now)
		if err != nil {
			return nil, nil, err
		}
		to = &t
	}
	return from, to, nil
}

func parseDay(s string, now time.Time) (time.Time, error) {
	return timeutil.ParseDate(s, now)
}
