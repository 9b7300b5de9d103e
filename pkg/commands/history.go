package commands

import (
	"github.com/spf13/cobra"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/commands/options"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/runner/history"
)

func addHistory(topLevel *cobra.Command) {
	ho := &options.HistoryOptions{}

	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"streak", "heatmap"},
		Short:   "Show the writing heatmap for the past year.",
		Example: `
journal history
journal history --week-start monday
journal history --watch
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := ho.GetWeekStart(env.service.WeekStart)
			if err != nil {
				return output.HandleError(err)
			}
			env.service.WeekStart = ws
			h := history.History{
				Service: env.service,
				Watch:   ho.Watch,
				Now:     env.now,
				Out:     cmd.OutOrStdout(),
			}
			return output.HandleError(h.Do(cmd.Context()))
		},
	}

	options.AddHistoryArgs(cmd, ho)

	topLevel.AddCommand(cmd)
}
