package commands

import (
	"github.com/spf13/cobra"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/printers"
)

func addSummarize(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "summarize <id>",
		Short: "Store a one-sentence summary on an entry.",
		Example: `
journal summarize 1f0c2a9e
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: entryCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, e, err := env.service.Summarize(cmd.Context(), args[0])
			if e == nil {
				return output.HandleError(err)
			}
			if output.JSON {
				if perr := printResult(cmd.OutOrStdout(), res); perr != nil {
					return perr
				}
				return output.HandleError(err)
			}
			pp := printers.PrettyPrint{Out: cmd.OutOrStdout()}
			switch {
			case res.Fallback:
				pp.Warn("assistant unavailable, no summary stored: %v", res.Reason)
			case res.Value == "":
				pp.Warn("nothing to summarize")
			default:
				pp.Timeline(e)
			}
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
