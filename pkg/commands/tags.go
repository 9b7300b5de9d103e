package commands

import (
	"github.com/spf13/cobra"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/printers"
)

func addTags(topLevel *cobra.Command) {
	var apply bool

	cmd := &cobra.Command{
		Use:   "tags <id>",
		Short: "Suggest tags for an entry.",
		Long: `Tags asks the assistant for short lowercase tags the entry does not carry
yet. --apply adds them.`,
		Example: `
journal tags 1f0c2a9e
journal tags 1f0c2a9e --apply
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: entryCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, e, err := env.service.SuggestTags(cmd.Context(), args[0], apply)
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
			if res.Fallback {
				pp.Warn("assistant unavailable: %v", res.Reason)
				return output.HandleError(err)
			}
			pp.Suggestions(res.Value, apply && err == nil)
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&apply, "apply", false, "Add the suggested tags to the entry.")

	topLevel.AddCommand(cmd)
}
