package commands

import (
	"github.com/spf13/cobra"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/printers"
)

func addFav(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "fav <id>",
		Aliases: []string{"favorite", "star"},
		Short:   "Toggle the favorite flag of an entry.",
		Example: `
journal fav 1f0c2a9e
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: entryCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := env.service.ToggleFavorite(cmd.Context(), args[0])
			if e == nil {
				return output.HandleError(err)
			}
			if output.JSON {
				if perr := printers.JSON(cmd.OutOrStdout(), e); perr != nil {
					return perr
				}
				return output.HandleError(err)
			}
			pp := printers.PrettyPrint{Out: cmd.OutOrStdout()}
			if e.IsFavorite {
				pp.Notice("♥ %q is a favorite.", e.Title)
			} else {
				pp.Notice("%q is no longer a favorite.", e.Title)
			}
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
