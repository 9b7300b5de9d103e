package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/printers"
)

func addDelete(topLevel *cobra.Command) {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an entry.",
		Example: `
journal delete 1f0c2a9e
journal delete 1f0c2a9e --yes
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: entryCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := env.service.Entry(args[0])
			if err != nil {
				return output.HandleError(err)
			}
			ok, err := env.confirm(cmd, yes, fmt.Sprintf("Delete %q", e.Title))
			if err != nil || !ok {
				return output.HandleError(err)
			}
			if err := env.service.Delete(cmd.Context(), e.ID); err != nil {
				return output.HandleError(err)
			}
			if output.JSON {
				return printers.JSON(cmd.OutOrStdout(), map[string]string{"deleted": e.ID})
			}
			pp := printers.PrettyPrint{Out: cmd.OutOrStdout()}
			pp.Notice("Deleted %q.", e.Title)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation.")

	topLevel.AddCommand(cmd)
}
