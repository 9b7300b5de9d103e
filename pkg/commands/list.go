package commands

import (
	"github.com/spf13/cobra"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/commands/options"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/query"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/runner/get"
)

func addList(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "timeline"},
		Short:   "Show the timeline, newest first.",
		Example: `
journal list
journal list --favorites
journal list -n 5 --show-id
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := get.Get{
				Service:  env.service,
				Criteria: query.Criteria{FavoritesOnly: fo.Favorites},
				Limit:    fo.Limit,
				ShowID:   io.ShowID,
				JSON:     output.JSON,
				Out:      cmd.OutOrStdout(),
			}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddFavoritesArg(cmd, fo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
