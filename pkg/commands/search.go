package commands

import (
	"github.com/spf13/cobra"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/commands/options"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/runner/get"
)

func addSearch(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "search [text...]",
		Aliases: []string{"find"},
		Short:   "Search entries by text, mood and date.",
		Long: `Search matches the text, case-insensitively, against the title, the
content and the tags of every entry. Filters combine: an entry must match
all of them.

Moods:
` + options.MoodUsage(),
		Example: `
journal search work
journal search --mood stressed --from 2024-06-01 --to 2024-06-30
journal search --favorites beach
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := fo.Criteria(args, env.now())
			if err != nil {
				return output.HandleError(err)
			}
			s := get.Get{
				Service:  env.service,
				Criteria: c,
				Title:    "Search",
				Limit:    fo.Limit,
				ShowID:   io.ShowID,
				JSON:     output.JSON,
				Out:      cmd.OutOrStdout(),
			}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
