package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/commands/options"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/entry"
)

func addEdit(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}
	ids := &options.IDOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change an existing entry.",
		Long: `Edit replaces only the fields given as flags. The date, the favorite
flag and any stored summary are kept. --image replaces every image.`,
		Example: `
journal edit 1f0c2a9e --mood good
journal edit 1f0c2a9e --content - < revised.txt
journal edit 1f0c2a9e -i
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: entryCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := env.service.Entry(args[0])
			if err != nil {
				return output.HandleError(err)
			}
			if !i.Interactive && !eo.Changed(cmd) && !eo.Summarize && !eo.SuggestTags {
				return output.HandleError(errors.New("nothing to change: give a flag such as --title or use -i"))
			}
			if err := eo.ReadContent(env.in); err != nil {
				return output.HandleError(err)
			}

			d := entry.DraftOf(e)
			if err := eo.Apply(cmd, &d); err != nil {
				return output.HandleError(err)
			}
			if i.Interactive {
				eo.Title, eo.Content, eo.Mood, eo.Tags, eo.Location = d.Title, d.Content, d.Mood, d.Tags, d.Location
				if err := askEntry(env.prompter(cmd), eo); err != nil {
					return output.HandleError(err)
				}
				d.Title, d.Content, d.Mood, d.Tags, d.Location = eo.Title, eo.Content, eo.Mood, eo.Tags, eo.Location
			}
			return output.HandleError(runAdd(cmd, e.ID, d, eo, ids))
		},
	}

	options.AddEntryArgs(cmd, eo)
	options.InteractiveArgs(cmd, i)
	options.AddShowIDArgs(cmd, ids)

	topLevel.AddCommand(cmd)
}
