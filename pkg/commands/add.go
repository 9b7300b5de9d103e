package commands

import (
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/commands/options"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/entry"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/mood"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/printers"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/prompt"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}
	ids := &options.IDOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:     "add [content...]",
		Aliases: []string{"new", "write"},
		Short:   "Write a new entry.",
		Long: `Write a new entry. Words after the command become the content unless
--content is given. A blank title is saved as "Untitled Entry" and a missing
mood as neutral.

Moods: ` + options.MoodUsage(),
		Example: `
journal add --title "Beach day" --mood great --tag summer "Swam until sunset."
journal add -t "Standup" -c - < notes.txt
journal add --on yesterday --mood tired "Long shift."
journal add -i
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("content") && len(args) > 0 {
				eo.Content = strings.Join(args, " ")
			}
			if err := eo.ReadContent(env.in); err != nil {
				return output.HandleError(err)
			}
			if i.Interactive {
				if err := askEntry(env.prompter(cmd), eo); err != nil {
					return output.HandleError(err)
				}
			}
			d, err := eo.Draft(env.now())
			if err != nil {
				return output.HandleError(err)
			}
			return output.HandleError(runAdd(cmd, "", d, eo, ids))
		},
	}

	options.AddEntryArgs(cmd, eo)
	options.AddOnArg(cmd, eo)
	options.InteractiveArgs(cmd, i)
	options.AddShowIDArgs(cmd, ids)

	topLevel.AddCommand(cmd)
}

func runAdd(cmd *cobra.Command, id string, d entry.Draft, eo *options.EntryOptions, ids *options.IDOptions) error {
	out := cmd.OutOrStdout()
	if output.JSON {
		out = io.Discard
	}
	s := add.Add{
		Service:     env.service,
		ID:          id,
		Draft:       d,
		Summarize:   eo.Summarize,
		SuggestTags: eo.SuggestTags,
		ShowID:      ids.ShowID,
		Out:         out,
	}
	err := s.Do(cmd.Context())
	if output.JSON && s.Saved != nil {
		if perr := printers.JSON(cmd.OutOrStdout(), s.Saved); perr != nil {
			return perr
		}
	}
	return err
}

// askEntry fills the editor fields on the terminal, offering the flag
// values as defaults.
func askEntry(pr prompt.Prompter, eo *options.EntryOptions) error {
	var err error
	if eo.Title, err = pr.Text("Title", eo.Title, nil); err != nil {
		return err
	}
	if eo.Content, err = pr.Text("Content", eo.Content, nil); err != nil {
		return err
	}
	def := eo.Mood
	if def == "" || def == mood.Any {
		def = mood.Neutral
	}
	if eo.Mood, err = pr.Mood(def); err != nil {
		return err
	}
	tags, err := pr.Text("Tags (comma separated)", strings.Join(eo.Tags, ", "), nil)
	if err != nil {
		return err
	}
	eo.Tags = splitTags(tags)
	if eo.Location, err = pr.Text("Location", eo.Location, nil); err != nil {
		return err
	}
	return nil
}

func splitTags(s string) []string {
	return lo.FilterMap(strings.Split(s, ","), func(t string, _ int) (string, bool) {
		t = strings.TrimSpace(t)
		return t, t != ""
	})
}
