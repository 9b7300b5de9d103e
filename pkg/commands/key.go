package commands

import (
	"github.com/spf13/cobra"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "moods",
		Aliases: []string{"key"},
		Short:   "Print the moods and the words accepted for them",
		Example: `
journal moods
`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoJournal: ""},
		RunE: func(cmd *cobra.Command, args []string) error {
			k := key.Key{Out: cmd.OutOrStdout()}
			err := k.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
