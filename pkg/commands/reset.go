package commands

import (
	"github.com/spf13/cobra"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/printers"
)

func addReset(topLevel *cobra.Command) {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase every entry and the profile.",
		Long: `Reset deletes the whole journal: all entries, the profile and the PIN.
It can not be undone. Run "journal init" afterwards to start again.`,
		Example: `
journal reset
journal reset --yes
`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoProfile: ""},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if env.service.Session.Onboarded() {
				if err := env.unlockGate(); err != nil {
					return output.HandleError(err)
				}
			}
			ok, err := env.confirm(cmd, yes, "Erase all memories and your profile")
			if err != nil || !ok {
				return output.HandleError(err)
			}
			if err := env.service.Reset(cmd.Context()); err != nil {
				return output.HandleError(err)
			}
			pp := printers.PrettyPrint{Out: cmd.OutOrStdout()}
			pp.Notice("The journal is empty. Run `journal init` to start again.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation.")

	topLevel.AddCommand(cmd)
}
