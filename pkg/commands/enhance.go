package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/insight"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/printers"
)

func addEnhance(topLevel *cobra.Command) {
	var (
		mode  string
		apply bool
	)

	modes := make([]string, 0, len(insight.Modes()))
	for _, m := range insight.Modes() {
		modes = append(modes, string(m))
	}

	cmd := &cobra.Command{
		Use:   "enhance <id>",
		Short: "Rewrite the content of an entry with the assistant.",
		Long: `Enhance rewrites the content of an entry. Modes: ` + strings.Join(modes, ", ") + `.
The rewrite is printed; --apply saves it over the entry. When the assistant
is unavailable the content is left as it was.`,
		Example: `
journal enhance 1f0c2a9e
journal enhance 1f0c2a9e --mode expand --apply
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: entryCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := insight.ParseMode(mode)
			if err != nil {
				return output.HandleError(err)
			}
			res, e, err := env.service.Enhance(cmd.Context(), args[0], m, apply)
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
				pp.Warn("assistant unavailable, content unchanged: %v", res.Reason)
				return output.HandleError(err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), res.Value)
			if apply && err == nil {
				pp.Notice("Saved to %q.", e.Title)
			}
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", string(insight.ModeGrammar), "Rewrite mode: "+strings.Join(modes, ", ")+".")
	cmd.Flags().BoolVar(&apply, "apply", false, "Save the rewrite over the entry content.")
	_ = cmd.RegisterFlagCompletionFunc("mode", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return modes, cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
