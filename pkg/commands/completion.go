package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/journal"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/query"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts.",
		Long: `Print a completion script for the given shell (bash when omitted).
Entry ids complete for show, edit, delete, fav and the assistant commands.

  . <(journal completion)                 # bash, add to ~/.bashrc
  journal completion zsh > "${fpath[1]}/_journal"
  journal completion fish > ~/.config/fish/completions/journal.fish`,
		Args:                  cobra.MaximumNArgs(1),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		DisableFlagsInUseLine: true,
		Annotations:           map[string]string{annotationNoJournal: ""},
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := "bash"
			if len(args) == 1 {
				shell = args[0]
			}
			w := cmd.OutOrStdout()
			switch shell {
			case "bash":
				return topLevel.GenBashCompletionV2(w, true)
			case "zsh":
				return topLevel.GenZshCompletion(w)
			case "fish":
				return topLevel.GenFishCompletion(w, true)
			case "powershell":
				return topLevel.GenPowerShellCompletionWithDesc(w)
			default:
				return fmt.Errorf("unsupported shell %q", shell)
			}
		},
	}

	topLevel.AddCommand(cmd)
}

// entryCompletions offers entry ids, newest first, described by date.
// Setup does not run for completion requests, so the journal is opened
// here. A locked journal still completes ids; contents are never shown.
func entryCompletions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	cfg, err := env.loadConfig(env.configFile)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	p, err := env.open(cfg)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	sess, err := journal.Open(context.Background(), p)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var out []string
	for _, e := range query.SortByDate(sess.Entries.All()) {
		out = append(out, fmt.Sprintf("%s\t%s", e.ID, e.Date.Local().Format("Jan 2")))
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
