package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/commands/options"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/runner/get"
)

var (
	output = &options.OutputOptions{}
	env    = newEnvironment()
)

func New() *cobra.Command {
	env = newEnvironment()
	output = &options.OutputOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "journal",
		Short: base.Wrap80("A private journal on the command line, with an optional writing assistant."),
		Long: base.Wrap80("Write dated entries with a mood, tags, a location and images; search " +
			"them, watch your writing streak grow, and export the lot as a PDF. " +
			"Without a subcommand the timeline is shown."),
		Args:              cobra.NoArgs,
		PersistentPreRunE: env.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			env.close()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s := get.Get{
				Service: env.service,
				Limit:   10,
				ShowID:  io.ShowID,
				JSON:    output.JSON,
				Out:     cmd.OutOrStdout(),
			}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}

	cmd.PersistentFlags().StringVar(&env.configFile, "config", "",
		"Config file (default is .journal.yaml in $JOURNAL_CONFIG_PATH, the working directory or $HOME).")
	cmd.PersistentFlags().StringVar(&env.pin, "pin", "",
		"PIN used to unlock the journal when no terminal is attached (or set JOURNAL_PIN).")
	options.AddOutputArg(cmd, output)
	options.AddShowIDArgs(cmd, io)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addInit(topLevel)
	addList(topLevel)
	addShow(topLevel)
	addAdd(topLevel)
	addEdit(topLevel)
	addDelete(topLevel)
	addFav(topLevel)
	addSearch(topLevel)
	addHistory(topLevel)
	addProfile(topLevel)
	addPin(topLevel)
	addInsight(topLevel)
	addEnhance(topLevel)
	addSummarize(topLevel)
	addTags(topLevel)
	addExport(topLevel)
	addReport(topLevel)
	addReset(topLevel)
	addKey(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
