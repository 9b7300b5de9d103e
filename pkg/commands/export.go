package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/commands/options"
	formats "github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/export"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/printers"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	var (
		format string
		path   string
	)
	ro := &options.RangeOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the journal as a PDF diary or a JSON document.",
		Long: `Export writes every entry, oldest first, or only the days between --from
and --to when both are given. The file defaults to
Journal_<name>_<date>.<ext> in the working directory; "-o -" writes to
stdout.`,
		Example: `
journal export
journal export --from 2024-06-01 --to 2024-06-30
journal export --format json -o - | jq .
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := formats.ForName(format)
			if err != nil {
				return output.HandleError(err)
			}
			from, to, err := ro.Get(env.now())
			if err != nil {
				return output.HandleError(err)
			}
			r := formats.Range{From: from, To: to}
			if (from == nil) != (to == nil) {
				pp := printers.PrettyPrint{Out: cmd.ErrOrStderr()}
				pp.Warn("both --from and --to are needed for a range, exporting %s", export.Describe(formats.Range{}))
			}

			dir, err := os.Getwd()
			if err != nil {
				return output.HandleError(err)
			}
			e := export.Export{
				Service: env.service,
				Format:  f,
				Range:   r,
				Path:    path,
				Dir:     dir,
				Now:     env.now,
				Out:     cmd.OutOrStdout(),
			}
			return output.HandleError(e.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVar(&format, "format", "pdf", "Document format: pdf or json.")
	cmd.Flags().StringVarP(&path, "output", "o", "", `File to write, or "-" for stdout.`)
	options.AddRangeArgs(cmd, ro)
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"pdf", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
