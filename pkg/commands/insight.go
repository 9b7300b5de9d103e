package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/insight"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/printers"
)

func addInsight(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "insight",
		Short: "Ask the assistant for a reflection on your last entries.",
		Long: `Insight sends your five most recent entries to the configured assistant
and prints a short reflection. Without an assistant a default note is shown.`,
		Example: `
journal insight
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := env.service.Insight(cmd.Context())
			if output.JSON {
				return printResult(cmd.OutOrStdout(), res)
			}
			pp := printers.PrettyPrint{Out: cmd.OutOrStdout()}
			pp.NewLine()
			pp.Insight(res)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

type resultView[T any] struct {
	Value    T      `json:"value"`
	Fallback bool   `json:"fallback"`
	Reason   string `json:"reason,omitempty"`
}

func printResult[T any](w io.Writer, res insight.Result[T]) error {
	v := resultView[T]{Value: res.Value, Fallback: res.Fallback}
	if res.Reason != nil {
		v.Reason = res.Reason.Error()
	}
	return printers.JSON(w, v)
}
