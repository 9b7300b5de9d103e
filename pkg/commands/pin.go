package commands

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/lock"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/printers"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/profile"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/tui/pinpad"
)

func addPin(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "pin",
		Short: "Set, change or clear the PIN that locks the journal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addPinSet(cmd)
	addPinClear(cmd)

	topLevel.AddCommand(cmd)
}

func addPinSet(topLevel *cobra.Command) {
	var current, next string

	cmd := &cobra.Command{
		Use:     "set",
		Aliases: []string{"change"},
		Short:   "Set a new PIN, verifying the old one first.",
		Long: `Set walks through the PIN pad: the old PIN, when there is one, then the
new PIN twice. Without a terminal pass --new, and --current when a PIN is
already set.`,
		Example: `
journal pin set
journal pin set --current 1234 --new 2580
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flow, err := env.service.ChangePin(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			if next == "" && env.interactive() {
				err = pinpad.Run(pinpad.NewChange(flow, env.theme()))
			} else {
				err = changePin(flow, firstNonEmpty(current, env.pin, os.Getenv("JOURNAL_PIN")), next)
			}
			if err != nil {
				return output.HandleError(err)
			}
			pp := printers.PrettyPrint{Out: cmd.OutOrStdout()}
			pp.Notice("PIN updated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&current, "current", "", "The PIN in use now.")
	cmd.Flags().StringVar(&next, "new", "", "The new 4 digit PIN.")

	topLevel.AddCommand(cmd)
}

// changePin drives flow without a terminal.
func changePin(flow *lock.ChangeFlow, current, next string) error {
	if err := profile.ValidatePin(next); err != nil || next == "" {
		if err == nil {
			err = errors.New("--new is required without a terminal")
		}
		return err
	}
	if flow.Step() == lock.VerifyOld {
		if profile.ValidatePin(current) != nil || len(current) != profile.PinLength {
			return lock.ErrIncorrectPin
		}
		if _, err := flow.Enter(current); err != nil {
			return err
		}
	}
	if _, err := flow.Enter(next); err != nil {
		return err
	}
	if _, err := flow.Enter(next); err != nil {
		return err
	}
	if flow.Step() != lock.Done {
		return errors.New("PIN was not changed")
	}
	return nil
}

func addPinClear(topLevel *cobra.Command) {
	var current string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove the PIN so the journal opens without one.",
		Example: `
journal pin clear --current 1234
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pin := firstNonEmpty(current, env.pin, os.Getenv("JOURNAL_PIN"))
			if pin == "" && env.interactive() {
				p, err := env.service.Profile()
				if err != nil {
					return output.HandleError(err)
				}
				if p.HasPin() {
					if pin, err = env.prompter(cmd).Secret("Current PIN", profile.ValidatePin); err != nil {
						return output.HandleError(err)
					}
				}
			}
			if err := env.service.ClearPin(cmd.Context(), pin); err != nil {
				return output.HandleError(err)
			}
			pp := printers.PrettyPrint{Out: cmd.OutOrStdout()}
			pp.Notice("PIN removed. The journal no longer asks for one.")
			return nil
		},
	}

	cmd.Flags().StringVar(&current, "current", "", "The PIN in use now.")

	topLevel.AddCommand(cmd)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
