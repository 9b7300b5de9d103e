package commands

import (
	"github.com/spf13/cobra"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/commands/options"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/printers"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/profile"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/prompt"
)

func addInit(topLevel *cobra.Command) {
	var (
		p     profile.Profile
		theme string
		pin   string
	)
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create your profile and start the journal.",
		Example: `
journal init --name "Ana Lima" --email ana@example.com
journal init -i
`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoProfile: ""},
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if i.Interactive || (p.Name == "" && env.interactive()) {
				p, err = askProfile(env.prompter(cmd), p)
				if err != nil {
					return output.HandleError(err)
				}
			} else {
				if p.Theme, err = profile.ParseTheme(theme); err != nil {
					return output.HandleError(err)
				}
				if err := prompt.Email(p.Email); err != nil {
					return output.HandleError(err)
				}
				p.SecurityPin = pin
			}

			created, err := env.service.Onboard(cmd.Context(), p)
			if err != nil {
				return output.HandleError(err)
			}
			if output.JSON {
				return printers.JSON(cmd.OutOrStdout(), created.Public())
			}
			pp := printers.PrettyPrint{Out: cmd.OutOrStdout()}
			pp.Notice("Welcome, %s. Your journal is ready.", created.Name)
			if created.HasPin() {
				pp.Notice("The journal will ask for your PIN on launch.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&p.Name, "name", "", "Your name (required).")
	cmd.Flags().StringVar(&p.Email, "email", "", "Your email address.")
	cmd.Flags().StringVar(&p.Bio, "bio", "", "A line about yourself.")
	cmd.Flags().StringVar(&p.Location, "location", "", "Where you live.")
	cmd.Flags().StringVar(&theme, "theme", string(profile.ThemeLight), "Theme: light, dark or system.")
	cmd.Flags().StringVar(&pin, "set-pin", "", "A 4 digit PIN that locks the journal on launch.")
	options.InteractiveArgs(cmd, i)

	topLevel.AddCommand(cmd)
}

func askProfile(pr prompt.Prompter, p profile.Profile) (profile.Profile, error) {
	var err error
	if p.Name, err = pr.Text("Name", p.Name, prompt.Required("name")); err != nil {
		return p, err
	}
	if p.Email, err = pr.Text("Email", p.Email, prompt.Email); err != nil {
		return p, err
	}
	if p.Bio, err = pr.Text("Bio", p.Bio, nil); err != nil {
		return p, err
	}
	if p.Location, err = pr.Text("Location", p.Location, nil); err != nil {
		return p, err
	}
	if p.Theme, err = pr.Theme(profile.ThemeLight); err != nil {
		return p, err
	}
	if p.SecurityPin, err = pr.NewPin(); err != nil {
		return p, err
	}
	return p, nil
}
