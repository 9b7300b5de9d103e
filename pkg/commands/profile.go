package commands

import (
	"github.com/spf13/cobra"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/printers"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/profile"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/prompt"
	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/runner/info"
)

func addProfile(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "profile",
		Aliases: []string{"info", "me"},
		Short:   "Show your profile and where the journal is stored.",
		Example: `
journal profile
journal profile --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := info.Info{
				Config:  env.config,
				Service: env.service,
				JSON:    output.JSON,
				Out:     cmd.OutOrStdout(),
			}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}

	addProfileSet(cmd)

	topLevel.AddCommand(cmd)
}

func addProfileSet(topLevel *cobra.Command) {
	var name, email, bio, location, theme string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change profile fields. Fields that are not given are kept.",
		Example: `
journal profile set --bio "Writes before breakfast."
journal profile set --theme dark --location Lisbon
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := cmd.Flags()
			patch := profile.Patch{}
			if f.Changed("name") {
				patch.Name = &name
			}
			if f.Changed("email") {
				if err := prompt.Email(email); err != nil {
					return output.HandleError(err)
				}
				patch.Email = &email
			}
			if f.Changed("bio") {
				patch.Bio = &bio
			}
			if f.Changed("location") {
				patch.Location = &location
			}
			if f.Changed("theme") {
				t, err := profile.ParseTheme(theme)
				if err != nil {
					return output.HandleError(err)
				}
				patch.Theme = &t
			}

			p, err := env.service.UpdateProfile(cmd.Context(), patch)
			if err != nil {
				return output.HandleError(err)
			}
			if output.JSON {
				return printers.JSON(cmd.OutOrStdout(), p.Public())
			}
			pp := printers.PrettyPrint{Out: cmd.OutOrStdout()}
			if patch.Empty() {
				pp.Warn("nothing to change")
			} else {
				pp.Notice("Profile updated.")
			}
			pp.Profile(p, env.service.Session.Entries.Len())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Your name.")
	cmd.Flags().StringVar(&email, "email", "", "Your email address.")
	cmd.Flags().StringVar(&bio, "bio", "", "A line about yourself.")
	cmd.Flags().StringVar(&location, "location", "", "Where you live.")
	cmd.Flags().StringVar(&theme, "theme", "", "Theme: light, dark or system.")

	topLevel.AddCommand(cmd)
}
