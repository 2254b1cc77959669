package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gorghs/NSS-ops/pkg/core/model"
)

// LoginCmd creates the login command
func LoginCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "login <email> <role>",
		Short: "Log in with an email and role (volunteer or po)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			email := args[0]
			role := model.Role(args[1])
			if !role.IsValid() {
				return fmt.Errorf("role must be %q or %q", model.RoleVolunteer, model.RoleOfficer)
			}

			if err := app.Session.Login(app.Ctx, app.Client, email, role); err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			fmt.Printf("\n✓ Logged in as %s (%s)\n", email, role)
			if profile, ok := app.Session.Profile(); ok {
				fmt.Printf("Welcome back, %s! (volunteer #%d)\n", profile.Name, profile.ID)
			} else if role == model.RoleVolunteer {
				fmt.Println("No profile on record yet - run 'join' to create one.")
			}
			return nil
		},
	}
}

// LogoutCmd creates the logout command
func LogoutCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Session.Logout()
			fmt.Println("\n✓ Logged out")
			return nil
		},
	}
}

// WhoamiCmd creates the whoami command
func WhoamiCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			role := app.Session.Role()
			if role == model.RoleNone {
				fmt.Println("\nNot logged in")
				return nil
			}
			fmt.Printf("\nRole: %s\n", role)
			if profile, ok := app.Session.Profile(); ok {
				fmt.Printf("Profile: %s (#%d), %s\n", profile.Name, profile.ID, profile.Location)
				fmt.Printf("Skills:  %v\n", profile.Skills)
			}
			return nil
		},
	}
}
