package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Gorghs/NSS-ops/pkg/core/model"
	"github.com/Gorghs/NSS-ops/pkg/core/services"
)

// PlanCmd creates the plan command
func PlanCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan <issue description>",
		Short: "Turn an issue description into an activity suggestion (programme officer only)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireRole(model.RoleOfficer); err != nil {
				return err
			}
			description := strings.Join(args, " ")

			plan, err := services.PlanIssue(app.Ctx, app.Client, app.Logger, description)
			if err != nil {
				return err
			}

			fmt.Printf("\nSuggested activity:\n\n")
			fmt.Printf("Type:            %s\n", plan.Type)
			fmt.Printf("Volunteers:      %d\n", plan.Count)
			fmt.Printf("Estimated hours: %d\n", plan.EstHours)
			fmt.Printf("Skills:          %s\n", strings.Join(plan.Skills, ", "))

			title, _ := cmd.Flags().GetString("create")
			location, _ := cmd.Flags().GetString("location")
			if title == "" {
				fmt.Println("\nRe-run with --create <title> --location <location> to create it.")
				return nil
			}
			if location == "" {
				return fmt.Errorf("--location is required with --create")
			}

			activity, err := services.CreateFromPlan(app.Ctx, app.Client, app.Cache, app.Logger, title, location, *plan)
			if err != nil {
				return err
			}
			fmt.Printf("\n✓ Activity %d created from plan\n", activity.ID)
			return nil
		},
	}

	cmd.Flags().String("create", "", "Create the suggested activity with this title")
	cmd.Flags().String("location", "", "Location for the created activity")
	return cmd
}
