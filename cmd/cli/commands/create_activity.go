package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Gorghs/NSS-ops/pkg/clients/apiclient"
	"github.com/Gorghs/NSS-ops/pkg/core/model"
	"github.com/Gorghs/NSS-ops/pkg/core/services"
)

// CreateActivityCmd creates the createActivity command
func CreateActivityCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "createActivity <title> <type> <location> <required_count> <estimated_hours>",
		Short: "Create a new activity (programme officer only)",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireRole(model.RoleOfficer); err != nil {
				return err
			}

			requiredCount, err := strconv.Atoi(args[3])
			if err != nil {
				return fmt.Errorf("required_count must be a number: %w", err)
			}
			estimatedHours, err := strconv.Atoi(args[4])
			if err != nil {
				return fmt.Errorf("estimated_hours must be a number: %w", err)
			}
			skills, _ := cmd.Flags().GetStringSlice("skills")

			activity, err := services.CreateActivity(app.Ctx, app.Client, app.Cache, app.Logger,
				apiclient.CreateActivityRequest{
					Title:          args[0],
					Type:           args[1],
					Location:       args[2],
					RequiredCount:  requiredCount,
					EstimatedHours: estimatedHours,
					SkillsNeeded:   skills,
				})
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Activity created!\n\n")
			fmt.Printf("ID:       %d\n", activity.ID)
			fmt.Printf("Title:    %s\n", activity.Title)
			fmt.Printf("Status:   %s\n", activity.Status)
			fmt.Printf("Urgency:  %d\n", activity.Urgency)
			return nil
		},
	}

	cmd.Flags().StringSlice("skills", nil, "Skills needed, comma separated")
	return cmd
}
