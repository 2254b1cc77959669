package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Gorghs/NSS-ops/pkg/core/model"
	"github.com/Gorghs/NSS-ops/pkg/core/services"
)

// MatchCmd creates the match command
func MatchCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "match <activity_id>",
		Short: "Show AI match suggestions for an activity (programme officer only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireRole(model.RoleOfficer); err != nil {
				return err
			}
			activityID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("activity_id must be a number: %w", err)
			}

			matches, err := services.SuggestMatches(app.Ctx, app.Client, app.Logger, activityID)
			if err != nil {
				return err
			}

			fmt.Printf("\n%d match suggestions:\n\n", len(matches))
			for i, m := range matches {
				fmt.Printf("%2d. [%d] %s (score %.2f) - %s\n",
					i+1, m.Volunteer.ID, m.Volunteer.Name, m.Score, m.Reason)
			}
			return nil
		},
	}
}

// AssignCmd creates the assign command
func AssignCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "assign <activity_id> <volunteer_id> [volunteer_id...]",
		Short: "Assign volunteers to an activity (programme officer only)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireRole(model.RoleOfficer); err != nil {
				return err
			}
			activityID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("activity_id must be a number: %w", err)
			}

			volunteerIDs := make([]int, 0, len(args)-1)
			for _, raw := range args[1:] {
				id, err := strconv.Atoi(raw)
				if err != nil {
					return fmt.Errorf("volunteer_id %q must be a number: %w", raw, err)
				}
				volunteerIDs = append(volunteerIDs, id)
			}

			if err := services.AssignVolunteers(app.Ctx, app.Client, app.Cache, app.Logger, activityID, volunteerIDs); err != nil {
				return err
			}

			fmt.Printf("\n✓ Assigned %d volunteers to activity %d\n", len(volunteerIDs), activityID)
			return nil
		},
	}
}

// VerifyCmd creates the verify command
func VerifyCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <activity_id>",
		Short: "Approve or reject a submitted proof (programme officer only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireRole(model.RoleOfficer); err != nil {
				return err
			}
			activityID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("activity_id must be a number: %w", err)
			}
			reject, _ := cmd.Flags().GetBool("reject")

			if err := services.VerifyActivity(app.Ctx, app.Client, app.Cache, app.Logger, activityID, !reject); err != nil {
				return err
			}

			if reject {
				fmt.Printf("\n✓ Proof rejected for activity %d - volunteers can retry\n", activityID)
			} else {
				fmt.Printf("\n✓ Activity %d verified - service hours granted\n", activityID)
			}
			return nil
		},
	}

	cmd.Flags().Bool("reject", false, "Reject the proof instead of approving")
	return cmd
}
