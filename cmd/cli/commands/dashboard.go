package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Gorghs/NSS-ops/pkg/core/model"
	"github.com/Gorghs/NSS-ops/pkg/core/services"
)

// DashboardCmd creates the dashboard command
func DashboardCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the dashboard for the current role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireLogin(); err != nil {
				return err
			}

			snap, err := app.freshSnapshot()
			if err != nil {
				return err
			}

			if app.Session.Role() == model.RoleOfficer {
				printOfficerDashboard(services.BuildOfficerDashboard(snap, app.Logger))
				return nil
			}

			profile, ok := app.Session.Profile()
			if !ok {
				return fmt.Errorf("no volunteer profile on record - run 'join' first")
			}
			printVolunteerDashboard(services.BuildVolunteerDashboard(snap, profile, app.Logger))
			return nil
		},
	}
}

func printVolunteerDashboard(dash *services.VolunteerDashboard) {
	if dash.DisasterMode {
		fmt.Println("\n⚠️  DISASTER MODE ACTIVE - urgent activities take priority")
	}

	fmt.Printf("\nHello %s!\n", dash.Profile.Name)

	fmt.Printf("\nYour activities (%d):\n", len(dash.MyActivities))
	if len(dash.MyActivities) == 0 {
		fmt.Println("  (none assigned)")
	}
	for _, a := range dash.MyActivities {
		fmt.Printf("  [%d] %s @ %s - %s (%dh)\n", a.ID, a.Title, a.Location, a.Status, a.EstimatedHours)
	}

	fmt.Printf("\nOpen activities matching your skills (%d):\n", len(dash.OpenMatches))
	if len(dash.OpenMatches) == 0 {
		fmt.Println("  (no matches right now)")
	}
	for _, m := range dash.OpenMatches {
		fmt.Printf("  [%d] %s @ %s - needs %s (you bring: %s)\n",
			m.Activity.ID,
			m.Activity.Title,
			m.Activity.Location,
			strings.Join(m.Activity.SkillsNeeded, ", "),
			strings.Join(m.MatchingSkills, ", "),
		)
	}
	fmt.Println()
}

func printOfficerDashboard(dash *services.OfficerDashboard) {
	if dash.DisasterMode {
		fmt.Println("\n⚠️  DISASTER MODE ACTIVE - activities ordered by urgency")
	}

	if dash.Stats != nil {
		fmt.Printf("\nProgramme stats: %d volunteers | %d hours served | %d activities | %d verified\n",
			dash.Stats.VolunteersCount,
			dash.Stats.TotalHours,
			dash.Stats.ActivitiesCreated,
			dash.Stats.ActivitiesVerified,
		)
	}

	fmt.Printf("\nActivities (%d):\n", len(dash.Activities))
	for _, a := range dash.Activities {
		fmt.Printf("  [%d] %s @ %s - %s (need %d, assigned %d, urgency %d)\n",
			a.ID, a.Title, a.Location, a.Status, a.RequiredCount, len(a.AssignedVolunteerIDs), a.Urgency)
	}

	if len(dash.PendingVerification) > 0 {
		fmt.Printf("\nAwaiting verification (%d):\n", len(dash.PendingVerification))
		for _, a := range dash.PendingVerification {
			fmt.Printf("  [%d] %s - proof %s\n", a.ID, a.Title, a.ProofHash)
		}
	}
	fmt.Println()
}
