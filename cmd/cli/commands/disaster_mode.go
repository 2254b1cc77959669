package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gorghs/NSS-ops/pkg/core/model"
	"github.com/Gorghs/NSS-ops/pkg/core/services"
)

// DisasterModeCmd creates the disasterMode command
func DisasterModeCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "disasterMode <on|off>",
		Short: "Toggle the global disaster flag (programme officer only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireRole(model.RoleOfficer); err != nil {
				return err
			}

			var active bool
			switch args[0] {
			case "on":
				active = true
			case "off":
				active = false
			default:
				return fmt.Errorf("argument must be 'on' or 'off'")
			}

			confirmed, err := services.SetDisasterMode(app.Ctx, app.Client, app.Cache, app.Logger, active)
			if err != nil {
				return err
			}

			if confirmed {
				fmt.Println("\n⚠️  Disaster mode is ON - new activities get maximum urgency")
			} else {
				fmt.Println("\n✓ Disaster mode is OFF")
			}
			return nil
		},
	}
}

// StatsCmd creates the stats command
func StatsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show programme-wide statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := app.freshSnapshot()
			if err != nil {
				return err
			}
			if snap.Stats == nil {
				return fmt.Errorf("stats unavailable")
			}

			fmt.Printf("\nProgramme statistics:\n\n")
			fmt.Printf("Volunteers:          %d\n", snap.Stats.VolunteersCount)
			fmt.Printf("Service hours:       %d\n", snap.Stats.TotalHours)
			fmt.Printf("Activities created:  %d\n", snap.Stats.ActivitiesCreated)
			fmt.Printf("Activities verified: %d\n", snap.Stats.ActivitiesVerified)
			return nil
		},
	}
}

// ResetCmd creates the reset command
func ResetCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the backend data set (demo environments only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Client.Reset(app.Ctx); err != nil {
				return fmt.Errorf("reset failed: %w", err)
			}
			if err := app.Cache.Refresh(app.Ctx); err != nil {
				app.Logger.Warn("post-reset refresh failed")
			}
			fmt.Println("\n✓ Backend reset")
			return nil
		},
	}
}
