package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// ListVolunteersCmd creates the listVolunteers command
func ListVolunteersCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listVolunteers",
		Short: "List all registered volunteers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := app.freshSnapshot()
			if err != nil {
				return err
			}

			fmt.Printf("\nFound %d volunteers:\n\n", len(snap.Volunteers))
			for _, v := range snap.Volunteers {
				fmt.Printf("- [%d] %s @ %s - %s\n", v.ID, v.Name, v.Location, strings.Join(v.Skills, ", "))
			}
			return nil
		},
	}
}

// ListActivitiesCmd creates the listActivities command
func ListActivitiesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listActivities",
		Short: "List all activities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := app.freshSnapshot()
			if err != nil {
				return err
			}

			fmt.Printf("\nFound %d activities:\n\n", len(snap.Activities))
			for _, a := range snap.Activities {
				fmt.Printf("- [%d] %s (%s) @ %s - %s\n", a.ID, a.Title, a.Type, a.Location, a.Status)
				fmt.Printf("    needs %d volunteers, %dh each, skills: %s\n",
					a.RequiredCount, a.EstimatedHours, strings.Join(a.SkillsNeeded, ", "))
			}
			return nil
		},
	}
}
