package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Gorghs/NSS-ops/pkg/core/services"
)

// JoinCmd creates the join command for volunteer onboarding
func JoinCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "join <name> <location> <skill,skill,...>",
		Short: "Create a volunteer profile and join the programme",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			location := args[1]
			skills := splitSkills(args[2])

			profile, err := services.CreateProfile(
				app.Ctx,
				app.Client,
				app.Session,
				app.Cache,
				app.Logger,
				name,
				location,
				skills,
			)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Welcome aboard, %s!\n\n", profile.Name)
			fmt.Printf("Volunteer ID: %d\n", profile.ID)
			fmt.Printf("Location:     %s\n", profile.Location)
			fmt.Printf("Skills:       %s\n", strings.Join(profile.Skills, ", "))
			return nil
		},
	}
}

func splitSkills(raw string) []string {
	var skills []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}
