package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Gorghs/NSS-ops/pkg/core/model"
	"github.com/Gorghs/NSS-ops/pkg/core/services"
)

// UploadProofCmd creates the uploadProof command
func UploadProofCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "uploadProof <activity_id> <image_file>",
		Short: "Upload proof-of-completion for an activity (volunteer only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireRole(model.RoleVolunteer); err != nil {
				return err
			}
			activityID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("activity_id must be a number: %w", err)
			}

			payload, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("failed to read proof file: %w", err)
			}

			err = services.SubmitProof(app.Ctx, app.Client, app.Cache, app.Logger,
				activityID, filepath.Base(args[1]), payload)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Proof submitted for activity %d - awaiting officer verification\n", activityID)
			return nil
		},
	}
}
