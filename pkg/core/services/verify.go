package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Verifier is the gateway operation for recording a verification
// decision.
type Verifier interface {
	VerifyActivity(ctx context.Context, activityID int, approve bool) error
}

// VerifyActivity records the officer's approve/reject decision for a
// submitted proof and refreshes the cache on success. A rejection
// returns the activity to the assigned state so the volunteers can
// retry.
func VerifyActivity(
	ctx context.Context,
	gateway Verifier,
	cache Refresher,
	logger *zap.Logger,
	activityID int,
	approve bool,
) error {
	if err := gateway.VerifyActivity(ctx, activityID, approve); err != nil {
		return fmt.Errorf("failed to verify activity: %w", err)
	}

	logger.Info("activity verification recorded",
		zap.Int("activity_id", activityID),
		zap.Bool("approved", approve))

	if err := refreshAfterMutation(ctx, cache); err != nil {
		logger.Warn("post-verify refresh failed", zap.Error(err))
	}
	return nil
}
