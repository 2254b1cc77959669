package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Gorghs/NSS-ops/pkg/core/model"
)

// Matcher is the gateway operation for ranking volunteers against an
// activity.
type Matcher interface {
	GetMatches(ctx context.Context, activityID int) ([]model.Match, error)
}

// Assigner is the gateway operation for assigning volunteers.
type Assigner interface {
	AssignVolunteers(ctx context.Context, activityID int, volunteerIDs []int) error
}

// SuggestMatches fetches the matching engine's ranked volunteer
// suggestions for an activity. Read-only: no refresh follows.
func SuggestMatches(ctx context.Context, gateway Matcher, logger *zap.Logger, activityID int) ([]model.Match, error) {
	matches, err := gateway.GetMatches(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("failed to get matches: %w", err)
	}

	logger.Debug("matches fetched",
		zap.Int("activity_id", activityID),
		zap.Int("count", len(matches)))
	return matches, nil
}

// AssignVolunteers assigns the given volunteers to an activity and
// refreshes the cache on success.
func AssignVolunteers(
	ctx context.Context,
	gateway Assigner,
	cache Refresher,
	logger *zap.Logger,
	activityID int,
	volunteerIDs []int,
) error {
	if err := gateway.AssignVolunteers(ctx, activityID, volunteerIDs); err != nil {
		return fmt.Errorf("failed to assign volunteers: %w", err)
	}

	logger.Info("volunteers assigned",
		zap.Int("activity_id", activityID),
		zap.Ints("volunteer_ids", volunteerIDs))

	if err := refreshAfterMutation(ctx, cache); err != nil {
		logger.Warn("post-assign refresh failed", zap.Error(err))
	}
	return nil
}
