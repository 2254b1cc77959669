package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Gorghs/NSS-ops/pkg/clients/apiclient"
	"github.com/Gorghs/NSS-ops/pkg/core/model"
)

// IssuePlanner is the gateway operation for turning an issue
// description into a suggested activity shape.
type IssuePlanner interface {
	PlanIssue(ctx context.Context, description string) (*model.ActivityPlan, error)
}

// ActivityCreator is the gateway operation for registering an
// activity.
type ActivityCreator interface {
	CreateActivity(ctx context.Context, req apiclient.CreateActivityRequest) (*model.Activity, error)
}

// PlanIssue asks the planner for an activity suggestion. Read-only:
// nothing is created until the officer confirms.
func PlanIssue(ctx context.Context, gateway IssuePlanner, logger *zap.Logger, description string) (*model.ActivityPlan, error) {
	plan, err := gateway.PlanIssue(ctx, description)
	if err != nil {
		return nil, fmt.Errorf("failed to plan issue: %w", err)
	}

	logger.Debug("issue planned",
		zap.String("type", plan.Type),
		zap.Int("est_hours", plan.EstHours),
		zap.Int("count", plan.Count))
	return plan, nil
}

// CreateActivity registers a new activity and refreshes the cache on
// success.
func CreateActivity(
	ctx context.Context,
	gateway ActivityCreator,
	cache Refresher,
	logger *zap.Logger,
	req apiclient.CreateActivityRequest,
) (*model.Activity, error) {
	activity, err := gateway.CreateActivity(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	logger.Info("activity created",
		zap.Int("activity_id", activity.ID),
		zap.String("title", activity.Title))

	if err := refreshAfterMutation(ctx, cache); err != nil {
		logger.Warn("post-create refresh failed", zap.Error(err))
	}
	return activity, nil
}

// CreateFromPlan registers an activity shaped by a planner
// suggestion under the given title and location.
func CreateFromPlan(
	ctx context.Context,
	gateway ActivityCreator,
	cache Refresher,
	logger *zap.Logger,
	title, location string,
	plan model.ActivityPlan,
) (*model.Activity, error) {
	return CreateActivity(ctx, gateway, cache, logger, apiclient.CreateActivityRequest{
		Title:          title,
		Type:           plan.Type,
		Location:       location,
		RequiredCount:  plan.Count,
		EstimatedHours: plan.EstHours,
		SkillsNeeded:   plan.Skills,
	})
}
