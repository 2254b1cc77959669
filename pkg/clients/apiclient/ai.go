package apiclient

import (
	"context"

	"github.com/Gorghs/NSS-ops/pkg/core/model"
)

type matchRequest struct {
	ActivityID int `json:"activity_id" validate:"min=1"`
}

// GetMatches asks the matching engine to rank volunteers for an
// activity, best first.
func (c *Client) GetMatches(ctx context.Context, activityID int) ([]model.Match, error) {
	req := matchRequest{ActivityID: activityID}
	if err := c.checkInput("getMatches", req); err != nil {
		return nil, err
	}
	var matches []model.Match
	if err := c.post(ctx, "getMatches", "/match", req, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

type planIssueRequest struct {
	Description string `json:"description" validate:"required"`
}

// PlanIssue turns a free-text issue description into a suggested
// activity shape.
func (c *Client) PlanIssue(ctx context.Context, description string) (*model.ActivityPlan, error) {
	req := planIssueRequest{Description: description}
	if err := c.checkInput("planIssue", req); err != nil {
		return nil, err
	}
	var plan model.ActivityPlan
	if err := c.post(ctx, "planIssue", "/plan-issue", req, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}
