package apiclient

import (
	"context"

	"github.com/Gorghs/NSS-ops/pkg/core/model"
)

// CreateActivityRequest is the payload for registering a new
// activity. RequiredCount and EstimatedHours must both be at least 1.
type CreateActivityRequest struct {
	Title          string   `json:"title" validate:"required"`
	Type           string   `json:"type" validate:"required"`
	Location       string   `json:"location" validate:"required"`
	RequiredCount  int      `json:"required_count" validate:"min=1"`
	EstimatedHours int      `json:"estimated_hours" validate:"min=1"`
	SkillsNeeded   []string `json:"skills_needed"`
}

// CreateActivity registers a new activity and returns the record the
// server created for it.
func (c *Client) CreateActivity(ctx context.Context, req CreateActivityRequest) (*model.Activity, error) {
	if err := c.checkInput("createActivity", req); err != nil {
		return nil, err
	}
	var activity model.Activity
	if err := c.post(ctx, "createActivity", "/activities", req, &activity); err != nil {
		return nil, err
	}
	return &activity, nil
}

// ListActivities fetches the server's full current activity list.
func (c *Client) ListActivities(ctx context.Context) ([]model.Activity, error) {
	var activities []model.Activity
	if err := c.get(ctx, "getActivities", "/activities", &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

type assignRequest struct {
	ActivityID   int   `json:"activity_id" validate:"min=1"`
	VolunteerIDs []int `json:"volunteer_ids" validate:"min=1"`
}

// AssignVolunteers assigns the given volunteers to an activity. At
// least one volunteer id is required.
func (c *Client) AssignVolunteers(ctx context.Context, activityID int, volunteerIDs []int) error {
	req := assignRequest{ActivityID: activityID, VolunteerIDs: volunteerIDs}
	if err := c.checkInput("assignVolunteers", req); err != nil {
		return err
	}
	return c.post(ctx, "assignVolunteers", "/assign", req, nil)
}

type verifyRequest struct {
	ActivityID int  `json:"activity_id" validate:"min=1"`
	Approve    bool `json:"approve"`
}

// VerifyActivity records the officer's approval decision for a
// submitted proof.
func (c *Client) VerifyActivity(ctx context.Context, activityID int, approve bool) error {
	req := verifyRequest{ActivityID: activityID, Approve: approve}
	if err := c.checkInput("verifyActivity", req); err != nil {
		return err
	}
	return c.post(ctx, "verifyActivity", "/verify-activity", req, nil)
}
