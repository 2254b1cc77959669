package apiclient

import (
	"context"

	"github.com/Gorghs/NSS-ops/pkg/core/model"
)

// CreateVolunteerRequest is the volunteer onboarding payload.
type CreateVolunteerRequest struct {
	Name     string   `json:"name" validate:"required"`
	Location string   `json:"location" validate:"required"`
	Skills   []string `json:"skills" validate:"min=1"`
}

// CreateVolunteer registers a new volunteer and returns the created
// record (including the server-assigned id).
func (c *Client) CreateVolunteer(ctx context.Context, req CreateVolunteerRequest) (*model.Volunteer, error) {
	if err := c.checkInput("createVolunteer", req); err != nil {
		return nil, err
	}
	var vol model.Volunteer
	if err := c.post(ctx, "createVolunteer", "/volunteers", req, &vol); err != nil {
		return nil, err
	}
	return &vol, nil
}

// ListVolunteers fetches the server's full current volunteer list.
func (c *Client) ListVolunteers(ctx context.Context) ([]model.Volunteer, error) {
	var volunteers []model.Volunteer
	if err := c.get(ctx, "getVolunteers", "/volunteers", &volunteers); err != nil {
		return nil, err
	}
	return volunteers, nil
}
