package apiclient

import (
	"context"
	"net/http"

	"github.com/Gorghs/NSS-ops/pkg/core/model"
)

// Status is the system status payload, including the global disaster
// flag.
type Status struct {
	DisasterMode bool `json:"disaster_mode"`
}

// GetStatus fetches the current system status.
func (c *Client) GetStatus(ctx context.Context) (*Status, error) {
	var status Status
	if err := c.get(ctx, "getStatus", "/status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

type disasterModeRequest struct {
	Active bool `json:"active"`
}

// ToggleDisasterMode sets the global disaster flag and returns the
// resulting status.
func (c *Client) ToggleDisasterMode(ctx context.Context, active bool) (*Status, error) {
	var status Status
	if err := c.post(ctx, "toggleDisasterMode", "/disaster-mode", disasterModeRequest{Active: active}, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// GetStats fetches the server-computed aggregate counters.
func (c *Client) GetStats(ctx context.Context) (*model.Stats, error) {
	var stats model.Stats
	if err := c.get(ctx, "getStats", "/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Reset wipes the backend's data set. Intended for demo and test
// environments only.
func (c *Client) Reset(ctx context.Context) error {
	return c.post(ctx, "reset", "/reset", struct{}{}, nil)
}

// LoginRequest is the credential payload. Role is "volunteer" or
// "po".
type LoginRequest struct {
	Email string     `json:"email" validate:"required,email"`
	Role  model.Role `json:"role" validate:"required"`
}

// LoginResult is the backend's login verdict. Volunteer is present
// only for a successful volunteer login with an existing profile.
type LoginResult struct {
	Success   bool             `json:"success"`
	Volunteer *model.Volunteer `json:"volunteer,omitempty"`
	Error     string           `json:"error,omitempty"`
}

// Login authenticates an email for a role. A rejected login
// (success=false) is returned as an APIError carrying the backend's
// reason.
func (c *Client) Login(ctx context.Context, email string, role model.Role) (*LoginResult, error) {
	req := LoginRequest{Email: email, Role: role}
	if err := c.checkInput("login", req); err != nil {
		return nil, err
	}
	var result LoginResult
	if err := c.post(ctx, "login", "/login", req, &result); err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, &APIError{StatusCode: http.StatusOK, Message: result.Error}
	}
	return &result, nil
}
