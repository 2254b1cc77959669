package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Gorghs/NSS-ops/pkg/clients/apiclient"
	"github.com/Gorghs/NSS-ops/pkg/core/model"
)

// VolunteerCreator is the gateway operation for registering a new
// volunteer.
type VolunteerCreator interface {
	CreateVolunteer(ctx context.Context, req apiclient.CreateVolunteerRequest) (*model.Volunteer, error)
}

// ProfileAdopter is the session operation that records a freshly
// created profile.
type ProfileAdopter interface {
	AdoptProfile(profile model.Profile) error
}

// CreateProfile registers a new volunteer with the backend, adopts
// the resulting profile into the session and refreshes the cache so
// the new volunteer shows up everywhere.
func CreateProfile(
	ctx context.Context,
	gateway VolunteerCreator,
	sess ProfileAdopter,
	cache Refresher,
	logger *zap.Logger,
	name, location string,
	skills []string,
) (*model.Profile, error) {
	logger.Debug("creating volunteer profile", zap.String("name", name), zap.String("location", location))

	vol, err := gateway.CreateVolunteer(ctx, apiclient.CreateVolunteerRequest{
		Name:     name,
		Location: location,
		Skills:   skills,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create volunteer: %w", err)
	}

	profile := model.Profile{
		ID:       vol.ID,
		Name:     vol.Name,
		Location: vol.Location,
		Skills:   vol.Skills,
	}
	if err := sess.AdoptProfile(profile); err != nil {
		return nil, fmt.Errorf("failed to store profile: %w", err)
	}

	logger.Info("volunteer profile created", zap.Int("volunteer_id", profile.ID))

	if err := refreshAfterMutation(ctx, cache); err != nil {
		logger.Warn("post-create refresh failed", zap.Error(err))
	}
	return &profile, nil
}
