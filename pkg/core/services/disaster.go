package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Gorghs/NSS-ops/pkg/clients/apiclient"
)

// DisasterToggler is the gateway operation for setting the global
// disaster flag.
type DisasterToggler interface {
	ToggleDisasterMode(ctx context.Context, active bool) (*apiclient.Status, error)
}

// SetDisasterMode flips the global disaster flag and refreshes the
// cache on success. Returns the flag value the server confirmed.
func SetDisasterMode(
	ctx context.Context,
	gateway DisasterToggler,
	cache Refresher,
	logger *zap.Logger,
	active bool,
) (bool, error) {
	status, err := gateway.ToggleDisasterMode(ctx, active)
	if err != nil {
		return false, fmt.Errorf("failed to toggle disaster mode: %w", err)
	}

	logger.Info("disaster mode updated", zap.Bool("active", status.DisasterMode))

	if err := refreshAfterMutation(ctx, cache); err != nil {
		logger.Warn("post-toggle refresh failed", zap.Error(err))
	}
	return status.DisasterMode, nil
}
