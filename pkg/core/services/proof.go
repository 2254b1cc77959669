package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// ProofUploader is the gateway operation for submitting
// proof-of-completion bytes.
type ProofUploader interface {
	UploadProof(ctx context.Context, activityID int, filename string, payload []byte) error
}

// SubmitProof uploads proof-of-completion for an activity and
// refreshes the cache on success only. Rejections (duplicate image,
// failed verification) surface as the gateway's error and trigger no
// refresh.
func SubmitProof(
	ctx context.Context,
	gateway ProofUploader,
	cache Refresher,
	logger *zap.Logger,
	activityID int,
	filename string,
	payload []byte,
) error {
	logger.Debug("uploading proof",
		zap.Int("activity_id", activityID),
		zap.String("filename", filename),
		zap.Int("size", len(payload)))

	if err := gateway.UploadProof(ctx, activityID, filename, payload); err != nil {
		return fmt.Errorf("failed to upload proof: %w", err)
	}

	logger.Info("proof submitted", zap.Int("activity_id", activityID))

	if err := refreshAfterMutation(ctx, cache); err != nil {
		logger.Warn("post-upload refresh failed", zap.Error(err))
	}
	return nil
}
