// Package services holds the interfacing logic between the command
// surface and the core: each operation takes its dependencies as
// narrow interfaces, performs the gateway call and, for mutations,
// requests a cache refresh on success. The refresh is the system's
// only consistency mechanism; there is no server push.
package services

import "context"

// Refresher is the cache operation every mutation triggers on
// success.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// refreshAfterMutation requests a post-write refresh. A failed
// refresh is not an operation failure: the mutation already landed
// and the poller will catch up, so the error is only logged by the
// caller.
func refreshAfterMutation(ctx context.Context, cache Refresher) error {
	if cache == nil {
		return nil
	}
	return cache.Refresh(ctx)
}
