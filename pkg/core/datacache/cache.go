// Package datacache owns the client's shared read model: the last
// known activities, volunteers, stats and disaster flag. Every
// refresh replaces whole fields with the server's current data;
// nothing is merged. Consumers read immutable snapshot copies and
// may subscribe to change notifications.
package datacache

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Gorghs/NSS-ops/pkg/clients/apiclient"
	"github.com/Gorghs/NSS-ops/pkg/core/model"
)

// ErrRefreshFailed reports a refresh in which every sub-fetch
// failed. The previous snapshot is left intact.
var ErrRefreshFailed = errors.New("datacache: refresh failed")

// ReadGateway is the fetch surface the cache polls.
type ReadGateway interface {
	ListActivities(ctx context.Context) ([]model.Activity, error)
	ListVolunteers(ctx context.Context) ([]model.Volunteer, error)
	GetStats(ctx context.Context) (*model.Stats, error)
	GetStatus(ctx context.Context) (*apiclient.Status, error)
}

// Snapshot is one internally consistent view of the cached read
// model. Loaded is false only before the first refresh lands.
type Snapshot struct {
	Activities   []model.Activity
	Volunteers   []model.Volunteer
	Stats        *model.Stats
	DisasterMode bool
	Loaded       bool
}

// Update is delivered to subscribers after each refresh attempt.
// Err is non-nil only when every sub-fetch failed; the snapshot is
// then the surviving previous one.
type Update struct {
	Snapshot Snapshot
	Err      error
}

// Store is the owner of the shared snapshot. Safe for concurrent
// use; overlapping Refresh calls apply results in completion order
// (last write wins per field).
type Store struct {
	gateway ReadGateway
	logger  *zap.Logger

	mu      sync.RWMutex
	snap    Snapshot
	subs    map[int]chan Update
	nextSub int

	pollMu sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a cache over the given gateway. The snapshot starts
// empty; call Refresh or Start to populate it.
func New(gateway ReadGateway, logger *zap.Logger) *Store {
	return &Store{
		gateway: gateway,
		logger:  logger,
		subs:    make(map[int]chan Update),
	}
}

// Snapshot returns a copy of the current snapshot. The slices are
// copied so consumers can never mutate the cache's own data.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySnapshot(s.snap)
}

// Subscribe registers for refresh notifications. The returned cancel
// function releases the subscription. Updates to a subscriber that
// is not keeping up are dropped rather than blocking the cache.
func (s *Store) Subscribe() (<-chan Update, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan Update, 8)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

// Refresh fetches all four resources concurrently and applies every
// successful result as one atomic snapshot change. A failed
// sub-fetch leaves its field untouched and does not block the
// others. Refresh may be called while another refresh is in flight;
// whichever completes later wins.
//
// Only a refresh in which all four sub-fetches fail returns an
// error (wrapping ErrRefreshFailed); subscribers are then notified
// once with the error and the surviving snapshot.
func (s *Store) Refresh(ctx context.Context) error {
	var (
		wg         sync.WaitGroup
		activities []model.Activity
		volunteers []model.Volunteer
		stats      *model.Stats
		status     *apiclient.Status

		actErr, volErr, statsErr, statusErr error
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		activities, actErr = s.gateway.ListActivities(ctx)
	}()
	go func() {
		defer wg.Done()
		volunteers, volErr = s.gateway.ListVolunteers(ctx)
	}()
	go func() {
		defer wg.Done()
		stats, statsErr = s.gateway.GetStats(ctx)
	}()
	go func() {
		defer wg.Done()
		status, statusErr = s.gateway.GetStatus(ctx)
	}()
	wg.Wait()

	for name, err := range map[string]error{
		"activities": actErr,
		"volunteers": volErr,
		"stats":      statsErr,
		"status":     statusErr,
	} {
		if err != nil {
			s.logger.Debug("sub-fetch failed", zap.String("resource", name), zap.Error(err))
		}
	}

	if actErr != nil && volErr != nil && statsErr != nil && statusErr != nil {
		err := errors.Join(ErrRefreshFailed, actErr)
		s.mu.RLock()
		snap := copySnapshot(s.snap)
		s.mu.RUnlock()
		s.notify(Update{Snapshot: snap, Err: err})
		return err
	}

	// Apply every successful field together under one lock so no
	// reader ever sees a half-updated snapshot.
	s.mu.Lock()
	if actErr == nil {
		s.snap.Activities = activities
	}
	if volErr == nil {
		s.snap.Volunteers = volunteers
	}
	if statsErr == nil {
		s.snap.Stats = stats
	}
	if statusErr == nil {
		s.snap.DisasterMode = status.DisasterMode
	}
	s.snap.Loaded = true
	snap := copySnapshot(s.snap)
	s.mu.Unlock()

	s.logger.Debug("snapshot refreshed",
		zap.Int("activities", len(snap.Activities)),
		zap.Int("volunteers", len(snap.Volunteers)),
		zap.Bool("disaster_mode", snap.DisasterMode))

	s.notify(Update{Snapshot: snap})
	return nil
}

// Start begins periodic refreshing: one refresh immediately, then
// one per interval. Timer refreshes run one at a time; a tick that
// fires while the previous timer refresh is still running is
// dropped, never stacked. Explicit Refresh calls are independent of
// the timer and are never coalesced.
func (s *Store) Start(interval time.Duration) {
	s.pollMu.Lock()
	defer s.pollMu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done

	s.logger.Info("starting poller", zap.Duration("interval", interval))
	go s.poll(ctx, interval, done)
}

// Stop halts the poller and cancels any timer refresh still in
// flight. When Stop returns, no further timer refresh will begin.
func (s *Store) Stop() {
	s.pollMu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.pollMu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	s.logger.Info("poller stopped")
}

func (s *Store) poll(ctx context.Context, interval time.Duration, done chan struct{}) {
	defer close(done)

	if err := s.Refresh(ctx); err != nil {
		s.logger.Debug("initial refresh failed", zap.Error(err))
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Refresh(ctx); err != nil {
				s.logger.Debug("poll refresh failed", zap.Error(err))
			}
		}
	}
}

func (s *Store) notify(u Update) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ch := range s.subs {
		select {
		case ch <- u:
		default:
		}
	}
}

func copySnapshot(snap Snapshot) Snapshot {
	out := snap
	if snap.Activities != nil {
		out.Activities = make([]model.Activity, len(snap.Activities))
		copy(out.Activities, snap.Activities)
	}
	if snap.Volunteers != nil {
		out.Volunteers = make([]model.Volunteer, len(snap.Volunteers))
		copy(out.Volunteers, snap.Volunteers)
	}
	if snap.Stats != nil {
		stats := *snap.Stats
		out.Stats = &stats
	}
	return out
}
