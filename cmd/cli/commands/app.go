package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Gorghs/NSS-ops/internal/config"
	"github.com/Gorghs/NSS-ops/pkg/clients/apiclient"
	"github.com/Gorghs/NSS-ops/pkg/core/datacache"
	"github.com/Gorghs/NSS-ops/pkg/core/model"
	"github.com/Gorghs/NSS-ops/pkg/core/session"
)

// AppContext holds the dependencies shared by all commands
type AppContext struct {
	Ctx     context.Context
	Cfg     *config.Config
	Client  *apiclient.Client
	Session *session.Store
	Cache   *datacache.Store
	Logger  *zap.Logger
}

// requireRole refuses the command unless the session holds the given
// role. This mirrors the role-gated dashboards: volunteers never see
// officer mutations and vice versa.
func (app *AppContext) requireRole(role model.Role) error {
	current := app.Session.Role()
	if current == model.RoleNone {
		return fmt.Errorf("not logged in - run 'login' first")
	}
	if current != role {
		return fmt.Errorf("this command requires the %q role (current role: %q)", role, current)
	}
	return nil
}

// requireLogin refuses the command for unauthenticated sessions.
func (app *AppContext) requireLogin() error {
	if app.Session.Role() == model.RoleNone {
		return fmt.Errorf("not logged in - run 'login' first")
	}
	return nil
}

// freshSnapshot returns the cache snapshot, fetching once first if
// nothing has been loaded yet (the usual case for one-shot command
// invocations, where no poller is running).
func (app *AppContext) freshSnapshot() (datacache.Snapshot, error) {
	snap := app.Cache.Snapshot()
	if snap.Loaded {
		return snap, nil
	}
	if err := app.Cache.Refresh(app.Ctx); err != nil {
		return datacache.Snapshot{}, fmt.Errorf("failed to fetch data: %w", err)
	}
	return app.Cache.Snapshot(), nil
}
