// Package session keeps the logged-in role and volunteer profile,
// persisted to a single JSON file so the session survives restarts.
// Persistence is write-through: the in-memory state only changes
// once the file write has succeeded.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Gorghs/NSS-ops/pkg/clients/apiclient"
	"github.com/Gorghs/NSS-ops/pkg/core/model"
)

// ErrNotVolunteer is returned when a profile operation is attempted
// for a non-volunteer session.
var ErrNotVolunteer = errors.New("session: not a volunteer session")

// PersistenceError reports a failed session file write. The
// in-memory session has been rolled back to the last persisted
// state.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("session: failed to persist: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Authenticator is the single gateway operation the store needs.
type Authenticator interface {
	Login(ctx context.Context, email string, role model.Role) (*apiclient.LoginResult, error)
}

type persistedState struct {
	Role      model.Role     `json:"role"`
	Volunteer *model.Profile `json:"volunteerData,omitempty"`
}

// Store holds the current session. Safe for concurrent use.
type Store struct {
	mu    sync.Mutex
	path  string
	state persistedState
}

// Open restores the session persisted at path. A missing file is the
// unauthenticated state, not an error; a corrupt file is.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session: read %s: %w", path, err)
	}
	if len(data) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(data, &s.state); err != nil {
		return nil, fmt.Errorf("session: parse %s: %w", path, err)
	}
	return s, nil
}

// Role returns the current role, RoleNone when logged out.
func (s *Store) Role() model.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Role
}

// Profile returns the stored volunteer profile, if any.
func (s *Store) Profile() (model.Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Volunteer == nil {
		return model.Profile{}, false
	}
	return *s.state.Volunteer, true
}

// Login authenticates against the backend and, on success, adopts
// and persists the new session. On any failure the session is left
// exactly as it was.
func (s *Store) Login(ctx context.Context, auth Authenticator, email string, role model.Role) error {
	if !role.IsValid() {
		return fmt.Errorf("session: invalid role %q", role)
	}

	result, err := auth.Login(ctx, email, role)
	if err != nil {
		return err
	}

	next := persistedState{Role: role}
	if role == model.RoleVolunteer && result.Volunteer != nil {
		next.Volunteer = &model.Profile{
			ID:       result.Volunteer.ID,
			Name:     result.Volunteer.Name,
			Location: result.Volunteer.Location,
			Skills:   result.Volunteer.Skills,
		}
	}
	return s.commit(next)
}

// AdoptProfile records a freshly created volunteer profile and
// switches the session to the volunteer role.
func (s *Store) AdoptProfile(profile model.Profile) error {
	return s.commit(persistedState{Role: model.RoleVolunteer, Volunteer: &profile})
}

// Logout clears the session and removes the persisted file. It never
// fails: a file that cannot be removed will be overwritten by the
// next login anyway.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = persistedState{}
	_ = os.Remove(s.path)
}

// commit persists next and only then makes it the in-memory state.
func (s *Store) commit(next persistedState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.state
	s.state = next
	if err := s.persistLocked(); err != nil {
		s.state = prev
		return &PersistenceError{Err: err}
	}
	return nil
}

// persistLocked writes the session atomically via temp file + rename.
func (s *Store) persistLocked() error {
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("write temp: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
