package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gorghs/NSS-ops/pkg/clients/apiclient"
	"github.com/Gorghs/NSS-ops/pkg/core/model"
)

type fakeAuth struct {
	result *apiclient.LoginResult
	err    error

	gotEmail string
	gotRole  model.Role
}

func (f *fakeAuth) Login(ctx context.Context, email string, role model.Role) (*apiclient.LoginResult, error) {
	f.gotEmail = email
	f.gotRole = role
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func sessionPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "session.json")
}

func TestOpen_MissingFileIsUnauthenticated(t *testing.T) {
	store, err := Open(sessionPath(t))
	require.NoError(t, err)

	assert.Equal(t, model.RoleNone, store.Role())
	_, ok := store.Profile()
	assert.False(t, ok)
}

func TestOpen_CorruptFileFails(t *testing.T) {
	path := sessionPath(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := Open(path)
	require.Error(t, err)
}

func TestLogin_VolunteerPersistsRoleAndProfile(t *testing.T) {
	path := sessionPath(t)
	store, err := Open(path)
	require.NoError(t, err)

	auth := &fakeAuth{result: &apiclient.LoginResult{
		Success:   true,
		Volunteer: &model.Volunteer{ID: 1, Name: "Arjun Kumar", Location: "North Campus", Skills: []string{"medical"}},
	}}

	require.NoError(t, store.Login(context.Background(), auth, "a@x.com", model.RoleVolunteer))
	assert.Equal(t, "a@x.com", auth.gotEmail)
	assert.Equal(t, model.RoleVolunteer, auth.gotRole)

	assert.Equal(t, model.RoleVolunteer, store.Role())
	profile, ok := store.Profile()
	require.True(t, ok)
	assert.Equal(t, 1, profile.ID)
	assert.Equal(t, "Arjun Kumar", profile.Name)

	// The file reflects the new session immediately (write-through).
	restored, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, model.RoleVolunteer, restored.Role())
	restoredProfile, ok := restored.Profile()
	require.True(t, ok)
	assert.Equal(t, profile, restoredProfile)
}

func TestLogin_OfficerHasNoProfile(t *testing.T) {
	store, err := Open(sessionPath(t))
	require.NoError(t, err)

	auth := &fakeAuth{result: &apiclient.LoginResult{Success: true}}
	require.NoError(t, store.Login(context.Background(), auth, "po@x.com", model.RoleOfficer))

	assert.Equal(t, model.RoleOfficer, store.Role())
	_, ok := store.Profile()
	assert.False(t, ok)
}

func TestLogin_FailureLeavesSessionUnchanged(t *testing.T) {
	path := sessionPath(t)
	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.AdoptProfile(model.Profile{ID: 7, Name: "Sneha"}))

	auth := &fakeAuth{err: &apiclient.APIError{StatusCode: 200, Message: "unknown email"}}
	err = store.Login(context.Background(), auth, "b@x.com", model.RoleVolunteer)
	require.Error(t, err)

	assert.Equal(t, model.RoleVolunteer, store.Role())
	profile, ok := store.Profile()
	require.True(t, ok)
	assert.Equal(t, 7, profile.ID)
}

func TestLogin_InvalidRoleRejectedLocally(t *testing.T) {
	store, err := Open(sessionPath(t))
	require.NoError(t, err)

	auth := &fakeAuth{}
	err = store.Login(context.Background(), auth, "a@x.com", model.Role("admin"))
	require.Error(t, err)
	assert.Empty(t, auth.gotEmail, "gateway must not be called for an invalid role")
}

func TestAdoptProfile_SetsVolunteerRole(t *testing.T) {
	store, err := Open(sessionPath(t))
	require.NoError(t, err)

	profile := model.Profile{ID: 3, Name: "Raj", Location: "Main Block", Skills: []string{"logistics"}}
	require.NoError(t, store.AdoptProfile(profile))

	assert.Equal(t, model.RoleVolunteer, store.Role())
	got, ok := store.Profile()
	require.True(t, ok)
	assert.Equal(t, profile, got)
}

func TestLogout_AlwaysClears(t *testing.T) {
	path := sessionPath(t)
	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.AdoptProfile(model.Profile{ID: 1, Name: "Arjun"}))

	store.Logout()

	assert.Equal(t, model.RoleNone, store.Role())
	_, ok := store.Profile()
	assert.False(t, ok)
	_, err = os.Stat(path)
	assert.True(t, errors.Is(err, os.ErrNotExist), "session file should be removed")

	// Logging out twice is fine.
	store.Logout()
	assert.Equal(t, model.RoleNone, store.Role())
}

func TestRoundTrip_FreshProcessSeesIdenticalSession(t *testing.T) {
	path := sessionPath(t)
	store, err := Open(path)
	require.NoError(t, err)

	profile := model.Profile{ID: 42, Name: "Sneha Reddy", Location: "South Campus", Skills: []string{"teaching", "art"}}
	require.NoError(t, store.AdoptProfile(profile))

	// A second Open simulates a new process instance.
	restored, err := Open(path)
	require.NoError(t, err)

	assert.Equal(t, store.Role(), restored.Role())
	got, ok := restored.Profile()
	require.True(t, ok)
	assert.Equal(t, profile, got)
}

func TestCommit_PersistFailureRollsBack(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(filepath.Join(dir, "nested", "session.json"))
	require.NoError(t, err)

	// A regular file now occupies the parent directory's name, so
	// every subsequent persist fails.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested"), []byte("x"), 0o600))

	err = store.AdoptProfile(model.Profile{ID: 1, Name: "Arjun"})
	require.Error(t, err)

	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)

	assert.Equal(t, model.RoleNone, store.Role(), "memory must roll back to the last persisted state")
	_, ok := store.Profile()
	assert.False(t, ok)
}
