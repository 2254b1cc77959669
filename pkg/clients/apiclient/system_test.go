package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gorghs/NSS-ops/pkg/core/model"
)

func TestLogin_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/login", r.URL.Path)

		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a@x.com", req.Email)
		assert.Equal(t, model.RoleVolunteer, req.Role)

		json.NewEncoder(w).Encode(LoginResult{
			Success:   true,
			Volunteer: &model.Volunteer{ID: 1, Name: "Arjun Kumar"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	result, err := client.Login(context.Background(), "a@x.com", model.RoleVolunteer)
	require.NoError(t, err)
	require.NotNil(t, result.Volunteer)
	assert.Equal(t, 1, result.Volunteer.ID)
}

func TestLogin_RejectionBecomesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(LoginResult{Success: false, Error: "unknown email"})
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	_, err := client.Login(context.Background(), "a@x.com", model.RoleVolunteer)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "unknown email", apiErr.Message)
}

func TestLogin_BadEmailRejectedLocally(t *testing.T) {
	client := NewClient("http://unused.invalid", 0)
	_, err := client.Login(context.Background(), "not-an-email", model.RoleVolunteer)
	assert.True(t, IsValidation(err))
}

func TestGetStatus_DecodesDisasterMode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/status", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{"status": "active", "disaster_mode": true})
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	status, err := client.GetStatus(context.Background())
	require.NoError(t, err)
	assert.True(t, status.DisasterMode)
}

func TestToggleDisasterMode_RoundTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/disaster-mode", r.URL.Path)

		var req struct {
			Active bool `json:"active"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		json.NewEncoder(w).Encode(Status{DisasterMode: req.Active})
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	status, err := client.ToggleDisasterMode(context.Background(), true)
	require.NoError(t, err)
	assert.True(t, status.DisasterMode)
}

func TestGetStats_DecodesCounters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/stats", r.URL.Path)
		json.NewEncoder(w).Encode(model.Stats{
			VolunteersCount:    3,
			TotalHours:         15,
			ActivitiesCreated:  2,
			ActivitiesVerified: 1,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	stats, err := client.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.VolunteersCount)
	assert.Equal(t, 15, stats.TotalHours)
}

func TestCreateVolunteer_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/volunteers", r.URL.Path)

		var req CreateVolunteerRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		json.NewEncoder(w).Encode(model.Volunteer{ID: 4, Name: req.Name, Location: req.Location, Skills: req.Skills})
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	vol, err := client.CreateVolunteer(context.Background(), CreateVolunteerRequest{
		Name:     "Priya",
		Location: "East Wing",
		Skills:   []string{"teaching"},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, vol.ID)
}

func TestCreateVolunteer_NoSkillsRejected(t *testing.T) {
	client := NewClient("http://unused.invalid", 0)
	_, err := client.CreateVolunteer(context.Background(), CreateVolunteerRequest{
		Name:     "Priya",
		Location: "East Wing",
	})
	assert.True(t, IsValidation(err))
}
