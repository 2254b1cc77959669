package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Gorghs/NSS-ops/pkg/core/datacache"
	"github.com/Gorghs/NSS-ops/pkg/core/model"
)

func TestBuildVolunteerDashboard_SplitsAssignedAndOpen(t *testing.T) {
	profile := model.Profile{ID: 2, Name: "Sneha", Skills: []string{"teaching", "art"}}
	snap := datacache.Snapshot{
		Activities: []model.Activity{
			{ID: 1, Title: "Tutoring", Status: model.StatusAssigned, AssignedVolunteerIDs: []int{2}},
			{ID: 2, Title: "Mural Painting", Status: model.StatusCreated, SkillsNeeded: []string{"art", "physical_labor"}},
			{ID: 3, Title: "Health Camp", Status: model.StatusCreated, SkillsNeeded: []string{"medical"}},
			{ID: 4, Title: "Old Drive", Status: model.StatusVerified, SkillsNeeded: []string{"art"}},
		},
		Loaded: true,
	}

	dash := BuildVolunteerDashboard(snap, profile, zap.NewNop())

	require.Len(t, dash.MyActivities, 1)
	assert.Equal(t, 1, dash.MyActivities[0].ID)

	require.Len(t, dash.OpenMatches, 1, "only open activities with overlapping skills")
	assert.Equal(t, 2, dash.OpenMatches[0].Activity.ID)
	assert.Equal(t, []string{"art"}, dash.OpenMatches[0].MatchingSkills)
}

func TestBuildVolunteerDashboard_AssignedBeatsMatching(t *testing.T) {
	profile := model.Profile{ID: 5, Skills: []string{"medical"}}
	snap := datacache.Snapshot{
		Activities: []model.Activity{
			{ID: 1, Status: model.StatusCreated, SkillsNeeded: []string{"medical"}, AssignedVolunteerIDs: []int{5}},
		},
		Loaded: true,
	}

	dash := BuildVolunteerDashboard(snap, profile, zap.NewNop())

	assert.Len(t, dash.MyActivities, 1)
	assert.Empty(t, dash.OpenMatches, "an assigned activity must not also appear as an open match")
}

func TestBuildOfficerDashboard_PendingVerification(t *testing.T) {
	snap := datacache.Snapshot{
		Activities: []model.Activity{
			{ID: 1, Status: model.StatusCreated},
			{ID: 2, Status: model.StatusProofSubmitted, ProofHash: "abc123"},
			{ID: 3, Status: model.StatusVerified},
		},
		Stats:  &model.Stats{VolunteersCount: 3},
		Loaded: true,
	}

	dash := BuildOfficerDashboard(snap, zap.NewNop())

	require.Len(t, dash.PendingVerification, 1)
	assert.Equal(t, 2, dash.PendingVerification[0].ID)
	assert.Equal(t, 3, dash.Stats.VolunteersCount)
}

func TestBuildOfficerDashboard_DisasterModeOrdersByUrgency(t *testing.T) {
	snap := datacache.Snapshot{
		Activities: []model.Activity{
			{ID: 1, Urgency: 1},
			{ID: 2, Urgency: 10},
			{ID: 3, Urgency: 1},
		},
		DisasterMode: true,
		Loaded:       true,
	}

	dash := BuildOfficerDashboard(snap, zap.NewNop())

	require.Len(t, dash.Activities, 3)
	assert.Equal(t, 2, dash.Activities[0].ID, "most urgent first in disaster mode")
	assert.Equal(t, []int{1, 3}, []int{dash.Activities[1].ID, dash.Activities[2].ID}, "stable order among equals")
	assert.True(t, dash.DisasterMode)
}

func TestBuildOfficerDashboard_NormalModeKeepsServerOrder(t *testing.T) {
	snap := datacache.Snapshot{
		Activities: []model.Activity{
			{ID: 3, Urgency: 1},
			{ID: 1, Urgency: 10},
		},
		Loaded: true,
	}

	dash := BuildOfficerDashboard(snap, zap.NewNop())

	assert.Equal(t, 3, dash.Activities[0].ID)
	assert.Equal(t, 1, dash.Activities[1].ID)
}
