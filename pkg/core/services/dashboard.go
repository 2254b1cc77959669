package services

import (
	"sort"

	"go.uber.org/zap"

	"github.com/Gorghs/NSS-ops/pkg/core/datacache"
	"github.com/Gorghs/NSS-ops/pkg/core/model"
)

// OpenActivity is an unassigned activity paired with the skills a
// volunteer could contribute to it.
type OpenActivity struct {
	Activity       model.Activity
	MatchingSkills []string
}

// VolunteerDashboard is the volunteer's view over one cache
// snapshot.
type VolunteerDashboard struct {
	Profile      model.Profile
	MyActivities []model.Activity
	OpenMatches  []OpenActivity
	DisasterMode bool
}

// OfficerDashboard is the programme officer's view over one cache
// snapshot.
type OfficerDashboard struct {
	Activities          []model.Activity
	PendingVerification []model.Activity
	Volunteers          []model.Volunteer
	Stats               *model.Stats
	DisasterMode        bool
}

// BuildVolunteerDashboard assembles the volunteer dashboard from a
// snapshot: the activities assigned to the volunteer, and the open
// activities whose needed skills overlap the volunteer's.
func BuildVolunteerDashboard(snap datacache.Snapshot, profile model.Profile, logger *zap.Logger) *VolunteerDashboard {
	dash := &VolunteerDashboard{
		Profile:      profile,
		DisasterMode: snap.DisasterMode,
	}

	for _, activity := range snap.Activities {
		if activity.IsAssignedTo(profile.ID) {
			dash.MyActivities = append(dash.MyActivities, activity)
			continue
		}
		if activity.Status != model.StatusCreated {
			continue
		}
		if overlap := model.SkillOverlap(activity.SkillsNeeded, profile.Skills); len(overlap) > 0 {
			dash.OpenMatches = append(dash.OpenMatches, OpenActivity{
				Activity:       activity,
				MatchingSkills: overlap,
			})
		}
	}

	logger.Debug("volunteer dashboard assembled",
		zap.Int("volunteer_id", profile.ID),
		zap.Int("assigned", len(dash.MyActivities)),
		zap.Int("open_matches", len(dash.OpenMatches)))

	return dash
}

// BuildOfficerDashboard assembles the officer dashboard from a
// snapshot. In disaster mode activities are ordered most urgent
// first, mirroring the server's own ordering.
func BuildOfficerDashboard(snap datacache.Snapshot, logger *zap.Logger) *OfficerDashboard {
	activities := make([]model.Activity, len(snap.Activities))
	copy(activities, snap.Activities)

	if snap.DisasterMode {
		sort.SliceStable(activities, func(i, j int) bool {
			return activities[i].Urgency > activities[j].Urgency
		})
	}

	dash := &OfficerDashboard{
		Activities:   activities,
		Volunteers:   snap.Volunteers,
		Stats:        snap.Stats,
		DisasterMode: snap.DisasterMode,
	}

	for _, activity := range activities {
		if activity.Status == model.StatusProofSubmitted {
			dash.PendingVerification = append(dash.PendingVerification, activity)
		}
	}

	logger.Debug("officer dashboard assembled",
		zap.Int("activities", len(dash.Activities)),
		zap.Int("pending_verification", len(dash.PendingVerification)),
		zap.Bool("disaster_mode", dash.DisasterMode))

	return dash
}
