package model

// Role identifies which dashboard a logged-in user operates.
type Role string

const (
	RoleNone      Role = ""
	RoleVolunteer Role = "volunteer"
	RoleOfficer   Role = "po"
)

func (r Role) IsValid() bool {
	return r == RoleVolunteer || r == RoleOfficer
}

// ActivityStatus is the server-owned lifecycle state of an activity.
type ActivityStatus string

const (
	StatusCreated        ActivityStatus = "CREATED"
	StatusAssigned       ActivityStatus = "ASSIGNED"
	StatusProofSubmitted ActivityStatus = "PROOF_SUBMITTED"
	StatusVerified       ActivityStatus = "VERIFIED"
)

// Profile is the volunteer's own record, created once at onboarding.
type Profile struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Location string   `json:"location"`
	Skills   []string `json:"skills"`
}

// Volunteer is a server-owned volunteer record as cached locally.
type Volunteer struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Location string   `json:"location"`
	Skills   []string `json:"skills"`
}

// Activity is a server-owned activity record as cached locally.
// The cache replaces the whole list on every refresh; individual
// fields are never reconciled client-side.
type Activity struct {
	ID                   int            `json:"id"`
	Title                string         `json:"title"`
	Type                 string         `json:"type"`
	Location             string         `json:"location"`
	RequiredCount        int            `json:"required_count"`
	EstimatedHours       int            `json:"estimated_hours"`
	SkillsNeeded         []string       `json:"skills_needed"`
	Status               ActivityStatus `json:"status"`
	AssignedVolunteerIDs []int          `json:"assigned_volunteers"`
	Urgency              int            `json:"urgency"`
	ProofHash            string         `json:"proof_hash,omitempty"`
}

// IsAssignedTo reports whether the volunteer appears in the
// activity's assignment list.
func (a Activity) IsAssignedTo(volunteerID int) bool {
	for _, id := range a.AssignedVolunteerIDs {
		if id == volunteerID {
			return true
		}
	}
	return false
}

// Stats holds the aggregate counters recomputed by the server on
// every fetch.
type Stats struct {
	VolunteersCount    int `json:"volunteers_count"`
	TotalHours         int `json:"total_hours"`
	ActivitiesCreated  int `json:"activities_created"`
	ActivitiesVerified int `json:"activities_verified"`
}

// Match is one AI matching suggestion for an activity.
type Match struct {
	Volunteer Volunteer `json:"volunteer"`
	Score     float64   `json:"score"`
	Reason    string    `json:"reason"`
}

// ActivityPlan is the AI planner's suggested activity shape for a
// free-text issue description.
type ActivityPlan struct {
	Type     string   `json:"type"`
	EstHours int      `json:"est_hours"`
	Count    int      `json:"count"`
	Skills   []string `json:"skills"`
}

// SkillOverlap returns the subset of needed skills the given skill
// set covers. Order follows needed.
func SkillOverlap(needed, have []string) []string {
	haveSet := make(map[string]bool, len(have))
	for _, s := range have {
		haveSet[s] = true
	}
	var overlap []string
	for _, s := range needed {
		if haveSet[s] {
			overlap = append(overlap, s)
		}
	}
	return overlap
}
