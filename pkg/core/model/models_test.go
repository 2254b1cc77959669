package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleVolunteer.IsValid())
	assert.True(t, RoleOfficer.IsValid())
	assert.False(t, RoleNone.IsValid())
	assert.False(t, Role("admin").IsValid())
}

func TestActivity_IsAssignedTo(t *testing.T) {
	activity := Activity{AssignedVolunteerIDs: []int{1, 3}}
	assert.True(t, activity.IsAssignedTo(3))
	assert.False(t, activity.IsAssignedTo(2))
	assert.False(t, Activity{}.IsAssignedTo(1))
}

func TestSkillOverlap(t *testing.T) {
	tests := []struct {
		name   string
		needed []string
		have   []string
		want   []string
	}{
		{"partial overlap", []string{"medical", "logistics"}, []string{"logistics", "art"}, []string{"logistics"}},
		{"no overlap", []string{"medical"}, []string{"art"}, nil},
		{"order follows needed", []string{"b", "a"}, []string{"a", "b"}, []string{"b", "a"}},
		{"empty needed", nil, []string{"a"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SkillOverlap(tt.needed, tt.have))
		})
	}
}
