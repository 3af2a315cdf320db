package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectStatusTransitions(t *testing.T) {
	tests := []struct {
		from    ProjectStatus
		to      ProjectStatus
		allowed bool
	}{
		{StatusProposed, StatusActive, true},
		{StatusProposed, StatusCancelled, true},
		{StatusProposed, StatusCompleted, false},
		{StatusProposed, StatusOnHold, false},
		{StatusActive, StatusOnHold, true},
		{StatusActive, StatusCompleted, true},
		{StatusActive, StatusCancelled, true},
		{StatusOnHold, StatusActive, true},
		{StatusOnHold, StatusCompleted, false},
		{StatusCompleted, StatusActive, false},
		{StatusCancelled, StatusActive, false},
		// self transitions are no-ops, always allowed
		{StatusActive, StatusActive, true},
		{StatusCompleted, StatusCompleted, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestProjectStatusSerialization(t *testing.T) {
	raw, err := json.Marshal(StatusOnHold)
	require.NoError(t, err)
	assert.Equal(t, `"on_hold"`, string(raw))

	parsed, err := ProjectStatusString("on_hold")
	require.NoError(t, err)
	assert.Equal(t, StatusOnHold, parsed)

	_, err = ProjectStatusString("archived")
	assert.Error(t, err)
}

func TestRoleAtLeast(t *testing.T) {
	assert.True(t, RoleAtLeast(RoleAdmin, RoleViewer))
	assert.True(t, RoleAtLeast(RoleManager, RoleManager))
	assert.False(t, RoleAtLeast(RoleViewer, RoleManager))
	assert.False(t, RoleAtLeast("", RoleViewer))
	assert.False(t, RoleAtLeast("superuser", RoleViewer))
}
