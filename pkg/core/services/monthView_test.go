package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mworkman/precinct-roster/pkg/core/rotation"
	"github.com/mworkman/precinct-roster/pkg/db"
)

func TestMonthView_RotationOnly(t *testing.T) {
	store := newMockStore()

	// January 2024 opens on the rotation reference date: 16 work days
	result, err := MonthView(context.Background(), store, zap.NewNop(), "", 2024, time.January)
	require.NoError(t, err)

	assert.Equal(t, 16, result.WorkDayCount)
	require.Len(t, result.Days, 31)

	first := result.Days[0]
	assert.True(t, first.Rotation.IsWorkDay)
	assert.Equal(t, rotation.ShiftNight, first.Rotation.ShiftType)
	assert.Equal(t, 1, first.Rotation.WeekNumber)
	assert.Empty(t, first.Assignments)

	// Jan 5 is cycle day 4, the first off day
	assert.False(t, result.Days[4].Rotation.IsWorkDay)
}

func TestMonthView_AttachesRosterAssignments(t *testing.T) {
	store := newMockStore()
	rosterFixture(store)
	store.assignments["roster-1"] = []db.Assignment{
		{ID: "a1", RosterID: "roster-1", ShiftID: "shift-day", OfficerID: "O1", Date: "2024-01-10", Position: "Patrol"},
		{ID: "a2", RosterID: "roster-1", ShiftID: "shift-late", OfficerID: "O2", Date: "2024-01-10", Position: "Supervisor"},
	}

	result, err := MonthView(context.Background(), store, zap.NewNop(), "roster-1", 2024, time.January)
	require.NoError(t, err)

	jan10 := result.Days[9]
	assert.Equal(t, "2024-01-10", jan10.Date.Format("2006-01-02"))
	assert.Len(t, jan10.Assignments, 2)

	jan11 := result.Days[10]
	assert.Empty(t, jan11.Assignments)
}

func TestViewRoster(t *testing.T) {
	store := newMockStore()
	rosterFixture(store)
	store.assignments["roster-1"] = []db.Assignment{
		{ID: "a1", RosterID: "roster-1", ShiftID: "shift-day", OfficerID: "O1", Date: "2024-01-10", Position: "Patrol"},
	}

	result, err := ViewRoster(context.Background(), store, zap.NewNop(), "roster-1")
	require.NoError(t, err)

	assert.Equal(t, "January 2024", result.Roster.Name)
	assert.Len(t, result.Roster.Shifts, 2)
	assert.Len(t, result.Roster.Officers, 2)
	require.Len(t, result.Assignments, 1)
	assert.Equal(t, "2024-01-10", result.Assignments[0].Date)

	// The model view carries the assignments too
	require.Len(t, result.Roster.Assignments, 1)
	assert.Equal(t, "O1", result.Roster.Assignments[0].OfficerID)
}
