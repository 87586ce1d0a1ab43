package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mworkman/precinct-roster/pkg/core/model"
	"github.com/mworkman/precinct-roster/pkg/db"
)

const dateLayout = "2006-01-02"

// rosterStore is the read side needed to materialise a full roster
type rosterStore interface {
	GetRoster(ctx context.Context, rosterID string) (*db.Roster, error)
	GetShifts(ctx context.Context, rosterID string) ([]db.Shift, error)
	GetRosterOfficers(ctx context.Context, rosterID string) ([]db.Officer, error)
}

// loadRoster materialises a model.Roster (without assignments) from the
// store. Assignments are fetched separately and immediately before
// validation, so the validator always sees the freshest snapshot.
func loadRoster(ctx context.Context, store rosterStore, rosterID string) (*model.Roster, error) {
	record, err := store.GetRoster(ctx, rosterID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roster: %w", err)
	}

	shifts, err := store.GetShifts(ctx, rosterID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shifts: %w", err)
	}

	officers, err := store.GetRosterOfficers(ctx, rosterID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roster officers: %w", err)
	}

	roster := &model.Roster{
		ID:        record.ID,
		Name:      record.Name,
		StartDate: record.StartDate,
		EndDate:   record.EndDate,
	}
	for _, s := range shifts {
		roster.Shifts = append(roster.Shifts, toModelShift(s))
	}
	for _, o := range officers {
		roster.Officers = append(roster.Officers, toModelOfficer(o))
	}

	return roster, nil
}

func toModelShift(s db.Shift) model.Shift {
	return model.Shift{
		ID:        s.ID,
		Name:      s.Name,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
	}
}

func toModelOfficer(o db.Officer) model.Officer {
	return model.Officer{
		ID:          o.ID,
		BadgeNumber: o.BadgeNumber,
		FirstName:   o.FirstName,
		LastName:    o.LastName,
		Rank:        o.Rank,
		Status:      model.OfficerStatus(o.Status),
		Email:       o.Email,
		Phone:       o.Phone,
	}
}

func toModelAssignment(a db.Assignment) model.ShiftAssignment {
	return model.ShiftAssignment{
		ShiftID:   a.ShiftID,
		OfficerID: a.OfficerID,
		Date:      a.Date,
		Position:  a.Position,
	}
}

// parseDate parses an ISO calendar date, normalised to midnight UTC
func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", value, err)
	}
	return t, nil
}

// parseClockTime validates a 24h "HH:MM" time-of-day string
func parseClockTime(value string) error {
	if _, err := time.Parse("15:04", value); err != nil {
		return fmt.Errorf("invalid time %q (expected HH:MM): %w", value, err)
	}
	return nil
}
