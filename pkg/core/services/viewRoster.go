package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mworkman/precinct-roster/pkg/core/model"
	"github.com/mworkman/precinct-roster/pkg/db"
)

// ViewRosterResult represents a roster with its current assignment list
type ViewRosterResult struct {
	Roster      *model.Roster
	Assignments []db.Assignment // date order, as the store returns them
}

// ViewRoster materialises a roster and its assignments for display
func ViewRoster(ctx context.Context, store assignStore, logger *zap.Logger, rosterID string) (*ViewRosterResult, error) {
	roster, err := loadRoster(ctx, store, rosterID)
	if err != nil {
		return nil, err
	}

	assignments, err := store.GetAssignments(ctx, rosterID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}

	for _, a := range assignments {
		roster.Assignments = append(roster.Assignments, toModelAssignment(a))
	}

	logger.Debug("Roster loaded",
		zap.String("roster_id", rosterID),
		zap.Int("shifts", len(roster.Shifts)),
		zap.Int("officers", len(roster.Officers)),
		zap.Int("assignments", len(assignments)))

	return &ViewRosterResult{Roster: roster, Assignments: assignments}, nil
}

// ListRosters returns all rosters in start-date order
func ListRosters(ctx context.Context, store db.RosterStore, logger *zap.Logger) ([]db.Roster, error) {
	rosters, err := store.GetRosters(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rosters: %w", err)
	}

	logger.Debug("Rosters listed", zap.Int("count", len(rosters)))
	return rosters, nil
}
