package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mworkman/precinct-roster/pkg/db"
)

// AddShift adds a named time-of-day work window to a roster. Start and end
// are 24h "HH:MM"; the window may wrap past midnight (end before start).
func AddShift(ctx context.Context, store db.RosterStore, logger *zap.Logger, rosterID, name, startTime, endTime string) (*db.Shift, error) {
	if name == "" {
		return nil, fmt.Errorf("shift name is required")
	}
	if err := parseClockTime(startTime); err != nil {
		return nil, err
	}
	if err := parseClockTime(endTime); err != nil {
		return nil, err
	}

	// Confirm the roster exists before attaching a shift to it
	if _, err := store.GetRoster(ctx, rosterID); err != nil {
		return nil, fmt.Errorf("failed to fetch roster: %w", err)
	}

	shift := &db.Shift{
		ID:        uuid.New().String(),
		RosterID:  rosterID,
		Name:      name,
		StartTime: startTime,
		EndTime:   endTime,
	}

	logger.Info("Adding shift",
		zap.String("roster_id", rosterID),
		zap.String("name", name),
		zap.String("start_time", startTime),
		zap.String("end_time", endTime))

	if err := store.InsertShift(ctx, shift); err != nil {
		return nil, fmt.Errorf("failed to insert shift: %w", err)
	}

	return shift, nil
}
