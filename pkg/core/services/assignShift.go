package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mworkman/precinct-roster/pkg/core/model"
	"github.com/mworkman/precinct-roster/pkg/core/validation"
	"github.com/mworkman/precinct-roster/pkg/db"
)

// assignStore combines the operations AssignShift needs
type assignStore interface {
	db.RosterStore
	db.AssignmentStore
}

// AssignShiftResult represents the outcome of an assignment attempt
type AssignShiftResult struct {
	// Assignment is the committed record; nil when validation failed
	Assignment *db.Assignment

	// ValidationErrors are the findings that blocked the commit; empty on
	// success
	ValidationErrors []model.ValidationError

	// Committed reports whether the assignment was written to the store
	Committed bool
}

// AssignShift validates a candidate (officer, date, shift, position)
// assignment against the roster and commits it only when the validator
// returns no findings. Every cross-record check is scoped to the candidate
// officer, so only that officer's assignments are fetched, re-read
// immediately before validating so the snapshot is as fresh as the store can
// provide; the unique constraint on (roster, officer, date) backstops
// anything that slips between fetch and insert.
func AssignShift(ctx context.Context, store assignStore, logger *zap.Logger, rosterID, officerID, shiftID, date, position string) (*AssignShiftResult, error) {
	roster, err := loadRoster(ctx, store, rosterID)
	if err != nil {
		return nil, err
	}

	existingRecords, err := store.GetOfficerAssignments(ctx, rosterID, officerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch officer assignments: %w", err)
	}

	existing := make([]model.ShiftAssignment, 0, len(existingRecords))
	for _, record := range existingRecords {
		existing = append(existing, toModelAssignment(record))
	}

	candidate := model.ShiftAssignment{
		ShiftID:   shiftID,
		OfficerID: officerID,
		Date:      date,
		Position:  position,
	}

	logger.Info("Validating assignment",
		zap.String("roster_id", rosterID),
		zap.String("officer_id", officerID),
		zap.String("shift_id", shiftID),
		zap.String("date", date),
		zap.String("position", position))

	findings := validation.ValidateShiftAssignment(candidate, roster, existing)
	if len(findings) > 0 {
		logger.Warn("Assignment rejected", zap.Int("finding_count", len(findings)))
		return &AssignShiftResult{ValidationErrors: findings}, nil
	}

	record := &db.Assignment{
		ID:        uuid.New().String(),
		RosterID:  rosterID,
		ShiftID:   shiftID,
		OfficerID: officerID,
		Date:      date,
		Position:  position,
	}

	if err := store.InsertAssignment(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to insert assignment: %w", err)
	}

	logger.Info("Assignment committed", zap.String("assignment_id", record.ID))

	return &AssignShiftResult{
		Assignment:       record,
		ValidationErrors: []model.ValidationError{},
		Committed:        true,
	}, nil
}

// RemoveAssignment deletes an officer's assignment on a date
func RemoveAssignment(ctx context.Context, store db.AssignmentStore, logger *zap.Logger, rosterID, officerID, date string) error {
	if _, err := parseDate(date); err != nil {
		return err
	}

	logger.Info("Removing assignment",
		zap.String("roster_id", rosterID),
		zap.String("officer_id", officerID),
		zap.String("date", date))

	if err := store.DeleteAssignment(ctx, rosterID, officerID, date); err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}

	return nil
}
