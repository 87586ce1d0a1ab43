package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mworkman/precinct-roster/pkg/core/model"
	"github.com/mworkman/precinct-roster/pkg/db"
)

// RegisterOfficerParams are the directory fields for a new officer
type RegisterOfficerParams struct {
	BadgeNumber string
	FirstName   string
	LastName    string
	Rank        string
	Status      model.OfficerStatus
	Email       string
	Phone       string
}

// RegisterOfficer adds an officer to the department directory
func RegisterOfficer(ctx context.Context, store db.OfficerStore, logger *zap.Logger, params RegisterOfficerParams) (*db.Officer, error) {
	if params.BadgeNumber == "" {
		return nil, fmt.Errorf("badge number is required")
	}
	if params.FirstName == "" || params.LastName == "" {
		return nil, fmt.Errorf("officer name is required")
	}
	if params.Status == "" {
		params.Status = model.StatusActive
	}
	if !params.Status.IsValid() {
		return nil, fmt.Errorf("invalid officer status %q", params.Status)
	}

	officer := &db.Officer{
		ID:          uuid.New().String(),
		BadgeNumber: params.BadgeNumber,
		FirstName:   params.FirstName,
		LastName:    params.LastName,
		Rank:        params.Rank,
		Status:      string(params.Status),
		Email:       params.Email,
		Phone:       params.Phone,
	}

	logger.Info("Registering officer",
		zap.String("badge_number", officer.BadgeNumber),
		zap.String("name", officer.FirstName+" "+officer.LastName),
		zap.String("status", officer.Status))

	if err := store.InsertOfficer(ctx, officer); err != nil {
		return nil, fmt.Errorf("failed to insert officer: %w", err)
	}

	return officer, nil
}

// ListOfficers returns directory officers, optionally restricted to those
// eligible for roster enrollment (active or training).
func ListOfficers(ctx context.Context, store db.OfficerStore, logger *zap.Logger, eligibleOnly bool) ([]model.Officer, error) {
	records, err := store.GetOfficers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch officers: %w", err)
	}

	var officers []model.Officer
	for _, record := range records {
		officer := toModelOfficer(record)
		if eligibleOnly && !officer.Status.RosterEligible() {
			continue
		}
		officers = append(officers, officer)
	}

	logger.Debug("Officers listed",
		zap.Int("total", len(records)),
		zap.Int("returned", len(officers)),
		zap.Bool("eligible_only", eligibleOnly))

	return officers, nil
}

// SetOfficerStatus updates an officer's directory status
func SetOfficerStatus(ctx context.Context, store db.OfficerStore, logger *zap.Logger, officerID string, status model.OfficerStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid officer status %q", status)
	}

	if _, err := store.GetOfficer(ctx, officerID); err != nil {
		return fmt.Errorf("failed to fetch officer: %w", err)
	}

	if err := store.UpdateOfficerStatus(ctx, officerID, string(status)); err != nil {
		return fmt.Errorf("failed to update officer status: %w", err)
	}

	logger.Info("Officer status updated",
		zap.String("officer_id", officerID),
		zap.String("status", string(status)))

	return nil
}

// enrollStore combines the roster and officer operations EnrollOfficer needs
type enrollStore interface {
	db.RosterStore
	db.OfficerStore
}

// EnrollOfficer adds a directory officer to a roster's scoped snapshot.
// Only roster-eligible officers (active or training) can be enrolled; that
// is the picker rule, stricter than what the assignment validator enforces.
func EnrollOfficer(ctx context.Context, store enrollStore, logger *zap.Logger, rosterID, officerID string) error {
	officer, err := store.GetOfficer(ctx, officerID)
	if err != nil {
		return fmt.Errorf("failed to fetch officer: %w", err)
	}

	status := model.OfficerStatus(officer.Status)
	if !status.RosterEligible() {
		return fmt.Errorf("officer %s %s is %s and not eligible for roster enrollment", officer.FirstName, officer.LastName, officer.Status)
	}

	if _, err := store.GetRoster(ctx, rosterID); err != nil {
		return fmt.Errorf("failed to fetch roster: %w", err)
	}

	if err := store.EnrollOfficer(ctx, rosterID, officerID); err != nil {
		return fmt.Errorf("failed to enroll officer: %w", err)
	}

	logger.Info("Officer enrolled",
		zap.String("roster_id", rosterID),
		zap.String("officer_id", officerID))

	return nil
}
