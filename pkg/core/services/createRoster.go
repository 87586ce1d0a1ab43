package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/mworkman/precinct-roster/internal/config"
	"github.com/mworkman/precinct-roster/pkg/db"
)

// CreateRosterResult represents the result of creating a new roster
type CreateRosterResult struct {
	Roster *db.Roster
	Shifts []db.Shift
	// PlannedDates maps a template-created shift id to the dates its rrule
	// expands to within the roster window. Empty for shifts without an rrule.
	PlannedDates map[string][]time.Time
}

// CreateRoster creates a new scheduling period with an inclusive date
// window. Shift templates from the configuration are copied into the roster
// as its standing shifts; templates carrying an rrule also report the dates
// the shift is expected to run on.
func CreateRoster(ctx context.Context, store db.RosterStore, logger *zap.Logger, cfg *config.Config, name, startDate, endDate string) (*CreateRosterResult, error) {
	if name == "" {
		return nil, fmt.Errorf("roster name is required")
	}

	start, err := parseDate(startDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(endDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, fmt.Errorf("roster end date %s is before start date %s", endDate, startDate)
	}

	logger.Info("Creating roster",
		zap.String("name", name),
		zap.String("start_date", startDate),
		zap.String("end_date", endDate))

	roster := &db.Roster{
		ID:        uuid.New().String(),
		Name:      name,
		StartDate: startDate,
		EndDate:   endDate,
	}

	if err := store.InsertRoster(ctx, roster); err != nil {
		return nil, fmt.Errorf("failed to insert roster: %w", err)
	}

	result := &CreateRosterResult{
		Roster:       roster,
		PlannedDates: make(map[string][]time.Time),
	}

	// Copy standing shifts from config templates
	for _, tmpl := range cfg.ShiftTemplates {
		shift := &db.Shift{
			ID:        uuid.New().String(),
			RosterID:  roster.ID,
			Name:      tmpl.Name,
			StartTime: tmpl.StartTime,
			EndTime:   tmpl.EndTime,
		}
		if err := store.InsertShift(ctx, shift); err != nil {
			return nil, fmt.Errorf("failed to insert template shift %q: %w", tmpl.Name, err)
		}
		result.Shifts = append(result.Shifts, *shift)

		if tmpl.RRule != "" {
			dates, err := expandTemplateDates(tmpl.RRule, start, end)
			if err != nil {
				return nil, fmt.Errorf("failed to expand rrule for shift %q: %w", tmpl.Name, err)
			}
			result.PlannedDates[shift.ID] = dates
		}

		logger.Debug("Template shift created",
			zap.String("shift_id", shift.ID),
			zap.String("name", shift.Name),
			zap.Int("planned_dates", len(result.PlannedDates[shift.ID])))
	}

	logger.Info("Roster created successfully",
		zap.String("roster_id", roster.ID),
		zap.Int("shift_count", len(result.Shifts)))

	return result, nil
}

// DeleteRoster removes a roster as a whole, including its shifts,
// enrollments, and assignments
func DeleteRoster(ctx context.Context, store db.RosterStore, logger *zap.Logger, rosterID string) error {
	logger.Info("Deleting roster", zap.String("roster_id", rosterID))

	if err := store.DeleteRoster(ctx, rosterID); err != nil {
		return fmt.Errorf("failed to delete roster: %w", err)
	}

	logger.Info("Roster deleted", zap.String("roster_id", rosterID))
	return nil
}

// expandTemplateDates expands an rrule over the roster's inclusive window
func expandTemplateDates(rule string, start, end time.Time) ([]time.Time, error) {
	r, err := rrule.StrToRRule(rule)
	if err != nil {
		return nil, err
	}
	r.DTStart(start)
	return r.Between(start, end, true), nil
}
