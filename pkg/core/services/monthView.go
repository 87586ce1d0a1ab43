package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mworkman/precinct-roster/pkg/core/rotation"
	"github.com/mworkman/precinct-roster/pkg/db"
)

// DayView is one calendar day: its rotation classification and, when a
// roster is in view, that day's assignments
type DayView struct {
	Date        time.Time
	Rotation    rotation.ShiftInfo
	Assignments []db.Assignment
}

// MonthViewResult represents a rendered calendar month
type MonthViewResult struct {
	Year         int
	Month        time.Month
	Days         []DayView
	WorkDayCount int
}

// MonthView classifies every day of the month against the rotation cycle
// and, when rosterID is non-empty, attaches the roster's assignments per
// day. Nothing here is persisted; the result exists for display only.
func MonthView(ctx context.Context, store db.AssignmentStore, logger *zap.Logger, rosterID string, year int, month time.Month) (*MonthViewResult, error) {
	byDate := make(map[string][]db.Assignment)
	if rosterID != "" {
		assignments, err := store.GetAssignments(ctx, rosterID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch assignments: %w", err)
		}
		for _, a := range assignments {
			byDate[a.Date] = append(byDate[a.Date], a)
		}
	}

	result := &MonthViewResult{Year: year, Month: month}

	for d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC); d.Month() == month; d = d.AddDate(0, 0, 1) {
		info := rotation.GetShiftInfo(d)
		if info.IsWorkDay {
			result.WorkDayCount++
		}
		result.Days = append(result.Days, DayView{
			Date:        d,
			Rotation:    info,
			Assignments: byDate[d.Format(dateLayout)],
		})
	}

	logger.Debug("Month view built",
		zap.Int("year", year),
		zap.String("month", month.String()),
		zap.Int("work_days", result.WorkDayCount),
		zap.String("roster_id", rosterID))

	return result, nil
}
