// Package validation checks candidate shift assignments against a roster and
// its existing assignment set. It is pure: it never mutates its inputs, and
// the caller commits an assignment only when the returned finding list is
// empty. Findings are advisory for the snapshot supplied — callers must
// re-fetch the current assignment set immediately before validating and
// committing.
package validation

import (
	"time"

	"github.com/mworkman/precinct-roster/pkg/core/model"
)

const (
	dateLayout = "2006-01-02"

	// MaxConsecutiveDays is the cap on an officer's unbroken run of work days
	MaxConsecutiveDays = 7
	// MinRestHours is the minimum rest between shifts on adjacent days
	MinRestHours = 8.0
)

// ValidateShiftAssignment checks a candidate assignment against the roster's
// bounds and the supplied assignment snapshot. It returns findings in a
// fixed order; all checks are cumulative except the missing-date check,
// which short-circuits because nothing else can be evaluated without a date.
func ValidateShiftAssignment(candidate model.ShiftAssignment, roster *model.Roster, existing []model.ShiftAssignment) []model.ValidationError {
	if candidate.Date == "" {
		return []model.ValidationError{{Field: "date", Message: "Date is required"}}
	}

	var errors []model.ValidationError

	if candidate.ShiftID == "" {
		errors = append(errors, model.ValidationError{Field: "shiftId", Message: "Shift selection is required"})
	}
	if candidate.OfficerID == "" {
		errors = append(errors, model.ValidationError{Field: "officerId", Message: "Officer selection is required"})
	}
	if candidate.Position == "" {
		errors = append(errors, model.ValidationError{Field: "position", Message: "Position is required"})
	}

	// ISO dates compare lexicographically; bounds are inclusive
	if candidate.Date < roster.StartDate || candidate.Date > roster.EndDate {
		errors = append(errors, model.ValidationError{Field: "date", Message: "Assignment date must be within roster date range"})
	}

	// The cross-record checks need both references
	if candidate.OfficerID == "" || candidate.ShiftID == "" {
		return errors
	}

	if officer, ok := roster.OfficerByID(candidate.OfficerID); ok && !officer.Status.CanTakeShift() {
		errors = append(errors, model.ValidationError{Field: "officerId", Message: "Officer is on leave or inactive and cannot be assigned"})
	}

	index := buildOfficerDateIndex(candidate.OfficerID, existing)

	if _, booked := index[candidate.Date]; booked {
		errors = append(errors, model.ValidationError{Field: "officerId", Message: "Officer is already assigned to a shift on this date"})
	}

	day, err := time.Parse(dateLayout, candidate.Date)
	if err != nil {
		// Unparseable dates cannot support day arithmetic; the range check
		// above has already flagged anything outside the roster window.
		return errors
	}

	if consecutiveRun(index, day) >= MaxConsecutiveDays {
		errors = append(errors, model.ValidationError{Field: "date", Message: "Officer cannot work more than 7 consecutive days"})
	}

	if prior, ok := index[day.AddDate(0, 0, -1).Format(dateLayout)]; ok {
		priorShift, priorOK := roster.ShiftByID(prior.ShiftID)
		candidateShift, candOK := roster.ShiftByID(candidate.ShiftID)
		if priorOK && candOK {
			if gap, ok := restHours(priorShift.EndTime, candidateShift.StartTime); ok && gap < MinRestHours {
				errors = append(errors, model.ValidationError{Field: "shiftId", Message: "Minimum 8 hours rest required between shifts"})
			}
		}
	}

	return errors
}

// buildOfficerDateIndex maps each date the officer already works to one of
// that day's assignments, so the run and booking checks are lookups rather
// than repeated scans over the snapshot.
func buildOfficerDateIndex(officerID string, existing []model.ShiftAssignment) map[string]model.ShiftAssignment {
	index := make(map[string]model.ShiftAssignment)
	for _, a := range existing {
		if a.OfficerID != officerID {
			continue
		}
		if _, seen := index[a.Date]; !seen {
			index[a.Date] = a
		}
	}
	return index
}

// consecutiveRun counts the unbroken run of work days that would include the
// candidate day: walk backward while the officer works each prior day, walk
// forward likewise, plus one for the candidate day itself. The candidate is
// hypothetical and not part of the index, so it is never double-counted.
func consecutiveRun(index map[string]model.ShiftAssignment, day time.Time) int {
	run := 1

	for back := day.AddDate(0, 0, -1); ; back = back.AddDate(0, 0, -1) {
		if _, ok := index[back.Format(dateLayout)]; !ok {
			break
		}
		run++
	}

	for fwd := day.AddDate(0, 0, 1); ; fwd = fwd.AddDate(0, 0, 1) {
		if _, ok := index[fwd.Format(dateLayout)]; !ok {
			break
		}
		run++
	}

	return run
}

// restHours computes the rest gap in hours between a shift ending at endTime
// and the next day's shift starting at startTime, both "HH:MM". Negative
// hour differences wrap by 24, so the gap is always read within a single
// 24-hour window; the check only fires for adjacent calendar days, where
// that window is sufficient.
func restHours(endTime, startTime string) (float64, bool) {
	endH, endM, ok := parseClock(endTime)
	if !ok {
		return 0, false
	}
	startH, startM, ok := parseClock(startTime)
	if !ok {
		return 0, false
	}

	hours := startH - endH
	if hours < 0 {
		hours += 24
	}
	minutes := startM - endM
	if minutes < 0 {
		hours--
		minutes += 60
	}

	return float64(hours) + float64(minutes)/60, true
}

func parseClock(clock string) (hour, minute int, ok bool) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, 0, false
	}
	return t.Hour(), t.Minute(), true
}
