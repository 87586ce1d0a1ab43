// Package rotation computes the department's fixed 32-day shift rotation:
// two four-day night blocks followed by two four-day day blocks, spaced by
// off days, repeating relative to a fixed reference date.
package rotation

import "time"

// ShiftType classifies a calendar day within the rotation
type ShiftType string

const (
	ShiftDay   ShiftType = "day"
	ShiftNight ShiftType = "night"
	ShiftOff   ShiftType = "off"
)

// ShiftInfo is the rotation classification for a single calendar date
type ShiftInfo struct {
	IsWorkDay  bool
	ShiftType  ShiftType
	WeekNumber int // 1 or 2 on work days, 0 on off days
}

// BaseReferenceDate marks day 0 of the rotation cycle: the first day of a
// night-shift block.
var BaseReferenceDate = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

const (
	// RotationCycleDays is the length of the repeating pattern
	RotationCycleDays = 32
	// ShiftDays is the number of consecutive work days per block
	ShiftDays = 4
	// ShiftBreak is the number of days separating the two night blocks
	ShiftBreak = 5
)

// GetShiftInfo maps a calendar date to its rotation state. It is total over
// the date domain and ignores the time-of-day component of its input.
func GetShiftInfo(date time.Time) ShiftInfo {
	day := normalize(date)
	ref := normalize(BaseReferenceDate)

	daysSinceReference := int(day.Sub(ref).Hours() / 24)
	if daysSinceReference < 0 {
		// Pre-reference dates re-map the absolute distance back into the
		// cycle. This only inverts the forward mapping for distances under
		// one cycle length; the published band behavior depends on it, so it
		// must not be replaced with a symmetric negative modulo.
		distance := -daysSinceReference
		daysSinceReference = RotationCycleDays - (distance % RotationCycleDays)
	}

	dayInCycle := daysSinceReference % RotationCycleDays

	// Bands 3 and 4 use the literal boundaries 16 and 24; only the night
	// bands derive from the named constants. The asymmetry is part of the
	// pattern definition.
	switch {
	case dayInCycle < ShiftDays:
		return ShiftInfo{IsWorkDay: true, ShiftType: ShiftNight, WeekNumber: 1}
	case dayInCycle >= ShiftDays+ShiftBreak && dayInCycle < ShiftDays+ShiftBreak+ShiftDays:
		return ShiftInfo{IsWorkDay: true, ShiftType: ShiftNight, WeekNumber: 2}
	case dayInCycle >= 16 && dayInCycle < 20:
		return ShiftInfo{IsWorkDay: true, ShiftType: ShiftDay, WeekNumber: 1}
	case dayInCycle >= 24 && dayInCycle < 28:
		return ShiftInfo{IsWorkDay: true, ShiftType: ShiftDay, WeekNumber: 2}
	}

	return ShiftInfo{ShiftType: ShiftOff}
}

// GetNextWorkDay returns the first work day strictly after the given date.
// It always advances at least one day; every 32-day window contains work
// days, so the walk terminates.
func GetNextWorkDay(date time.Time) time.Time {
	day := normalize(date)
	for {
		day = day.AddDate(0, 0, 1)
		if GetShiftInfo(day).IsWorkDay {
			return day
		}
	}
}

// GetWorkDaysInMonth returns every work day of the given month in ascending
// order.
func GetWorkDaysInMonth(year int, month time.Month) []time.Time {
	var days []time.Time
	for d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC); d.Month() == month; d = d.AddDate(0, 0, 1) {
		if GetShiftInfo(d).IsWorkDay {
			days = append(days, d)
		}
	}
	return days
}

// normalize strips the time-of-day component, pinning the calendar date to
// midnight UTC so day arithmetic is immune to DST and timezone artifacts.
func normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
