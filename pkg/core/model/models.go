package model

// OfficerStatus describes where an officer currently stands in the department
type OfficerStatus string

const (
	StatusActive   OfficerStatus = "active"
	StatusInactive OfficerStatus = "inactive"
	StatusLeave    OfficerStatus = "leave"
	StatusTraining OfficerStatus = "training"
	StatusDeployed OfficerStatus = "deployed"
	StatusFMLA     OfficerStatus = "fmla"
	StatusTDY      OfficerStatus = "tdy"
)

func (s OfficerStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusLeave, StatusTraining,
		StatusDeployed, StatusFMLA, StatusTDY:
		return true
	}
	return false
}

// CanTakeShift is the assignment validator's rule: only leave and inactive
// officers are rejected. Deployed/fmla/tdy officers pass validation and are
// kept out of new assignments by the picker rule below instead.
func (s OfficerStatus) CanTakeShift() bool {
	return s != StatusLeave && s != StatusInactive
}

// RosterEligible is the picker rule: only active and training officers are
// offered for enrollment and new assignments. Deliberately stricter than
// CanTakeShift; the two rules are kept separate so each caller names the one
// it applies.
func (s OfficerStatus) RosterEligible() bool {
	return s == StatusActive || s == StatusTraining
}

// Officer represents a record in the department's officer directory
type Officer struct {
	ID          string
	BadgeNumber string
	FirstName   string
	LastName    string
	Rank        string
	Status      OfficerStatus
	Email       string
	Phone       string
}

// Shift is a named time-of-day work window within a roster.
// StartTime and EndTime are 24h "HH:MM" strings and may wrap past midnight
// (e.g. an "Early Shift" running 16:00–03:15).
type Shift struct {
	ID        string
	Name      string
	StartTime string
	EndTime   string
}

// ShiftAssignment binds one officer to one shift on one date with a
// position label. Date is an ISO calendar date ("2006-01-02"), no time
// component.
type ShiftAssignment struct {
	ShiftID   string
	OfficerID string
	Date      string
	Position  string
}

// Roster is a named scheduling period. It exclusively owns its shifts and
// assignments; officers are a roster-scoped snapshot referenced by id from
// the department directory.
type Roster struct {
	ID          string
	Name        string
	StartDate   string // ISO date, inclusive
	EndDate     string // ISO date, inclusive
	Shifts      []Shift
	Officers    []Officer
	Assignments []ShiftAssignment
}

// ShiftByID looks up a shift in the roster's shift list
func (r *Roster) ShiftByID(id string) (Shift, bool) {
	for _, s := range r.Shifts {
		if s.ID == id {
			return s, true
		}
	}
	return Shift{}, false
}

// OfficerByID looks up an officer in the roster's officer snapshot
func (r *Roster) OfficerByID(id string) (Officer, bool) {
	for _, o := range r.Officers {
		if o.ID == id {
			return o, true
		}
	}
	return Officer{}, false
}

// ValidationError is a single validation finding. Any non-empty slice of
// findings means the candidate assignment must not be committed.
type ValidationError struct {
	Field   string
	Message string
}
