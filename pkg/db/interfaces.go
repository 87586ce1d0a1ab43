package db

import "context"

// RosterStore defines the interface for roster database operations
type RosterStore interface {
	GetRosters(ctx context.Context) ([]Roster, error)
	GetRoster(ctx context.Context, rosterID string) (*Roster, error)
	InsertRoster(ctx context.Context, roster *Roster) error
	DeleteRoster(ctx context.Context, rosterID string) error

	GetShifts(ctx context.Context, rosterID string) ([]Shift, error)
	InsertShift(ctx context.Context, shift *Shift) error

	GetRosterOfficers(ctx context.Context, rosterID string) ([]Officer, error)
	EnrollOfficer(ctx context.Context, rosterID, officerID string) error
}

// OfficerStore defines the interface for officer directory operations
type OfficerStore interface {
	GetOfficers(ctx context.Context) ([]Officer, error)
	GetOfficer(ctx context.Context, officerID string) (*Officer, error)
	InsertOfficer(ctx context.Context, officer *Officer) error
	UpdateOfficerStatus(ctx context.Context, officerID, status string) error
}

// AssignmentStore defines the interface for shift assignment operations
type AssignmentStore interface {
	GetAssignments(ctx context.Context, rosterID string) ([]Assignment, error)
	GetOfficerAssignments(ctx context.Context, rosterID, officerID string) ([]Assignment, error)
	InsertAssignment(ctx context.Context, assignment *Assignment) error
	DeleteAssignment(ctx context.Context, rosterID, officerID, date string) error
}

// Store combines all database operations. The postgres.DB implements it.
type Store interface {
	RosterStore
	OfficerStore
	AssignmentStore
}
