package services

import (
	"context"
	"fmt"

	"github.com/mworkman/precinct-roster/pkg/db"
)

// mockStore implements db.Store as a test double backed by maps
type mockStore struct {
	rosters        map[string]db.Roster
	shifts         map[string][]db.Shift
	rosterOfficers map[string][]db.Officer
	officers       map[string]db.Officer
	assignments    map[string][]db.Assignment

	insertedRosters          []*db.Roster
	insertedShifts           []*db.Shift
	insertedOfficers         []*db.Officer
	insertedAssignments      []*db.Assignment
	enrollments              [][2]string
	deletedRosters           []string
	officerAssignmentFetches [][2]string

	insertAssignmentErr error
	getAssignmentsErr   error
}

func newMockStore() *mockStore {
	return &mockStore{
		rosters:        make(map[string]db.Roster),
		shifts:         make(map[string][]db.Shift),
		rosterOfficers: make(map[string][]db.Officer),
		officers:       make(map[string]db.Officer),
		assignments:    make(map[string][]db.Assignment),
	}
}

func (m *mockStore) GetRosters(ctx context.Context) ([]db.Roster, error) {
	var out []db.Roster
	for _, r := range m.rosters {
		out = append(out, r)
	}
	return out, nil
}

func (m *mockStore) GetRoster(ctx context.Context, rosterID string) (*db.Roster, error) {
	r, ok := m.rosters[rosterID]
	if !ok {
		return nil, fmt.Errorf("roster %s not found", rosterID)
	}
	return &r, nil
}

func (m *mockStore) InsertRoster(ctx context.Context, roster *db.Roster) error {
	m.rosters[roster.ID] = *roster
	m.insertedRosters = append(m.insertedRosters, roster)
	return nil
}

func (m *mockStore) DeleteRoster(ctx context.Context, rosterID string) error {
	delete(m.rosters, rosterID)
	m.deletedRosters = append(m.deletedRosters, rosterID)
	return nil
}

func (m *mockStore) GetShifts(ctx context.Context, rosterID string) ([]db.Shift, error) {
	return m.shifts[rosterID], nil
}

func (m *mockStore) InsertShift(ctx context.Context, shift *db.Shift) error {
	m.shifts[shift.RosterID] = append(m.shifts[shift.RosterID], *shift)
	m.insertedShifts = append(m.insertedShifts, shift)
	return nil
}

func (m *mockStore) GetRosterOfficers(ctx context.Context, rosterID string) ([]db.Officer, error) {
	return m.rosterOfficers[rosterID], nil
}

func (m *mockStore) EnrollOfficer(ctx context.Context, rosterID, officerID string) error {
	officer := m.officers[officerID]
	m.rosterOfficers[rosterID] = append(m.rosterOfficers[rosterID], officer)
	m.enrollments = append(m.enrollments, [2]string{rosterID, officerID})
	return nil
}

func (m *mockStore) GetOfficers(ctx context.Context) ([]db.Officer, error) {
	var out []db.Officer
	for _, o := range m.officers {
		out = append(out, o)
	}
	return out, nil
}

func (m *mockStore) GetOfficer(ctx context.Context, officerID string) (*db.Officer, error) {
	o, ok := m.officers[officerID]
	if !ok {
		return nil, fmt.Errorf("officer %s not found", officerID)
	}
	return &o, nil
}

func (m *mockStore) InsertOfficer(ctx context.Context, officer *db.Officer) error {
	m.officers[officer.ID] = *officer
	m.insertedOfficers = append(m.insertedOfficers, officer)
	return nil
}

func (m *mockStore) UpdateOfficerStatus(ctx context.Context, officerID, status string) error {
	o, ok := m.officers[officerID]
	if !ok {
		return fmt.Errorf("officer %s not found", officerID)
	}
	o.Status = status
	m.officers[officerID] = o
	return nil
}

func (m *mockStore) GetAssignments(ctx context.Context, rosterID string) ([]db.Assignment, error) {
	if m.getAssignmentsErr != nil {
		return nil, m.getAssignmentsErr
	}
	return m.assignments[rosterID], nil
}

func (m *mockStore) GetOfficerAssignments(ctx context.Context, rosterID, officerID string) ([]db.Assignment, error) {
	m.officerAssignmentFetches = append(m.officerAssignmentFetches, [2]string{rosterID, officerID})
	if m.getAssignmentsErr != nil {
		return nil, m.getAssignmentsErr
	}
	var out []db.Assignment
	for _, a := range m.assignments[rosterID] {
		if a.OfficerID == officerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockStore) InsertAssignment(ctx context.Context, assignment *db.Assignment) error {
	if m.insertAssignmentErr != nil {
		return m.insertAssignmentErr
	}
	m.assignments[assignment.RosterID] = append(m.assignments[assignment.RosterID], *assignment)
	m.insertedAssignments = append(m.insertedAssignments, assignment)
	return nil
}

func (m *mockStore) DeleteAssignment(ctx context.Context, rosterID, officerID, date string) error {
	var kept []db.Assignment
	for _, a := range m.assignments[rosterID] {
		if a.OfficerID == officerID && a.Date == date {
			continue
		}
		kept = append(kept, a)
	}
	m.assignments[rosterID] = kept
	return nil
}
