package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/mworkman/precinct-roster/pkg/db"
)

// GetRosters retrieves all roster records
func (d *DB) GetRosters(ctx context.Context) ([]db.Roster, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, start_date, end_date
		FROM roster
		ORDER BY start_date
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query rosters: %w", err)
	}
	defer rows.Close()

	var rosters []db.Roster
	for rows.Next() {
		var r db.Roster
		var start, end time.Time
		if err := rows.Scan(&r.ID, &r.Name, &start, &end); err != nil {
			return nil, fmt.Errorf("failed to scan roster: %w", err)
		}
		r.StartDate = start.Format("2006-01-02")
		r.EndDate = end.Format("2006-01-02")
		rosters = append(rosters, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rosters: %w", err)
	}

	return rosters, nil
}

// GetRoster retrieves a single roster record by id
func (d *DB) GetRoster(ctx context.Context, rosterID string) (*db.Roster, error) {
	var r db.Roster
	var start, end time.Time
	err := d.pool.QueryRow(ctx, `
		SELECT id, name, start_date, end_date
		FROM roster
		WHERE id = $1
	`, rosterID).Scan(&r.ID, &r.Name, &start, &end)
	if err != nil {
		return nil, fmt.Errorf("failed to get roster %s: %w", rosterID, err)
	}
	r.StartDate = start.Format("2006-01-02")
	r.EndDate = end.Format("2006-01-02")
	return &r, nil
}

// InsertRoster inserts a new roster record
func (d *DB) InsertRoster(ctx context.Context, roster *db.Roster) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO roster (id, name, start_date, end_date)
		VALUES ($1, $2, $3, $4)
	`, roster.ID, roster.Name, roster.StartDate, roster.EndDate)
	if err != nil {
		return fmt.Errorf("failed to insert roster: %w", err)
	}
	return nil
}

// DeleteRoster removes a roster record as a whole. Owned shifts, enrollments
// and assignments go with it via ON DELETE CASCADE; there is no soft delete.
func (d *DB) DeleteRoster(ctx context.Context, rosterID string) error {
	_, err := d.pool.Exec(ctx, `DELETE FROM roster WHERE id = $1`, rosterID)
	if err != nil {
		return fmt.Errorf("failed to delete roster %s: %w", rosterID, err)
	}
	return nil
}

// GetShifts retrieves the roster's shift definitions
func (d *DB) GetShifts(ctx context.Context, rosterID string) ([]db.Shift, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, roster_id, name, start_time, end_time
		FROM shift
		WHERE roster_id = $1
		ORDER BY start_time
	`, rosterID)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []db.Shift
	for rows.Next() {
		var s db.Shift
		if err := rows.Scan(&s.ID, &s.RosterID, &s.Name, &s.StartTime, &s.EndTime); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shifts: %w", err)
	}

	return shifts, nil
}

// InsertShift inserts a shift definition into a roster
func (d *DB) InsertShift(ctx context.Context, shift *db.Shift) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO shift (id, roster_id, name, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5)
	`, shift.ID, shift.RosterID, shift.Name, shift.StartTime, shift.EndTime)
	if err != nil {
		return fmt.Errorf("failed to insert shift: %w", err)
	}
	return nil
}

// GetRosterOfficers retrieves the roster-scoped officer snapshot
func (d *DB) GetRosterOfficers(ctx context.Context, rosterID string) ([]db.Officer, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT o.id, o.badge_number, o.first_name, o.last_name, o.rank, o.status, o.email, o.phone
		FROM officer o
		JOIN roster_officer ro ON ro.officer_id = o.id
		WHERE ro.roster_id = $1
		ORDER BY o.last_name, o.first_name
	`, rosterID)
	if err != nil {
		return nil, fmt.Errorf("failed to query roster officers: %w", err)
	}
	defer rows.Close()

	var officers []db.Officer
	for rows.Next() {
		var o db.Officer
		if err := rows.Scan(&o.ID, &o.BadgeNumber, &o.FirstName, &o.LastName, &o.Rank, &o.Status, &o.Email, &o.Phone); err != nil {
			return nil, fmt.Errorf("failed to scan roster officer: %w", err)
		}
		officers = append(officers, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating roster officers: %w", err)
	}

	return officers, nil
}

// EnrollOfficer adds an officer to the roster's snapshot
func (d *DB) EnrollOfficer(ctx context.Context, rosterID, officerID string) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO roster_officer (roster_id, officer_id)
		VALUES ($1, $2)
	`, rosterID, officerID)
	if err != nil {
		return fmt.Errorf("failed to enroll officer %s in roster %s: %w", officerID, rosterID, err)
	}
	return nil
}
