package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/mworkman/precinct-roster/pkg/db"
)

// GetAssignments retrieves all assignment records for a roster
func (d *DB) GetAssignments(ctx context.Context, rosterID string) ([]db.Assignment, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, roster_id, shift_id, officer_id, date, position
		FROM assignment
		WHERE roster_id = $1
		ORDER BY date
	`, rosterID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// GetOfficerAssignments retrieves one officer's assignment records for a
// roster, backed by the (roster_id, officer_id, date) index.
func (d *DB) GetOfficerAssignments(ctx context.Context, rosterID, officerID string) ([]db.Assignment, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, roster_id, shift_id, officer_id, date, position
		FROM assignment
		WHERE roster_id = $1 AND officer_id = $2
		ORDER BY date
	`, rosterID, officerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query officer assignments: %w", err)
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// InsertAssignment inserts a validated assignment record. The unique
// (roster_id, officer_id, date) constraint is the last line of defence
// against a stale validation snapshot.
func (d *DB) InsertAssignment(ctx context.Context, assignment *db.Assignment) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO assignment (id, roster_id, shift_id, officer_id, date, position)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, assignment.ID, assignment.RosterID, assignment.ShiftID, assignment.OfficerID, assignment.Date, assignment.Position)
	if err != nil {
		return fmt.Errorf("failed to insert assignment: %w", err)
	}
	return nil
}

// DeleteAssignment removes an officer's assignment on a date
func (d *DB) DeleteAssignment(ctx context.Context, rosterID, officerID, date string) error {
	_, err := d.pool.Exec(ctx, `
		DELETE FROM assignment
		WHERE roster_id = $1 AND officer_id = $2 AND date = $3
	`, rosterID, officerID, date)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	return nil
}

type pgxRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanAssignments(rows pgxRows) ([]db.Assignment, error) {
	var assignments []db.Assignment
	for rows.Next() {
		var a db.Assignment
		var date time.Time
		if err := rows.Scan(&a.ID, &a.RosterID, &a.ShiftID, &a.OfficerID, &date, &a.Position); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		a.Date = date.Format("2006-01-02")
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}

	return assignments, nil
}
