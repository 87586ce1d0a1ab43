package postgres

import (
	"context"
	"fmt"

	"github.com/mworkman/precinct-roster/pkg/db"
)

// GetOfficers retrieves all officer directory records
func (d *DB) GetOfficers(ctx context.Context) ([]db.Officer, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, badge_number, first_name, last_name, rank, status, email, phone
		FROM officer
		ORDER BY last_name, first_name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query officers: %w", err)
	}
	defer rows.Close()

	var officers []db.Officer
	for rows.Next() {
		var o db.Officer
		if err := rows.Scan(&o.ID, &o.BadgeNumber, &o.FirstName, &o.LastName, &o.Rank, &o.Status, &o.Email, &o.Phone); err != nil {
			return nil, fmt.Errorf("failed to scan officer: %w", err)
		}
		officers = append(officers, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating officers: %w", err)
	}

	return officers, nil
}

// GetOfficer retrieves a single officer record by id
func (d *DB) GetOfficer(ctx context.Context, officerID string) (*db.Officer, error) {
	var o db.Officer
	err := d.pool.QueryRow(ctx, `
		SELECT id, badge_number, first_name, last_name, rank, status, email, phone
		FROM officer
		WHERE id = $1
	`, officerID).Scan(&o.ID, &o.BadgeNumber, &o.FirstName, &o.LastName, &o.Rank, &o.Status, &o.Email, &o.Phone)
	if err != nil {
		return nil, fmt.Errorf("failed to get officer %s: %w", officerID, err)
	}
	return &o, nil
}

// InsertOfficer inserts a new officer directory record
func (d *DB) InsertOfficer(ctx context.Context, officer *db.Officer) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO officer (id, badge_number, first_name, last_name, rank, status, email, phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, officer.ID, officer.BadgeNumber, officer.FirstName, officer.LastName, officer.Rank, officer.Status, officer.Email, officer.Phone)
	if err != nil {
		return fmt.Errorf("failed to insert officer: %w", err)
	}
	return nil
}

// UpdateOfficerStatus sets an officer's status
func (d *DB) UpdateOfficerStatus(ctx context.Context, officerID, status string) error {
	_, err := d.pool.Exec(ctx, `
		UPDATE officer SET status = $2 WHERE id = $1
	`, officerID, status)
	if err != nil {
		return fmt.Errorf("failed to update officer %s status: %w", officerID, err)
	}
	return nil
}
