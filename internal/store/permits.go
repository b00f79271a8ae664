package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Clawdbot7-epcnum/CarryVault/internal/model"
)

// AddPermit inserts a permit and returns its assigned id.
func (s *Store) AddPermit(ctx context.Context, p model.Permit) (int64, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO permits
		(type, state, issue_date, expiration_date, permit_number, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		p.Type,
		p.State,
		p.IssueDate,
		p.ExpirationDate,
		p.PermitNumber,
		p.Notes,
		p.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("add permit: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add permit: last insert id: %w", err)
	}
	return id, nil
}

// ListPermits returns all permits ordered by id.
// Returns an empty slice (not nil) for an empty collection.
func (s *Store) ListPermits(ctx context.Context) ([]model.Permit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, type, state, issue_date, expiration_date, permit_number, notes, created_at
		FROM permits
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query permits: %w", err)
	}
	defer rows.Close()

	var permits []model.Permit
	for rows.Next() {
		p, err := scanPermit(rows)
		if err != nil {
			return nil, err
		}
		permits = append(permits, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate permits: %w", err)
	}

	if permits == nil {
		permits = []model.Permit{}
	}

	return permits, nil
}

// UpdatePermit replaces the mutable fields of the permit with the given id.
// Returns ErrNotFound if no permit with that id exists.
func (s *Store) UpdatePermit(ctx context.Context, id int64, p model.Permit) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE permits
		SET type = ?, state = ?, issue_date = ?, expiration_date = ?,
		    permit_number = ?, notes = ?
		WHERE id = ?
	`,
		p.Type,
		p.State,
		p.IssueDate,
		p.ExpirationDate,
		p.PermitNumber,
		p.Notes,
		id,
	)
	if err != nil {
		return fmt.Errorf("update permit: %w", err)
	}
	return requireRow(result, "update permit")
}

// DeletePermit removes the permit with the given id.
// Returns ErrNotFound if no permit with that id exists.
func (s *Store) DeletePermit(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM permits WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete permit: %w", err)
	}
	return requireRow(result, "delete permit")
}

// scanPermit scans a row into a Permit struct.
func scanPermit(rows *sql.Rows) (model.Permit, error) {
	var p model.Permit
	if err := rows.Scan(
		&p.ID, &p.Type, &p.State, &p.IssueDate, &p.ExpirationDate,
		&p.PermitNumber, &p.Notes, &p.CreatedAt,
	); err != nil {
		return model.Permit{}, fmt.Errorf("scan permit: %w", err)
	}
	return p, nil
}
