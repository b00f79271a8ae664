package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Clawdbot7-epcnum/CarryVault/internal/model"
)

// AddMaintenanceEvent inserts a maintenance event and returns its assigned id.
// The firearm reference is stored as-is; it is never checked against the
// firearms collection.
func (s *Store) AddMaintenanceEvent(ctx context.Context, m model.MaintenanceEvent) (int64, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO maintenance_events
		(type, date, firearm_id, firearm_make_model, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		m.Type,
		m.Date,
		nullableID(m.FirearmID),
		m.FirearmMakeModel,
		m.Notes,
		m.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("add maintenance event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add maintenance event: last insert id: %w", err)
	}
	return id, nil
}

// ListMaintenanceEvents returns all maintenance events ordered by id.
// Returns an empty slice (not nil) for an empty collection.
func (s *Store) ListMaintenanceEvents(ctx context.Context) ([]model.MaintenanceEvent, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, type, date, firearm_id, firearm_make_model, notes, created_at
		FROM maintenance_events
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query maintenance events: %w", err)
	}
	defer rows.Close()

	var events []model.MaintenanceEvent
	for rows.Next() {
		var m model.MaintenanceEvent
		var firearmID sql.NullInt64
		if err := rows.Scan(
			&m.ID, &m.Type, &m.Date, &firearmID,
			&m.FirearmMakeModel, &m.Notes, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan maintenance event: %w", err)
		}
		if firearmID.Valid {
			m.FirearmID = &firearmID.Int64
		}
		events = append(events, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate maintenance events: %w", err)
	}

	if events == nil {
		events = []model.MaintenanceEvent{}
	}

	return events, nil
}

// UpdateMaintenanceEvent replaces the mutable fields of the event with the
// given id. Returns ErrNotFound if no event with that id exists.
func (s *Store) UpdateMaintenanceEvent(ctx context.Context, id int64, m model.MaintenanceEvent) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE maintenance_events
		SET type = ?, date = ?, firearm_id = ?, firearm_make_model = ?, notes = ?
		WHERE id = ?
	`,
		m.Type,
		m.Date,
		nullableID(m.FirearmID),
		m.FirearmMakeModel,
		m.Notes,
		id,
	)
	if err != nil {
		return fmt.Errorf("update maintenance event: %w", err)
	}
	return requireRow(result, "update maintenance event")
}

// DeleteMaintenanceEvent removes the event with the given id.
// Returns ErrNotFound if no event with that id exists.
func (s *Store) DeleteMaintenanceEvent(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM maintenance_events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete maintenance event: %w", err)
	}
	return requireRow(result, "delete maintenance event")
}

// nullableID maps an optional weak reference to its SQL representation.
func nullableID(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}
