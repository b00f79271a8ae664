package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Clawdbot7-epcnum/CarryVault/internal/model"
)

// AddTrainingEvent inserts a training event and returns its assigned id.
func (s *Store) AddTrainingEvent(ctx context.Context, t model.TrainingEvent) (int64, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO training_events
		(type, date, duration, firearm_id, notes, score, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		t.Type,
		t.Date,
		t.Duration,
		nullableID(t.FirearmID),
		t.Notes,
		t.Score,
		t.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("add training event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add training event: last insert id: %w", err)
	}
	return id, nil
}

// ListTrainingEvents returns all training events ordered by id.
// Returns an empty slice (not nil) for an empty collection.
func (s *Store) ListTrainingEvents(ctx context.Context) ([]model.TrainingEvent, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, type, date, duration, firearm_id, notes, score, created_at
		FROM training_events
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query training events: %w", err)
	}
	defer rows.Close()

	var events []model.TrainingEvent
	for rows.Next() {
		var t model.TrainingEvent
		var firearmID sql.NullInt64
		if err := rows.Scan(
			&t.ID, &t.Type, &t.Date, &t.Duration, &firearmID,
			&t.Notes, &t.Score, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan training event: %w", err)
		}
		if firearmID.Valid {
			t.FirearmID = &firearmID.Int64
		}
		events = append(events, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate training events: %w", err)
	}

	if events == nil {
		events = []model.TrainingEvent{}
	}

	return events, nil
}

// UpdateTrainingEvent replaces the mutable fields of the event with the
// given id. Returns ErrNotFound if no event with that id exists.
func (s *Store) UpdateTrainingEvent(ctx context.Context, id int64, t model.TrainingEvent) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE training_events
		SET type = ?, date = ?, duration = ?, firearm_id = ?, notes = ?, score = ?
		WHERE id = ?
	`,
		t.Type,
		t.Date,
		t.Duration,
		nullableID(t.FirearmID),
		t.Notes,
		t.Score,
		id,
	)
	if err != nil {
		return fmt.Errorf("update training event: %w", err)
	}
	return requireRow(result, "update training event")
}

// DeleteTrainingEvent removes the event with the given id.
// Returns ErrNotFound if no event with that id exists.
func (s *Store) DeleteTrainingEvent(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM training_events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete training event: %w", err)
	}
	return requireRow(result, "delete training event")
}
