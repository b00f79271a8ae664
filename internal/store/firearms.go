package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Clawdbot7-epcnum/CarryVault/internal/model"
)

// AddFirearm inserts a firearm and returns its assigned id.
// The id is unique within the collection for the store's lifetime.
func (s *Store) AddFirearm(ctx context.Context, f model.Firearm) (int64, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO firearms
		(make_model, serial, caliber, type, purchase_date, price, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		f.MakeModel,
		f.Serial,
		f.Caliber,
		f.Type,
		f.PurchaseDate,
		f.Price,
		f.Notes,
		f.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("add firearm: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add firearm: last insert id: %w", err)
	}
	return id, nil
}

// ListFirearms returns all firearms ordered by id.
// Returns an empty slice (not nil) for an empty collection.
func (s *Store) ListFirearms(ctx context.Context) ([]model.Firearm, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, make_model, serial, caliber, type, purchase_date, price, notes, created_at
		FROM firearms
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query firearms: %w", err)
	}
	defer rows.Close()

	var firearms []model.Firearm
	for rows.Next() {
		f, err := scanFirearm(rows)
		if err != nil {
			return nil, err
		}
		firearms = append(firearms, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate firearms: %w", err)
	}

	if firearms == nil {
		firearms = []model.Firearm{}
	}

	return firearms, nil
}

// UpdateFirearm replaces the mutable fields of the firearm with the given id.
// The creation timestamp is immutable and is not touched.
// Returns ErrNotFound if no firearm with that id exists.
func (s *Store) UpdateFirearm(ctx context.Context, id int64, f model.Firearm) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE firearms
		SET make_model = ?, serial = ?, caliber = ?, type = ?,
		    purchase_date = ?, price = ?, notes = ?
		WHERE id = ?
	`,
		f.MakeModel,
		f.Serial,
		f.Caliber,
		f.Type,
		f.PurchaseDate,
		f.Price,
		f.Notes,
		id,
	)
	if err != nil {
		return fmt.Errorf("update firearm: %w", err)
	}
	return requireRow(result, "update firearm")
}

// DeleteFirearm removes the firearm with the given id.
// Returns ErrNotFound if no firearm with that id exists.
func (s *Store) DeleteFirearm(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM firearms WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete firearm: %w", err)
	}
	return requireRow(result, "delete firearm")
}

// requireRow converts a zero-rows-affected result into ErrNotFound.
func requireRow(result sql.Result, op string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

// scanFirearm scans a row into a Firearm struct.
func scanFirearm(rows *sql.Rows) (model.Firearm, error) {
	var f model.Firearm
	if err := rows.Scan(
		&f.ID, &f.MakeModel, &f.Serial, &f.Caliber, &f.Type,
		&f.PurchaseDate, &f.Price, &f.Notes, &f.CreatedAt,
	); err != nil {
		return model.Firearm{}, fmt.Errorf("scan firearm: %w", err)
	}
	return f, nil
}
