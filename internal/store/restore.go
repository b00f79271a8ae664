package store

import (
	"context"
	"fmt"

	"github.com/Clawdbot7-epcnum/CarryVault/internal/model"
)

// RestoreSnapshot replaces the four record collections and the settings row
// with the contents of a snapshot, in a single transaction. Record ids from
// the snapshot are preserved so weak firearm references keep pointing at
// the same records.
//
// The audit log is intentionally left untouched: it describes the history
// of this database, not of the backup being imported.
func (s *Store) RestoreSnapshot(ctx context.Context, snap model.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("restore snapshot: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	for _, table := range []string{"firearms", "maintenance_events", "training_events", "permits"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("restore snapshot: clear %s: %w", table, err)
		}
	}

	for _, f := range snap.Firearms {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO firearms
			(id, make_model, serial, caliber, type, purchase_date, price, notes, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			f.ID, f.MakeModel, f.Serial, f.Caliber, f.Type,
			f.PurchaseDate, f.Price, f.Notes, f.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("restore snapshot: firearm %d: %w", f.ID, err)
		}
	}

	for _, m := range snap.Maintenance {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO maintenance_events
			(id, type, date, firearm_id, firearm_make_model, notes, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`,
			m.ID, m.Type, m.Date, nullableID(m.FirearmID),
			m.FirearmMakeModel, m.Notes, m.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("restore snapshot: maintenance event %d: %w", m.ID, err)
		}
	}

	for _, t := range snap.Training {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO training_events
			(id, type, date, duration, firearm_id, notes, score, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`,
			t.ID, t.Type, t.Date, t.Duration, nullableID(t.FirearmID),
			t.Notes, t.Score, t.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("restore snapshot: training event %d: %w", t.ID, err)
		}
	}

	for _, p := range snap.Permits {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO permits
			(id, type, state, issue_date, expiration_date, permit_number, notes, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`,
			p.ID, p.Type, p.State, p.IssueDate, p.ExpirationDate,
			p.PermitNumber, p.Notes, p.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("restore snapshot: permit %d: %w", p.ID, err)
		}
	}

	value, err := settingsJSON(snap.Settings)
	if err != nil {
		return fmt.Errorf("restore snapshot: %w", err)
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO settings (key, value)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, SettingsKey, value)
	if err != nil {
		return fmt.Errorf("restore snapshot: settings: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("restore snapshot: commit: %w", err)
	}

	return nil
}
