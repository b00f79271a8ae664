package store

import (
	"context"
	"fmt"
)

// AuditEntry records a single mutation against a collection.
// The id is a UUIDv7 assigned by the caller, so entries sort by creation
// time even across database restores.
type AuditEntry struct {
	ID       string `json:"id"`
	Entity   string `json:"entity"`
	Action   string `json:"action"`
	RecordID int64  `json:"recordId"`
	At       string `json:"at"`
}

// Audit action labels.
const (
	AuditActionAdd    = "add"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
)

// AppendAudit inserts an audit log entry.
// Uses ON CONFLICT(id) DO NOTHING so a retried append is harmless.
func (s *Store) AppendAudit(ctx context.Context, e AuditEntry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO audit_log (id, entity, action, record_id, at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		e.ID,
		e.Entity,
		e.Action,
		e.RecordID,
		e.At,
	)
	if err != nil {
		return fmt.Errorf("append audit: %w", err)
	}
	return nil
}

// ListAudit returns up to limit audit entries, most recent first.
// A non-positive limit returns all entries.
func (s *Store) ListAudit(ctx context.Context, limit int) ([]AuditEntry, error) {
	query := `
		SELECT id, entity, action, record_id, at
		FROM audit_log
		ORDER BY at DESC, id DESC
	`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query audit log: %w", err)
	}
	defer rows.Close()

	var entries []AuditEntry
	for rows.Next() {
		var e AuditEntry
		if err := rows.Scan(&e.ID, &e.Entity, &e.Action, &e.RecordID, &e.At); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit log: %w", err)
	}

	if entries == nil {
		entries = []AuditEntry{}
	}

	return entries, nil
}
