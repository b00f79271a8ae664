package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAudit_AndList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	entries := []AuditEntry{
		{ID: uuid.Must(uuid.NewV7()).String(), Entity: "firearm", Action: AuditActionAdd, RecordID: 1, At: "2026-01-01T10:00:00Z"},
		{ID: uuid.Must(uuid.NewV7()).String(), Entity: "firearm", Action: AuditActionUpdate, RecordID: 1, At: "2026-01-02T10:00:00Z"},
		{ID: uuid.Must(uuid.NewV7()).String(), Entity: "permit", Action: AuditActionDelete, RecordID: 7, At: "2026-01-03T10:00:00Z"},
	}
	for _, e := range entries {
		require.NoError(t, s.AppendAudit(ctx, e))
	}

	got, err := s.ListAudit(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Most recent first
	assert.Equal(t, "permit", got[0].Entity)
	assert.Equal(t, AuditActionDelete, got[0].Action)
	assert.Equal(t, int64(7), got[0].RecordID)
}

func TestAppendAudit_Idempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	e := AuditEntry{
		ID:       uuid.Must(uuid.NewV7()).String(),
		Entity:   "firearm",
		Action:   AuditActionAdd,
		RecordID: 1,
		At:       "2026-01-01T10:00:00Z",
	}
	require.NoError(t, s.AppendAudit(ctx, e))
	require.NoError(t, s.AppendAudit(ctx, e))

	got, err := s.ListAudit(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestListAudit_Limit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.AppendAudit(ctx, AuditEntry{
			ID:       uuid.Must(uuid.NewV7()).String(),
			Entity:   "training",
			Action:   AuditActionAdd,
			RecordID: int64(i + 1),
			At:       "2026-01-01T10:00:00Z",
		}))
	}

	got, err := s.ListAudit(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestListAudit_Empty(t *testing.T) {
	s := openTestStore(t)

	got, err := s.ListAudit(context.Background(), 0)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
