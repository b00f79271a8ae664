package app

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Clawdbot7-epcnum/CarryVault/internal/alerts"
	"github.com/Clawdbot7-epcnum/CarryVault/internal/model"
	"github.com/Clawdbot7-epcnum/CarryVault/internal/testutil"
)

var sessionNow = time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// openTestSession opens a store-backed session on a fresh database.
func openTestSession(t *testing.T) (*Session, *testutil.FixedClock) {
	t.Helper()
	return openSessionAt(t, filepath.Join(t.TempDir(), "carryvault.db"))
}

func openSessionAt(t *testing.T, path string) (*Session, *testutil.FixedClock) {
	t.Helper()

	clock := testutil.NewFixedClock(sessionNow)
	s, err := Open(context.Background(), path, testLogger(), clock.Now)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, clock
}

// openDegradedSession forces a store failure by pointing at a path whose
// parent directory does not exist.
func openDegradedSession(t *testing.T) *Session {
	t.Helper()

	path := filepath.Join(t.TempDir(), "missing", "nested", "carryvault.db")
	clock := testutil.NewFixedClock(sessionNow)
	s, err := Open(context.Background(), path, testLogger(), clock.Now)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// permitExpiring builds a permit expiring the given number of days from the
// session clock.
func permitExpiring(permitType string, days int) model.Permit {
	return model.Permit{
		Type:           permitType,
		ExpirationDate: sessionNow.AddDate(0, 0, days).Format(model.DateFormat),
	}
}

func TestOpen_FreshDatabase(t *testing.T) {
	s, _ := openTestSession(t)

	assert.False(t, s.Degraded())
	assert.Equal(t, Dashboard{}, s.Dashboard())
	assert.Equal(t, model.EmptySnapshot(), s.Snapshot())
	assert.Equal(t, model.DefaultSettings(), s.Settings())
	assert.Empty(t, s.Alerts())
}

func TestOpen_StorageUnavailableDegradesToMemory(t *testing.T) {
	s := openDegradedSession(t)

	assert.True(t, s.Degraded())
	assert.Equal(t, model.EmptySnapshot(), s.Snapshot())

	// Mutations still work; they just do not survive the session.
	f, err := s.AddFirearm(context.Background(), model.Firearm{MakeModel: "Glock 19"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), f.ID)
	assert.Equal(t, 1, s.Dashboard().Firearms)
}

func TestOpen_LoadsExistingRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carryvault.db")

	s1, _ := openSessionAt(t, path)
	_, err := s1.AddFirearm(context.Background(), model.Firearm{MakeModel: "Glock 19"})
	require.NoError(t, err)
	_, err = s1.AddPermit(context.Background(), permitExpiring("Concealed Carry", 10))
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, _ := openSessionAt(t, path)
	assert.Equal(t, 1, s2.Dashboard().Firearms)
	assert.Equal(t, 1, s2.Dashboard().Alerts)
	require.Len(t, s2.Snapshot().Firearms, 1)
	assert.Equal(t, "Glock 19", s2.Snapshot().Firearms[0].MakeModel)
}

func TestDashboard_AlertCount(t *testing.T) {
	s, _ := openTestSession(t)
	ctx := context.Background()

	// 10 and 60 days out count; 120 days is outside the renewal window.
	for _, days := range []int{10, 60, 120} {
		_, err := s.AddPermit(ctx, permitExpiring("Permit", days))
		require.NoError(t, err)
	}

	assert.Equal(t, 2, s.Dashboard().Alerts)
	assert.Len(t, s.Alerts(), 2)
}

func TestAlerts_RefreshOnPermitMutation(t *testing.T) {
	s, _ := openTestSession(t)
	ctx := context.Background()

	p, err := s.AddPermit(ctx, permitExpiring("Concealed Carry", 10))
	require.NoError(t, err)
	require.Len(t, s.Alerts(), 1)
	assert.Equal(t, alerts.PriorityHigh, s.Alerts()[0].Priority)

	// Renewing pushes the expiry out of both windows.
	p.ExpirationDate = sessionNow.AddDate(0, 0, 365).Format(model.DateFormat)
	_, err = s.UpdatePermit(ctx, p.ID, p)
	require.NoError(t, err)
	assert.Empty(t, s.Alerts())
	assert.Equal(t, 0, s.Dashboard().Alerts)
}

func TestAlerts_DisabledByNotificationToggle(t *testing.T) {
	s, _ := openTestSession(t)
	ctx := context.Background()

	_, err := s.AddPermit(ctx, permitExpiring("Concealed Carry", 10))
	require.NoError(t, err)
	require.Len(t, s.Alerts(), 1)

	settings := s.Settings()
	settings.Notifications.PermitAlerts = false
	require.NoError(t, s.SaveSettings(ctx, settings))

	assert.Empty(t, s.Alerts())
	assert.Equal(t, 0, s.Dashboard().Alerts)

	// Re-enabling restores the alert without touching the permit.
	settings.Notifications.PermitAlerts = true
	require.NoError(t, s.SaveSettings(ctx, settings))
	assert.Len(t, s.Alerts(), 1)
}

func TestSaveSettings_PersistsAcrossSessions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carryvault.db")

	s1, _ := openSessionAt(t, path)
	settings := s1.Settings()
	settings.UserState = "  TX  "
	require.NoError(t, s1.SaveSettings(context.Background(), settings))
	assert.Equal(t, "TX", s1.Settings().UserState, "jurisdiction is trimmed")
	require.NoError(t, s1.Close())

	s2, _ := openSessionAt(t, path)
	assert.Equal(t, "TX", s2.Settings().UserState)
}

func TestAuditLog_RecordsMutations(t *testing.T) {
	s, _ := openTestSession(t)
	ctx := context.Background()

	f, err := s.AddFirearm(ctx, model.Firearm{MakeModel: "Glock 19"})
	require.NoError(t, err)
	f.Notes = "Gen 5"
	_, err = s.UpdateFirearm(ctx, f.ID, f)
	require.NoError(t, err)
	require.NoError(t, s.DeleteFirearm(ctx, f.ID))

	entries, err := s.AuditLog(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.Equal(t, EntityFirearm, e.Entity)
		assert.Equal(t, f.ID, e.RecordID)
	}
}

func TestAuditLog_EmptyWhenDegraded(t *testing.T) {
	s := openDegradedSession(t)

	_, err := s.AddFirearm(context.Background(), model.Firearm{MakeModel: "Glock 19"})
	require.NoError(t, err)

	entries, err := s.AuditLog(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
