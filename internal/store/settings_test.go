package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Clawdbot7-epcnum/CarryVault/internal/model"
)

func TestLoadSettings_DefaultsWhenNoRow(t *testing.T) {
	s := openTestStore(t)

	settings, err := s.LoadSettings(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "", settings.UserState)
	assert.True(t, settings.Notifications.PermitAlerts)
	assert.True(t, settings.Notifications.MaintenanceAlerts)
	assert.True(t, settings.Notifications.TrainingAlerts)
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	want := model.Settings{
		UserState: "TX",
		Notifications: model.NotificationSettings{
			PermitAlerts:      true,
			MaintenanceAlerts: false,
			TrainingAlerts:    false,
		},
	}
	require.NoError(t, s.SaveSettings(ctx, want))

	got, err := s.LoadSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveSettings_UpsertKeepsSingleRow(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSettings(ctx, model.Settings{UserState: "TX"}))
	require.NoError(t, s.SaveSettings(ctx, model.Settings{UserState: "AZ"}))

	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM settings").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := s.LoadSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "AZ", got.UserState)
}
