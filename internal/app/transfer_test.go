package app

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Clawdbot7-epcnum/CarryVault/internal/export"
	"github.com/Clawdbot7-epcnum/CarryVault/internal/model"
)

func populateSession(t *testing.T, s *Session) model.Snapshot {
	t.Helper()
	ctx := context.Background()

	f, err := s.AddFirearm(ctx, model.Firearm{
		MakeModel: "Glock 19",
		Serial:    "BKW1234",
		Price:     549.99,
	})
	require.NoError(t, err)

	_, err = s.AddMaintenanceEvent(ctx, model.MaintenanceEvent{
		Type:             "Cleaning",
		FirearmID:        &f.ID,
		FirearmMakeModel: f.MakeModel,
	})
	require.NoError(t, err)

	_, err = s.AddTrainingEvent(ctx, model.TrainingEvent{
		Type:     "Range Session",
		Duration: 1.5,
	})
	require.NoError(t, err)

	_, err = s.AddPermit(ctx, model.Permit{
		Type:           "Concealed Carry",
		State:          "TX",
		ExpirationDate: "2027-04-01",
	})
	require.NoError(t, err)

	return s.Snapshot()
}

func TestExportBackup_WritesDatedFile(t *testing.T) {
	s, _ := openTestSession(t)
	populateSession(t, s)

	dir := t.TempDir()
	path, err := s.ExportBackup(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "carryvault-backup-2026-08-24.json"), path)

	doc, err := export.ReadBackup(path)
	require.NoError(t, err)
	assert.Equal(t, s.Snapshot(), doc.Snapshot())
	assert.Equal(t, "2026-08-24T12:00:00Z", doc.ExportDate)
}

func TestExportInventory_WritesReport(t *testing.T) {
	s, _ := openTestSession(t)
	populateSession(t, s)

	dir := t.TempDir()
	path, err := s.ExportInventory(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "inventory-report-2026-08-24.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var report export.InventoryReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, export.TypeInventory, report.Type)
	require.Len(t, report.Firearms, 1)
	assert.Equal(t, "Glock 19", report.Firearms[0].MakeModel)
}

func TestExportTheftReport_WritesTemplate(t *testing.T) {
	s, _ := openTestSession(t)
	populateSession(t, s)

	dir := t.TempDir()
	path, err := s.ExportTheftReport(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "theft-report-2026-08-24.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var report export.TheftReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, export.TypeTheftReport, report.Type)
	assert.Equal(t, export.PlaceholderFillIn, report.Owner.Name)
}

func TestImportBackup_RoundTrip(t *testing.T) {
	src, _ := openTestSession(t)
	want := populateSession(t, src)

	dir := t.TempDir()
	path, err := src.ExportBackup(dir)
	require.NoError(t, err)

	dst, _ := openTestSession(t)
	require.NoError(t, dst.ImportBackup(context.Background(), path))

	assert.Equal(t, want, dst.Snapshot())
	assert.Equal(t, src.Dashboard(), dst.Dashboard())
}

func TestImportBackup_ReplacesExistingData(t *testing.T) {
	src, _ := openTestSession(t)
	populateSession(t, src)

	dir := t.TempDir()
	path, err := src.ExportBackup(dir)
	require.NoError(t, err)

	dst, _ := openTestSession(t)
	_, err = dst.AddFirearm(context.Background(), model.Firearm{MakeModel: "Remington 870"})
	require.NoError(t, err)

	require.NoError(t, dst.ImportBackup(context.Background(), path))

	snap := dst.Snapshot()
	require.Len(t, snap.Firearms, 1)
	assert.Equal(t, "Glock 19", snap.Firearms[0].MakeModel)
}

func TestImportBackup_PersistsAcrossSessions(t *testing.T) {
	src, _ := openTestSession(t)
	want := populateSession(t, src)

	dir := t.TempDir()
	backupPath, err := src.ExportBackup(dir)
	require.NoError(t, err)

	dbPath := filepath.Join(t.TempDir(), "restored.db")
	s1, _ := openSessionAt(t, dbPath)
	require.NoError(t, s1.ImportBackup(context.Background(), backupPath))
	require.NoError(t, s1.Close())

	s2, _ := openSessionAt(t, dbPath)
	assert.Equal(t, want, s2.Snapshot())
}

func TestImportBackup_NewIDsContinuePastRestored(t *testing.T) {
	src, _ := openTestSession(t)
	populateSession(t, src)

	dir := t.TempDir()
	path, err := src.ExportBackup(dir)
	require.NoError(t, err)

	dst := openDegradedSession(t)
	require.NoError(t, dst.ImportBackup(context.Background(), path))

	f, err := dst.AddFirearm(context.Background(), model.Firearm{MakeModel: "Remington 870"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), f.ID, "memory ids continue past the restored maximum")
}

func TestImportBackup_MissingFile(t *testing.T) {
	s, _ := openTestSession(t)

	err := s.ImportBackup(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Empty(t, s.Snapshot().Firearms, "failed import leaves the dataset untouched")
}
