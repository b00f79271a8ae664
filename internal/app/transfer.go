package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/Clawdbot7-epcnum/CarryVault/internal/export"
)

// ExportBackup writes a full backup document into dir and returns the path.
// The filename carries the current calendar date.
func (s *Session) ExportBackup(dir string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	path := filepath.Join(dir, export.Filename(export.FilenameBackup, now))
	if err := export.WriteDocument(path, export.Backup(s.snapshot, now)); err != nil {
		return "", fmt.Errorf("export backup: %w", err)
	}
	s.logger.Debug("backup exported", "path", path)
	return path, nil
}

// ExportInventory writes the inventory report into dir and returns the path.
func (s *Session) ExportInventory(dir string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	path := filepath.Join(dir, export.Filename(export.FilenameInventory, now))
	if err := export.WriteDocument(path, export.Inventory(s.snapshot, now)); err != nil {
		return "", fmt.Errorf("export inventory: %w", err)
	}
	s.logger.Debug("inventory exported", "path", path)
	return path, nil
}

// ExportTheftReport writes the theft-report template into dir and returns
// the path.
func (s *Session) ExportTheftReport(dir string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	path := filepath.Join(dir, export.Filename(export.FilenameTheft, now))
	if err := export.WriteDocument(path, export.Theft(s.snapshot, now)); err != nil {
		return "", fmt.Errorf("export theft report: %w", err)
	}
	s.logger.Debug("theft report exported", "path", path)
	return path, nil
}

// ImportBackup replaces the entire dataset with the contents of a backup
// file. Record ids from the backup are preserved, so weak firearm
// references stay intact. The audit log keeps the history of this
// database, not the backup's.
func (s *Session) ImportBackup(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := export.ReadBackup(path)
	if err != nil {
		return fmt.Errorf("import backup: %w", err)
	}
	snap := doc.Snapshot()

	if s.store != nil {
		if err := s.store.RestoreSnapshot(ctx, snap); err != nil {
			return fmt.Errorf("import backup: %w", err)
		}
	}

	s.snapshot = snap
	s.seedMemoryIDs()
	s.refreshDerived()
	s.logger.Info("backup imported",
		"path", path,
		"firearms", len(snap.Firearms),
		"permits", len(snap.Permits))
	return nil
}
