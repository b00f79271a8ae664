package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Clawdbot7-epcnum/CarryVault/internal/alerts"
	"github.com/Clawdbot7-epcnum/CarryVault/internal/model"
	"github.com/Clawdbot7-epcnum/CarryVault/internal/store"
)

// Dashboard holds the per-collection record counts plus the count of
// permits expiring within the renewal window.
type Dashboard struct {
	Firearms    int `json:"firearms"`
	Maintenance int `json:"maintenance"`
	Training    int `json:"training"`
	Alerts      int `json:"alerts"`
}

// Session is the application facade. It owns the live snapshot and the
// derived state, and serializes all access through a mutex. Usage is
// one-operation-at-a-time in practice; the mutex makes that an invariant
// rather than an assumption.
type Session struct {
	mu     sync.Mutex
	store  *store.Store // nil when degraded to memory-only
	logger *slog.Logger
	now    func() time.Time

	snapshot  model.Snapshot
	dashboard Dashboard
	alertList []alerts.Alert

	// Memory-only id counters, one per collection. Ids are never reused
	// after a delete, so a running counter rather than max+1 per insert.
	nextFirearmID     int64
	nextMaintenanceID int64
	nextTrainingID    int64
	nextPermitID      int64
}

// Open creates a session backed by the SQLite database at path.
//
// If the store cannot be initialized the session logs the condition and
// continues memory-only with an empty dataset; every other error surfaces
// to the caller. A nil logger falls back to slog.Default; a nil clock to
// time.Now.
func Open(ctx context.Context, path string, logger *slog.Logger, now func() time.Time) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if now == nil {
		now = time.Now
	}

	s := &Session{
		logger:   logger,
		now:      now,
		snapshot: model.EmptySnapshot(),
	}
	s.seedMemoryIDs()

	st, err := store.Open(path)
	if err != nil {
		logger.Warn("storage unavailable, continuing memory-only",
			"path", path, "error", err)
		s.refreshDerived()
		return s, nil
	}
	s.store = st

	if err := s.loadSnapshot(ctx); err != nil {
		st.Close()
		return nil, err
	}
	s.refreshDerived()

	logger.Debug("session opened",
		"path", path,
		"firearms", s.dashboard.Firearms,
		"permits", len(s.snapshot.Permits))
	return s, nil
}

// Close releases the underlying store. Safe on a degraded session.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}

// Degraded reports whether the session is running without durable storage.
func (s *Session) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store == nil
}

// Snapshot returns the current in-memory dataset.
func (s *Session) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

// Dashboard returns the current derived counts.
func (s *Session) Dashboard() Dashboard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dashboard
}

// Alerts returns the current permit-expiry alert list.
func (s *Session) Alerts() []alerts.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alertList
}

// Settings returns the current user settings.
func (s *Session) Settings() model.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot.Settings
}

// SaveSettings persists updated settings and refreshes derived state
// (the permit-alerts toggle affects the alert list).
func (s *Session) SaveSettings(ctx context.Context, settings model.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings.UserState = model.NormalizeText(settings.UserState)
	if s.store != nil {
		if err := s.store.SaveSettings(ctx, settings); err != nil {
			return err
		}
	}
	s.snapshot.Settings = settings
	s.refreshDerived()
	return nil
}

// AuditLog returns up to limit audit entries, most recent first.
// A degraded session has no audit history.
func (s *Session) AuditLog(ctx context.Context, limit int) ([]store.AuditEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store == nil {
		return []store.AuditEntry{}, nil
	}
	return s.store.ListAudit(ctx, limit)
}

// loadSnapshot reads all five collections from the store.
func (s *Session) loadSnapshot(ctx context.Context) error {
	var err error
	if s.snapshot.Firearms, err = s.store.ListFirearms(ctx); err != nil {
		return err
	}
	if s.snapshot.Maintenance, err = s.store.ListMaintenanceEvents(ctx); err != nil {
		return err
	}
	if s.snapshot.Training, err = s.store.ListTrainingEvents(ctx); err != nil {
		return err
	}
	if s.snapshot.Permits, err = s.store.ListPermits(ctx); err != nil {
		return err
	}
	if s.snapshot.Settings, err = s.store.LoadSettings(ctx); err != nil {
		return err
	}
	return nil
}

// refreshDerived recomputes the dashboard and the alert list from the
// snapshot. Called under the session mutex after every mutation.
// The permit-alerts toggle silences the alert surface without touching
// the underlying permit records.
func (s *Session) refreshDerived() {
	if s.snapshot.Settings.Notifications.PermitAlerts {
		s.alertList = alerts.ForPermits(s.snapshot.Permits, s.now())
	} else {
		s.alertList = []alerts.Alert{}
	}
	s.dashboard = Dashboard{
		Firearms:    len(s.snapshot.Firearms),
		Maintenance: len(s.snapshot.Maintenance),
		Training:    len(s.snapshot.Training),
		Alerts:      len(s.alertList),
	}
}

// seedMemoryIDs initializes the memory-only id counters past every id in
// the snapshot. No-op for store-backed sessions, which delegate id
// assignment to SQLite.
func (s *Session) seedMemoryIDs() {
	s.nextFirearmID = 1
	for _, f := range s.snapshot.Firearms {
		if f.ID >= s.nextFirearmID {
			s.nextFirearmID = f.ID + 1
		}
	}
	s.nextMaintenanceID = 1
	for _, m := range s.snapshot.Maintenance {
		if m.ID >= s.nextMaintenanceID {
			s.nextMaintenanceID = m.ID + 1
		}
	}
	s.nextTrainingID = 1
	for _, t := range s.snapshot.Training {
		if t.ID >= s.nextTrainingID {
			s.nextTrainingID = t.ID + 1
		}
	}
	s.nextPermitID = 1
	for _, p := range s.snapshot.Permits {
		if p.ID >= s.nextPermitID {
			s.nextPermitID = p.ID + 1
		}
	}
}

// timestamp formats the session clock for creation and audit timestamps.
func (s *Session) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

// appendAudit records a mutation in the audit log. Audit bookkeeping never
// fails a mutation that already committed; failures are logged.
func (s *Session) appendAudit(ctx context.Context, entity, action string, recordID int64) {
	if s.store == nil {
		return
	}
	entry := store.AuditEntry{
		ID:       uuid.Must(uuid.NewV7()).String(),
		Entity:   entity,
		Action:   action,
		RecordID: recordID,
		At:       s.timestamp(),
	}
	if err := s.store.AppendAudit(ctx, entry); err != nil {
		s.logger.Warn("audit append failed",
			"entity", entity, "action", action, "record_id", recordID, "error", err)
	}
}
