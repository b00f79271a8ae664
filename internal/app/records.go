package app

import (
	"context"
	"fmt"

	"github.com/Clawdbot7-epcnum/CarryVault/internal/model"
	"github.com/Clawdbot7-epcnum/CarryVault/internal/store"
)

// Audit entity labels.
const (
	EntityFirearm     = "firearm"
	EntityMaintenance = "maintenance"
	EntityTraining    = "training"
	EntityPermit      = "permit"
)

// AddFirearm validates and stores a firearm, returning it with its assigned
// id and creation timestamp. Invalid input never reaches the store.
func (s *Session) AddFirearm(ctx context.Context, f model.Firearm) (model.Firearm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalizeFirearm(&f)
	f.CreatedAt = s.timestamp()
	if errs := f.Validate(); len(errs) > 0 {
		return model.Firearm{}, errs
	}

	if s.store != nil {
		id, err := s.store.AddFirearm(ctx, f)
		if err != nil {
			return model.Firearm{}, err
		}
		f.ID = id
	} else {
		f.ID = s.nextFirearmID
		s.nextFirearmID++
	}

	s.snapshot.Firearms = append(s.snapshot.Firearms, f)
	s.refreshDerived()
	s.appendAudit(ctx, EntityFirearm, store.AuditActionAdd, f.ID)
	return f, nil
}

// UpdateFirearm replaces the mutable fields of the firearm with the given
// id. The creation timestamp is preserved. Returns store.ErrNotFound when
// no such firearm exists.
func (s *Session) UpdateFirearm(ctx context.Context, id int64, f model.Firearm) (model.Firearm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := firearmIndex(s.snapshot.Firearms, id)
	if idx < 0 {
		return model.Firearm{}, fmt.Errorf("firearm %d: %w", id, store.ErrNotFound)
	}

	normalizeFirearm(&f)
	if errs := f.Validate(); len(errs) > 0 {
		return model.Firearm{}, errs
	}

	if s.store != nil {
		if err := s.store.UpdateFirearm(ctx, id, f); err != nil {
			return model.Firearm{}, err
		}
	}

	f.ID = id
	f.CreatedAt = s.snapshot.Firearms[idx].CreatedAt
	s.snapshot.Firearms[idx] = f
	s.refreshDerived()
	s.appendAudit(ctx, EntityFirearm, store.AuditActionUpdate, id)
	return f, nil
}

// DeleteFirearm removes the firearm with the given id. Maintenance and
// training references to it are left as-is; they are weak by design.
func (s *Session) DeleteFirearm(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := firearmIndex(s.snapshot.Firearms, id)
	if idx < 0 {
		return fmt.Errorf("firearm %d: %w", id, store.ErrNotFound)
	}

	if s.store != nil {
		if err := s.store.DeleteFirearm(ctx, id); err != nil {
			return err
		}
	}

	s.snapshot.Firearms = append(s.snapshot.Firearms[:idx], s.snapshot.Firearms[idx+1:]...)
	s.refreshDerived()
	s.appendAudit(ctx, EntityFirearm, store.AuditActionDelete, id)
	return nil
}

// AddMaintenanceEvent validates and stores a maintenance event.
func (s *Session) AddMaintenanceEvent(ctx context.Context, m model.MaintenanceEvent) (model.MaintenanceEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalizeMaintenance(&m)
	m.CreatedAt = s.timestamp()
	if errs := m.Validate(); len(errs) > 0 {
		return model.MaintenanceEvent{}, errs
	}

	if s.store != nil {
		id, err := s.store.AddMaintenanceEvent(ctx, m)
		if err != nil {
			return model.MaintenanceEvent{}, err
		}
		m.ID = id
	} else {
		m.ID = s.nextMaintenanceID
		s.nextMaintenanceID++
	}

	s.snapshot.Maintenance = append(s.snapshot.Maintenance, m)
	s.refreshDerived()
	s.appendAudit(ctx, EntityMaintenance, store.AuditActionAdd, m.ID)
	return m, nil
}

// UpdateMaintenanceEvent replaces the mutable fields of the event with the
// given id.
func (s *Session) UpdateMaintenanceEvent(ctx context.Context, id int64, m model.MaintenanceEvent) (model.MaintenanceEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := maintenanceIndex(s.snapshot.Maintenance, id)
	if idx < 0 {
		return model.MaintenanceEvent{}, fmt.Errorf("maintenance event %d: %w", id, store.ErrNotFound)
	}

	normalizeMaintenance(&m)
	if errs := m.Validate(); len(errs) > 0 {
		return model.MaintenanceEvent{}, errs
	}

	if s.store != nil {
		if err := s.store.UpdateMaintenanceEvent(ctx, id, m); err != nil {
			return model.MaintenanceEvent{}, err
		}
	}

	m.ID = id
	m.CreatedAt = s.snapshot.Maintenance[idx].CreatedAt
	s.snapshot.Maintenance[idx] = m
	s.refreshDerived()
	s.appendAudit(ctx, EntityMaintenance, store.AuditActionUpdate, id)
	return m, nil
}

// DeleteMaintenanceEvent removes the event with the given id.
func (s *Session) DeleteMaintenanceEvent(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := maintenanceIndex(s.snapshot.Maintenance, id)
	if idx < 0 {
		return fmt.Errorf("maintenance event %d: %w", id, store.ErrNotFound)
	}

	if s.store != nil {
		if err := s.store.DeleteMaintenanceEvent(ctx, id); err != nil {
			return err
		}
	}

	s.snapshot.Maintenance = append(s.snapshot.Maintenance[:idx], s.snapshot.Maintenance[idx+1:]...)
	s.refreshDerived()
	s.appendAudit(ctx, EntityMaintenance, store.AuditActionDelete, id)
	return nil
}

// AddTrainingEvent validates and stores a training event.
func (s *Session) AddTrainingEvent(ctx context.Context, t model.TrainingEvent) (model.TrainingEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalizeTraining(&t)
	t.CreatedAt = s.timestamp()
	if errs := t.Validate(); len(errs) > 0 {
		return model.TrainingEvent{}, errs
	}

	if s.store != nil {
		id, err := s.store.AddTrainingEvent(ctx, t)
		if err != nil {
			return model.TrainingEvent{}, err
		}
		t.ID = id
	} else {
		t.ID = s.nextTrainingID
		s.nextTrainingID++
	}

	s.snapshot.Training = append(s.snapshot.Training, t)
	s.refreshDerived()
	s.appendAudit(ctx, EntityTraining, store.AuditActionAdd, t.ID)
	return t, nil
}

// UpdateTrainingEvent replaces the mutable fields of the event with the
// given id.
func (s *Session) UpdateTrainingEvent(ctx context.Context, id int64, t model.TrainingEvent) (model.TrainingEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := trainingIndex(s.snapshot.Training, id)
	if idx < 0 {
		return model.TrainingEvent{}, fmt.Errorf("training event %d: %w", id, store.ErrNotFound)
	}

	normalizeTraining(&t)
	if errs := t.Validate(); len(errs) > 0 {
		return model.TrainingEvent{}, errs
	}

	if s.store != nil {
		if err := s.store.UpdateTrainingEvent(ctx, id, t); err != nil {
			return model.TrainingEvent{}, err
		}
	}

	t.ID = id
	t.CreatedAt = s.snapshot.Training[idx].CreatedAt
	s.snapshot.Training[idx] = t
	s.refreshDerived()
	s.appendAudit(ctx, EntityTraining, store.AuditActionUpdate, id)
	return t, nil
}

// DeleteTrainingEvent removes the event with the given id.
func (s *Session) DeleteTrainingEvent(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := trainingIndex(s.snapshot.Training, id)
	if idx < 0 {
		return fmt.Errorf("training event %d: %w", id, store.ErrNotFound)
	}

	if s.store != nil {
		if err := s.store.DeleteTrainingEvent(ctx, id); err != nil {
			return err
		}
	}

	s.snapshot.Training = append(s.snapshot.Training[:idx], s.snapshot.Training[idx+1:]...)
	s.refreshDerived()
	s.appendAudit(ctx, EntityTraining, store.AuditActionDelete, id)
	return nil
}

// AddPermit validates and stores a permit. Adding or updating a permit
// recomputes the alert list immediately.
func (s *Session) AddPermit(ctx context.Context, p model.Permit) (model.Permit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalizePermit(&p)
	p.CreatedAt = s.timestamp()
	if errs := p.Validate(); len(errs) > 0 {
		return model.Permit{}, errs
	}

	if s.store != nil {
		id, err := s.store.AddPermit(ctx, p)
		if err != nil {
			return model.Permit{}, err
		}
		p.ID = id
	} else {
		p.ID = s.nextPermitID
		s.nextPermitID++
	}

	s.snapshot.Permits = append(s.snapshot.Permits, p)
	s.refreshDerived()
	s.appendAudit(ctx, EntityPermit, store.AuditActionAdd, p.ID)
	return p, nil
}

// UpdatePermit replaces the mutable fields of the permit with the given id.
func (s *Session) UpdatePermit(ctx context.Context, id int64, p model.Permit) (model.Permit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := permitIndex(s.snapshot.Permits, id)
	if idx < 0 {
		return model.Permit{}, fmt.Errorf("permit %d: %w", id, store.ErrNotFound)
	}

	normalizePermit(&p)
	if errs := p.Validate(); len(errs) > 0 {
		return model.Permit{}, errs
	}

	if s.store != nil {
		if err := s.store.UpdatePermit(ctx, id, p); err != nil {
			return model.Permit{}, err
		}
	}

	p.ID = id
	p.CreatedAt = s.snapshot.Permits[idx].CreatedAt
	s.snapshot.Permits[idx] = p
	s.refreshDerived()
	s.appendAudit(ctx, EntityPermit, store.AuditActionUpdate, id)
	return p, nil
}

// DeletePermit removes the permit with the given id.
func (s *Session) DeletePermit(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := permitIndex(s.snapshot.Permits, id)
	if idx < 0 {
		return fmt.Errorf("permit %d: %w", id, store.ErrNotFound)
	}

	if s.store != nil {
		if err := s.store.DeletePermit(ctx, id); err != nil {
			return err
		}
	}

	s.snapshot.Permits = append(s.snapshot.Permits[:idx], s.snapshot.Permits[idx+1:]...)
	s.refreshDerived()
	s.appendAudit(ctx, EntityPermit, store.AuditActionDelete, id)
	return nil
}

func normalizeFirearm(f *model.Firearm) {
	f.MakeModel = model.NormalizeText(f.MakeModel)
	f.Serial = model.NormalizeText(f.Serial)
	f.Caliber = model.NormalizeText(f.Caliber)
	f.Type = model.NormalizeText(f.Type)
	f.Notes = model.NormalizeText(f.Notes)
}

func normalizeMaintenance(m *model.MaintenanceEvent) {
	m.Type = model.NormalizeText(m.Type)
	m.FirearmMakeModel = model.NormalizeText(m.FirearmMakeModel)
	m.Notes = model.NormalizeText(m.Notes)
}

func normalizeTraining(t *model.TrainingEvent) {
	t.Type = model.NormalizeText(t.Type)
	t.Score = model.NormalizeText(t.Score)
	t.Notes = model.NormalizeText(t.Notes)
}

func normalizePermit(p *model.Permit) {
	p.Type = model.NormalizeText(p.Type)
	p.State = model.NormalizeText(p.State)
	p.PermitNumber = model.NormalizeText(p.PermitNumber)
	p.Notes = model.NormalizeText(p.Notes)
}

func firearmIndex(list []model.Firearm, id int64) int {
	for i, f := range list {
		if f.ID == id {
			return i
		}
	}
	return -1
}

func maintenanceIndex(list []model.MaintenanceEvent, id int64) int {
	for i, m := range list {
		if m.ID == id {
			return i
		}
	}
	return -1
}

func trainingIndex(list []model.TrainingEvent, id int64) int {
	for i, t := range list {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func permitIndex(list []model.Permit, id int64) int {
	for i, p := range list {
		if p.ID == id {
			return i
		}
	}
	return -1
}
