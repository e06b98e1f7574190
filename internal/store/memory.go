package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"gridops/internal/models"

	"github.com/google/uuid"
)

// MemStore is an in-memory Store. It backs the test suite and the DSN-less
// development mode, and enforces the same ownership-chain contract as the
// postgres store.
type MemStore struct {
	mu      sync.RWMutex
	users   map[uuid.UUID]models.User
	assets  map[uuid.UUID]models.Asset
	records map[uuid.UUID]models.MaintenanceRecord
	tasks   map[uuid.UUID]models.ChecklistTask
	audit   []models.AuditLog
}

func NewMemStore() *MemStore {
	return &MemStore{
		users:   map[uuid.UUID]models.User{},
		assets:  map[uuid.UUID]models.Asset{},
		records: map[uuid.UUID]models.MaintenanceRecord{},
		tasks:   map[uuid.UUID]models.ChecklistTask{},
	}
}

// ownership walkers, callers must hold mu

func (s *MemStore) ownsAsset(ownerID, id uuid.UUID) bool {
	asset, ok := s.assets[id]
	return ok && asset.BelongsToID == ownerID
}

func (s *MemStore) ownsRecord(ownerID, id uuid.UUID) bool {
	rec, ok := s.records[id]
	return ok && s.ownsAsset(ownerID, rec.AssetID)
}

func (s *MemStore) ownsTask(ownerID, id uuid.UUID) bool {
	task, ok := s.tasks[id]
	return ok && s.ownsRecord(ownerID, task.MaintenanceRecordID)
}

// USERS

func (s *MemStore) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username {
			return ErrDuplicateUsername
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now().UTC()
	s.users[user.ID] = *user
	return nil
}

func (s *MemStore) UserByUsername(ctx context.Context, username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

// ASSETS

func (s *MemStore) ListAssets(ctx context.Context, ownerID uuid.UUID) ([]models.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	assets := []models.Asset{}
	for _, a := range s.assets {
		if a.BelongsToID == ownerID {
			assets = append(assets, a)
		}
	}
	sort.Slice(assets, func(i, j int) bool { return assetLess(assets[i], assets[j]) })
	return assets, nil
}

func (s *MemStore) GetAsset(ctx context.Context, ownerID, id uuid.UUID) (models.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.ownsAsset(ownerID, id) {
		return models.Asset{}, ErrNotFound
	}
	return s.assets[id], nil
}

func (s *MemStore) CreateAsset(ctx context.Context, asset *models.Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if asset.ID == uuid.Nil {
		asset.ID = uuid.New()
	}
	asset.CreatedAt = time.Now().UTC()
	s.assets[asset.ID] = *asset
	return nil
}

func (s *MemStore) UpdateAsset(ctx context.Context, ownerID, id uuid.UUID, patch AssetPatch) (models.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ownsAsset(ownerID, id) {
		return models.Asset{}, ErrNotFound
	}
	asset := s.assets[id]
	if patch.Name != nil {
		asset.Name = *patch.Name
	}
	s.assets[id] = asset
	return asset, nil
}

func (s *MemStore) DeleteAsset(ctx context.Context, ownerID, id uuid.UUID) (models.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ownsAsset(ownerID, id) {
		return models.Asset{}, ErrNotFound
	}
	asset := s.assets[id]
	delete(s.assets, id)
	// cascade: records under the asset and tasks under those records
	for rid, rec := range s.records {
		if rec.AssetID != id {
			continue
		}
		delete(s.records, rid)
		for tid, task := range s.tasks {
			if task.MaintenanceRecordID == rid {
				delete(s.tasks, tid)
			}
		}
	}
	return asset, nil
}

// MAINTENANCE RECORDS

func (s *MemStore) ListRecords(ctx context.Context, ownerID uuid.UUID) ([]models.MaintenanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := []models.MaintenanceRecord{}
	for _, rec := range s.records {
		if s.ownsAsset(ownerID, rec.AssetID) {
			records = append(records, rec)
		}
	}
	sort.Slice(records, func(i, j int) bool { return recordLess(records[i], records[j]) })
	return records, nil
}

func (s *MemStore) GetRecord(ctx context.Context, ownerID, id uuid.UUID) (models.MaintenanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.ownsRecord(ownerID, id) {
		return models.MaintenanceRecord{}, ErrNotFound
	}
	return s.records[id], nil
}

func (s *MemStore) CreateRecord(ctx context.Context, ownerID uuid.UUID, rec *models.MaintenanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ownsAsset(ownerID, rec.AssetID) {
		return ErrNotFound
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.Status == "" {
		rec.Status = models.StatusScheduled
	}
	rec.CreatedAt = time.Now().UTC()
	rec.UpdatedAt = rec.CreatedAt
	s.records[rec.ID] = *rec
	return nil
}

func (s *MemStore) UpdateRecord(ctx context.Context, ownerID, id uuid.UUID, patch RecordPatch) (models.MaintenanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ownsRecord(ownerID, id) {
		return models.MaintenanceRecord{}, ErrNotFound
	}
	rec := s.records[id]
	if patch.Title != nil {
		rec.Title = *patch.Title
	}
	if patch.Body != nil {
		rec.Body = *patch.Body
	}
	if patch.Status != nil {
		rec.Status = *patch.Status
	}
	if patch.Version != nil {
		rec.Version = *patch.Version
	}
	rec.UpdatedAt = time.Now().UTC()
	s.records[id] = rec
	return rec, nil
}

func (s *MemStore) DeleteRecord(ctx context.Context, ownerID, id uuid.UUID) (models.MaintenanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ownsRecord(ownerID, id) {
		return models.MaintenanceRecord{}, ErrNotFound
	}
	rec := s.records[id]
	delete(s.records, id)
	for tid, task := range s.tasks {
		if task.MaintenanceRecordID == id {
			delete(s.tasks, tid)
		}
	}
	return rec, nil
}

// CHECKLIST TASKS

func (s *MemStore) ListTasks(ctx context.Context, ownerID uuid.UUID) ([]models.ChecklistTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tasks := []models.ChecklistTask{}
	for _, task := range s.tasks {
		if s.ownsRecord(ownerID, task.MaintenanceRecordID) {
			tasks = append(tasks, task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return taskLess(tasks[i], tasks[j]) })
	return tasks, nil
}

func (s *MemStore) ListTasksForRecord(ctx context.Context, ownerID, recordID uuid.UUID) ([]models.ChecklistTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.ownsRecord(ownerID, recordID) {
		return nil, ErrNotFound
	}
	tasks := []models.ChecklistTask{}
	for _, task := range s.tasks {
		if task.MaintenanceRecordID == recordID {
			tasks = append(tasks, task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return taskLess(tasks[i], tasks[j]) })
	return tasks, nil
}

func (s *MemStore) GetTask(ctx context.Context, ownerID, id uuid.UUID) (models.ChecklistTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.ownsTask(ownerID, id) {
		return models.ChecklistTask{}, ErrNotFound
	}
	return s.tasks[id], nil
}

func (s *MemStore) CreateTask(ctx context.Context, ownerID uuid.UUID, task *models.ChecklistTask) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ownsRecord(ownerID, task.MaintenanceRecordID) {
		return ErrNotFound
	}
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	task.CreatedAt = time.Now().UTC()
	s.tasks[task.ID] = *task
	return nil
}

func (s *MemStore) UpdateTask(ctx context.Context, ownerID, id uuid.UUID, patch TaskPatch) (models.ChecklistTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ownsTask(ownerID, id) {
		return models.ChecklistTask{}, ErrNotFound
	}
	task := s.tasks[id]
	if patch.Name != nil {
		task.Name = *patch.Name
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	s.tasks[id] = task
	return task, nil
}

func (s *MemStore) DeleteTask(ctx context.Context, ownerID, id uuid.UUID) (models.ChecklistTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ownsTask(ownerID, id) {
		return models.ChecklistTask{}, ErrNotFound
	}
	task := s.tasks[id]
	delete(s.tasks, id)
	return task, nil
}

// AUDIT

func (s *MemStore) RecordAudit(ctx context.Context, entry models.AuditLog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.CreatedAt = time.Now().UTC()
	s.audit = append(s.audit, entry)
}

func (s *MemStore) ListAudit(ctx context.Context, userID uuid.UUID) ([]models.AuditLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	logs := []models.AuditLog{}
	for _, entry := range s.audit {
		if entry.UserID == userID {
			logs = append(logs, entry)
		}
	}
	return logs, nil
}

// stable list ordering: creation time, id as tie-break

func assetLess(a, b models.Asset) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID.String() < b.ID.String()
}

func recordLess(a, b models.MaintenanceRecord) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID.String() < b.ID.String()
}

func taskLess(a, b models.ChecklistTask) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID.String() < b.ID.String()
}
