package store

import (
	"context"
	"errors"

	"gridops/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore is the persistent Store backed by postgres.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// USERS

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) error {
	err := s.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateUsername
	}
	return err
}

func (s *GormStore) UserByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	return user, translate(err)
}

// ASSETS

func (s *GormStore) ListAssets(ctx context.Context, ownerID uuid.UUID) ([]models.Asset, error) {
	assets := []models.Asset{}
	err := s.db.WithContext(ctx).
		Where("belongs_to_id = ?", ownerID).
		Order("created_at asc, id asc").
		Find(&assets).Error
	return assets, err
}

func (s *GormStore) GetAsset(ctx context.Context, ownerID, id uuid.UUID) (models.Asset, error) {
	var asset models.Asset
	err := s.db.WithContext(ctx).Scopes(s.assetOwned(ownerID, id)).First(&asset).Error
	return asset, translate(err)
}

func (s *GormStore) CreateAsset(ctx context.Context, asset *models.Asset) error {
	return s.db.WithContext(ctx).Create(asset).Error
}

func (s *GormStore) UpdateAsset(ctx context.Context, ownerID, id uuid.UUID, patch AssetPatch) (models.Asset, error) {
	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if len(updates) == 0 {
		return s.GetAsset(ctx, ownerID, id)
	}

	var asset models.Asset
	res := s.db.WithContext(ctx).Model(&asset).
		Clauses(clause.Returning{}).
		Scopes(s.assetOwned(ownerID, id)).
		Updates(updates)
	if res.Error != nil {
		return models.Asset{}, res.Error
	}
	if res.RowsAffected == 0 {
		return models.Asset{}, ErrNotFound
	}
	return asset, nil
}

func (s *GormStore) DeleteAsset(ctx context.Context, ownerID, id uuid.UUID) (models.Asset, error) {
	var asset models.Asset
	res := s.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Scopes(s.assetOwned(ownerID, id)).
		Delete(&asset)
	if res.Error != nil {
		return models.Asset{}, res.Error
	}
	if res.RowsAffected == 0 {
		return models.Asset{}, ErrNotFound
	}
	return asset, nil
}

// MAINTENANCE RECORDS

func (s *GormStore) ListRecords(ctx context.Context, ownerID uuid.UUID) ([]models.MaintenanceRecord, error) {
	records := []models.MaintenanceRecord{}
	err := s.db.WithContext(ctx).
		Where("asset_id IN (?)", s.ownedAssetIDs(ownerID)).
		Order("created_at asc, id asc").
		Find(&records).Error
	return records, err
}

func (s *GormStore) GetRecord(ctx context.Context, ownerID, id uuid.UUID) (models.MaintenanceRecord, error) {
	var rec models.MaintenanceRecord
	err := s.db.WithContext(ctx).Scopes(s.recordOwned(ownerID, id)).First(&rec).Error
	return rec, translate(err)
}

func (s *GormStore) CreateRecord(ctx context.Context, ownerID uuid.UUID, rec *models.MaintenanceRecord) error {
	// the referenced asset must resolve as owned; an unowned or missing
	// asset is reported exactly like a missing one
	if _, err := s.GetAsset(ctx, ownerID, rec.AssetID); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Create(rec).Error
}

func (s *GormStore) UpdateRecord(ctx context.Context, ownerID, id uuid.UUID, patch RecordPatch) (models.MaintenanceRecord, error) {
	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Body != nil {
		updates["body"] = *patch.Body
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.Version != nil {
		updates["version"] = *patch.Version
	}
	if len(updates) == 0 {
		return s.GetRecord(ctx, ownerID, id)
	}

	var rec models.MaintenanceRecord
	res := s.db.WithContext(ctx).Model(&rec).
		Clauses(clause.Returning{}).
		Scopes(s.recordOwned(ownerID, id)).
		Updates(updates)
	if res.Error != nil {
		return models.MaintenanceRecord{}, res.Error
	}
	if res.RowsAffected == 0 {
		return models.MaintenanceRecord{}, ErrNotFound
	}
	return rec, nil
}

func (s *GormStore) DeleteRecord(ctx context.Context, ownerID, id uuid.UUID) (models.MaintenanceRecord, error) {
	var rec models.MaintenanceRecord
	res := s.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Scopes(s.recordOwned(ownerID, id)).
		Delete(&rec)
	if res.Error != nil {
		return models.MaintenanceRecord{}, res.Error
	}
	if res.RowsAffected == 0 {
		return models.MaintenanceRecord{}, ErrNotFound
	}
	return rec, nil
}

// CHECKLIST TASKS

func (s *GormStore) ListTasks(ctx context.Context, ownerID uuid.UUID) ([]models.ChecklistTask, error) {
	tasks := []models.ChecklistTask{}
	err := s.db.WithContext(ctx).
		Where("maintenance_record_id IN (?)", s.ownedRecordIDs(ownerID)).
		Order("created_at asc, id asc").
		Find(&tasks).Error
	return tasks, err
}

func (s *GormStore) ListTasksForRecord(ctx context.Context, ownerID, recordID uuid.UUID) ([]models.ChecklistTask, error) {
	if _, err := s.GetRecord(ctx, ownerID, recordID); err != nil {
		return nil, err
	}
	tasks := []models.ChecklistTask{}
	err := s.db.WithContext(ctx).
		Where("maintenance_record_id = ?", recordID).
		Order("created_at asc, id asc").
		Find(&tasks).Error
	return tasks, err
}

func (s *GormStore) GetTask(ctx context.Context, ownerID, id uuid.UUID) (models.ChecklistTask, error) {
	var task models.ChecklistTask
	err := s.db.WithContext(ctx).Scopes(s.taskOwned(ownerID, id)).First(&task).Error
	return task, translate(err)
}

func (s *GormStore) CreateTask(ctx context.Context, ownerID uuid.UUID, task *models.ChecklistTask) error {
	if _, err := s.GetRecord(ctx, ownerID, task.MaintenanceRecordID); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Create(task).Error
}

func (s *GormStore) UpdateTask(ctx context.Context, ownerID, id uuid.UUID, patch TaskPatch) (models.ChecklistTask, error) {
	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if len(updates) == 0 {
		return s.GetTask(ctx, ownerID, id)
	}

	var task models.ChecklistTask
	res := s.db.WithContext(ctx).Model(&task).
		Clauses(clause.Returning{}).
		Scopes(s.taskOwned(ownerID, id)).
		Updates(updates)
	if res.Error != nil {
		return models.ChecklistTask{}, res.Error
	}
	if res.RowsAffected == 0 {
		return models.ChecklistTask{}, ErrNotFound
	}
	return task, nil
}

func (s *GormStore) DeleteTask(ctx context.Context, ownerID, id uuid.UUID) (models.ChecklistTask, error) {
	var task models.ChecklistTask
	res := s.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Scopes(s.taskOwned(ownerID, id)).
		Delete(&task)
	if res.Error != nil {
		return models.ChecklistTask{}, res.Error
	}
	if res.RowsAffected == 0 {
		return models.ChecklistTask{}, ErrNotFound
	}
	return task, nil
}

// AUDIT

func (s *GormStore) RecordAudit(ctx context.Context, entry models.AuditLog) {
	_ = s.db.WithContext(ctx).Create(&entry).Error
}

func (s *GormStore) ListAudit(ctx context.Context, userID uuid.UUID) ([]models.AuditLog, error) {
	logs := []models.AuditLog{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc, id asc").
		Find(&logs).Error
	return logs, err
}
