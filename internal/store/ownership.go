package store

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gridops/internal/models"
)

// The ownership-chain filters live here and nowhere else. Each scope joins
// from a candidate id up to the root asset and filters on belongs_to_id, so
// every query a resource manager runs — reads and mutations alike — carries
// the same condition. A row that exists but is not owned matches nothing,
// which is exactly the ErrNotFound the caller reports.

// ownedAssetIDs is a subquery of the asset ids owned by ownerID.
func (s *GormStore) ownedAssetIDs(ownerID uuid.UUID) *gorm.DB {
	return s.db.Model(&models.Asset{}).Select("id").Where("belongs_to_id = ?", ownerID)
}

// ownedRecordIDs is a subquery of the maintenance record ids under any of
// ownerID's assets.
func (s *GormStore) ownedRecordIDs(ownerID uuid.UUID) *gorm.DB {
	return s.db.Model(&models.MaintenanceRecord{}).Select("id").
		Where("asset_id IN (?)", s.ownedAssetIDs(ownerID))
}

// assetOwned filters to the single asset id iff ownerID owns it.
func (s *GormStore) assetOwned(ownerID, id uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("id = ? AND belongs_to_id = ?", id, ownerID)
	}
}

// recordOwned filters to the record id iff its asset belongs to ownerID.
func (s *GormStore) recordOwned(ownerID, id uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("id = ? AND asset_id IN (?)", id, s.ownedAssetIDs(ownerID))
	}
}

// taskOwned filters to the task id iff its record's asset belongs to ownerID.
func (s *GormStore) taskOwned(ownerID, id uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("id = ? AND maintenance_record_id IN (?)", id, s.ownedRecordIDs(ownerID))
	}
}
