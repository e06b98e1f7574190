package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MaintenanceStatus string

const (
	StatusScheduled       MaintenanceStatus = "SCHEDULED"
	StatusInProgress      MaintenanceStatus = "IN_PROGRESS"
	StatusCompleted       MaintenanceStatus = "COMPLETED"
	StatusEmergencyRepair MaintenanceStatus = "EMERGENCY_REPAIR"
)

func (s MaintenanceStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusEmergencyRepair:
		return true
	}
	return false
}

// MaintenanceRecord is one service event (inspection, repair) against an
// asset. Title is the service type, Body holds technician notes, Version
// the firmware version if applicable.
type MaintenanceRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Title   string            `gorm:"size:255;not null" json:"title"`
	Body    string            `gorm:"type:text;not null" json:"body"`
	Status  MaintenanceStatus `gorm:"type:varchar(50);not null;default:SCHEDULED" json:"status"`
	Version string            `gorm:"size:255" json:"version"`

	AssetID uuid.UUID `gorm:"type:uuid;not null;index" json:"assetId"`
	Asset   Asset     `gorm:"foreignKey:AssetID;constraint:OnDelete:CASCADE" json:"-"`
}

func (m *MaintenanceRecord) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Status == "" {
		m.Status = StatusScheduled
	}
	return nil
}
