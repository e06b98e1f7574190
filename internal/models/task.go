package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChecklistTask is a granular item completed during a maintenance record,
// e.g. "Voltage Output Checked" with the measured result as description.
type ChecklistTask struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text;not null" json:"description"`

	MaintenanceRecordID uuid.UUID         `gorm:"type:uuid;not null;index" json:"maintenanceRecordId"`
	MaintenanceRecord   MaintenanceRecord `gorm:"foreignKey:MaintenanceRecordID;constraint:OnDelete:CASCADE" json:"-"`
}

func (t *ChecklistTask) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
