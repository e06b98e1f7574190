package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`

	Entity   string    `gorm:"size:50;not null" json:"entity"` // "asset", "maintenance", "task"
	EntityID uuid.UUID `gorm:"type:uuid" json:"entityId"`
	Action   string    `gorm:"size:50;not null" json:"action"` // "create", "update", "delete"
	Details  string    `gorm:"type:text" json:"details"`
}

func (l *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
