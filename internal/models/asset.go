package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Asset is the root of the ownership chain: one owning user, set at
// creation, never reassigned.
type Asset struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	Name string `gorm:"size:255;not null" json:"name"`

	BelongsToID uuid.UUID `gorm:"type:uuid;not null;index" json:"belongsToId"`
	BelongsTo   User      `gorm:"foreignKey:BelongsToID;constraint:OnDelete:CASCADE" json:"-"`
}

func (a *Asset) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
