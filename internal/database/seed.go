package database

import (
	"context"
	"errors"
	"log"

	"gridops/internal/auth"
	"gridops/internal/models"
	"gridops/internal/store"
)

// SeedDemo creates a demo account with one asset, one maintenance record
// and one checklist task. Idempotent: a second run is a no-op.
func SeedDemo(s store.Store) {
	ctx := context.Background()

	const (
		username = "demo@gridops.local"
		password = "Demo123!"
	)

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Printf("failed to hash demo password: %v", err)
		return
	}

	user := models.User{Username: username, PasswordHash: hash}
	if err := s.CreateUser(ctx, &user); err != nil {
		if !errors.Is(err, store.ErrDuplicateUsername) {
			log.Printf("failed to create demo user: %v", err)
		}
		return
	}

	asset := models.Asset{Name: "Turbine-TR-505", BelongsToID: user.ID}
	if err := s.CreateAsset(ctx, &asset); err != nil {
		log.Printf("failed to seed demo asset: %v", err)
		return
	}

	rec := models.MaintenanceRecord{
		Title:   "Annual Safety Inspection",
		Body:    "Full inspection of turbine enclosure and wiring",
		AssetID: asset.ID,
	}
	if err := s.CreateRecord(ctx, user.ID, &rec); err != nil {
		log.Printf("failed to seed demo maintenance record: %v", err)
		return
	}

	task := models.ChecklistTask{
		Name:                "Voltage Output Checked",
		Description:         "Output stable at 240V",
		MaintenanceRecordID: rec.ID,
	}
	if err := s.CreateTask(ctx, user.ID, &task); err != nil {
		log.Printf("failed to seed demo checklist task: %v", err)
		return
	}

	log.Printf("created demo user: %s (password: %s)", username, password)
}
