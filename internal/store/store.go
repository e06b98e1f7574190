package store

import (
	"context"
	"errors"

	"gridops/internal/models"

	"github.com/google/uuid"
)

var (
	// ErrNotFound covers both "does not exist" and "not owned by the
	// caller" — the two must stay indistinguishable so resource ids
	// cannot be probed across tenants.
	ErrNotFound = errors.New("not found")

	ErrDuplicateUsername = errors.New("username already taken")
)

// AssetPatch, RecordPatch and TaskPatch carry partial updates; nil fields
// are left untouched.
type AssetPatch struct {
	Name *string
}

type RecordPatch struct {
	Title   *string
	Body    *string
	Status  *models.MaintenanceStatus
	Version *string
}

type TaskPatch struct {
	Name        *string
	Description *string
}

// Store is the data contract of the resource managers. Every method that
// touches an owned resource takes the caller's user id and applies the
// ownership-chain filter as part of the operation itself: mutations are
// single "update/delete where owned" statements, never check-then-mutate.
type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	UserByUsername(ctx context.Context, username string) (models.User, error)

	ListAssets(ctx context.Context, ownerID uuid.UUID) ([]models.Asset, error)
	GetAsset(ctx context.Context, ownerID, id uuid.UUID) (models.Asset, error)
	CreateAsset(ctx context.Context, asset *models.Asset) error
	UpdateAsset(ctx context.Context, ownerID, id uuid.UUID, patch AssetPatch) (models.Asset, error)
	DeleteAsset(ctx context.Context, ownerID, id uuid.UUID) (models.Asset, error)

	ListRecords(ctx context.Context, ownerID uuid.UUID) ([]models.MaintenanceRecord, error)
	GetRecord(ctx context.Context, ownerID, id uuid.UUID) (models.MaintenanceRecord, error)
	// CreateRecord fails with ErrNotFound unless rec.AssetID resolves to
	// an asset owned by ownerID.
	CreateRecord(ctx context.Context, ownerID uuid.UUID, rec *models.MaintenanceRecord) error
	UpdateRecord(ctx context.Context, ownerID, id uuid.UUID, patch RecordPatch) (models.MaintenanceRecord, error)
	DeleteRecord(ctx context.Context, ownerID, id uuid.UUID) (models.MaintenanceRecord, error)

	ListTasks(ctx context.Context, ownerID uuid.UUID) ([]models.ChecklistTask, error)
	ListTasksForRecord(ctx context.Context, ownerID, recordID uuid.UUID) ([]models.ChecklistTask, error)
	GetTask(ctx context.Context, ownerID, id uuid.UUID) (models.ChecklistTask, error)
	CreateTask(ctx context.Context, ownerID uuid.UUID, task *models.ChecklistTask) error
	UpdateTask(ctx context.Context, ownerID, id uuid.UUID, patch TaskPatch) (models.ChecklistTask, error)
	DeleteTask(ctx context.Context, ownerID, id uuid.UUID) (models.ChecklistTask, error)

	// RecordAudit is best-effort: failures are logged, never surfaced.
	RecordAudit(ctx context.Context, entry models.AuditLog)
	ListAudit(ctx context.Context, userID uuid.UUID) ([]models.AuditLog, error)
}
