package handlers

import (
	"gridops/internal/models"
	"gridops/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type createRecordRequest struct {
	Title   string `json:"title" binding:"required,max=255"`
	Body    string `json:"body" binding:"required"`
	AssetID string `json:"assetId" binding:"required,uuid"`
	Status  string `json:"status" binding:"omitempty,oneof=SCHEDULED IN_PROGRESS COMPLETED EMERGENCY_REPAIR"`
	Version string `json:"version" binding:"omitempty,max=255"`
}

type updateRecordRequest struct {
	Title   *string `json:"title" binding:"omitempty,max=255"`
	Body    *string `json:"body"`
	Status  *string `json:"status" binding:"omitempty,oneof=SCHEDULED IN_PROGRESS COMPLETED EMERGENCY_REPAIR"`
	Version *string `json:"version" binding:"omitempty,max=255"`
}

func (h *Handler) ListMaintenanceRecords(c *gin.Context) {
	ident, ok := identity(c)
	if !ok {
		return
	}

	records, err := h.Store.ListRecords(c.Request.Context(), ident.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, records)
}

func (h *Handler) GetOneMaintenanceRecord(c *gin.Context) {
	ident, ok := identity(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	rec, err := h.Store.GetRecord(c.Request.Context(), ident.UserID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, rec)
}

func (h *Handler) CreateMaintenanceRecord(c *gin.Context) {
	ident, ok := identity(c)
	if !ok {
		return
	}

	var req createRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidInput(c)
		return
	}

	assetID, err := uuid.Parse(req.AssetID)
	if err != nil {
		respondInvalidInput(c)
		return
	}

	rec := models.MaintenanceRecord{
		Title:   req.Title,
		Body:    req.Body,
		Status:  models.MaintenanceStatus(req.Status),
		Version: req.Version,
		AssetID: assetID,
	}
	if err := h.Store.CreateRecord(c.Request.Context(), ident.UserID, &rec); err != nil {
		respondError(c, err)
		return
	}

	h.audit(c, "maintenance", rec.ID, "create", "logged maintenance record "+rec.Title)
	respondData(c, rec)
}

func (h *Handler) UpdateMaintenanceRecord(c *gin.Context) {
	ident, ok := identity(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidInput(c)
		return
	}

	patch := store.RecordPatch{
		Title:   req.Title,
		Body:    req.Body,
		Version: req.Version,
	}
	if req.Status != nil {
		status := models.MaintenanceStatus(*req.Status)
		patch.Status = &status
	}

	rec, err := h.Store.UpdateRecord(c.Request.Context(), ident.UserID, id, patch)
	if err != nil {
		respondError(c, err)
		return
	}

	h.audit(c, "maintenance", rec.ID, "update", "updated maintenance record "+rec.Title)
	respondData(c, rec)
}

func (h *Handler) DeleteMaintenanceRecord(c *gin.Context) {
	ident, ok := identity(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	rec, err := h.Store.DeleteRecord(c.Request.Context(), ident.UserID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	h.audit(c, "maintenance", rec.ID, "delete", "deleted maintenance record "+rec.Title)
	respondData(c, rec)
}
