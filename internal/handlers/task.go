package handlers

import (
	"gridops/internal/models"
	"gridops/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type createTaskRequest struct {
	Name                string `json:"name" binding:"required,max=255"`
	Description         string `json:"description" binding:"required"`
	MaintenanceRecordID string `json:"maintenanceRecordId" binding:"required,uuid"`
}

type updateTaskRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Description *string `json:"description"`
}

// ListChecklistTasks lists the caller's tasks — the whole subtree, or one
// record's tasks when ?maintenanceRecordId= is given.
func (h *Handler) ListChecklistTasks(c *gin.Context) {
	ident, ok := identity(c)
	if !ok {
		return
	}

	if raw := c.Query("maintenanceRecordId"); raw != "" {
		recordID, err := uuid.Parse(raw)
		if err != nil {
			respondNotFound(c)
			return
		}
		tasks, err := h.Store.ListTasksForRecord(c.Request.Context(), ident.UserID, recordID)
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, tasks)
		return
	}

	tasks, err := h.Store.ListTasks(c.Request.Context(), ident.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, tasks)
}

func (h *Handler) GetOneChecklistTask(c *gin.Context) {
	ident, ok := identity(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	task, err := h.Store.GetTask(c.Request.Context(), ident.UserID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, task)
}

func (h *Handler) CreateChecklistTask(c *gin.Context) {
	ident, ok := identity(c)
	if !ok {
		return
	}

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidInput(c)
		return
	}

	recordID, err := uuid.Parse(req.MaintenanceRecordID)
	if err != nil {
		respondInvalidInput(c)
		return
	}

	task := models.ChecklistTask{
		Name:                req.Name,
		Description:         req.Description,
		MaintenanceRecordID: recordID,
	}
	if err := h.Store.CreateTask(c.Request.Context(), ident.UserID, &task); err != nil {
		respondError(c, err)
		return
	}

	h.audit(c, "task", task.ID, "create", "added checklist task "+task.Name)
	respondData(c, task)
}

func (h *Handler) UpdateChecklistTask(c *gin.Context) {
	ident, ok := identity(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidInput(c)
		return
	}

	task, err := h.Store.UpdateTask(c.Request.Context(), ident.UserID, id, store.TaskPatch{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.audit(c, "task", task.ID, "update", "updated checklist task "+task.Name)
	respondData(c, task)
}

func (h *Handler) DeleteChecklistTask(c *gin.Context) {
	ident, ok := identity(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	task, err := h.Store.DeleteTask(c.Request.Context(), ident.UserID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	h.audit(c, "task", task.ID, "delete", "deleted checklist task "+task.Name)
	respondData(c, task)
}
